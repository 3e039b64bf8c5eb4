package utils

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// =========================================================
// AppState routes bridged Discord events to registered handlers
// =========================================================

func (as *AppState) HandleSlash(s *discordgo.Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	handler, ok := as.GetAppCmdHandler(name)
	if !ok {
		respondExpired(s, i, name)
		return
	}
	if err := handler(s, i); err != nil {
		slog.Error("handler error", "command", name, "error", err.Error())
	}
}

func (as *AppState) HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	handler, ok := as.GetMsgComponentHandler(customID)
	if !ok {
		respondExpired(s, i, customID)
		return
	}
	if err := handler(s, i); err != nil {
		slog.Error("handler error", "custom_id", customID, "error", err.Error())
	}
}

func (as *AppState) HandleCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	name, args, ok := ParseTextCommand(as.Config.GetCommandPrefix(), m.Content)
	if !ok {
		return
	}
	handler, ok := as.GetTextCmdHandler(name)
	if !ok {
		slog.Debug("unknown text command", "command", name, "author", m.Author.Username)
		return
	}
	if err := handler(s, m, args); err != nil {
		slog.Error("handler error", "command", name, "error", err.Error())
	}
}

func respondExpired(s *discordgo.Session, i *discordgo.InteractionCreate, id string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags:   discordgo.MessageFlagsEphemeral,
			Content: "Expired interaction",
		},
	}); err != nil {
		slog.Warn("can't respond", "error", err.Error())
	}
	username := "unknown"
	if i.Member != nil && i.Member.User != nil {
		username = i.Member.User.Username
	} else if i.User != nil {
		username = i.User.Username
	}
	slog.Debug("someone used an expired interaction", "username", username, "id", id)
}
