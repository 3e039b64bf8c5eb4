package handler

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"slashbridge/src-server/descriptor"
	"slashbridge/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

func Ping(as *utils.AppState) {
	id := "ping"
	as.AddAppCmdHandler(id, pingHandler(as))
	as.AddTextCmdHandler(id, pingTextHandler(as))
	as.AddAppCmdInfo(descriptor.Command{
		Name:         id,
		Description:  "A ping command.",
		EnabledInDMs: true,
		GuildIDs:     as.Config.GetDiscordGuildIDs(),
	})
}

func pingEmbed(as *utils.AppState, s *discordgo.Session, footer string) *discordgo.MessageEmbed {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	memUsage := float64(m.Sys) / 1024 / 1024

	return &discordgo.MessageEmbed{
		Title: "Pong!",
		Footer: &discordgo.MessageEmbedFooter{
			Text: footer,
		},
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Uptime",
				Value: as.GetUptime().String(),
			},
			{
				Name:   "Latency",
				Value:  fmt.Sprintf("%dms", s.HeartbeatLatency().Milliseconds()),
				Inline: true,
			},
			{
				Name:   "Go version",
				Value:  runtime.Version(),
				Inline: true,
			},
			{
				Name:   "Memory",
				Value:  fmt.Sprintf("%.2fMB", memUsage),
				Inline: true,
			},
		},
	}
}

func pingHandler(as *utils.AppState) utils.InteractionHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Flags:  discordgo.MessageFlagsEphemeral,
				Embeds: []*discordgo.MessageEmbed{pingEmbed(as, s, i.GuildID)},
			},
		}); err != nil {
			slog.Warn("pingHandler: can't respond", "error", err)
		}
		as.MetricChans.ReportDiscordSend(time.Since(startTimer))
		return nil
	}
}

func pingTextHandler(as *utils.AppState) utils.TextCmdHandler {
	return func(s *discordgo.Session, m *discordgo.MessageCreate, _ []string) error {
		startTimer := time.Now()
		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, pingEmbed(as, s, m.GuildID)); err != nil {
			slog.Warn("pingTextHandler: can't send message", "error", err)
		}
		as.MetricChans.ReportDiscordSend(time.Since(startTimer))
		return nil
	}
}
