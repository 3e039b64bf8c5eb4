package handler

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"slashbridge/src-server/descriptor"
	"slashbridge/src-server/utils"

	"github.com/bwmarrin/discordgo"
)

const echoAgainID = "utils_echo_again"

// Utils declares the "utils" group and its subcommands.
func Utils(as *utils.AppState) {
	id := "utils"
	guildIDs := as.Config.GetDiscordGuildIDs()
	manageMessages := int64(discordgo.PermissionManageMessages)

	// one handler per subcommand, picked by the first option's name
	localCmdHandler := map[string]utils.InteractionHandler{
		"echo":   echoHandler(as),
		"uptime": uptimeHandler(as),
	}

	as.AddAppCmdInfo(descriptor.Command{
		Name:        id,
		Description: "Utility commands.",
		Group:       true,
		GuildIDs:    guildIDs,
	})
	as.AddAppCmdInfo(descriptor.Command{
		Name:        "echo",
		Description: "Repeats your text.",
		SubCommand:  true,
		ParentGroup: id,
		Permission:  &manageMessages,
		GuildIDs:    guildIDs,
		Options: []descriptor.Option{
			{
				Name:        "text",
				Description: "What to repeat.",
				Kind:        descriptor.KindString,
				Required:    true,
			},
			{
				Name:        "style",
				Description: "How to repeat it.",
				Kind:        descriptor.KindString,
				Choices: []descriptor.Choice{
					{Name: descriptor.Explicit("Plain"), Value: descriptor.Explicit("plain")},
					{Name: descriptor.Explicit("Loud"), Value: descriptor.Explicit("loud")},
					{Name: descriptor.Explicit("Spoiler"), Value: descriptor.Explicit("spoiler")},
				},
			},
		},
	})
	as.AddAppCmdInfo(descriptor.Command{
		Name:        "uptime",
		Description: "Shows how long the bot has been running.",
		SubCommand:  true,
		ParentGroup: id,
		GuildIDs:    guildIDs,
	})

	as.AddAppCmdHandler(id, func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		data := i.ApplicationCommandData()
		if len(data.Options) == 0 {
			return nil
		}
		if handler, ok := localCmdHandler[data.Options[0].Name]; ok {
			return handler(s, i)
		}
		return nil
	})
	as.AddMsgComponentHandler(echoAgainID, echoAgainHandler(as))
}

// echoContent renders text in the given style, plain when style is unknown.
func echoContent(text, style string) string {
	switch style {
	case "loud":
		return strings.ToUpper(text) + "!"
	case "spoiler":
		return "||" + text + "||"
	default:
		return text
	}
}

func echoHandler(as *utils.AppState) utils.InteractionHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		var text, style string
		for _, opt := range i.ApplicationCommandData().Options[0].Options {
			switch opt.Name {
			case "text":
				text = opt.StringValue()
			case "style":
				style = opt.StringValue()
			}
		}

		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: echoContent(text, style),
				Components: []discordgo.MessageComponent{
					discordgo.ActionsRow{
						Components: []discordgo.MessageComponent{
							discordgo.Button{
								Label:    "Again",
								Style:    discordgo.SecondaryButton,
								CustomID: echoAgainID,
							},
						},
					},
				},
			},
		}); err != nil {
			return fmt.Errorf("echoHandler: can't respond: %w", err)
		}
		as.MetricChans.ReportDiscordSend(time.Since(startTimer))
		return nil
	}
}

func echoAgainHandler(as *utils.AppState) utils.InteractionHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		if i.Message == nil {
			return nil
		}
		startTimer := time.Now()
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: i.Message.Content,
			},
		}); err != nil {
			slog.Warn("echoAgainHandler: can't respond", "error", err)
		}
		as.MetricChans.ReportDiscordSend(time.Since(startTimer))
		return nil
	}
}

func uptimeHandler(as *utils.AppState) utils.InteractionHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) error {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Flags:   discordgo.MessageFlagsEphemeral,
				Content: "Up for " + as.GetUptime().String(),
			},
		}); err != nil {
			return fmt.Errorf("uptimeHandler: can't respond: %w", err)
		}
		return nil
	}
}
