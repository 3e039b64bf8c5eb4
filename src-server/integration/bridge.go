package integration

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

type CommandHandler interface {
	HandleCommand(s *discordgo.Session, m *discordgo.MessageCreate)
}

type SlashCommandHandler interface {
	HandleSlash(s *discordgo.Session, i *discordgo.InteractionCreate)
}

type ButtonClickHandler interface {
	HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate)
}

// EventKind names the native event a listener consumes.
type EventKind int

const (
	EventMessage EventKind = iota
	EventSlash
	EventButton
)

func (k EventKind) String() string {
	switch k {
	case EventMessage:
		return "MessageCreate"
	case EventSlash:
		return "InteractionCreate/ApplicationCommand"
	case EventButton:
		return "InteractionCreate/Button"
	default:
		return "unknown"
	}
}

// listen adds a discordgo handler for events of type E. discordgo picks the
// event type from the handler's signature, which is concrete once E is.
func listen[E any](p Platform, kind EventKind, accept func(E) bool, forward func(*discordgo.Session, E)) func() {
	slog.Debug("event listener registered", "event", kind.String())
	return p.AddHandler(func(s *discordgo.Session, e E) {
		if accept(e) {
			forward(s, e)
		}
	})
}

// RegisterCommandHandler forwards plain messages from non-bot users.
func RegisterCommandHandler(p Platform, h CommandHandler) func() {
	return listen(p, EventMessage, hasMessage, h.HandleCommand)
}

// RegisterSlashCommandHandler forwards chat input command interactions.
func RegisterSlashCommandHandler(p Platform, h SlashCommandHandler) func() {
	return listen(p, EventSlash, isSlashCommand, h.HandleSlash)
}

// RegisterButtonClickHandler forwards button interactions.
func RegisterButtonClickHandler(p Platform, h ButtonClickHandler) func() {
	return listen(p, EventButton, isButtonClick, h.HandleButton)
}

// Bridge subscribes all non-nil handlers and returns a func removing them.
func Bridge(p Platform, cmd CommandHandler, slash SlashCommandHandler, button ButtonClickHandler) func() {
	var removers []func()
	if cmd != nil {
		removers = append(removers, RegisterCommandHandler(p, cmd))
	}
	if slash != nil {
		removers = append(removers, RegisterSlashCommandHandler(p, slash))
	}
	if button != nil {
		removers = append(removers, RegisterButtonClickHandler(p, button))
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

func hasMessage(m *discordgo.MessageCreate) bool {
	return m.Message != nil
}

func isSlashCommand(i *discordgo.InteractionCreate) bool {
	return i.Interaction != nil &&
		i.Type == discordgo.InteractionApplicationCommand &&
		i.ApplicationCommandData().CommandType == discordgo.ChatApplicationCommand
}

func isButtonClick(i *discordgo.InteractionCreate) bool {
	return i.Interaction != nil &&
		i.Type == discordgo.InteractionMessageComponent &&
		i.MessageComponentData().ComponentType == discordgo.ButtonComponent
}
