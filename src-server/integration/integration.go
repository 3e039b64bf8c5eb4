// Package integration turns command descriptors into Discord application
// commands, upserts them at the right scope and wires inbound events to the
// application's handlers.
package integration

import (
	"fmt"
	"log/slog"

	"slashbridge/src-server/descriptor"

	"github.com/bwmarrin/discordgo"
)

type Integration struct {
	appID      string
	platform   Platform
	groups     *GroupRegistry
	dispatcher *Dispatcher
	verbose    bool
}

type Option func(*Integration)

// WithVerbose logs a notice for every queued upsert.
func WithVerbose(verbose bool) Option {
	return func(in *Integration) {
		in.verbose = verbose
		in.dispatcher.verbose = verbose
	}
}

func WithRecorder(r Recorder) Option {
	return func(in *Integration) {
		in.dispatcher.recorder = r
	}
}

// New creates an integration upserting commands for the application appID,
// which is the bot's own user id.
func New(platform Platform, guilds GuildLookup, appID string, opts ...Option) *Integration {
	in := &Integration{
		appID:      appID,
		platform:   platform,
		groups:     NewGroupRegistry(),
		dispatcher: NewDispatcher(platform, guilds, appID),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// NewFromSession uses the session for upserts and its state for guild lookups.
func NewFromSession(s *discordgo.Session, opts ...Option) (*Integration, error) {
	if s.State == nil || s.State.User == nil {
		return nil, fmt.Errorf("NewFromSession: session is not ready, no self user in state")
	}
	return New(s, s.State, s.State.User.ID, opts...), nil
}

func (in *Integration) AppID() string {
	return in.appID
}

// RegisterSlashCommand assembles cmd and queues its upserts. It fails only when
// cmd is a subcommand of an unregistered group.
func (in *Integration) RegisterSlashCommand(cmd descriptor.Command) error {
	def, err := Assemble(cmd, in.groups)
	if err != nil {
		return fmt.Errorf("RegisterSlashCommand: %w", err)
	}
	if in.verbose && cmd.SubCommand {
		slog.Info("subcommand added to group", "command", cmd.Name, "group", cmd.ParentGroup, "subcommands", len(def.Options))
	}
	in.dispatcher.Dispatch(def, cmd.GuildIDs)
	return nil
}

// AddSubCommandGroup registers a prebuilt group definition so subcommands can
// be appended to it. Nothing is upserted.
func (in *Integration) AddSubCommandGroup(group *discordgo.ApplicationCommand) {
	in.groups.Register(group.Name, group)
}

func (in *Integration) RegisterCommandHandler(h CommandHandler) func() {
	return RegisterCommandHandler(in.platform, h)
}

func (in *Integration) RegisterSlashCommandHandler(h SlashCommandHandler) func() {
	return RegisterSlashCommandHandler(in.platform, h)
}

func (in *Integration) RegisterButtonClickHandler(h ButtonClickHandler) func() {
	return RegisterButtonClickHandler(in.platform, h)
}

// Wait blocks until all queued upserts have returned.
func (in *Integration) Wait() {
	in.dispatcher.Wait()
}
