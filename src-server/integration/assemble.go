package integration

import (
	"errors"
	"fmt"

	"slashbridge/src-server/descriptor"

	"github.com/bwmarrin/discordgo"
)

// ErrGroupNotRegistered is returned when a subcommand names a parent group
// that has not been registered yet.
var ErrGroupNotRegistered = errors.New("no group with that name is registered, register the group first")

// Assemble builds the Discord definition for cmd. A group command is stored in
// groups; a subcommand is appended to its parent group, and the group itself
// is returned.
func Assemble(cmd descriptor.Command, groups *GroupRegistry) (*discordgo.ApplicationCommand, error) {
	options := TranslateOptions(cmd.Options)

	var def *discordgo.ApplicationCommand
	if cmd.SubCommand {
		group, ok := groups.Find(cmd.ParentGroup)
		if !ok {
			return nil, fmt.Errorf("Assemble: subcommand %q: %w: %q", cmd.Name, ErrGroupNotRegistered, cmd.ParentGroup)
		}
		group.Options = append(group.Options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        cmd.Name,
			Description: cmd.Description,
			Options:     options,
		})
		def = group
	} else {
		dmPermission := cmd.EnabledInDMs
		def = &discordgo.ApplicationCommand{
			Type:         discordgo.ChatApplicationCommand,
			Name:         cmd.Name,
			Description:  cmd.Description,
			Options:      options,
			DMPermission: &dmPermission,
		}
		if cmd.Group {
			groups.Register(cmd.Name, def)
		}
	}

	if cmd.Permission != nil {
		def.DefaultMemberPermissions = permissionSet(*cmd.Permission)
	}
	return def, nil
}

// permissionSet copies raw so the definition never aliases the descriptor.
func permissionSet(raw int64) *int64 {
	return &raw
}
