package integration

import "github.com/bwmarrin/discordgo"

// Platform is the part of *discordgo.Session the integration talks to.
// Discord treats ApplicationCommandCreate as an upsert keyed by name.
type Platform interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	AddHandler(handler interface{}) func()
}

// GuildLookup resolves a guild the bot is a member of. *discordgo.State
// satisfies it.
type GuildLookup interface {
	Guild(guildID string) (*discordgo.Guild, error)
}
