package integration

import "github.com/bwmarrin/discordgo"

// GroupRegistry holds the group commands being built during registration,
// keyed by name. It is not safe for concurrent writers: groups must be
// registered before any of their subcommands.
type GroupRegistry struct {
	groups map[string]*discordgo.ApplicationCommand
}

func NewGroupRegistry() *GroupRegistry {
	return &GroupRegistry{groups: make(map[string]*discordgo.ApplicationCommand)}
}

// Register stores def under name. Collisions overwrite silently.
func (r *GroupRegistry) Register(name string, def *discordgo.ApplicationCommand) {
	r.groups[name] = def
}

// Find looks a group up by exact name. It never creates one.
func (r *GroupRegistry) Find(name string) (*discordgo.ApplicationCommand, bool) {
	def, ok := r.groups[name]
	return def, ok
}

func (r *GroupRegistry) size() int {
	return len(r.groups)
}
