package descriptor

// Command describes one slash command, or one subcommand of a group, as
// declared by the application. It is read-only to the integration.
type Command struct {
	Name        string
	Description string

	// Group marks a top-level command whose definition collects subcommands.
	Group bool
	// SubCommand commands are appended to the group named by ParentGroup
	// instead of being registered on their own.
	SubCommand  bool
	ParentGroup string

	Options []Option

	// Raw permission bits required by default, nil when unrestricted.
	Permission *int64

	EnabledInDMs bool

	// Empty, or only 0, means global.
	GuildIDs []int64
}

// IsGlobal reports whether the command targets the global namespace.
func (c Command) IsGlobal() bool {
	return IsGlobalScope(c.GuildIDs)
}

// IsGlobalScope reports whether guildIDs holds no guild other than the 0
// sentinel.
func IsGlobalScope(guildIDs []int64) bool {
	for _, id := range guildIDs {
		if id != 0 {
			return false
		}
	}
	return true
}

type Option struct {
	Name        string
	Description string
	Kind        OptionKind
	Required    bool
	Choices     []Choice
}

// Choice is a pick-list entry, only meaningful on string options.
type Choice struct {
	Name  Text
	Value Text
}

// IsDefault reports whether neither field was ever set.
func (c Choice) IsDefault() bool {
	return !c.Name.IsSet() && !c.Value.IsSet()
}
