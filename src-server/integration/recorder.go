package integration

// Recorder observes upsert outcomes. Implementations must be safe for
// concurrent use, since upserts complete on their own goroutines.
type Recorder interface {
	// guildID is empty for a global upsert.
	UpsertDone(name, guildID string, err error)
	GuildMissing(name, guildID string)
}

// Recorders fans every outcome out to each recorder in order.
type Recorders []Recorder

func (rs Recorders) UpsertDone(name, guildID string, err error) {
	for _, r := range rs {
		r.UpsertDone(name, guildID, err)
	}
}

func (rs Recorders) GuildMissing(name, guildID string) {
	for _, r := range rs {
		r.GuildMissing(name, guildID)
	}
}
