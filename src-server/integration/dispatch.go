package integration

import (
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"slashbridge/src-server/descriptor"

	"github.com/bwmarrin/discordgo"
)

// Dispatcher upserts assembled definitions globally or into guilds.
// Dispatch never waits for the network. Upserts of the same command into the
// same scope are sent one at a time in dispatch order; different scopes or
// commands run concurrently.
type Dispatcher struct {
	appID    string
	platform Platform
	guilds   GuildLookup
	recorder Recorder
	verbose  bool

	mu     sync.Mutex
	queues map[upsertKey][]*discordgo.ApplicationCommand
	wg     sync.WaitGroup
}

// guildID is empty for the global namespace
type upsertKey struct {
	guildID string
	name    string
}

func NewDispatcher(platform Platform, guilds GuildLookup, appID string) *Dispatcher {
	return &Dispatcher{
		appID:    appID,
		platform: platform,
		guilds:   guilds,
		recorder: Recorders{},
		queues:   make(map[upsertKey][]*discordgo.ApplicationCommand),
	}
}

// Dispatch queues the upserts of def. Guilds the bot can't resolve are
// skipped with a warning.
func (d *Dispatcher) Dispatch(def *discordgo.ApplicationCommand, guildIDs []int64) {
	// groups keep growing after dispatch, so the goroutines get their own copy
	snapshot := *def
	snapshot.Options = slices.Clone(def.Options)

	if descriptor.IsGlobalScope(guildIDs) {
		if d.verbose {
			slog.Info("slash command upserted as global command", "command", def.Name)
		}
		d.upsert(&snapshot, "")
		return
	}

	for _, id := range guildIDs {
		if id == 0 {
			continue
		}
		guildID := strconv.FormatInt(id, 10)
		if _, err := d.guilds.Guild(guildID); err != nil {
			slog.Warn("guild not found for slash command", "command", def.Name, "guild", guildID, "error", err)
			d.recorder.GuildMissing(def.Name, guildID)
			continue
		}
		d.upsert(&snapshot, guildID)
		if d.verbose {
			slog.Info("slash command upserted as guild command", "command", def.Name, "guild", guildID)
		}
	}
}

// upsert queues def behind earlier upserts of the same key and starts a
// sender for the key when none is running.
func (d *Dispatcher) upsert(def *discordgo.ApplicationCommand, guildID string) {
	key := upsertKey{guildID: guildID, name: def.Name}

	d.mu.Lock()
	defer d.mu.Unlock()
	pending, running := d.queues[key]
	d.queues[key] = append(pending, def)
	if running {
		return
	}
	d.wg.Add(1)
	go d.drain(key)
}

func (d *Dispatcher) drain(key upsertKey) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		pending := d.queues[key]
		if len(pending) == 0 {
			delete(d.queues, key)
			d.mu.Unlock()
			return
		}
		def := pending[0]
		d.queues[key] = pending[1:]
		d.mu.Unlock()

		d.send(def, key.guildID)
	}
}

func (d *Dispatcher) send(def *discordgo.ApplicationCommand, guildID string) {
	if _, err := d.platform.ApplicationCommandCreate(d.appID, guildID, def); err != nil {
		slog.Error("can't upsert slash command", "command", def.Name, "guild", guildID, "error", err)
		d.recorder.UpsertDone(def.Name, guildID, err)
		return
	}
	d.recorder.UpsertDone(def.Name, guildID, nil)
}

// Wait blocks until every queued upsert has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
