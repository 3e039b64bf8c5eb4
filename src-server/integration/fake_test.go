package integration

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

type upsertCall struct {
	appID   string
	guildID string
	cmd     *discordgo.ApplicationCommand
}

type fakePlatform struct {
	mu       sync.Mutex
	upserts  []upsertCall
	handlers []interface{}
	err      error
}

func (f *fakePlatform) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts = append(f.upserts, upsertCall{appID: appID, guildID: guildID, cmd: cmd})
	return cmd, f.err
}

func (f *fakePlatform) AddHandler(handler interface{}) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, handler)
	return func() {}
}

func (f *fakePlatform) calls() []upsertCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]upsertCall(nil), f.upserts...)
}

// slowPlatform answers after a random delay and, like Discord, keeps only the
// last definition written per scope and name.
type slowPlatform struct {
	fakePlatform
	maxDelay time.Duration
	stored   map[upsertKey]*discordgo.ApplicationCommand
}

func newSlowPlatform(maxDelay time.Duration) *slowPlatform {
	return &slowPlatform{maxDelay: maxDelay, stored: make(map[upsertKey]*discordgo.ApplicationCommand)}
}

func (f *slowPlatform) ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	time.Sleep(time.Duration(rand.Int63n(int64(f.maxDelay) + 1)))
	f.mu.Lock()
	f.stored[upsertKey{guildID: guildID, name: cmd.Name}] = cmd
	f.mu.Unlock()
	return f.fakePlatform.ApplicationCommandCreate(appID, guildID, cmd, options...)
}

func (f *slowPlatform) storedCommand(guildID, name string) *discordgo.ApplicationCommand {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stored[upsertKey{guildID: guildID, name: name}]
}

type fakeGuilds map[string]bool

func (f fakeGuilds) Guild(guildID string) (*discordgo.Guild, error) {
	if !f[guildID] {
		return nil, discordgo.ErrStateNotFound
	}
	return &discordgo.Guild{ID: guildID}, nil
}

type outcome struct {
	name    string
	guildID string
	err     error
}

type fakeRecorder struct {
	mu      sync.Mutex
	done    []outcome
	missing []outcome
}

func (f *fakeRecorder) UpsertDone(name, guildID string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.done = append(f.done, outcome{name: name, guildID: guildID, err: err})
}

func (f *fakeRecorder) GuildMissing(name, guildID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.missing = append(f.missing, outcome{name: name, guildID: guildID})
}

var errRejected = errors.New("rejected")
