package utils

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"slashbridge/src-server/descriptor"
	"slashbridge/src-server/model"

	"github.com/bwmarrin/discordgo"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

type InteractionHandler func(s *discordgo.Session, i *discordgo.InteractionCreate) error

type TextCmdHandler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string) error

type AppState struct {
	Config      *Config
	RawDb       *sql.DB
	BunDB       *bun.DB
	DgSession   *discordgo.Session
	MetricChans *Metric

	AppCloseSignalChan chan os.Signal

	startTime time.Time

	mu sync.RWMutex
	// will be translated and upserted to Discord, in declaration order;
	// groups must come before their subcommands
	appCmdInfo []descriptor.Command
	// handling slash commands from Discord WSAPI
	appCmdHandler map[string]InteractionHandler
	// same as above but for buttons, keyed by custom id
	msgComponentHandler map[string]InteractionHandler
	// prefixed plain text commands
	textCmdHandler map[string]TextCmdHandler

	gracefulShutdownChans []chan struct{}
}

func NewAppState(cfg *Config) *AppState {
	return &AppState{
		Config:              cfg,
		MetricChans:         NewMetric(),
		AppCloseSignalChan:  make(chan os.Signal, 1),
		startTime:           time.Now(),
		appCmdHandler:       make(map[string]InteractionHandler),
		msgComponentHandler: make(map[string]InteractionHandler),
		textCmdHandler:      make(map[string]TextCmdHandler),
	}
}

func (as *AppState) OpenDatabase(ctx context.Context) error {
	var err error
	as.RawDb, err = sql.Open(sqliteshim.ShimName, as.Config.GetDatabasePath()+"?mode=rwc")
	if err != nil {
		return fmt.Errorf("OpenDatabase: cannot open sqlite database: %w", err)
	}
	as.RawDb.SetMaxIdleConns(8)

	as.BunDB = bun.NewDB(as.RawDb, sqlitedialect.New())
	as.BunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(as.Config.GetVerbose()),
		bundebug.FromEnv("BUNDEBUG"),
	))

	if err := model.CreateSchema(ctx, as.BunDB); err != nil {
		return fmt.Errorf("OpenDatabase: %w", err)
	}
	return nil
}

func (as *AppState) OpenDiscord() error {
	var err error
	as.DgSession, err = discordgo.New("Bot " + as.Config.GetDiscordAppToken())
	if err != nil {
		return fmt.Errorf("OpenDiscord: can't create session: %w", err)
	}
	as.DgSession.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
	return nil
}

func (as *AppState) AddAppCmdInfo(cmd descriptor.Command) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.appCmdInfo = append(as.appCmdInfo, cmd)
}

// IterateAppCmdInfo visits the declared commands in declaration order and
// stops at the first error.
func (as *AppState) IterateAppCmdInfo(fn func(cmd descriptor.Command) error) error {
	as.mu.RLock()
	cmds := append([]descriptor.Command(nil), as.appCmdInfo...)
	as.mu.RUnlock()
	for _, cmd := range cmds {
		if err := fn(cmd); err != nil {
			return err
		}
	}
	return nil
}

// NukeAppCmdInfo drops the declarations once they've been sent to Discord.
func (as *AppState) NukeAppCmdInfo() {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.appCmdInfo = nil
}

func (as *AppState) AddAppCmdHandler(name string, handler InteractionHandler) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.appCmdHandler[name] = handler
}

func (as *AppState) GetAppCmdHandler(name string) (InteractionHandler, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	handler, ok := as.appCmdHandler[name]
	return handler, ok
}

func (as *AppState) AddMsgComponentHandler(customID string, handler InteractionHandler) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.msgComponentHandler[customID] = handler
}

func (as *AppState) GetMsgComponentHandler(customID string) (InteractionHandler, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	handler, ok := as.msgComponentHandler[customID]
	return handler, ok
}

func (as *AppState) AddTextCmdHandler(name string, handler TextCmdHandler) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.textCmdHandler[name] = handler
}

func (as *AppState) GetTextCmdHandler(name string) (TextCmdHandler, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	handler, ok := as.textCmdHandler[name]
	return handler, ok
}

func (as *AppState) GetUptime() time.Duration {
	return time.Since(as.startTime).Round(time.Second)
}

// CreateGracefulShutdownChan returns a channel closed by GracefulShutdown.
func (as *AppState) CreateGracefulShutdownChan() chan struct{} {
	as.mu.Lock()
	defer as.mu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, ch)
	return ch
}

func (as *AppState) GracefulShutdown() {
	as.mu.Lock()
	chans := as.gracefulShutdownChans
	as.gracefulShutdownChans = nil
	as.mu.Unlock()
	for _, ch := range chans {
		close(ch)
	}

	if as.DgSession != nil {
		if err := as.DgSession.Close(); err != nil {
			slog.Warn("can't close discord session", "error", err)
		}
	}
	if as.BunDB != nil {
		if err := as.BunDB.Close(); err != nil {
			slog.Warn("can't close database", "error", err)
		}
	}
}
