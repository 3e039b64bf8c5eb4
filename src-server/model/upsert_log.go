package model

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// UpsertLog writes every upsert outcome to the command_upserts table.
type UpsertLog struct {
	db *bun.DB
}

func NewUpsertLog(db *bun.DB) *UpsertLog {
	return &UpsertLog{db: db}
}

func (l *UpsertLog) UpsertDone(name, guildID string, err error) {
	row := newCommandUpsert(name, guildID, UPSERT_RESULT_OK)
	if err != nil {
		row.Result = UPSERT_RESULT_FAILED
		row.Error = err.Error()
	}
	l.insert(row)
}

func (l *UpsertLog) GuildMissing(name, guildID string) {
	l.insert(newCommandUpsert(name, guildID, UPSERT_RESULT_GUILD_MISSING))
}

// Recent returns the latest rows, newest first.
func (l *UpsertLog) Recent(ctx context.Context, limit int) ([]CommandUpsert, error) {
	var rows []CommandUpsert
	if err := l.db.NewSelect().
		Model(&rows).
		Order("created_at DESC").
		Limit(limit).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("(*UpsertLog).Recent: %w", err)
	}
	return rows, nil
}

func (l *UpsertLog) insert(row *CommandUpsert) {
	if _, err := l.db.NewInsert().
		Model(row).
		Exec(context.Background()); err != nil {
		slog.Warn("can't record command upsert", "command", row.Command, "guild", row.GuildID, "error", err)
	}
}

func newCommandUpsert(name, guildID string, result UpsertResult) *CommandUpsert {
	scope := UPSERT_SCOPE_GUILD
	if guildID == "" {
		scope = UPSERT_SCOPE_GLOBAL
	}
	return &CommandUpsert{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Command:   name,
		Scope:     scope,
		GuildID:   guildID,
		Result:    result,
	}
}
