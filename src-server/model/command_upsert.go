package model

import (
	"time"

	"github.com/uptrace/bun"
)

type UpsertScope string

const (
	UPSERT_SCOPE_GLOBAL = UpsertScope("global")
	UPSERT_SCOPE_GUILD  = UpsertScope("guild")
)

type UpsertResult string

const (
	UPSERT_RESULT_OK            = UpsertResult("ok")
	UPSERT_RESULT_FAILED        = UpsertResult("failed")
	UPSERT_RESULT_GUILD_MISSING = UpsertResult("guild_missing")
)

// One row per upsert attempt. Never read back to diff commands, every
// registration is a blind upsert.
type CommandUpsert struct {
	bun.BaseModel `bun:"table:command_upserts"`

	ID        string       `bun:"id,pk"`                       // required
	CreatedAt time.Time    `bun:"created_at,notnull"`          // required
	Command   string       `bun:"command,notnull"`             // required
	Scope     UpsertScope  `bun:"scope,notnull,type:varchar"`  // required
	GuildID   string       `bun:"guild_id"`                    // blank when global
	Result    UpsertResult `bun:"result,notnull,type:varchar"` // required
	Error     string       `bun:"error"`
}
