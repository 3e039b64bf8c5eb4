package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandUpsertTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashbridge_command_upsert_total",
		Help: "Slash command upserts by scope and result",
	}, []string{"scope", "result"})
	guildMissingTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slashbridge_guild_missing_total",
		Help: "Guild scoped upserts skipped because the guild is unknown to the bot",
	})
)

// UpsertRecorder counts upsert outcomes. The zero value is ready to use.
type UpsertRecorder struct{}

func (UpsertRecorder) UpsertDone(_, guildID string, err error) {
	scope := "guild"
	if guildID == "" {
		scope = "global"
	}
	result := "ok"
	if err != nil {
		result = "failed"
	}
	commandUpsertTotal.WithLabelValues(scope, result).Inc()
}

func (UpsertRecorder) GuildMissing(_, _ string) {
	guildMissingTotal.Inc()
}
