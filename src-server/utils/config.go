package utils

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	port string

	discordAppToken string
	discordGuildIDs []int64

	verbose       bool
	commandPrefix string

	databasePath             string
	metricCollectionInterval time.Duration
}

func NewConfig() *Config {
	return &Config{
		port: func() string {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		discordAppToken: func() string {
			discordAppToken := os.Getenv("DISCORD_APP_TOKEN")
			if len(discordAppToken) < 3 {
				slog.Error("DISCORD_APP_TOKEN is not set")
				os.Exit(1)
			}
			slog.Debug("env", "DISCORD_APP_TOKEN", discordAppToken[0:3]+"...")
			return discordAppToken
		}(),
		discordGuildIDs: func() []int64 {
			raw := os.Getenv("DISCORD_GUILD_IDS")
			if raw == "" {
				slog.Debug("env", "DISCORD_GUILD_IDS", "global")
				return nil
			}
			guildIDs, err := ParseGuildIDs(raw)
			if err != nil {
				slog.Error("invalid DISCORD_GUILD_IDS", "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "DISCORD_GUILD_IDS", guildIDs)
			return guildIDs
		}(),

		verbose: func() bool {
			raw := os.Getenv("VERBOSE")
			if raw == "" {
				return false
			}
			verbose, err := strconv.ParseBool(raw)
			if err != nil {
				slog.Warn("invalid VERBOSE, using false", "value", raw, "error", err)
				return false
			}
			slog.Debug("env", "VERBOSE", verbose)
			return verbose
		}(),
		commandPrefix: func() string {
			prefix := os.Getenv("COMMAND_PREFIX")
			if prefix == "" {
				prefix = "!"
			}
			slog.Debug("env", "COMMAND_PREFIX", prefix)
			return prefix
		}(),

		databasePath: func() string {
			path := os.Getenv("DATABASE_PATH")
			if path == "" {
				path = "./sqlite.db"
			}
			slog.Debug("env", "DATABASE_PATH", path)
			return path
		}(),
		metricCollectionInterval: func() time.Duration {
			raw := os.Getenv("METRIC_COLLECTION_INTERVAL")
			if raw == "" {
				raw = "10s"
			}
			interval, err := time.ParseDuration(raw)
			if err != nil || interval <= 0 {
				slog.Error("invalid METRIC_COLLECTION_INTERVAL", "value", raw, "error", err)
				os.Exit(1)
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", interval)
			return interval
		}(),
	}
}

// ParseGuildIDs parses a comma separated list of guild snowflakes.
func ParseGuildIDs(raw string) ([]int64, error) {
	var guildIDs []int64
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, err
		}
		guildIDs = append(guildIDs, id)
	}
	return guildIDs, nil
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get DISCORD_APP_TOKEN env
func (c *Config) GetDiscordAppToken() string {
	return c.discordAppToken
}

// Get DISCORD_GUILD_IDS env, nil means global
func (c *Config) GetDiscordGuildIDs() []int64 {
	return c.discordGuildIDs
}

// Get VERBOSE env
func (c *Config) GetVerbose() bool {
	return c.verbose
}

// Get COMMAND_PREFIX env, default to "!"
func (c *Config) GetCommandPrefix() string {
	return c.commandPrefix
}

// Get DATABASE_PATH env
func (c *Config) GetDatabasePath() string {
	return c.databasePath
}

// Get METRIC_COLLECTION_INTERVAL env
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}
