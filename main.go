package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slashbridge/src-server/handler"
	"slashbridge/src-server/integration"
	"slashbridge/src-server/metric"
	"slashbridge/src-server/model"
	"slashbridge/src-server/route"
	"slashbridge/src-server/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func main() {
	as := utils.NewAppState(utils.NewConfig())

	if err := as.OpenDatabase(context.Background()); err != nil {
		slog.Error("can't open database", "error", err)
		os.Exit(1)
	}
	if err := as.OpenDiscord(); err != nil {
		slog.Error("can't create discord session", "error", err)
		os.Exit(1)
	}
	upsertLog := model.NewUpsertLog(as.BunDB)

	// declare commands (descriptors + handlers) on the AppState; order matters,
	// groups come before their subcommands
	handler.Ping(as)
	handler.Utils(as)

	// route text commands, slash commands and buttons to the AppState
	integration.Bridge(as.DgSession, as, as, as)

	// the state knows our guilds once Ready has been handled, so register then
	var in *integration.Integration
	registered := make(chan struct{})
	as.DgSession.AddHandlerOnce(func(s *discordgo.Session, r *discordgo.Ready) {
		defer close(registered)
		var err error
		in, err = integration.NewFromSession(s,
			integration.WithVerbose(as.Config.GetVerbose()),
			integration.WithRecorder(integration.Recorders{metric.UpsertRecorder{}, upsertLog}),
		)
		if err != nil {
			slog.Error("can't set up command registration", "bot", r.User.Username, "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
			return
		}
		if err := as.IterateAppCmdInfo(in.RegisterSlashCommand); err != nil {
			slog.Error("can't register slash commands", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
			return
		}
		as.NukeAppCmdInfo()
		slog.Info("slash commands queued for upsert", "guilds", len(s.State.Guilds))
	})

	// open a connection to Discord
	if err := as.DgSession.Open(); err != nil {
		slog.Error("can't open discord connection", "error", err)
		os.Exit(1)
	}

	metric.Init(as)

	// http server
	go func() {
		muxer := http.NewServeMux()
		muxer.Handle("GET /metrics", promhttp.Handler())
		route.Registrations(muxer, upsertLog)
		if err := http.ListenAndServe(":"+as.Config.GetPort(), muxer); err != nil {
			slog.Error("cannot start HTTP server", "error", err)
			as.AppCloseSignalChan <- syscall.SIGTERM
		}
	}()

	slog.Info("app is now running, press Ctrl+C to exit")

	signal.Notify(as.AppCloseSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-as.AppCloseSignalChan

	slog.Info("Gracefully shutting down...")
	select {
	case <-registered:
		if in != nil {
			in.Wait()
		}
	default:
	}
	as.GracefulShutdown()
}
