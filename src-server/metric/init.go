package metric

import (
	"log/slog"
	"time"

	"slashbridge/src-server/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	discordSendMessageGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slashbridge_discord_send_message_microsec",
		Help: "The latency of a discord message send in microseconds",
	})
	discordHeartbeatLatencyGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slashbridge_discord_heartbeat_latency_microsec",
		Help: "The latency of a discord heartbeat in microseconds",
	})
)

func discordSendMessage(as *utils.AppState, clearTickerInterval time.Duration) {
	discordSendMessageGauge.Set(0)
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		clearTicker := time.NewTicker(clearTickerInterval)
		defer clearTicker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				slog.Debug("slashbridge_discord_send_message_microsec collector stopped")
				return
			case latency := <-as.MetricChans.DiscordSendMessage:
				discordSendMessageGauge.Set(latency)
				clearTicker.Reset(clearTickerInterval)
			case <-clearTicker.C:
				discordSendMessageGauge.Set(0)
			}
		}
	}()
}

func discordHeartbeatLatency(as *utils.AppState, tickerInterval time.Duration) {
	discordHeartbeatLatencyGauge.Set(0)
	go func() {
		ticker := time.NewTicker(tickerInterval)
		defer ticker.Stop()
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		for {
			select {
			case <-gracefulShutdownCh:
				slog.Debug("slashbridge_discord_heartbeat_latency_microsec collector stopped")
				return
			case <-ticker.C:
				latency := as.DgSession.HeartbeatLatency().Microseconds()
				discordHeartbeatLatencyGauge.Set(float64(latency))
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()
	clearTickerInterval := as.Config.GetMetricCollectionInterval() * 2

	discordSendMessage(as, clearTickerInterval)
	discordHeartbeatLatency(as, tickerInterval)
}
