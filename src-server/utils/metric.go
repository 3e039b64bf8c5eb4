package utils

import "time"

type Metric struct {
	DiscordSendMessage chan float64
}

func NewMetric() *Metric {
	return &Metric{
		DiscordSendMessage: make(chan float64, 16),
	}
}

// ReportDiscordSend drops the sample when nobody is collecting.
func (m *Metric) ReportDiscordSend(latency time.Duration) {
	select {
	case m.DiscordSendMessage <- float64(latency.Microseconds()):
	default:
	}
}
