package route

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"slashbridge/src-server/model"
)

const defaultRegistrationsLimit = 50

// Registrations serves the recent command upsert outcomes.
func Registrations(muxer *http.ServeMux, upsertLog *model.UpsertLog) {
	type OneUpsertRespBody struct {
		ID            string `json:"id"`
		Command       string `json:"command"`
		Scope         string `json:"scope"`
		GuildID       string `json:"guildId,omitempty"`
		Result        string `json:"result"`
		Error         string `json:"error,omitempty"`
		CreatedAtUnix int64  `json:"createdAtUnix"`
	}

	muxer.HandleFunc("GET /registrations", LogMiddleware(
		func(w http.ResponseWriter, r *http.Request) {
			limit := defaultRegistrationsLimit
			if raw := r.URL.Query().Get("limit"); raw != "" {
				parsed, err := strconv.Atoi(raw)
				if err != nil || parsed <= 0 {
					w.WriteHeader(http.StatusBadRequest)
					w.Write([]byte("Invalid limit"))
					return
				}
				limit = parsed
			}

			rows, err := upsertLog.Recent(r.Context(), limit)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Can't read registrations from DB"))
				slog.Error("can't read registrations from DB", "error", err)
				return
			}

			respBody := make([]OneUpsertRespBody, 0, len(rows))
			for _, row := range rows {
				respBody = append(respBody, OneUpsertRespBody{
					ID:            row.ID,
					Command:       row.Command,
					Scope:         string(row.Scope),
					GuildID:       row.GuildID,
					Result:        string(row.Result),
					Error:         row.Error,
					CreatedAtUnix: row.CreatedAt.Unix(),
				})
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(respBody); err != nil {
				slog.Warn("can't encode registrations", "error", err)
			}
		}))
}
