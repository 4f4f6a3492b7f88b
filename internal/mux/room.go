package mux

import (
	"net/http"

	"bigfive-server/internal/config"
	"bigfive-server/pkg/game"
	"bigfive-server/pkg/room"
)

type postRoomPayload struct {
	DrawRequiresTurn *bool `json:"drawRequiresTurn"`
}

type postRoomResponse struct {
	Code string `json:"code"`
}

func (m *Mux) postRoom() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := game.DefaultOptions()
		opts.DrawRequiresTurn = config.Instance().Rules.DrawRequiresTurn

		// an empty body means the configured defaults
		if r.Header.Get("Content-Type") != "" {
			var pp postRoomPayload
			if !decodeRequest(w, r, &pp) {
				return
			}

			if pp.DrawRequiresTurn != nil {
				opts.DrawRequiresTurn = *pp.DrawRequiresTurn
			}
		}

		session := m.broker.CreateRoom(opts)
		writeJSON(w, http.StatusCreated, postRoomResponse{Code: session.Code()})
	}
}

func (m *Mux) getRoomCode() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := r.Context().Value(ctxRoomKey).(*room.Session)

		info, ok := session.Info()
		if !ok {
			// the room shut down between the middleware and here
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, info)
	})
}
