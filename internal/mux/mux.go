package mux

import (
	"context"
	"net/http"

	"bigfive-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxRoomKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	broker  *room.Broker

	// store for testing purposes
	roomRouter *gmux.Router
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		broker:  room.NewBroker(),
	}

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())
	}

	// routes scoped to an existing room
	{
		r := this.Router.PathPrefix("/room/{code:[A-Za-z0-9]{6}}").Subrouter()
		r.Use(this.roomMiddleware)

		r.Methods(http.MethodGet).Path("").Handler(this.getRoomCode())
		r.Methods(http.MethodGet).Path("/ws").Handler(this.getRoomCodeWS())

		this.roomRouter = r
	}

	return this
}

func (m *Mux) roomMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := gmux.Vars(r)["code"]
		session, ok := m.broker.Room(code)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxRoomKey, session)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
