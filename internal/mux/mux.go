package mux

import (
	"context"
	"net/http"
	"strings"
	"time"

	"texaspoker-server/internal/config"
	"texaspoker-server/internal/jwt"
	"texaspoker-server/pkg/account"
	"texaspoker-server/pkg/holdem"
	"texaspoker-server/pkg/room"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const ctxPlayerKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	muxConfig muxConfig
	version   string
	recaptcha recaptcha
	registry  *room.Registry

	// store for testing purposes
	authRouter  *gmux.Router
	adminRouter *gmux.Router
}

type muxConfig struct {
	// playerCreateDelay is the minimum duration between two player create events from a single remote address
	playerCreateDelay time.Duration
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()

	opts := holdem.DefaultOptions()
	opts.SmallBlind = cfg.Table.SmallBlind
	opts.BigBlind = cfg.Table.BigBlind
	opts.MaxSeats = cfg.Table.MaxSeats
	opts.BotBalance = cfg.Table.BotBalance

	registry := room.NewRegistry(logrus.StandardLogger(), opts, account.BalanceStore{})
	registry.StartShift()

	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
		muxConfig: muxConfig{
			playerCreateDelay: time.Second * time.Duration(cfg.PlayerCreateDelay),
		},
		recaptcha: newRecaptcha(),
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	this.adminRouter = this.authRouter.NewRoute().Subrouter()
	this.adminRouter.Use(this.adminMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/player").Handler(this.postPlayer())
		r.Methods(http.MethodPost).Path("/player/auth").Handler(this.postPlayerAuth())
	}

	// requires bearer authorization
	{
		r := this.authRouter
		r.Methods(http.MethodGet).Path("/player").Handler(this.getPlayer())
		r.Methods(http.MethodPost).Path("/player").Handler(this.postPlayerSelf())
		r.Methods(http.MethodGet).Path("/room/{room:[A-Za-z0-9_-]{1,64}}/ws").Handler(this.getRoomWS())
	}

	// requires admin access
	// depends on authMiddleware
	{
		r := this.adminRouter
		r.Methods(http.MethodPost).Path("/admin/player/{id}").Handler(this.postAdminPlayerID())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidPlayerID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		player, err := account.GetPlayerByID(r.Context(), id)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxPlayerKey, player)
		w.Header().Set("TexasPoker-PlayerID", player.ID)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// adminMiddleware requires authMiddleware to execute first
func (m *Mux) adminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player := r.Context().Value(ctxPlayerKey).(*account.Player)
		if !player.IsSiteAdmin {
			writeJSONError(w, http.StatusForbidden, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
