package routes

import (
	"net/http"
	"time"

	"github.com/Dosada05/swiss-pairing/handlers"
	"github.com/Dosada05/swiss-pairing/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Tournament *handlers.TournamentHandler
	Player     *handlers.PlayerHandler
	Match      *handlers.MatchHandler
	Pairing    *handlers.PairingHandler
	WebSocket  *handlers.WebSocketHandler
}

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	Registry       *prometheus.Registry
	RequestTimeout time.Duration
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if opts.Registry != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	// Websocket upgrades must not be wrapped by the request timeout.
	router.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)

	router.Group(func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(chiMiddleware.Timeout(opts.RequestTimeout))
		}

		r.Post("/auth/login", h.Auth.Login)

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.ListTournaments)

			r.Route("/{tournamentID}", func(r chi.Router) {
				r.Get("/", h.Tournament.GetTournament)
				r.Get("/standings", h.Player.ListStandings)
				r.Get("/players/count", h.Player.CountPlayers)
				r.Get("/matches", h.Match.ListMatches)

				r.Group(func(r chi.Router) {
					r.Use(middleware.Authenticate(opts.JWTSecret))
					r.Use(middleware.RequireOrganizer)

					r.Post("/players", h.Player.RegisterPlayer)
					r.Delete("/players", h.Player.ClearPlayers)
					r.Post("/matches", h.Match.ReportMatch)
					r.Delete("/matches", h.Match.ClearMatches)
					r.Post("/pairings", h.Pairing.GenerateRound)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.Authenticate(opts.JWTSecret))
				r.Use(middleware.RequireOrganizer)

				r.Post("/", h.Tournament.CreateTournament)
			})
		})
	})
}
