package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/unrolled/render"

	"github.com/chattanoogahockey/scorekeeper-sub003/controller"
)

func getRouter(ctrl controller.C, hub *Hub, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The scorekeeping page is served from a different origin than the API.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(render))

	r.Route("/games", func(r chi.Router) {
		r.Get("/", listGamesHandler(ctrl, render))
		r.Post("/", addGameHandler(ctrl, render))

		r.Route("/{gameID}", func(r chi.Router) {
			r.Get("/", gameSummaryHandler(ctrl, render))
			r.Post("/status", updateGameStatusHandler(ctrl, render))

			r.Get("/goals", listGoalsHandler(ctrl, render))
			r.Post("/goals", recordGoalHandler(ctrl, render))
			r.Get("/penalties", listPenaltiesHandler(ctrl, render))
			r.Post("/penalties", recordPenaltyHandler(ctrl, render))
			r.Post("/shots", recordShotHandler(ctrl, render))
			r.Post("/attendance", recordAttendanceHandler(ctrl, render))

			r.Get("/players/{player}/stats", playerGameStatsHandler(ctrl, render))
		})
	})

	r.Get("/players/{player}/stats", playerSeasonStatsHandler(ctrl, render))

	r.Get("/live/{gameID}", liveHandler(hub))

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second)) // Schedule imports can be slow

		r.Post("/schedule/sync", syncScheduleHandler(ctrl, render))
	})

	return r
}
