package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes wires the full HTTP surface onto a chi router.
func (h *Handler) Routes(allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Admin-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health)
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/players/search", h.SearchPlayer)
		r.Get("/players/{steamID}", h.GetPlayerProfile)
		r.Get("/players/{steamID}/charts", h.GetPlayerCharts)
		r.Post("/players/{steamID}/sync", h.SyncPlayer)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.AdminAuthMiddleware)

			r.Delete("/players/{steamID}", h.DeletePlayer)

			r.Put("/players/{steamID}/monthly/{year}/{month}", h.UpsertMonthlyStat)
			r.Delete("/players/{steamID}/monthly/{year}/{month}", h.DeleteMonthlyStat)

			r.Put("/players/{steamID}/monthly/{year}/{month}/weapons/{weapon}", h.UpsertWeaponStat)
			r.Delete("/players/{steamID}/monthly/{year}/{month}/weapons/{weapon}", h.DeleteWeaponStat)

			r.Put("/players/{steamID}/monthly/{year}/{month}/maps/{mapName}", h.UpsertMapStat)
			r.Delete("/players/{steamID}/monthly/{year}/{month}/maps/{mapName}", h.DeleteMapStat)

			r.Put("/players/{steamID}/teammates/{teammateSteamID}", h.UpsertTeammateStat)
			r.Delete("/players/{steamID}/teammates/{teammateSteamID}", h.DeleteTeammateStat)
		})
	})

	return r
}
