package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"nadlan_radar/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/extract", func(r chi.Router) {
				r.Post("/", handler(s.postV1Extract))
				r.Post("/url", handler(s.postV1ExtractURL))
			})
			r.Route("/listings", func(r chi.Router) {
				r.Get("/", handler(s.getV1Listings))
				r.Delete("/", handler(s.deleteV1Listings))
			})
			r.Get("/benchmarks", handler(s.getV1Benchmarks))
			r.Get("/presets", handler(s.getV1Presets))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
