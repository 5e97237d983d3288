package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"valuebets/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/cycles", handler(s.postV1Cycles))
		r.Get("/roi", handler(s.getV1ROI))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
