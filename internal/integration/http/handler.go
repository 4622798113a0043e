package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tableside/tableside/internal/integration"
)

type Handler struct {
	log     *slog.Logger
	service integration.Service
}

func NewHandler(log *slog.Logger, service integration.Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/integrations/{name}", h.status)
	r.Post("/integrations/{name}/connect", h.connect)
	r.Post("/integrations/{name}/disconnect", h.disconnect)

	return r
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	st, err := h.service.Status(r.Context(), name)
	if errors.Is(err, integration.ErrUnknownIntegration) {
		http.Error(w, "unknown integration", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"name": name, "status": string(st)})
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.service.Connect(r.Context(), name); err != nil {
		http.Error(w, "unknown integration", http.StatusNotFound)
		return
	}
	h.log.Info("integration connected", "name", name)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.service.Disconnect(r.Context(), name); err != nil {
		http.Error(w, "unknown integration", http.StatusNotFound)
		return
	}
	h.log.Info("integration disconnected", "name", name)
	w.WriteHeader(http.StatusNoContent)
}
