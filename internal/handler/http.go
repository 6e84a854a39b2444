package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/link-share/internal/logger"
	"github.com/MikhailRaia/link-share/internal/middleware"
	"github.com/MikhailRaia/link-share/internal/model"
	"github.com/MikhailRaia/link-share/internal/widget"
)

type ShareWidget interface {
	Buttons() []model.ButtonState
	Button(id string) (model.ButtonState, error)
	Click(id string) (model.ButtonState, error)
}

type Handler struct {
	widget ShareWidget
}

func NewHandler(w ShareWidget) *Handler {
	return &Handler{
		widget: w,
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	r.Use(middleware.GzipMiddleware)

	r.Route("/api/share/buttons", func(r chi.Router) {
		r.Get("/", h.handleListButtons)
		r.Get("/{id}", h.handleGetButton)
		r.Post("/{id}/click", h.handleClick)
	})
	r.Get("/ping", h.handlePing)

	return r
}

func (h *Handler) handleListButtons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.widget.Buttons())
}

func (h *Handler) handleGetButton(w http.ResponseWriter, r *http.Request) {
	state, err := h.widget.Button(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	state, err := h.widget.Click(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, state)
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, widget.ErrButtonNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	log.Error().Err(err).Msg("Share request failed")
	w.WriteHeader(http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	response, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}
