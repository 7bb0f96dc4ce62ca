// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotel_catalog/internal/app"
	"hotel_catalog/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.ConversionService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/conversions", h.convert)
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{code}", h.getHotel)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		// Log but don't fail the whole response; return empty ETag and best-effort body.
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// convert runs one raw extraction record through the engine synchronously and
// returns the canonical catalog record without persisting it.
func (h *Handlers) convert(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawHotel
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}

	hotel, err := h.C.Convert(raw)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeProblem(w, http.StatusUnprocessableEntity, "Invalid record", err.Error())
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Conversion failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(hotel); err != nil {
		log.Error().Err(err).Msg("failed to write conversion body")
	}
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	resp, err := h.Q.GetHotel(r.Context(), code)
	if err != nil {
		writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
		return
	}

	etag, body := calcETagAndBody(resp)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag) // include ETag on 304
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := domain.HotelsQuery{Limit: 50}
	if ls := r.URL.Query().Get("limit"); ls != "" {
		l, err := strconv.Atoi(ls)
		if err != nil || l <= 0 || l > 200 {
			writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 200")
			return
		}
		q.Limit = l
	}
	if s := r.URL.Query().Get("q"); s != "" {
		q.Q = &s
	}
	if s := r.URL.Query().Get("type"); s != "" {
		q.Type = &s
	}

	out, err := h.Q.ListHotels(r.Context(), q)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "List failed", err.Error())
		return
	}

	etag, body := calcETagAndBody(out)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write listHotels body")
	}
}
