// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"gymfinder/internal/app"
	"gymfinder/internal/domain"
)

type Handlers struct {
	D *app.DiscoveryService
	Q *app.QueryService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/gyms", h.searchGyms)
	s.mux.Get("/v1/gyms/{id}", h.getGym)
	s.mux.Get("/v1/cities", h.listCities)
	s.mux.Get("/v1/countries", h.listCountries)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeServiceError maps the error taxonomy onto HTTP statuses: malformed
// request 400, unknown venue 404, collaborator failure 502.
func writeServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeProblem(w, http.StatusBadRequest, "Invalid request", ve.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "gym not found")
		return
	}
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		log.Error().Err(err).Msg("catalog failure")
		writeProblem(w, http.StatusBadGateway, "Upstream failure", "catalog unavailable")
		return
	}
	log.Error().Err(err).Msg("unexpected failure")
	writeProblem(w, http.StatusInternalServerError, "Internal error", "")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write JSON body")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write body")
	}
}

// ---- query parsing ----

func queryFloat(r *http.Request, key string) (*float64, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &domain.ValidationError{Field: key, Reason: "must be a number"}
	}
	return &f, nil
}

func queryInt(r *http.Request, key string) (int, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &domain.ValidationError{Field: key, Reason: "must be an integer"}
	}
	return n, nil
}

func queryStrPtr(r *http.Request, key string) *string {
	if s := r.URL.Query().Get(key); s != "" {
		return &s
	}
	return nil
}

func parseSearchRequest(r *http.Request) (domain.SearchRequest, error) {
	var req domain.SearchRequest
	var err error

	if req.Lat, err = queryFloat(r, "lat"); err != nil {
		return req, err
	}
	if req.Lng, err = queryFloat(r, "lng"); err != nil {
		return req, err
	}
	if radius, err := queryFloat(r, "radius"); err != nil {
		return req, err
	} else if radius != nil {
		req.RadiusKm = *radius
	}
	if req.Page, err = queryInt(r, "page"); err != nil {
		return req, err
	}
	if req.PageSize, err = queryInt(r, "page_size"); err != nil {
		return req, err
	}

	req.City = queryStrPtr(r, "city")
	req.Keyword = queryStrPtr(r, "keyword")
	req.Type = queryStrPtr(r, "type")
	req.Sort = domain.SortKey(r.URL.Query().Get("sort"))
	if ps := r.URL.Query().Get("programs"); ps != "" {
		for _, p := range strings.Split(ps, ",") {
			if p = strings.TrimSpace(p); p != "" {
				req.Programs = append(req.Programs, p)
			}
		}
	}
	return req, nil
}

// ---- handlers ----

func (h *Handlers) searchGyms(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	res, err := h.D.Discover(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, res)
}

func (h *Handlers) getGym(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	lat, ferr := queryFloat(r, "lat")
	if ferr != nil {
		writeServiceError(w, ferr)
		return
	}
	lng, ferr := queryFloat(r, "lng")
	if ferr != nil {
		writeServiceError(w, ferr)
		return
	}

	gym, err := h.D.GetGym(r.Context(), id, lat, lng)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, gym)
}

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListCities(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCacheable(w, r, out)
}

func (h *Handlers) listCountries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.ListCountries(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeCacheable(w, r, out)
}
