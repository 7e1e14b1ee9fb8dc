package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/captions/pkg/caption"
	"github.com/umputun/captions/pkg/domain"
	"github.com/umputun/captions/pkg/repository"
)

const (
	minTopicLength   = 3
	defaultListLimit = 20
	maxCollections   = 10
)

var errNoDatabase = errors.New("database not available")

// generateRequest is the body of POST /api/generate, omitted fields keep defaults
type generateRequest struct {
	Topic           string `json:"topic"`
	Tone            string `json:"tone"`
	Platform        string `json:"platform"`
	Length          string `json:"length"`
	IncludeEmojis   bool   `json:"include_emojis"`
	IncludeHashtags bool   `json:"include_hashtags"`
	Variants        int    `json:"variants"`
}

// generateResponse is the result of POST /api/generate
type generateResponse struct {
	Variants []string `json:"variants"`
	SavedID  *string  `json:"saved_id"`
}

// rootHandler returns liveness message
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]string{"message": "Caption Generator Backend is running"})
}

// helloHandler returns static greeting for clients checking the api prefix
func (s *Server) helloHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

// optionsHandler returns known tones, platforms and lengths with the defaults
func (s *Server) optionsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{
		"tones":     domain.Tones,
		"platforms": caption.Platforms(),
		"lengths":   domain.Lengths,
		"emojis":    caption.AllEmojis(),
		"defaults": map[string]any{
			"tone":     domain.DefaultTone,
			"platform": "instagram",
			"length":   domain.DefaultLength,
			"variants": s.config.GetGeneratorConfig().DefaultVariants,
		},
		"max_variants": caption.MaxVariants,
	})
}

// schemaHandler returns JSON schema of stored caption records
func (s *Server) schemaHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]any{"caption": s.schema})
}

// generateHandler builds caption variants for the requested topic
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	req := generateRequest{
		Tone:            string(domain.DefaultTone),
		Platform:        "instagram",
		Length:          string(domain.DefaultLength),
		IncludeEmojis:   true,
		IncludeHashtags: true,
		Variants:        s.config.GetGeneratorConfig().DefaultVariants,
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		renderError(w, r, errors.New("topic is required"), http.StatusBadRequest)
		return
	}
	if len([]rune(topic)) < minTopicLength {
		renderError(w, r, fmt.Errorf("topic must be at least %d characters", minTopicLength), http.StatusBadRequest)
		return
	}
	if req.Variants < caption.MinVariants || req.Variants > caption.MaxVariants {
		renderError(w, r, fmt.Errorf("variants must be between %d and %d", caption.MinVariants, caption.MaxVariants),
			http.StatusBadRequest)
		return
	}

	res, err := s.generator.Generate(r.Context(), domain.GenerationRequest{
		Topic:           req.Topic,
		Tone:            req.Tone,
		Platform:        req.Platform,
		Length:          req.Length,
		IncludeEmojis:   req.IncludeEmojis,
		IncludeHashtags: req.IncludeHashtags,
		Variants:        req.Variants,
	})
	if err != nil {
		if errors.Is(err, caption.ErrInvalidInput) {
			renderError(w, r, err, http.StatusBadRequest)
			return
		}
		log.Printf("[ERROR] failed to generate captions: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := generateResponse{Variants: res.Variants}
	if res.SavedID != "" {
		resp.SavedID = &res.SavedID
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// listCaptionsHandler returns most recent generation records
func (s *Server) listCaptionsHandler(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			renderError(w, r, fmt.Errorf("invalid limit %q", limitStr), http.StatusBadRequest)
			return
		}
		limit = l
	}
	if maxLimit := s.config.GetGeneratorConfig().HistoryLimit; maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	if s.db == nil {
		renderError(w, r, errNoDatabase, http.StatusInternalServerError)
		return
	}

	gens, err := s.db.ListGenerations(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to list captions: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	items := make([]captionRecord, 0, len(gens))
	for _, g := range gens {
		items = append(items, toCaptionRecord(g))
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"items": items})
}

// getCaptionHandler returns a single generation record, 404 for unknown or malformed id
func (s *Server) getCaptionHandler(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		renderError(w, r, errNoDatabase, http.StatusInternalServerError)
		return
	}

	gen, err := s.db.GetGeneration(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrMalformedID) {
			renderError(w, r, err, http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get caption: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, toCaptionRecord(*gen))
}

// favoriteHandler marks a stored generation as favorite
func (s *Server) favoriteHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	index := 0
	if indexStr := r.URL.Query().Get("index"); indexStr != "" {
		i, err := strconv.Atoi(indexStr)
		if err != nil || i < 0 {
			renderError(w, r, fmt.Errorf("invalid index %q", indexStr), http.StatusBadRequest)
			return
		}
		index = i
	}

	if s.db == nil {
		renderError(w, r, errNoDatabase, http.StatusInternalServerError)
		return
	}

	if err := s.db.MarkFavorite(r.Context(), id, index); err != nil {
		log.Printf("[ERROR] failed to mark %s as favorite: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}

// diagnosticsHandler reports storage availability
func (s *Server) diagnosticsHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "running",
		"version":           s.version,
		"database":          "not available",
		"database_name":     nil,
		"connection_status": "not connected",
		"collections":       []string{},
		"database_url_env":  envStatus("DATABASE_URL"),
		"database_name_env": envStatus("DATABASE_NAME"),
	}

	if s.db != nil {
		resp["database"] = "available"
		resp["database_name"] = s.db.Name()

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		if err := s.db.Ping(ctx); err != nil {
			resp["database"] = "error: " + truncate(err.Error(), 50)
		} else {
			resp["connection_status"] = "connected"
			collections, err := s.db.Collections(ctx, maxCollections)
			if err != nil {
				resp["database"] = "connected but error: " + truncate(err.Error(), 50)
			} else {
				resp["collections"] = collections
				resp["database"] = "connected & working"
			}
		}
	}

	renderJSON(w, r, http.StatusOK, resp)
}

func envStatus(name string) string {
	if os.Getenv(name) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}
