package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"wakachi/internal/cache"
	"wakachi/internal/tokenizer"
)

// maxBodyBytes bounds the request body of /api/v1/tokenize.
const maxBodyBytes = 1 << 20

// Server exposes a Tokenizer over HTTP.
type Server struct {
	tok         *tokenizer.Tokenizer
	cache       *cache.ResultCache
	dictKey     string
	defaultMode tokenizer.Mode
}

// New returns a Server. c may be nil to disable caching.
func New(tok *tokenizer.Tokenizer, c *cache.ResultCache) (*Server, error) {
	mode, err := tok.DefaultMode()
	if err != nil {
		return nil, err
	}
	s := &Server{tok: tok, cache: c, defaultMode: mode}
	if d := tok.Dictionary(); d != nil {
		s.dictKey = d.Header.Description + "@" + strconv.FormatInt(d.Header.CreateTime.Unix(), 10)
	}
	return s, nil
}

type tokenizeRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type tokenizeResponse struct {
	Mode      tokenizer.Mode       `json:"mode"`
	Morphemes []tokenizer.Morpheme `json:"morphemes"`
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/tokenize", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req tokenizeRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
		mode := s.defaultMode
		if req.Mode != "" {
			m, err := tokenizer.ParseMode(req.Mode)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			mode = m
		}

		ctx := r.Context()
		ms, ok, err := s.cache.Get(ctx, s.dictKey, mode, req.Text)
		if err != nil {
			log.Printf("cache get: %v", err)
		}
		if !ok {
			ms, err = s.tok.Tokenize(req.Text, mode, false)
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, tokenizer.ErrPath) {
					status = http.StatusUnprocessableEntity
				}
				writeError(w, status, err.Error())
				return
			}
			if err := s.cache.Set(ctx, s.dictKey, mode, req.Text, ms); err != nil {
				log.Printf("cache set: %v", err)
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tokenizeResponse{Mode: mode, Morphemes: ms})
	})

	mux.HandleFunc("/api/v1/cache", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		if err := s.cache.Purge(r.Context()); err != nil {
			log.Printf("cache purge: %v", err)
			writeError(w, http.StatusInternalServerError, "cache purge failed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	return mux
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
