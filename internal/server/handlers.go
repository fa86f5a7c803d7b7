package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/phyten/palettex/internal/analysis"
	"github.com/phyten/palettex/internal/palette"
)

type analyzeRequest struct {
	Colors     []string `json:"colors"`
	Background string   `json:"background"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, palette.HealthStatus{
		Status: "ok",
		Time:   s.opts.Now().Unix(),
		AI:     s.opts.AIEnabled,
	})
}

func (s *Server) handleGeneratePalette(w http.ResponseWriter, r *http.Request) {
	var req palette.Request
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		writeError(w, http.StatusBadRequest, "prompt is required")
		return
	}

	res, err := s.opts.Generator.Generate(r.Context(), prompt)
	if err != nil {
		s.logger.Error("palette.generate.failed", "id", RequestID(r.Context()), "err", err)
		writeError(w, http.StatusInternalServerError, "failed to generate palette")
		return
	}
	writeJSON(w, http.StatusOK, palette.Response{
		Colors:      res.Colors,
		Timestamp:   s.opts.Now().Unix(),
		Description: `palette generated for prompt "` + prompt + `"`,
		Source:      res.Source,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	bg := strings.TrimSpace(req.Background)
	if bg == "" {
		bg = s.opts.Background
	}
	report, err := analysis.Analyze(req.Colors, bg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errors.New("request body too large")
		}
		return errors.New("invalid request body")
	}
	return nil
}

// writeJSON leaves HTML unescaped; the UI escapes on render.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
