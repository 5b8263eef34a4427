package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"soundclaim/internal/analyzer"
)

// AudioAnalyzer is the pipeline boundary the HTTP layer depends on.
type AudioAnalyzer interface {
	Analyze(ctx context.Context, filePath string) (analyzer.Analysis, error)
}

type AnalyzeHandler struct {
	svc AudioAnalyzer
}

func NewAnalyzeHandler(svc AudioAnalyzer) *AnalyzeHandler {
	return &AnalyzeHandler{svc: svc}
}

// HandleAnalyzeAudio accepts a multipart upload, spools it to a temp
// file for the recognition client, and encodes the analysis. Both the
// recognized and unrecognized outcomes are 200s; the success field
// carries the distinction.
func (h *AnalyzeHandler) HandleAnalyzeAudio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "clip-*"+suffix(header.Filename))
	if err != nil {
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}
	if err := tmp.Close(); err != nil {
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
		return
	}

	analysis, err := h.svc.Analyze(r.Context(), tmpPath)
	if err != nil {
		http.Error(w, "recognition provider unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(analysis)
}

// suffix keeps the upload's extension on the temp file so the provider
// can sniff the container. Path separators are stripped: the filename
// comes from the client.
func suffix(filename string) string {
	ext := filepath.Ext(filepath.Base(filename))
	if strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
