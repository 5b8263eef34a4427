package server

import (
	"net/http"

	"soundclaim/internal/handler"
	"soundclaim/internal/middleware"
)

func NewMux(analyzeHandler *handler.AnalyzeHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", handler.HandleHealth)
	mux.HandleFunc("/analyze-audio", analyzeHandler.HandleAnalyzeAudio)

	return middleware.CORS(mux)
}
