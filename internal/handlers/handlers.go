package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/pep299/text-summarizer/internal/response"
	"github.com/pep299/text-summarizer/internal/summarizer"
)

// SummaryRequest is the POST /summaries request body
type SummaryRequest struct {
	Text string `json:"text"`
}

// SummaryResponse is the POST /summaries success body
type SummaryResponse struct {
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}

// rootHandler reports service identity
func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": ServiceName,
		"version": ServiceVersion,
	})
}

// healthHandler provides health check endpoint for monitoring
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// createSummaryHandler extracts the first words of the posted text
func (s *Server) createSummaryHandler(w http.ResponseWriter, r *http.Request) {
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	summary, err := s.summarizer.Summarize(req.Text)
	if err != nil {
		var validationErr *summarizer.ValidationError
		if errors.As(err, &validationErr) {
			response.WriteValidationError(w, validationErr.Message)
			return
		}
		log.Printf("Error summarizing text: %v", err)
		response.WriteInternalError(w, "Error processing text")
		return
	}

	// Timestamp is response-generation time, captured after summarization
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	response.WriteJSON(w, http.StatusOK, SummaryResponse{
		Summary:   summary,
		Timestamp: timestamp,
	})
}

// statsHandler reports in-process request counters
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, s.stats.Snapshot())
}
