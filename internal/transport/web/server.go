// Package web serves the classifier over HTTP: a browser form on the root
// path and a JSON API under /api/v1.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/thehickorykampala/hickory/internal/domain"
	healthuc "github.com/thehickorykampala/hickory/internal/usecase/health"
	predictuc "github.com/thehickorykampala/hickory/internal/usecase/predict"
)

// maxTextLen caps classify input. The corpus snippets are all far shorter;
// anything bigger is abuse, not a menu description.
const maxTextLen = 10000

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server handles the form UI and the JSON API.
type Server struct {
	predict       *predictuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates the HTTP server.
func NewServer(predict *predictuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		predict: predict,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFitted, http.StatusServiceUnavailable, "model_unavailable"),
		sentinelHandler(domain.ErrArtifactMismatch, http.StatusServiceUnavailable, "model_unavailable"),
		sentinelHandler(domain.ErrArtifactMissing, http.StatusServiceUnavailable, "model_unavailable"),
		sentinelHandler(domain.ErrDimMismatch, http.StatusInternalServerError, "internal_error"),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/", s.renderForm)
	r.Post("/", s.classifyForm)
	r.Post("/api/v1/classify", s.classifyJSON)
	r.Get("/api/v1/labels", s.listLabels)
	r.Get("/health", s.healthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Category      string             `json:"category"`
	Description   string             `json:"description"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities"`
}

type labelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type labelsResponse struct {
	Labels []labelInfo `json:"labels"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// classifyJSON handles POST /api/v1/classify.
func (s *Server) classifyJSON(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "Invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "validation_failed", "text is required")
		return
	}
	if len(req.Text) > maxTextLen {
		writeError(w, http.StatusBadRequest, "validation_failed",
			fmt.Sprintf("text exceeds %d bytes", maxTextLen))
		return
	}

	pred, err := s.predict.Predict(r.Context(), req.Text)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, predictionToResponse(pred))
}

// listLabels handles GET /api/v1/labels.
func (s *Server) listLabels(w http.ResponseWriter, r *http.Request) {
	labels := s.predict.Labels()
	resp := labelsResponse{Labels: make([]labelInfo, len(labels))}
	for i, l := range labels {
		resp.Labels[i] = labelInfo{Name: l.String(), Description: l.Description()}
	}
	writeJSON(w, http.StatusOK, resp)
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// renderForm handles GET /.
func (s *Server) renderForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, pageData{Examples: exampleTexts})
}

// classifyForm handles POST / from the browser form.
func (s *Server) classifyForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("text")
	data := pageData{Examples: exampleTexts, Input: text}

	if strings.TrimSpace(text) == "" {
		data.Error = "Please enter some text to classify."
		s.renderPage(w, data)
		return
	}
	if len(text) > maxTextLen {
		data.Error = fmt.Sprintf("Text exceeds %d characters.", maxTextLen)
		s.renderPage(w, data)
		return
	}

	pred, err := s.predict.Predict(r.Context(), text)
	if err != nil {
		s.logger.Error("classify failed", zap.Error(err))
		data.Error = "Classification is unavailable right now."
		s.renderPage(w, data)
		return
	}

	data.Result = resultData(pred)
	s.renderPage(w, data)
}

func (s *Server) renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}

func predictionToResponse(pred domain.Prediction) classifyResponse {
	probs := make(map[string]float64, len(pred.Probabilities))
	for l, p := range pred.Probabilities {
		probs[l.String()] = p
	}
	return classifyResponse{
		Category:      pred.Category.String(),
		Description:   pred.Category.Description(),
		Confidence:    pred.Confidence,
		Probabilities: probs,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFitted,
		domain.ErrArtifactMismatch,
		domain.ErrArtifactMissing,
		domain.ErrDimMismatch,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
}
