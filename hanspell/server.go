package hanspell

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Alfex4936/hanspell/internal/model"
	"github.com/Alfex4936/hanspell/internal/util"
)

// maxRequestBody caps the JSON body of /v1/check.
const maxRequestBody = 4 << 20

// CheckRequest is the HTTP request body for /v1/check
type CheckRequest struct {
	Text    string `json:"text"`              // 검사할 텍스트 (필수)
	Service string `json:"service,omitempty"` // pnu | daum | all (기본: 서버 설정)
	Timeout int    `json:"timeout,omitempty"` // 전체 타임아웃 (초)
}

// Server exposes a Checker over HTTP.
type Server struct {
	Checker *Checker
	Service model.Service // used when a request names none
	Logger  *slog.Logger
}

// Handler returns the routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/check", s.CheckHandler)
	mux.HandleFunc("/health", HealthHandler)
	return mux
}

// CheckHandler handles POST /v1/check requests
func (s *Server) CheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	var req CheckRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	svc := s.Service
	if req.Service != "" {
		var err error
		if svc, err = model.ParseService(req.Service); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	ctx := r.Context()
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.Timeout)*time.Second)
		defer cancel()
	}

	start := time.Now()
	res, err := s.Checker.Check(ctx, req.Text, svc)
	if err != nil {
		status := statusOf(err)
		s.logger().Warn("hanspell: check failed", "service", svc, "status", status, "err", err)
		http.Error(w, err.Error(), status)
		return
	}
	out := Summarize(req.Text, res)
	s.logger().Info("hanspell: checked", "service", svc, "chars", out.CharCount, "errors", out.ErrorCount, "failed", out.Failed, "took", time.Since(start))

	// JSON 응답 (HTML 이스케이프 비활성화)
	w.Header().Set("Content-Type", "application/json")
	if err := util.WriteJSON(w, out, true); err != nil {
		s.logger().Error("hanspell: write response", "err", err)
	}
}

// HealthHandler handles GET /health requests
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "hanspell",
	})
}

func statusOf(err error) int {
	var se *ServiceError
	switch {
	case errors.Is(err, ErrNoDocument):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &se):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
