package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examscheduler/internal/app/models/dto"
	"github.com/yigit/examscheduler/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantMsg    string
	}{
		{"not found", apperrors.ErrExamNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "exam not found"},
		{"already exists", apperrors.ErrExamAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, ""},
		{"validation", fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
		{"bad request", fmt.Errorf("%w: missing parameter", apperrors.ErrBadRequest), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/exams/1", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success || resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Fatalf("unexpected envelope %+v", resp)
			}
			if tt.wantMsg != "" && resp.Error.Message != tt.wantMsg {
				t.Fatalf("expected message %q, got %q", tt.wantMsg, resp.Error.Message)
			}
			if tt.wantStatus == http.StatusInternalServerError && resp.Error.Details != nil {
				t.Fatal("internal errors must not leak details")
			}
		})
	}
}

func TestHandleAPIErrorReportsExamReason(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantReason string
	}{
		{"not found", fmt.Errorf("lookup: %w", apperrors.ErrExamNotFound), "EXAM_NOT_FOUND"},
		{"already exists", apperrors.ErrExamAlreadyExists, "EXAM_EXISTS"},
		{"plain sentinel", apperrors.ErrResourceNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/exams/1", nil)

			HandleAPIError(c, tt.err)

			var resp struct {
				Error struct {
					Severity dto.ErrorSeverity `json:"severity"`
					Details  map[string]string `json:"details"`
				} `json:"error"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Error.Severity != dto.ErrorSeverityWarning {
				t.Errorf("expected warning severity, got %q", resp.Error.Severity)
			}
			if got := resp.Error.Details["reason"]; got != tt.wantReason {
				t.Errorf("expected reason %q, got %q", tt.wantReason, got)
			}
		})
	}
}

func TestRespondBindingErrorNamesSingleField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	type body struct {
		ModuleName string `json:"moduleName" binding:"required"`
		Title      string `json:"title"`
	}
	router := gin.New()
	router.POST("/bind", func(c *gin.Context) {
		var b body
		if err := c.ShouldBindJSON(&b); err != nil {
			RespondBindingError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/bind", strings.NewReader(`{"title":"Final"}`)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Field != "moduleName" {
		t.Fatalf("expected field moduleName, got %q", resp.Error.Field)
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Header().Get(RequestIDHeader) == "" {
		t.Fatal("expected a generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Fatalf("expected incoming request id to be echoed, got %q", got)
	}
}
