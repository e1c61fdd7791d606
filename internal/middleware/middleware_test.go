package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/GCF14/JJ-Apartments-Property-Management-System/internal/errors"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/logger"
)

func init() {
	logger.Init("test")
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrInvalidReason, "Invalid reason Rent"))
	})
	r.GET("/raw", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: relation \"expenses\" does not exist"))
	})
	r.GET("/aborted", func(c *gin.Context) {
		_ = c.Error(apperrors.ErrInvalidAmount)
		c.Abort()
	}, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
		_ = c.Error(errors.New("late"))
	})

	cases := []struct {
		path    string
		status  int
		code    string
		message string
	}{
		{"/app", http.StatusBadRequest, "INVALID_REASON", "Invalid reason Rent"},
		{"/raw", http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred"},
		{"/aborted", http.StatusBadRequest, "INVALID_AMOUNT", "Amount cannot be ₱0 or below"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.Error.Code != tc.code || body.Error.Message != tc.message {
				t.Errorf("unexpected error body %+v", body.Error)
			}
		})
	}

	t.Run("already_written", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/written", nil))
		if rec.Code != http.StatusTeapot {
			t.Errorf("expected handler status to be kept, got %d", rec.Code)
		}
	})
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	t.Run("generates_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := rec.Header().Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid request id, got %q", id)
		}
		if rec.Body.String() != id {
			t.Errorf("expected context id %q, got %q", id, rec.Body.String())
		}
	})

	t.Run("reuses_incoming_id", func(t *testing.T) {
		incoming := uuid.New().String()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, incoming)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Header().Get(requestIDHeader) != incoming {
			t.Errorf("expected %s, got %s", incoming, rec.Header().Get(requestIDHeader))
		}
	})

	t.Run("replaces_garbage_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, "<script>")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Header().Get(requestIDHeader) == "<script>" {
			t.Error("expected invalid request id to be replaced")
		}
	})
}
