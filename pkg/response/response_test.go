package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/test", handler)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Success(c, gin.H{"value": 42})
	})

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusOK)
	}

	resp := decodeBody(t, w)
	if resp.Code != 0 {
		t.Errorf("Code = %d, expected 0", resp.Code)
	}
	if resp.Message != "ok" {
		t.Errorf("Message = %q, expected %q", resp.Message, "ok")
	}
	if resp.Data == nil {
		t.Error("Data should not be nil")
	}
}

func TestCreated(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Created(c, gin.H{"id": 1})
	})

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusCreated)
	}

	resp := decodeBody(t, w)
	if resp.Message != "created" {
		t.Errorf("Message = %q, expected %q", resp.Message, "created")
	}
}

func TestError_AppError(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"bad request", NewBadRequest("invalid input"), http.StatusBadRequest},
		{"unauthorized", NewUnauthorized("not logged in"), http.StatusUnauthorized},
		{"forbidden", NewForbidden("no access"), http.StatusForbidden},
		{"not found", NewNotFound("missing"), http.StatusNotFound},
		{"conflict", NewConflict("duplicate"), http.StatusConflict},
		{"server error", NewServerError("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(func(c *gin.Context) {
				Error(c, tt.err)
			})

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, expected %d", w.Code, tt.wantStatus)
			}

			resp := decodeBody(t, w)
			if resp.Code != tt.err.Code {
				t.Errorf("Code = %d, expected %d", resp.Code, tt.err.Code)
			}
			if resp.Message != tt.err.Message {
				t.Errorf("Message = %q, expected %q", resp.Message, tt.err.Message)
			}
		})
	}
}

func TestError_GenericError(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Error(c, errGeneric)
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected %d", w.Code, http.StatusInternalServerError)
	}

	resp := decodeBody(t, w)
	if resp.Code != 500 {
		t.Errorf("Code = %d, expected 500", resp.Code)
	}
}

var errGeneric = &genericError{}

type genericError struct{}

func (e *genericError) Error() string { return "something broke" }

func TestAppError_ErrorInterface(t *testing.T) {
	err := NewNotFound("project not found")
	if err.Error() != "project not found" {
		t.Errorf("Error() = %q, expected %q", err.Error(), "project not found")
	}
}

func TestConvenienceFunctions(t *testing.T) {
	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
	}{
		{"BadRequest", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest},
		{"Unauthorized", func(c *gin.Context) { Unauthorized(c, "no") }, http.StatusUnauthorized},
		{"Forbidden", func(c *gin.Context) { Forbidden(c, "denied") }, http.StatusForbidden},
		{"NotFound", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound},
		{"Conflict", func(c *gin.Context) { Conflict(c, "dup") }, http.StatusConflict},
		{"ServerError", func(c *gin.Context) { ServerError(c, "oops") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(tt.handler)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, expected %d", w.Code, tt.wantStatus)
			}
		})
	}
}
