package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"delta33_backoffice/internal/adapter/http/dto/response"
	"delta33_backoffice/internal/adapter/persistence/session"
	"delta33_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newAuthRouter() *gin.Engine {
	uc := usecase.NewAuthUseCase("admin", "1234", session.NewMemoryStore(time.Hour))
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/logout", h.Logout)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		r := newAuthRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"username":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong credentials are a flat 401", func(t *testing.T) {
		r := newAuthRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"username":"admin","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid credentials issue a token", func(t *testing.T) {
		r := newAuthRouter()

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"username":"admin","password":"1234"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got response.LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if got.Token == "" {
			t.Fatal("expected a token")
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer never-issued")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mk := func(header, value string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			c.Request.Header.Set(header, value)
		}
		return c
	}

	if got := SessionToken(mk("Authorization", "Bearer abc-123")); got != "abc-123" {
		t.Fatalf("expected abc-123, got %q", got)
	}
	if got := SessionToken(mk("X-Session-Token", "xyz")); got != "xyz" {
		t.Fatalf("expected xyz, got %q", got)
	}
	if got := SessionToken(mk("", "")); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}
}
