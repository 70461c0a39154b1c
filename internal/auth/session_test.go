package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ia-builders-ronald/focus-flow-daily-tasks/internal/auth"

	"github.com/gin-gonic/gin"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	s := auth.NewMemoryStore()
	ctx := context.Background()

	id, err := s.Create(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty session id")
	}
	id2, _ := s.Create(ctx, "u2")
	if id == id2 {
		t.Error("session ids must be unique")
	}

	userID, ok := s.GetUserID(ctx, id)
	if !ok || userID != "u1" {
		t.Errorf("GetUserID = %q, %v", userID, ok)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.GetUserID(ctx, id); ok {
		t.Error("deleted session must not resolve")
	}
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := auth.NewMemoryStore()
	sid, _ := sessions.Create(context.Background(), "u42")

	r := gin.New()
	r.GET("/whoami", auth.RequireSession(sessions), func(c *gin.Context) {
		c.String(http.StatusOK, auth.UserIDFromContext(c))
	})

	// No cookie.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no cookie: got %d", w.Code)
	}

	// Unknown session.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Cookie", auth.SessionCookieName+"=bogus")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bogus session: got %d", w.Code)
	}

	// Valid session resolves the user.
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Cookie", auth.SessionCookieName+"="+sid)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "u42" {
		t.Errorf("valid session: %d %q", w.Code, w.Body.String())
	}
}
