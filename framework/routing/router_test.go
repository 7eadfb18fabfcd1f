package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hexkit/hexkit/framework/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Verbs(t *testing.T) {
	r := routing.New()
	r.Get("/res", okHandler)
	r.Post("/res", okHandler)
	r.Put("/res/{id}", okHandler)
	r.Patch("/res/{id}", okHandler)
	r.Delete("/res/{id}", okHandler)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/res").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/res").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPut, "/res/1").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPatch, "/res/1").Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodDelete, "/res/1").Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r := routing.New()
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/missing").Code)
}

// ── Groups & Prefixes ────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/ping", okHandler)
	})

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/api/v1/ping").Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, "/ping").Code)
}

func TestRouter_GroupMiddleware(t *testing.T) {
	deny := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}

	r := routing.New()
	r.Get("/open", okHandler)
	r.Group(func(protected *routing.Router) {
		protected.Middleware(deny)
		protected.Get("/closed", okHandler)
	})

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/open").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodGet, "/closed").Code)
}

// ── Params ───────────────────────────────────────────────────────────────────

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(routing.Param(req, "id")))
	})

	rr := do(t, r, http.MethodGet, "/users/42")
	assert.Equal(t, "42", rr.Body.String())
}

func TestRouter_RecovererDefault(t *testing.T) {
	r := routing.New()
	r.Get("/boom", func(w http.ResponseWriter, req *http.Request) {
		panic("handler failure")
	})

	assert.Equal(t, http.StatusInternalServerError, do(t, r, http.MethodGet, "/boom").Code)
}
