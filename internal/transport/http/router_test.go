package httptransport

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"veristub/internal/engine"
	"veristub/pkg/testutil"
)

func TestRouterWiring(t *testing.T) {
	testutil.Given(t, "the HTTP router", func(t *testing.T) {
		eng := engine.New(engine.Config{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
		router := NewRouter(NewHandler(eng, slog.New(slog.NewTextHandler(io.Discard, nil))))

		testutil.When(t, "calling an unknown path", func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/nope", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			testutil.Then(t, "it should respond with not found", func(t *testing.T) {
				if rec.Code != http.StatusNotFound {
					t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
				}
			})
		})

		testutil.When(t, "using the wrong method on a known path", func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/inquiries", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			testutil.Then(t, "it should respond with method not allowed", func(t *testing.T) {
				if rec.Code != http.StatusMethodNotAllowed {
					t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
				}
			})
		})

		testutil.When(t, "scraping the metrics endpoint", func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			testutil.Then(t, "it should respond with ok", func(t *testing.T) {
				if rec.Code != http.StatusOK {
					t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
				}
			})
		})
	})
}
