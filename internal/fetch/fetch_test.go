package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<html><body><table class="case_details_table"></table></body></html>`))
	}))
	defer srv.Close()

	t.Run("returns the raw body", func(t *testing.T) {
		body, err := Page(context.Background(), srv.URL+"/case", DefaultOptions())
		if err != nil {
			t.Fatalf("Page() error = %v", err)
		}
		if !strings.Contains(body, "case_details_table") {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("error status is surfaced", func(t *testing.T) {
		if _, err := Page(context.Background(), srv.URL+"/missing", DefaultOptions()); err == nil {
			t.Fatal("expected error for 404 response")
		}
	})

	t.Run("zero options get defaults", func(t *testing.T) {
		if _, err := Page(context.Background(), srv.URL+"/case", Options{}); err != nil {
			t.Fatalf("Page() error = %v", err)
		}
	})
}
