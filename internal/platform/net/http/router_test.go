package http

import (
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	kit "github.com/kentzhang-geek/zoekt.nvim/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestAdaptChiRoutesAndSubRoutes(t *testing.T) {
	t.Parallel()

	m := chi.NewRouter()
	r := AdaptChi(m)

	r.Get("/healthz", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/api", func(sub Router) {
		sub.Post("/search", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			w.WriteHeader(stdhttp.StatusOK)
			_, _ = w.Write([]byte(`{"Result":{"Files":null}}`))
		})
	})

	srv := httptest.NewServer(r.Mux())
	defer srv.Close()

	resp, err := stdhttp.Get(srv.URL + "/healthz")
	kit.MustNoErr(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "ok" {
		t.Fatalf("healthz body = %q", body)
	}

	resp, err = stdhttp.Post(srv.URL+"/api/search", "application/json", nil)
	kit.MustNoErr(t, err)
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	kit.MustContain(t, string(body), `"Result"`)

	// wrong method on a mounted route
	resp, err = stdhttp.Get(srv.URL + "/api/search")
	kit.MustNoErr(t, err)
	_ = resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("GET on POST route = %d", resp.StatusCode)
	}
}
