package http

import (
	stdctx "context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "econlens/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(stdctx.Context) error { return p.err }

type loader bool

func (l loader) Loaded() bool { return bool(l) }

func get[T any](t *testing.T, d Deps, path string) T {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("%s = %d %s", path, rec.Code, rec.Body.String())
	}
	var env struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return env.Data
}

func TestReady(t *testing.T) {
	cases := []struct {
		name   string
		deps   Deps
		want   string
		states []string
	}{
		{"nothing configured", Deps{}, "ok", []string{StatusSkipped, StatusSkipped, StatusSkipped}},
		{"csv dataset loaded", Deps{Dataset: loader(true)}, "ok", []string{StatusSkipped, StatusSkipped, StatusOK}},
		{"dataset pending", Deps{PG: pinger{}, Dataset: loader(false)}, "degraded", []string{StatusOK, StatusSkipped, StatusPending}},
		{"pg down", Deps{PG: pinger{err: errors.New("refused")}, CH: pinger{}, Dataset: loader(true)}, "fail", []string{StatusFail, StatusOK, StatusOK}},
		{"no ping method", Deps{CH: struct{}{}}, "degraded", []string{StatusSkipped, StatusUnknown, StatusSkipped}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := get[ReadyResponse](t, tc.deps, "/ready")
			if got.Status != tc.want {
				t.Fatalf("status = %q want %q", got.Status, tc.want)
			}
			if len(got.Checks) != len(tc.states) {
				t.Fatalf("checks = %+v", got.Checks)
			}
			for i, c := range got.Checks {
				if c.Status != tc.states[i] {
					t.Fatalf("check %s = %q want %q", c.Name, c.Status, tc.states[i])
				}
			}
		})
	}
}

func TestHealthAndService(t *testing.T) {
	started := time.Now().Add(-time.Minute)
	d := Deps{ServiceName: "econlens-api", StartedAt: started, Backends: []string{"pg"}}

	h := get[HealthResponse](t, d, "/health")
	if !h.OK || h.Service != "econlens-api" {
		t.Fatalf("health = %+v", h)
	}

	s := get[ServiceResponse](t, d, "/service")
	if s.Uptime < 59 || len(s.Backends) != 1 || s.Backends[0] != "pg" {
		t.Fatalf("service = %+v", s)
	}

	s = get[ServiceResponse](t, Deps{StartedAt: started}, "/service")
	if s.Backends == nil {
		t.Fatal("backends should encode as an empty list")
	}

	v := get[map[string]string](t, d, "/version")
	if v["service"] != "econlens-api" || v["version"] == "" {
		t.Fatalf("version = %v", v)
	}
}

func TestDocs(t *testing.T) {
	doc := map[string]any{}
	for _, m := range Docs("/meta") {
		m(doc)
	}
	paths := doc["paths"].(map[string]any)
	for _, p := range []string{"/meta/health", "/meta/ready", "/meta/version", "/meta/service"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing %s", p)
		}
	}
}
