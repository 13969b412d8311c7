package modkit

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"econlens/internal/modkit/httpkit"
	phttp "econlens/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBuild_Defaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || b.SwaggerOn || len(b.Mw) != 0 {
		t.Fatalf("zero build = %+v", b)
	}
}

func TestBuild_LaterOptionsWin(t *testing.T) {
	type ports struct{ Ready bool }

	b := Build(
		WithName("indicators"),
		WithPrefix("/indicators"),
		WithSwagger(true),
		WithPorts(ports{Ready: true}),
		WithPrefix("/data"),
		WithSwagger(false),
	)
	if b.Name != "indicators" || b.Prefix != "/data" || b.SwaggerOn {
		t.Fatalf("built = %+v", b)
	}
	if got, ok := b.Ports.(ports); !ok || !got.Ready {
		t.Fatalf("ports = %#v", b.Ports)
	}
}

func TestBuild_MiddlewaresAccumulateAndAreCopied(t *testing.T) {
	fnPtr := func(f func(http.Handler) http.Handler) uintptr { return reflect.ValueOf(f).Pointer() }

	mwA := func(next http.Handler) http.Handler { return next }
	mwB := func(next http.Handler) http.Handler { return next }
	mid := []func(http.Handler) http.Handler{mwA, mwB}

	b := Build(WithMiddlewares(mid...), WithMiddlewares(mwA))
	if len(b.Mw) != 3 || fnPtr(b.Mw[0]) != fnPtr(mwA) || fnPtr(b.Mw[1]) != fnPtr(mwB) {
		t.Fatalf("mw = %d", len(b.Mw))
	}

	mid[0] = mwB
	if fnPtr(b.Mw[0]) != fnPtr(mwA) {
		t.Fatal("Built.Mw shares the caller's slice")
	}
}

func TestBuilt_Mount(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				w.Header().Set("X-Module", "meta")
				next.ServeHTTP(w, r)
			})
		}
	}

	r := phttp.AdaptChi(chi.NewRouter())
	Build(WithPrefix("/meta"), WithMiddlewares(tag("a"), tag("b"))).Mount(r, func(rr httpkit.Router) {
		httpkit.Get(rr, "/health", func(*http.Request) (any, error) { return map[string]bool{"ok": true}, nil })
	})
	Build(WithPrefix("/indicators")).Mount(r, nil)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("X-Module") != "meta" {
		t.Fatalf("status=%d header=%q", rec.Code, rec.Header().Get("X-Module"))
	}
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Fatalf("middleware order = %v", order)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/indicators/countries", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("empty module status = %d", rec.Code)
	}
}
