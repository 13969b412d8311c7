package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "econlens/internal/platform/errors"
	pnet "econlens/internal/platform/net"
	phttp "econlens/internal/platform/net/http"
)

func reqWithID(method, path, body, rid string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req.WithContext(pnet.WithRequest(req.Context(), rid, ""))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, reqWithID(http.MethodGet, "/x", "", "rid-1"), map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("code %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type %q", ct)
	}
	env := decode(t, rec)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		field  string
	}{
		{name: "schema", err: perr.WithField(perr.Schemaf("unknown indicator"), "indicator"), status: 422, code: perr.ErrorCodeSchema, field: "indicator"},
		{name: "invalid", err: perr.InvalidArgf("bad range"), status: 422, code: perr.ErrorCodeInvalidArgument},
		{name: "foreign", err: errors.New("boom"), status: 500, code: perr.ErrorCodeUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			phttp.RespondError(rec, reqWithID(http.MethodGet, "/x", "", "rid-2"), tc.err)
			if rec.Code != tc.status {
				t.Fatalf("code %d want %d", rec.Code, tc.status)
			}
			env := decode(t, rec)
			if env.Code != tc.code || env.Field != tc.field || env.Error == "" || env.RequestID != "rid-2" {
				t.Fatalf("bad envelope: %+v", env)
			}
		})
	}
}

func TestRespondFile(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondFile(rec, phttp.File{Name: "panels.xlsx", ContentType: "application/vnd.ms-excel", Body: []byte("abc")})
	if rec.Code != http.StatusOK || rec.Body.String() != "abc" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="panels.xlsx"` {
		t.Fatalf("disposition %q", cd)
	}
	if rec.Header().Get("Content-Length") != "3" {
		t.Fatalf("content length %q", rec.Header().Get("Content-Length"))
	}

	rec2 := httptest.NewRecorder()
	phttp.RespondFile(rec2, phttp.File{Body: []byte{1}})
	if rec2.Header().Get("Content-Type") != "application/octet-stream" || rec2.Header().Get("Content-Disposition") != "" {
		t.Fatalf("defaults not applied: %v", rec2.Header())
	}
}

func TestHandle_ResponseVariants(t *testing.T) {
	t.Run("ok with header", func(t *testing.T) {
		h := phttp.Handle(func(*http.Request) phttp.Response {
			r := phttp.OK([]int{1})
			r.Header = http.Header{"X-Extra": {"1"}}
			return r
		})
		rec := httptest.NewRecorder()
		h(rec, reqWithID(http.MethodGet, "/", "", "rid"))
		if rec.Code != 200 || rec.Header().Get("X-Extra") != "1" {
			t.Fatalf("unexpected %d %v", rec.Code, rec.Header())
		}
	})

	t.Run("error body", func(t *testing.T) {
		h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Error(perr.NotFoundf("nope")) })
		rec := httptest.NewRecorder()
		h(rec, reqWithID(http.MethodGet, "/", "", "rid"))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("code %d", rec.Code)
		}
	})

	t.Run("attachment", func(t *testing.T) {
		h := phttp.Handle(func(*http.Request) phttp.Response {
			return phttp.Attachment(phttp.File{ContentType: "image/png", Body: []byte("png")})
		})
		rec := httptest.NewRecorder()
		h(rec, reqWithID(http.MethodGet, "/", "", "rid"))
		if rec.Header().Get("Content-Type") != "image/png" || rec.Body.String() != "png" {
			t.Fatalf("unexpected %v %q", rec.Header(), rec.Body.String())
		}
	})

	t.Run("zero status defaults to 200", func(t *testing.T) {
		h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Response{Body: "x"} })
		rec := httptest.NewRecorder()
		h(rec, reqWithID(http.MethodGet, "/", "", "rid"))
		if rec.Code != 200 {
			t.Fatalf("code %d", rec.Code)
		}
	})
}
