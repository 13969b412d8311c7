package net_test

import (
	"net/http"
	"testing"

	perr "econlens/internal/platform/errors"
	pnet "econlens/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"x": 1}, "req-1")
	if status != http.StatusOK || w.StatusCode != http.StatusOK || w.Status != "OK" {
		t.Fatalf("status mismatch: %d %+v", status, w)
	}
	if w.RequestID != "req-1" {
		t.Fatalf("req id %q", w.RequestID)
	}
	if got, ok := w.Data.(map[string]any)["x"]; !ok || got != 1 {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestCreated(t *testing.T) {
	status, w := pnet.Created([]int{1, 2, 3}, "req-2")
	if status != http.StatusCreated || w.Status != http.StatusText(http.StatusCreated) {
		t.Fatalf("status mismatch: %d %+v", status, w)
	}
	if got := w.Data.([]int); len(got) != 3 {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestError_NilFallsBackToOK(t *testing.T) {
	status, w := pnet.Error(nil, "req-4")
	if status != http.StatusOK || w.Error != "" || w.Code != 0 {
		t.Fatalf("expected plain OK, got %d %+v", status, w)
	}
}

func TestError_SchemaCarriesField(t *testing.T) {
	err := perr.WithField(perr.Schemaf("indicator %q not in catalog", "Bogus"), "indicator")

	status, w := pnet.Error(err, "req-5")

	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status %d want 422", status)
	}
	if w.Code != perr.ErrorCodeSchema {
		t.Fatalf("code %v want %v", w.Code, perr.ErrorCodeSchema)
	}
	if w.Field != "indicator" {
		t.Fatalf("field %q want indicator", w.Field)
	}
	if w.Error == "" || w.Data != nil {
		t.Fatalf("unexpected body: %+v", w)
	}
}
