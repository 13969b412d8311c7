package bind

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "econlens/internal/platform/errors"
	"econlens/internal/platform/testkit"
)

type selection struct {
	Entities []string `json:"entities" validate:"min=1,dive,notblank"`
	Start    int      `json:"start" validate:"min=1900"`
	End      int      `json:"end" validate:"gtefield=Start"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_Success(t *testing.T) {
	got, err := ParseJSON[selection](post(`{"entities":["Brazil","Worldwide"],"start":2000,"end":2023}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Entities) != 2 || got.Start != 2000 || got.End != 2023 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantCode  perr.ErrorCode
		wantField string
		wantMsg   string
	}{
		{name: "empty body", body: "", wantCode: perr.ErrorCodeJSON},
		{name: "broken json", body: "{", wantCode: perr.ErrorCodeJSON},
		{name: "unknown field", body: `{"entities":["Brazil"],"start":2000,"end":2001,"x":1}`, wantCode: perr.ErrorCodeJSON},
		{name: "trailing data", body: `{"entities":["Brazil"],"start":2000,"end":2001} {}`, wantCode: perr.ErrorCodeJSON},
		{name: "no entities", body: `{"entities":[],"start":2000,"end":2001}`, wantCode: perr.ErrorCodeValidation, wantField: "entities", wantMsg: "entities must be at least 1"},
		{name: "blank entity", body: `{"entities":["  "],"start":2000,"end":2001}`, wantCode: perr.ErrorCodeValidation, wantMsg: "must not be blank"},
		{name: "year too small", body: `{"entities":["Brazil"],"start":10,"end":2001}`, wantCode: perr.ErrorCodeValidation, wantField: "start", wantMsg: "start must be at least 1900"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON[selection](post(tc.body))
			if perr.CodeOf(err) != tc.wantCode {
				t.Fatalf("code %v want %v (%v)", perr.CodeOf(err), tc.wantCode, err)
			}
			if tc.wantField != "" {
				e, _ := perr.As(err)
				if e.Field() != tc.wantField {
					t.Fatalf("field %q want %q", e.Field(), tc.wantField)
				}
			}
			if tc.wantMsg != "" {
				testkit.MustContain(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestParseJSON_AllowEmptyBody(t *testing.T) {
	type note struct {
		Note string `json:"note"`
	}
	got, err := ParseJSON[note](httptest.NewRequest(http.MethodPost, "/", http.NoBody), JSONOptions{AllowEmptyBody: true})
	if err != nil || got.Note != "" {
		t.Fatalf("got %+v err %v", got, err)
	}
}

func TestParseJSON_MaxBytesTruncates(t *testing.T) {
	_, err := ParseJSON[selection](post(`{"entities":["Brazil"],"start":2000,"end":2001}`), JSONOptions{MaxBytes: 8, DisallowUnknown: true})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for truncated body, got %v", err)
	}
}

func TestParseJSON_TrailingSeam(t *testing.T) {
	testkit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	_, err := ParseJSON[selection](post(`{"entities":["Brazil"],"start":2000,"end":2001}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestValidationFieldAndMessage(t *testing.T) {
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should be empty, got %q %q", f, m)
	}
	if f, m := ValidationFieldAndMessage(errors.New("plain")); f != "" || m != "plain" {
		t.Fatalf("plain error passthrough, got %q %q", f, m)
	}
}

func TestRegisterValidation(t *testing.T) {
	if err := RegisterValidation("always_ok", func(FieldLevel) bool { return true }); err != nil {
		t.Fatalf("register: %v", err)
	}
}
