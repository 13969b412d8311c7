package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	kit "econlens/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("ECONLENS_").Prefix("API_")
	if got := api.Key("PORT"); got != "ECONLENS_API_PORT" {
		t.Fatalf("Key() = %q, want ECONLENS_API_PORT", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_NAME", "  econlens ")
	if got := c.MustString("NAME"); got != "econlens" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_WORKERS", " 8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	t.Setenv("CFGT_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}
	t.Setenv("CFGT_PORT2", ":8080")
	if got := c.MustPort("PORT2"); got != ":8080" {
		t.Fatalf("MustPort colon form = %q", got)
	}
	t.Setenv("CFGT_PORT3", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("PORT3") })
}

func TestRequireAndHas(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_A", "1")
	kit.MustNotPanic(t, func() { c.Require("A") })
	kit.MustPanic(t, func() { c.Require("A", "NOPE") })
	if !c.Has("A") || c.Has("NOPE") {
		t.Fatalf("Has mismatch")
	}
}

func TestMayHelpers(t *testing.T) {
	c := New().Prefix("CFGM_")

	if got := c.MayString("S", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	t.Setenv("CFGM_I", "12")
	if got := c.MayInt("I", 1); got != 12 {
		t.Fatalf("MayInt = %d", got)
	}
	t.Setenv("CFGM_I", "twelve")
	if got := c.MayInt("I", 1); got != 1 {
		t.Fatalf("MayInt invalid = %d", got)
	}
	t.Setenv("CFGM_F", "1.5")
	if got := c.MayFloat64("F", 0); got != 1.5 {
		t.Fatalf("MayFloat64 = %v", got)
	}
	t.Setenv("CFGM_B", "true")
	if !c.MayBool("B", false) {
		t.Fatalf("MayBool = false")
	}
	t.Setenv("CFGM_D", "250ms")
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	t.Setenv("CFGM_D", "soon")
	if got := c.MayDuration("D", time.Second); got != time.Second {
		t.Fatalf("MayDuration invalid = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CFGC_")
	def := []string{"growth"}
	if got := c.MayCSV("LIST", def); len(got) != 1 || got[0] != "growth" {
		t.Fatalf("MayCSV default = %v", got)
	}
	t.Setenv("CFGC_LIST", " tax, ,debt ,")
	got := c.MayCSV("LIST", def)
	if len(got) != 2 || got[0] != "tax" || got[1] != "debt" {
		t.Fatalf("MayCSV = %v", got)
	}
	t.Setenv("CFGC_LIST", " , ")
	if got := c.MayCSV("LIST", def); got[0] != "growth" {
		t.Fatalf("MayCSV blanks = %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CFGE_")
	if got := c.MayEnum("SRC", "csv", "csv", "pg", "ch"); got != "csv" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("CFGE_SRC", "PG")
	if got := c.MayEnum("SRC", "csv", "csv", "pg", "ch"); got != "pg" {
		t.Fatalf("MayEnum = %q", got)
	}
	t.Setenv("CFGE_SRC", "mysql")
	kit.MustPanic(t, func() { _ = c.MayEnum("SRC", "csv", "csv", "pg", "ch") })
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("CFGDOT_FROM_FILE=hello\nCFGDOT_KEEP=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CFGDOT_KEEP", "env")
	t.Setenv("CFGDOT_FROM_FILE", "")
	_ = os.Unsetenv("CFGDOT_FROM_FILE")

	if err := LoadDotenv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	c := New().Prefix("CFGDOT_")
	if got := c.MayString("FROM_FILE", ""); got != "hello" {
		t.Fatalf("value from file = %q", got)
	}
	if got := c.MayString("KEEP", ""); got != "env" {
		t.Fatalf("existing env overridden: %q", got)
	}
	if err := LoadDotenv(filepath.Join(dir, "nothing.env")); err != nil {
		t.Fatalf("all missing should be nil, got %v", err)
	}
}
