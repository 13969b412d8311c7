package raw

import "testing"

func TestGet(t *testing.T) {
	c := New().Prefix("RAWT_")
	t.Setenv("RAWT_NAME", "  econlens ")
	if got := c.Get("NAME", "x"); got != "econlens" {
		t.Fatalf("Get = %q, want econlens", got)
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get default = %q", got)
	}
	if got := c.Key("A"); got != "RAWT_A" {
		t.Fatalf("Key = %q", got)
	}
}

func TestGetBool(t *testing.T) {
	c := New().Prefix("RAWB_")
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"TRUE", false, true},
		{"yes", false, true},
		{"on", false, true},
		{"no", true, false},
		{"garbage", true, false},
	}
	for _, tc := range cases {
		t.Setenv("RAWB_FLAG", tc.val)
		if got := c.GetBool("FLAG", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v, want %v", tc.val, tc.def, got, tc.want)
		}
	}
}

func TestGetInt(t *testing.T) {
	c := New().Prefix("RAWI_")
	cases := []struct {
		val  string
		want int
	}{
		{"", 7},
		{"12", 12},
		{" 3 ", 3},
		{"-4", 7},
		{"4x", 7},
	}
	for _, tc := range cases {
		t.Setenv("RAWI_N", tc.val)
		if got := c.GetInt("N", 7); got != tc.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}
