package slug_test

import (
	"strings"
	"testing"

	"pomotrack/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Very Good":        "very-good",
		"  calm, focused ": "calm-focused",
		"???":              "unlabeled",
		"":                 "unlabeled",
	}
	for in, want := range cases {
		if got := slug.Make(in, "unlabeled"); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
	long := slug.Make(strings.Repeat("ab ", 40), "x")
	if len(long) > 48 || strings.HasSuffix(long, "-") {
		t.Fatalf("long slug not trimmed: %q", long)
	}
}
