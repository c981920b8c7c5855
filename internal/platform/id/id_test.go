package id_test

import (
	"bytes"
	"strings"
	"testing"

	"pomotrack/internal/platform/id"
)

func TestRandomHexIsUniqueAndSized(t *testing.T) {
	t.Parallel()
	gen := id.RandomHex{}
	a, b := gen.New(), gen.New()
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("expected 32-char ids, got %q and %q", a, b)
	}
	if a == b {
		t.Fatalf("expected distinct ids")
	}
}

func TestRandomHexReadsSource(t *testing.T) {
	t.Parallel()
	gen := id.RandomHex{Source: bytes.NewReader(bytes.Repeat([]byte{0xab}, 16))}
	if got := gen.New(); got != strings.Repeat("ab", 16) {
		t.Fatalf("unexpected id %q", got)
	}
}

func TestRandomHexSurvivesShortSource(t *testing.T) {
	t.Parallel()
	a := id.RandomHex{Source: bytes.NewReader([]byte{1})}.New()
	b := id.RandomHex{Source: bytes.NewReader(nil)}.New()
	if len(a) != 32 || len(b) != 32 || a == b {
		t.Fatalf("fallback ids must be sized and distinct, got %q and %q", a, b)
	}
}
