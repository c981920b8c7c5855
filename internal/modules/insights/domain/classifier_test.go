package domain_test

import (
	"strings"
	"testing"

	"pomotrack/internal/modules/insights/domain"
)

func TestClassifierManifestValidate(t *testing.T) {
	t.Parallel()
	base := domain.ClassifierManifest{
		Name:    "sentiment",
		Version: "1.0.0",
		Binary:  "/opt/pomotrack/sentiment",
		SHA256:  strings.Repeat("a", 64),
		Enabled: true,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("manifest should be valid: %v", err)
	}
	missingName := base
	missingName.Name = ""
	if err := missingName.Validate(); err == nil {
		t.Fatalf("missing name should fail")
	}
	missingBinary := base
	missingBinary.Binary = ""
	if err := missingBinary.Validate(); err == nil {
		t.Fatalf("missing binary should fail")
	}
	badSum := base
	badSum.SHA256 = strings.Repeat("A", 64)
	if err := badSum.Validate(); err == nil {
		t.Fatalf("uppercase checksum should fail")
	}
}
