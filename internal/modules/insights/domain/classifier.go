package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrClassifierDisabled = errors.New("classifier plugin is disabled")
	ErrChecksumMismatch   = errors.New("classifier plugin checksum mismatch")
	ErrClassifierTimeout  = errors.New("classifier plugin timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// ClassifierManifest describes a sentiment classifier plugin binary.
type ClassifierManifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
	Enabled bool   `json:"enabled"`
}

func (m ClassifierManifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("plugin binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("plugin sha256 must be lowercase 64-char hex")
	}
	return nil
}
