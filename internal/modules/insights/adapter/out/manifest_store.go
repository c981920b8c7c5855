package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pomotrack/internal/modules/insights/domain"
	insightsout "pomotrack/internal/modules/insights/port/out"
	apperrors "pomotrack/internal/platform/errors"
)

type FileManifestStore struct {
	basePath string
	path     string
}

// NewFileManifestStore reads manifests from path. Relative binaries resolve
// against basePath.
func NewFileManifestStore(basePath, path string) insightsout.ManifestStore {
	return &FileManifestStore{basePath: basePath, path: path}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.ClassifierManifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.ClassifierManifest{}, nil
		}
		return nil, fmt.Errorf("read classifier manifest store: %w", err)
	}
	var manifests []domain.ClassifierManifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode classifier manifests: %w", err)
	}
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.basePath, manifests[i].Binary))
		}
	}
	return manifests, nil
}

func (s *FileManifestStore) Find(ctx context.Context, name string) (domain.ClassifierManifest, error) {
	manifests, err := s.Load(ctx)
	if err != nil {
		return domain.ClassifierManifest{}, err
	}
	for _, m := range manifests {
		if m.Name != name {
			continue
		}
		if err := m.Validate(); err != nil {
			return domain.ClassifierManifest{}, apperrors.Invalid("classifier %s: %v", name, err)
		}
		if !m.Enabled {
			return domain.ClassifierManifest{}, fmt.Errorf("%w: %s", domain.ErrClassifierDisabled, name)
		}
		return m, nil
	}
	return domain.ClassifierManifest{}, apperrors.NotFound("classifier plugin %s", name)
}
