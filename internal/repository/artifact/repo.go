// Package artifact persists training artifacts as JSON files and enforces
// the encoder/model pairing on load: a model only serves together with the
// exact vectorizer it was trained against, verified by fingerprint.
package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thehickorykampala/hickory/internal/classify"
	"github.com/thehickorykampala/hickory/internal/domain"
	"github.com/thehickorykampala/hickory/internal/feature"
)

const (
	encoderFile  = "vectorizer.json"
	manifestFile = "bundle.json"
)

func modelFile(name string) string {
	return fmt.Sprintf("model_%s.json", name)
}

// Repo reads and writes artifact files under one directory.
type Repo struct {
	dir string
}

// New creates an artifact repository rooted at dir.
func New(dir string) *Repo {
	return &Repo{dir: dir}
}

// Dir returns the artifact directory.
func (r *Repo) Dir() string { return r.dir }

// SaveEncoder persists the fitted encoder and returns the fingerprint of
// the written file, which pins every model trained against it.
func (r *Repo) SaveEncoder(enc *feature.Encoder) (string, error) {
	dto := encoderDTO{
		Terms:      enc.Vectorizer().Terms(),
		IDF:        enc.Vectorizer().IDF(),
		Components: enc.SVD().Components(),
		Singular:   enc.SVD().Singular(),
	}
	data, err := r.writeJSON(encoderFile, dto)
	if err != nil {
		return "", err
	}
	return fingerprint(data), nil
}

// SaveModel persists one fitted model together with the label order and the
// fingerprint of the encoder it was trained against. Returns the model
// file's own fingerprint.
func (r *Repo) SaveModel(m classify.Model, labels []domain.Label, vecFingerprint string) (string, error) {
	state, err := m.Encode()
	if err != nil {
		return "", fmt.Errorf("encode model %s: %w", m.Name(), err)
	}
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.String()
	}
	dto := modelDTO{
		Name:                  m.Name(),
		Labels:                names,
		VectorizerFingerprint: vecFingerprint,
		State:                 state,
	}
	data, err := r.writeJSON(modelFile(m.Name()), dto)
	if err != nil {
		return "", err
	}
	return fingerprint(data), nil
}

// SaveManifest persists the training manifest.
func (r *Repo) SaveManifest(m domain.Manifest) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	_, err := r.writeJSON(manifestFile, manifestToDTO(m))
	return err
}

// Bundle is the complete serving state loaded from disk.
type Bundle struct {
	Encoder  *feature.Encoder
	Model    classify.Model
	Labels   []domain.Label
	Manifest domain.Manifest
}

// LoadBundle reads the manifest, the encoder and the selected model, and
// verifies the pairing: the encoder file on disk must carry the fingerprint
// the manifest recorded, and the model must have been trained against that
// same fingerprint. Serving never starts on a mismatched pair.
func (r *Repo) LoadBundle() (*Bundle, error) {
	var manDTO manifestDTO
	if err := r.readJSON(manifestFile, &manDTO); err != nil {
		return nil, err
	}
	manifest, err := manifestFromDTO(manDTO)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", manifestFile, err)
	}
	if err := manifest.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", manifestFile, domain.ErrArtifactCorrupt, err)
	}

	encData, err := r.readFile(encoderFile)
	if err != nil {
		return nil, err
	}
	if got := fingerprint(encData); got != manifest.VectorizerFingerprint {
		return nil, domain.NewArtifactMismatch(manifest.VectorizerFingerprint, got)
	}
	var encDTO encoderDTO
	if err := json.Unmarshal(encData, &encDTO); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", encoderFile, domain.ErrArtifactCorrupt, err)
	}
	enc, err := feature.ReconstructEncoder(encDTO.Terms, encDTO.IDF, encDTO.Components, encDTO.Singular)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", encoderFile, domain.ErrArtifactCorrupt, err)
	}

	var modDTO modelDTO
	if err := r.readJSON(modelFile(manifest.Best), &modDTO); err != nil {
		return nil, err
	}
	if modDTO.VectorizerFingerprint != manifest.VectorizerFingerprint {
		return nil, domain.NewArtifactMismatch(manifest.VectorizerFingerprint, modDTO.VectorizerFingerprint)
	}
	model, err := classify.Decode(modDTO.Name, modDTO.State)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", modelFile(manifest.Best), domain.ErrArtifactCorrupt, err)
	}

	labels, err := parseLabels(modDTO.Labels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", modelFile(manifest.Best), err)
	}

	return &Bundle{Encoder: enc, Model: model, Labels: labels, Manifest: manifest}, nil
}

// Verify checks that a consistent bundle can be loaded, without keeping it.
func (r *Repo) Verify() error {
	_, err := r.LoadBundle()
	return err
}

func (r *Repo) writeJSON(name string, v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	path := filepath.Join(r.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	return data, nil
}

func (r *Repo) readFile(name string) ([]byte, error) {
	path := filepath.Join(r.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrArtifactMissing)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func (r *Repo) readJSON(name string, v any) error {
	data, err := r.readFile(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w: %v", name, domain.ErrArtifactCorrupt, err)
	}
	return nil
}

// fingerprint is the hex SHA-256 of an artifact file's bytes.
func fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
