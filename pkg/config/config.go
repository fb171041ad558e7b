package config

import (
	"crypto/sha256"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dashua-baba/layoutsolve/pkg/room"
)

// LoadProblem reads and validates a YAML problem file at path.
func LoadProblem(path string) (*room.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem file: %w", err)
	}
	return LoadProblemFromBytes(data)
}

// LoadProblemFromBytes parses and validates a YAML problem from data.
// Useful for tests and for callers that already hold the bytes.
func LoadProblemFromBytes(data []byte) (*room.Problem, error) {
	var p room.Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &p, nil
}

// ToYAML serializes a problem back to YAML bytes, the inverse of
// LoadProblemFromBytes.
func ToYAML(p *room.Problem) ([]byte, error) {
	return yaml.Marshal(p)
}

// Fingerprint computes a deterministic SHA-256 hash of a problem's
// YAML-serialized form. Two problems that fingerprint identically are
// guaranteed to solve identically, since Solve is a pure function of its
// input; this is useful for caching a solve result keyed by problem
// content rather than by object identity.
func Fingerprint(p *room.Problem) ([]byte, error) {
	data, err := ToYAML(p)
	if err != nil {
		return nil, fmt.Errorf("serializing problem for fingerprint: %w", err)
	}
	h := sha256.Sum256(data)
	return h[:], nil
}
