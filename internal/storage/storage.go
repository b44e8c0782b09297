package storage

import (
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/config"
	"github.com/shane-reaume/pytest-playwright-learn-to-code/internal/domain"
)

// Storage persists and loads run results (e.g. for the results viewer).
type Storage interface {
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output, replacing any previous run.
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
