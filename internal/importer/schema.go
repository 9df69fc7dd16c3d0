package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/kesteai/internal/domain"
)

// SeedSchema is the top-level JSON structure of a timetable seed file. Its
// collections use the same field names as the REST API.
type SeedSchema struct {
	Groups   []domain.Group   `json:"groups"`
	Teachers []domain.Teacher `json:"teachers"`
	Rooms    []domain.Room    `json:"rooms"`
	Subjects []domain.Subject `json:"subjects"`
	Schedule []domain.Lesson  `json:"schedule"`
	Notice   *string          `json:"notice,omitempty"`
}

// LoadSeedSchema reads and parses a seed JSON file.
func LoadSeedSchema(path string) (*SeedSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SeedSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &schema, nil
}
