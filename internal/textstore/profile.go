package textstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/yada/pkg/types"
)

// LoadProfile reads the profile at path. A missing file yields an empty
// profile. Stored values are validated so a hand-edited file cannot load an
// invalid profile.
func LoadProfile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return types.NewProfile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p := types.NewProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// SaveProfile atomically writes p to path as YAML.
func SaveProfile(path string, p *types.Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if err := writeLines(path, lines); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
