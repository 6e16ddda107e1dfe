package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/abdidvp/gitcomply/internal/domain"
)

const fileName = ".gitcomply.yaml"

// YAMLLoader implements domain.PolicyLoader by reading .gitcomply.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .gitcomply.yaml from projectPath.
// Returns the default policy if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.Policy, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultPolicy(), nil
		}
		return domain.Policy{}, err
	}

	var policy domain.Policy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return domain.Policy{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Validate before merging so typos in the user's raw input surface.
	if err := policy.Validate(); err != nil {
		return domain.Policy{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return domain.MergePolicy(domain.DefaultPolicy(), policy), nil
}
