package config

import (
	"fmt"
	"os"

	"github.com/alexanderramin/visotime/internal/domain"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a projects file:
//
//	projects:
//	  - id: VISO_INTERNAL
//	    name: Viso Internal
type catalogFile struct {
	Projects []domain.Project `yaml:"projects"`
}

// LoadCatalog returns the project catalog. An empty path yields the
// built-in defaults.
func LoadCatalog(path string) (*domain.Catalog, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading projects file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML projects document.
func ParseCatalog(data []byte) (*domain.Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing projects file: %w", err)
	}
	c, err := domain.NewCatalog(f.Projects)
	if err != nil {
		return nil, fmt.Errorf("invalid projects file: %w", err)
	}
	return c, nil
}
