// Package catalog loads rule catalogs from YAML sources.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deploycheck/deploycheck/internal/domain"
	"github.com/deploycheck/deploycheck/internal/domain/rules"
)

// YAMLLoader implements domain.CatalogLoader. An empty source path yields the
// built-in catalog; a named source fully replaces it.
type YAMLLoader struct{}

func New() *YAMLLoader { return &YAMLLoader{} }

func (l *YAMLLoader) Load(path string) (*domain.Catalog, error) {
	if path == "" {
		cat := rules.Default()
		if err := cat.Validate(); err != nil {
			return nil, err
		}
		return cat, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.UsageError{
			Reason: fmt.Sprintf("reading rule catalog %s", path),
			Err:    err,
		}
	}

	var cat domain.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, &domain.RuleDefinitionError{
			Reason: fmt.Sprintf("parsing %s: %v", path, err),
		}
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}
