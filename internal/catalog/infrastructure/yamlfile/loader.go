package yamlfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tableside/tableside/internal/catalog/domain"
)

type catalogFile struct {
	Products []domain.Product `yaml:"products"`
}

// Load reads the product catalog from a YAML file, preserving file order.
func Load(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return f.Products, nil
}
