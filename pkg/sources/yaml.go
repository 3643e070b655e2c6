package sources

import (
	"fmt"
	"os"
	"strings"

	"github.com/kerbaras/library/pkg/data"
	"gopkg.in/yaml.v3"
)

// YAML reads a seed file shaped like:
//
//	items:
//	  - title: Dune
//	    author: Frank Herbert
//	    genre: Science Fiction
type YAML struct {
	path string
}

type yamlSeed struct {
	Items []yamlItem `yaml:"items"`
}

type yamlItem struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Genre  string `yaml:"genre"`
}

func NewYAML(path string) *YAML {
	return &YAML{path: path}
}

func (y *YAML) Name() string {
	return y.path
}

func (y *YAML) Load() ([]*data.Item, error) {
	raw, err := os.ReadFile(y.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed yamlSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	items := make([]*data.Item, 0, len(seed.Items))
	for i, it := range seed.Items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			return nil, fmt.Errorf("item %d: title is required", i+1)
		}
		items = append(items, data.NewItem(title, strings.TrimSpace(it.Author), strings.TrimSpace(it.Genre)))
	}
	return items, nil
}
