// Package corpus ships the exemplar utterances the vector matcher is built
// from. The corpus is embedded at compile time and immutable at runtime.
package corpus

import (
	_ "embed"
	"fmt"

	"github.com/raphaelgruber/isha-go/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpusYAML []byte

// Example pairs a canonical utterance with its label.
type Example struct {
	Text   string        `yaml:"text"`
	Intent models.Intent `yaml:"intent"`
	Entity models.Entity `yaml:"entity"`
}

type document struct {
	Examples []Example `yaml:"examples"`
}

// Load parses the embedded corpus and validates every label against the
// closed intent and entity sets.
func Load() ([]Example, error) {
	var doc document
	if err := yaml.Unmarshal(corpusYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if len(doc.Examples) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}

	for i, ex := range doc.Examples {
		if ex.Text == "" {
			return nil, fmt.Errorf("corpus example %d: empty text", i)
		}
		if !models.ValidIntent(string(ex.Intent)) {
			return nil, fmt.Errorf("corpus example %q: invalid intent %q", ex.Text, ex.Intent)
		}
		if !models.ValidEntity(string(ex.Entity)) {
			return nil, fmt.Errorf("corpus example %q: invalid entity %q", ex.Text, ex.Entity)
		}
	}
	return doc.Examples, nil
}
