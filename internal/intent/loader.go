package intent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// lexiconFile is the on-disk shape of a lexicon override. Categories replace
// the built-in table entirely; actions are optional and default to the
// built-in lexicon when omitted.
type lexiconFile struct {
	Categories []struct {
		Name           string              `yaml:"name"`
		Keywords       []string            `yaml:"keywords"`
		CloudResources map[string][]string `yaml:"cloud_resources"`
	} `yaml:"categories"`
	Actions []struct {
		Kind  string   `yaml:"kind"`
		Verbs []string `yaml:"verbs"`
	} `yaml:"actions"`
}

var validKinds = map[string]ActionKind{
	"create": ActionCreate,
	"delete": ActionDelete,
	"modify": ActionModify,
	"query":  ActionQuery,
}

// LoadLexicon reads category and action tables from a YAML file so
// deployments can extend keyword lists without rebuilding. Declared order in
// the file becomes evaluation order.
func LoadLexicon(path string) ([]Category, []ActionEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading lexicon file: %w", err)
	}

	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}

	if len(file.Categories) == 0 {
		return nil, nil, fmt.Errorf("lexicon file %s defines no categories", path)
	}

	categories := make([]Category, 0, len(file.Categories))
	seen := make(map[string]bool)
	for i, cat := range file.Categories {
		if cat.Name == "" {
			return nil, nil, fmt.Errorf("category %d has no name", i)
		}
		if seen[cat.Name] {
			return nil, nil, fmt.Errorf("duplicate category %q", cat.Name)
		}
		seen[cat.Name] = true
		if len(cat.Keywords) == 0 {
			return nil, nil, fmt.Errorf("category %q has no keywords", cat.Name)
		}
		for _, keyword := range cat.Keywords {
			if keyword == "" {
				return nil, nil, fmt.Errorf("category %q contains an empty keyword", cat.Name)
			}
		}
		categories = append(categories, Category{
			Name:           cat.Name,
			Keywords:       cat.Keywords,
			CloudResources: cat.CloudResources,
		})
	}

	if len(file.Actions) == 0 {
		return categories, DefaultActions(), nil
	}

	actions := make([]ActionEntry, 0, len(file.Actions))
	for _, entry := range file.Actions {
		kind, ok := validKinds[entry.Kind]
		if !ok {
			return nil, nil, fmt.Errorf("unknown action kind %q", entry.Kind)
		}
		if len(entry.Verbs) == 0 {
			return nil, nil, fmt.Errorf("action %q has no verbs", entry.Kind)
		}
		actions = append(actions, ActionEntry{Kind: kind, Verbs: entry.Verbs})
	}

	return categories, actions, nil
}
