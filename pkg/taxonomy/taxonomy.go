// Package taxonomy holds the static tag taxonomy: canonical tag names mapped to keyword aliases,
// split into the "type" (job role) and "tech" (technology) categories.
package taxonomy

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category категория тегов.
type Category string

const (
	CategoryType Category = "type"
	CategoryTech Category = "tech"
)

//go:embed tags.yaml
var defaultTags []byte

// Taxonomy is immutable after Load/Default. Maps returned by Lookup must not be modified.
type Taxonomy struct {
	categories map[Category]map[string][]string
}

type file struct {
	Type map[string][]string `yaml:"type"`
	Tech map[string][]string `yaml:"tech"`
}

// Default parses the taxonomy embedded into the binary.
func Default() (*Taxonomy, error) {
	return Parse(defaultTags)
}

// Load reads a YAML taxonomy from path. An empty path or a missing file yields the embedded default.
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default()
		}
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML taxonomy data. Aliases are lower-cased and trimmed, blank aliases are dropped.
func Parse(data []byte) (*Taxonomy, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}
	return New(f.Type, f.Tech), nil
}

// New builds a taxonomy from in-memory mappings, normalizing aliases the same way Parse does.
func New(typeTags, techTags map[string][]string) *Taxonomy {
	return &Taxonomy{categories: map[Category]map[string][]string{
		CategoryType: normalize(typeTags),
		CategoryTech: normalize(techTags),
	}}
}

// Lookup returns tag name -> aliases for the category. Unknown categories yield an empty map.
func (t *Taxonomy) Lookup(c Category) map[string][]string {
	if m, ok := t.categories[c]; ok {
		return m
	}
	return map[string][]string{}
}

func normalize(in map[string][]string) map[string][]string {
	out := make(map[string][]string, len(in))
	for tag, aliases := range in {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		norm := make([]string, 0, len(aliases))
		for _, a := range aliases {
			a = NormalizeAlias(a)
			if a == "" {
				continue
			}
			norm = append(norm, a)
		}
		out[tag] = norm
	}
	return out
}

// NormalizeAlias приводит алиас к виду, в котором он сравнивается с текстом вакансии.
func NormalizeAlias(a string) string {
	return strings.ToLower(strings.TrimSpace(a))
}
