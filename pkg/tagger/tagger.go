package tagger

import (
	"sort"
	"strings"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/taxonomy"
)

// Tags теги вакансии по обеим категориям таксономии.
type Tags struct {
	Type []string
	Tech []string
}

// Tag applies both taxonomy categories to the subject text.
func Tag(tax *taxonomy.Taxonomy, subject string) Tags {
	return Tags{
		Type: Compute(subject, tax.Lookup(taxonomy.CategoryType)),
		Tech: Compute(subject, tax.Lookup(taxonomy.CategoryTech)),
	}
}

// Compute returns the tags whose aliases occur in subject as case-insensitive substrings
// (no word boundaries). The result is a set, sorted, never nil.
func Compute(subject string, category map[string][]string) []string {
	text := strings.ToLower(subject)
	out := make([]string, 0)
	for tag, aliases := range category {
		for _, a := range aliases {
			a = strings.ToLower(a)
			// "" is a substring of everything
			if a == "" {
				continue
			}
			if strings.Contains(text, a) {
				out = append(out, tag)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
