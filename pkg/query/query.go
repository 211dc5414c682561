// Package query builds hh.ru search text from a tag selection.
package query

import "strings"

// Fallback is substituted for the type clause when the selection is entirely empty,
// otherwise hh.ru would return an unconstrained result set.
const Fallback = "developer OR разработчик OR программист"

// Selection: выбранные пользователем теги.
type Selection struct {
	Type []string `json:"type"`
	Tech []string `json:"tech"`
	City string   `json:"city"`
}

// Default is the selection used for the landing page.
func Default() Selection {
	return Selection{Type: []string{Fallback}}
}

// Build renders the selection into hh.ru query language:
// "{type} AND {tech} AND {city}" where each list becomes "(a1 OR a2 ...)".
func Build(sel Selection) string {
	typeClause := orClause(sel.Type)
	techClause := orClause(sel.Tech)
	city := strings.TrimSpace(sel.City)

	if typeClause == "" && techClause == "" && city == "" {
		typeClause = Fallback
	}
	return typeClause + " AND " + techClause + " AND " + city
}

func orClause(aliases []string) string {
	parts := make([]string, 0, len(aliases))
	for _, a := range aliases {
		if a = strings.TrimSpace(a); a != "" {
			parts = append(parts, a)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}
