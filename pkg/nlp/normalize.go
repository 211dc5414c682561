package nlp

import (
	"html"
	"regexp"
	"strings"
)

var (
	reTag     = regexp.MustCompile(`<[^>]*>`)
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
)

// NormalizeText приводит текст к упрощённому виду для поиска ключевых слов:
// HTML-теги и сущности убираются, регистр нижний, всё кроме букв и цифр схлопывается в один пробел.
// "Высшее&nbsp;<b>образование</b>" -> "высшее образование".
func NormalizeText(s string) string {
	s = reTag.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
