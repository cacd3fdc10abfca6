package search

import "strings"

// EscapeLike escapes LIKE/ILIKE metacharacters in a keyword and wraps it
// in wildcards for substring containment. The keyword is matched literally;
// % and _ in user input are not pattern characters.
func EscapeLike(keyword string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
	)
	return "%" + replacer.Replace(keyword) + "%"
}
