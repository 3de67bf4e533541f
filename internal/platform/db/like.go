package db

import "strings"

var likeReplacer = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a lower-cased LIKE pattern matching any value that
// contains filter. An empty filter matches every value. Queries using it
// must declare ESCAPE '\'.
func ContainsPattern(filter string) string {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return "%"
	}
	return "%" + likeReplacer.Replace(strings.ToLower(filter)) + "%"
}
