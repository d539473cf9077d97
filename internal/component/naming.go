package component

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// ClassName derives a Python class name from a snake_case resource
// name: "order_item" becomes "OrderItem".
func ClassName(resource string) string {
	parts := strings.Split(resource, "_")
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}
	return strings.Join(parts, "")
}

// Plural derives the collection-facing form of a resource name, used
// for table names and route paths: "category" becomes "categories",
// "box" becomes "boxes", "order" becomes "orders".
func Plural(resource string) string {
	switch {
	case strings.HasSuffix(resource, "y") && !hasVowelBefore(resource, "y"):
		return resource[:len(resource)-1] + "ies"
	case strings.HasSuffix(resource, "s"),
		strings.HasSuffix(resource, "x"),
		strings.HasSuffix(resource, "z"),
		strings.HasSuffix(resource, "ch"),
		strings.HasSuffix(resource, "sh"):
		return resource + "es"
	default:
		return resource + "s"
	}
}

func hasVowelBefore(s, suffix string) bool {
	idx := len(s) - len(suffix) - 1
	if idx < 0 {
		return false
	}
	return strings.ContainsRune("aeiou", rune(s[idx]))
}
