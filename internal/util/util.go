package util

import "strings"

// MakeTextList gives a nice list of things based on their display name.
func MakeTextList(items []string) string {
	if len(items) < 1 {
		return ""
	}

	output := ""

	if len(items) == 1 {
		output += items[0]
	} else if len(items) == 2 {
		output += items[0] + " and " + items[1]
	} else {
		// if its more than two, use an oxford comma
		items[len(items)-1] = "and " + items[len(items)-1]
		output += strings.Join(items, ", ")
	}

	return output
}

// ArticleFor returns "a" or "an" as appropriate for the given word, and
// optionally capitalizes it. Used when building "expected a FOO or an ID"
// style parser error messages.
func ArticleFor(word string, capital bool) string {
	art := "a"
	if word != "" {
		switch word[0] {
		case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
			art = "an"
		}
	}
	if capital {
		return strings.ToUpper(art[:1]) + art[1:]
	}
	return art
}

// OrderedKeys returns the keys of m sorted ascending. Used wherever map
// iteration needs to be deterministic for reproducible String() output or
// for tie-break ordering.
func OrderedKeys[K string | int, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

func sortKeys[K string | int](keys []K) {
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
}
