package matching

import "strings"

// Matches reports whether any of the normalized pantry names satisfies the
// normalized requirement. Containment is checked in both directions and the
// first hit wins. An empty requirement never matches.
func Matches(pantryNames []string, requirement string) bool {
	if requirement == "" {
		return false
	}
	for _, name := range pantryNames {
		// an empty pantry name is a substring of everything
		if name == "" {
			continue
		}
		if strings.Contains(name, requirement) || strings.Contains(requirement, name) {
			return true
		}
	}
	return false
}
