package token

import "strings"

// ScopeSet is a set of capability tokens parsed from a space-separated
// scope string, e.g. "storage:create storage:delete". Membership only;
// no ordering.
type ScopeSet map[string]struct{}

// ParseScopes splits raw on whitespace, dropping empty tokens and
// duplicates. An empty string yields an empty set.
func ParseScopes(raw string) ScopeSet {
	set := make(ScopeSet)
	for _, s := range strings.Fields(raw) {
		set[s] = struct{}{}
	}
	return set
}

// Contains reports whether the scope token is in the set.
func (s ScopeSet) Contains(scope string) bool {
	_, ok := s[scope]
	return ok
}

// Size returns the number of distinct scope tokens.
func (s ScopeSet) Size() int {
	return len(s)
}
