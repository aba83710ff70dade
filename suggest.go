package countryguess

import (
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance caps the edit distance SuggestAlias accepts. Aliases
// such as "us" and "uk" are one edit apart, so larger distances mostly
// produce noise.
const maxSuggestDistance = 2

// sortedAliasNames returns alias names sorted alphabetically.
// Computed once for deterministic tie-breaking in SuggestAlias.
var sortedAliasNames = sync.OnceValue(func() []string {
	names := make([]string, 0, len(countryAliases))
	for name := range countryAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
})

// SuggestAlias finds the alias entry closest to name by Levenshtein distance,
// for callers that got an unresolved country value back from Infer.
// Ties go to the alphabetically first alias. maxDist is capped at 2.
// Inference never uses this; alias lookup there stays exact.
func SuggestAlias(name string, maxDist int) (alias, iso2 string, ok bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || maxDist <= 0 {
		return "", "", false
	}
	if maxDist > maxSuggestDistance {
		maxDist = maxSuggestDistance
	}
	best := maxDist + 1
	for _, candidate := range sortedAliasNames() {
		// Short names like "us" are within two edits of almost anything short.
		if len(candidate) <= 2 && candidate != name {
			continue
		}
		if d := levenshtein.ComputeDistance(name, candidate); d < best {
			best, alias = d, candidate
		}
	}
	if alias == "" {
		return "", "", false
	}
	return alias, countryAliases[alias], true
}
