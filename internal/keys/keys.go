package keys

import (
	"fmt"
	"sort"
	"strings"
)

// RosterKey produces a canonical key for a balancing request: the sorted
// player ids joined with commas plus the requested team size. Identical
// call-ups map to the same key regardless of selection order, which is what
// the request deduplication wants.
func RosterKey(playerIDs []string, teamSize int) string {
	parts := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		s := strings.TrimSpace(id)
		if s == "" {
			continue
		}
		parts = append(parts, strings.ToLower(s))
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s|%d", strings.Join(parts, ","), teamSize)
}
