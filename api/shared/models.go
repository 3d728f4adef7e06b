/* models.go
 * This file contains the structs and helper functions that are shared between sub packages
 */

package shared

import "strings"

// Member is a pool participant. Members are identified by their normalized
// name and are never deleted, only marked eliminated in the survivor pool.
type Member struct {
	UserID string
	Name   string
}

// PoolConfig holds the recognized pool options. It is passed explicitly into
// every component that needs it; nothing reads ambient process-wide state.
type PoolConfig struct {
	TiebreakerEnabled      bool // weekly winner resolved by tiebreaker distance
	MNFDouble              bool // Monday night matchups default to a x2 bonus
	BonusEnabled           bool // allow non-1 bonus multipliers at all
	TNFCountsForLatecomers bool // include Thursday games for post-Thursday submitters
	SurvivorStart          int  // first week evaluated for survivor elimination
	CommentsEnabled        bool // cosmetic, unused by the scoring core
}

// NormalizeName converts a member name to title case so that "joe smith",
// "JOE SMITH" and "Joe Smith" all key the same member.
func NormalizeName(name string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
