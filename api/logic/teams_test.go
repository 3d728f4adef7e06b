/* teams_test.go
 * Contains unit tests for teams.go functions
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCheckTeamNames_ExactMatch tests exact team name matching
func TestCheckTeamNames_ExactMatch(t *testing.T) {
	validTeams := []string{"Green Bay Packers", "Chicago Bears", "Kansas City Chiefs"}

	matched, invalid := CheckTeamNames([]string{"Green Bay Packers"}, validTeams)

	assert.Empty(t, invalid)
	assert.Equal(t, []string{"Green Bay Packers"}, matched)
}

// TestCheckTeamNames_CaseInsensitive tests case-insensitive matching returns
// the original casing
func TestCheckTeamNames_CaseInsensitive(t *testing.T) {
	validTeams := []string{"Green Bay Packers", "Chicago Bears"}

	matched, invalid := CheckTeamNames([]string{"green bay packers"}, validTeams)

	assert.Empty(t, invalid)
	assert.Equal(t, []string{"Green Bay Packers"}, matched)
}

// TestCheckTeamNames_FuzzyMatch tests that a partial name resolves to the
// closest roster entry
func TestCheckTeamNames_FuzzyMatch(t *testing.T) {
	validTeams := []string{"Green Bay Packers", "Chicago Bears"}

	matched, invalid := CheckTeamNames([]string{"packers"}, validTeams)

	assert.Empty(t, invalid)
	assert.Equal(t, []string{"Green Bay Packers"}, matched)
}

// TestCheckTeamNames_Invalid tests that an unmatchable name is reported
func TestCheckTeamNames_Invalid(t *testing.T) {
	validTeams := []string{"Green Bay Packers", "Chicago Bears"}

	matched, invalid := CheckTeamNames([]string{"Quidditch United"}, validTeams)

	assert.Empty(t, matched)
	assert.Equal(t, []string{"Quidditch United"}, invalid)
}

// TestCheckTeamNames_PrefersExactAmongMultiple tests that an exact match
// beats other fuzzy candidates
func TestCheckTeamNames_PrefersExactAmongMultiple(t *testing.T) {
	validTeams := []string{"NY", "NYJ", "NYG"}

	matched, invalid := CheckTeamNames([]string{"ny"}, validTeams)

	assert.Empty(t, invalid)
	assert.Equal(t, []string{"NY"}, matched)
}
