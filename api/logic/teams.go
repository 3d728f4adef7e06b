/* teams.go
 * Contains the logic for validating user-entered team names against the
 * season roster
 */

package logic

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// CheckTeamNames matches user-entered team names against the valid roster.
// Preconditions: receives two string slices; one containing the user's picks
// and another that is the list of valid team names
// Postconditions: returns a slice of correctly formatted team names and a
// slice containing the names that matched nothing
func CheckTeamNames(pickedTeams []string, validTeams []string) ([]string, []string) {
	var formattedTeamNames []string
	var invalidTeams []string

	// Convert to lowercase for better matching
	lookup := make(map[string]string)
	var validTeamsLower []string
	for _, name := range validTeams {
		lower := strings.ToLower(name)
		lookup[lower] = name
		validTeamsLower = append(validTeamsLower, lower)
	}

	for _, team := range pickedTeams {
		lowerTeam := strings.ToLower(team)
		fuzzyResults := fuzzy.RankFind(lowerTeam, validTeamsLower)
		if len(fuzzyResults) == 0 {
			invalidTeams = append(invalidTeams, team)
			continue
		}
		if len(fuzzyResults) == 1 {
			formattedTeamNames = append(formattedTeamNames, lookup[fuzzyResults[0].Target])
			continue
		}
		// Multiple matches: prefer an exact match, otherwise the best rank
		best := ""
		for i := range fuzzyResults {
			if fuzzyResults[i].Target == lowerTeam {
				best = fuzzyResults[i].Target
			}
		}
		if best == "" {
			best = fuzzyResults[0].Target
		}
		formattedTeamNames = append(formattedTeamNames, lookup[best])
	}
	return formattedTeamNames, invalidTeams
}
