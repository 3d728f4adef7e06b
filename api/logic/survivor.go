/* survivor.go
 * Contains the survivor elimination engine: a per-member Alive/Eliminated
 * state machine folded over the season's survivor picks and outcomes, with a
 * configurable start week that grandfathers earlier history
 */

package logic

// SurvivorPick is one member's single-team pick for a week.
type SurvivorPick struct {
	Member       string
	Week         int
	SelectedTeam string
}

// SurvivorStatus is one member's elimination state. EliminatedWeek is 0
// while the member is still alive.
type SurvivorStatus struct {
	Member         string
	EliminatedWeek int
}

// Alive reports whether the member has not been eliminated.
func (s SurvivorStatus) Alive() bool {
	return s.EliminatedWeek == 0
}

// SurvivorReport is the derived survivor state for the whole pool.
type SurvivorReport struct {
	StartWeek    int
	ThroughWeek  int
	TotalMembers int
	Statuses     []SurvivorStatus
}

// Remaining returns how many members are still alive at the start of the
// given week.
func (r SurvivorReport) Remaining(week int) int {
	remaining := r.TotalMembers
	for _, s := range r.Statuses {
		if !s.Alive() && s.EliminatedWeek < week {
			remaining--
		}
	}
	return remaining
}

// Done reports whether the contest is over: at most one member left after
// the last evaluated week. Zero remaining is a valid terminal state, reached
// when every surviving member picked wrong in the same week, and no winner
// is inferred from it.
func (r SurvivorReport) Done() bool {
	return r.Remaining(r.ThroughWeek+1) <= 1
}

// EvaluateSurvivor folds survivor picks and outcomes into elimination state.
// A member is eliminated the first week w >= startWeek where their pick is
// absent while the week is past due, or names a team that did not win (a
// tie counts as elimination; survivor pools give no tie credit). Weeks
// before startWeek are grandfathered history and never affect state.
// Elimination is monotonic by construction: evaluation stops at the first
// eliminating week.
// Preconditions: receives every member name, all survivor picks, outcomes
// keyed by week, the set of past-due (fully resolved) weeks, the configured
// start week and the last week to evaluate
// Postconditions: returns the SurvivorReport with one status per member, in
// roster order
func EvaluateSurvivor(members []string, picks []SurvivorPick, outcomesByWeek map[int][]Outcome,
	pastDue map[int]bool, startWeek int, throughWeek int) SurvivorReport {

	pickFor := make(map[string]map[int]string, len(members))
	for _, p := range picks {
		if pickFor[p.Member] == nil {
			pickFor[p.Member] = make(map[int]string)
		}
		pickFor[p.Member][p.Week] = p.SelectedTeam
	}

	report := SurvivorReport{
		StartWeek:    startWeek,
		ThroughWeek:  throughWeek,
		TotalMembers: len(members),
	}

	for _, member := range members {
		status := SurvivorStatus{Member: member}
		for week := startWeek; week <= throughWeek; week++ {
			if eliminatedIn(pickFor[member][week], outcomesByWeek[week], pastDue[week]) {
				status.EliminatedWeek = week
				break
			}
		}
		report.Statuses = append(report.Statuses, status)
	}

	return report
}

// eliminatedIn evaluates one member-week. A missing pick only eliminates
// once the week is past due; a pick whose game has no recorded outcome yet
// is still pending.
func eliminatedIn(team string, outcomes []Outcome, pastDue bool) bool {
	if team == "" {
		return pastDue
	}
	for _, o := range outcomes {
		if o.Away == team || o.Home == team {
			return o.Winner != team
		}
	}
	// No recorded game for the picked team. Once the week is fully resolved
	// that means the team never played (bye or bad pick), which cannot win.
	return pastDue
}
