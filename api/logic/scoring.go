/* scoring.go
 * Contains the weekly scoring engine: per-member points, ranks and percent
 * correct for one week, plus weekly winner determination under the
 * tiebreaker-distance or split-pot rules
 */

package logic

import (
	"fmt"
	"sort"

	"survivor-pool/api/schedule"
	"survivor-pool/api/shared"
)

// ConfigurationError indicates the pool configuration is inconsistent with
// the week's data, e.g. the tiebreaker game cannot be identified or a bonus
// weight is out of range. Scoring for the affected week is refused rather
// than guessed at.
type ConfigurationError struct {
	Week   int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("week %d configuration error: %s", e.Week, e.Reason)
}

// DuplicateMatchupError indicates a week's schedule repeats an away/home
// pairing. This points at a schedule-fetch bug, so the week's computation is
// aborted instead of silently deduplicating.
type DuplicateMatchupError struct {
	Week int
	Key  string
}

func (e *DuplicateMatchupError) Error() string {
	return fmt.Sprintf("week %d has duplicate matchup %s", e.Week, e.Key)
}

// PickSheet is one member's submission for a week: a selected team per
// matchup key, and a combined-score tiebreaker guess if the pool uses one.
// A member with no sheet for a played week scores zero points with an
// undefined percent, distinguishing non-participation from losing every game.
type PickSheet struct {
	Member          string
	Picks           map[string]string
	TiebreakerGuess *int
}

// WeekScore is one member's derived score for a week. PercentCorrect is nil
// when the member submitted no picks or no games have been decided yet. Rank
// is 0 until at least one game has been decided.
type WeekScore struct {
	Member         string
	Week           int
	Points         int
	Rank           int
	PercentCorrect *float64
}

// WeekResult is the full scoring output for one week. Winners is only
// populated once the week is complete; a partial week's scores are
// provisional. Tie reports a shared weekly win.
type WeekResult struct {
	Week     int
	Complete bool
	Scores   []WeekScore
	Winners  []string
	Tie      bool
}

// ScoreWeek computes every member's score for one week and, when the week is
// complete, determines the weekly winner(s).
// Preconditions: receives the week's scheduled matchups, every member name,
// the submitted pick sheets, the recorded outcomes, the admin bonus weights
// keyed by matchup, and the pool config
// Postconditions: returns the WeekResult, or a typed error when the schedule
// or configuration is unusable
func ScoreWeek(week int, matchups []schedule.Matchup, members []string, sheets []PickSheet,
	outcomes []Outcome, bonuses map[string]int, cfg shared.PoolConfig) (WeekResult, error) {

	effective := EffectiveMatchups(matchups, cfg.TNFCountsForLatecomers)

	seen := make(map[string]bool, len(effective))
	for _, m := range effective {
		if seen[m.Key()] {
			return WeekResult{}, &DuplicateMatchupError{Week: week, Key: m.Key()}
		}
		seen[m.Key()] = true
	}

	weights, err := bonusWeights(week, effective, bonuses, cfg)
	if err != nil {
		return WeekResult{}, err
	}

	winnersByKey := make(map[string]string, len(outcomes))
	for _, o := range outcomes {
		if seen[o.Key()] {
			winnersByKey[o.Key()] = o.Winner
		}
	}
	decided := len(winnersByKey)

	sheetsByMember := make(map[string]PickSheet, len(sheets))
	for _, s := range sheets {
		sheetsByMember[s.Member] = s
	}

	result := WeekResult{Week: week}
	for _, member := range members {
		score := WeekScore{Member: member, Week: week}
		sheet, submitted := sheetsByMember[member]
		if submitted && len(sheet.Picks) > 0 && decided > 0 {
			correct := 0
			for _, m := range effective {
				winner, ok := winnersByKey[m.Key()]
				if !ok {
					continue // undecided games contribute zero, not null
				}
				if sheet.Picks[m.Key()] == winner {
					score.Points += weights[m.Key()]
					correct++
				}
			}
			pct := float64(correct) / float64(decided)
			score.PercentCorrect = &pct
		}
		result.Scores = append(result.Scores, score)
	}

	if decided > 0 {
		assignRanks(result.Scores)
	}

	result.Complete = len(effective) > 0 && decided == len(effective)
	if result.Complete {
		winners, err := determineWinners(week, matchups, result.Scores, sheetsByMember, outcomes, cfg)
		if err != nil {
			return WeekResult{}, err
		}
		result.Winners = winners
		result.Tie = len(winners) > 1
	}

	return result, nil
}

// bonusWeights resolves the effective per-matchup multiplier. Admin weights
// outside {1,2,3} are a configuration error.
func bonusWeights(week int, matchups []schedule.Matchup, bonuses map[string]int, cfg shared.PoolConfig) (map[string]int, error) {
	weights := make(map[string]int, len(matchups))
	for _, m := range matchups {
		w := 1
		if cfg.BonusEnabled {
			if cfg.MNFDouble && m.IsMondayNight() {
				w = 2
			}
			if set, ok := bonuses[m.Key()]; ok {
				if set < 1 || set > 3 {
					return nil, &ConfigurationError{Week: week,
						Reason: fmt.Sprintf("bonus weight %d for %s is not in 1..3", set, m.Key())}
				}
				w = set
			}
		}
		weights[m.Key()] = w
	}
	return weights, nil
}

// assignRanks applies standard competition ranking in place: members sharing
// a points total share the lowest rank number of the tied group.
func assignRanks(scores []WeekScore) {
	for i := range scores {
		rank := 1
		for j := range scores {
			if scores[j].Points > scores[i].Points {
				rank++
			}
		}
		scores[i].Rank = rank
	}
}

// determineWinners resolves the weekly winner(s) for a complete week. With
// the tiebreaker disabled every member at the maximum points is a co-winner.
// With it enabled, the members at the maximum are separated by the smallest
// absolute distance between their combined-score guess and the actual
// combined score of the designated tiebreaker game; an equal distance still
// produces co-winners.
func determineWinners(week int, matchups []schedule.Matchup, scores []WeekScore,
	sheets map[string]PickSheet, outcomes []Outcome, cfg shared.PoolConfig) ([]string, error) {

	if len(scores) == 0 {
		return nil, nil
	}

	max := scores[0].Points
	for _, s := range scores[1:] {
		if s.Points > max {
			max = s.Points
		}
	}
	var leaders []string
	for _, s := range scores {
		if s.Points == max {
			leaders = append(leaders, s.Member)
		}
	}

	if !cfg.TiebreakerEnabled || len(leaders) == 1 {
		return leaders, nil
	}

	target, ok := schedule.TiebreakerMatchup(matchups, week)
	if !ok {
		return nil, &ConfigurationError{Week: week, Reason: "no matchup to designate as the tiebreaker game"}
	}
	actual := -1
	for _, o := range outcomes {
		if o.Key() == target.Key() {
			actual = o.TiebreakerValue
			break
		}
	}
	if actual < 0 {
		return nil, &ConfigurationError{Week: week,
			Reason: fmt.Sprintf("tiebreaker game %s has no recorded outcome", target.Key())}
	}

	best := -1
	distances := make(map[string]int, len(leaders))
	for _, member := range leaders {
		sheet, ok := sheets[member]
		if !ok || sheet.TiebreakerGuess == nil {
			continue // no guess submitted, cannot win the tiebreak
		}
		d := *sheet.TiebreakerGuess - actual
		if d < 0 {
			d = -d
		}
		distances[member] = d
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		// Nobody at the maximum submitted a guess; the tie stands.
		return leaders, nil
	}

	var winners []string
	for _, member := range leaders {
		if d, ok := distances[member]; ok && d == best {
			winners = append(winners, member)
		}
	}
	sort.Strings(winners)
	return winners, nil
}
