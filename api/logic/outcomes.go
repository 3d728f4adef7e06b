/* outcomes.go
 * Contains the outcome resolver: turns completed games from the live score
 * feed into Outcome records, applying the Thursday-game inclusion policy,
 * and merges re-polled outcomes idempotently
 */

package logic

import (
	"survivor-pool/api/feed"
	"survivor-pool/api/schedule"
)

// Tie is the winner value recorded when neither competitor is flagged the
// winner of a completed game.
const Tie = "TIE"

// Outcome is the resolved result of one completed game. TiebreakerValue is
// always the combined score, tie or not.
type Outcome struct {
	Away            string
	Home            string
	Winner          string
	TiebreakerValue int
}

// Key identifies the outcome's matchup within its week.
func (o Outcome) Key() string {
	return o.Away + "@" + o.Home
}

// ResolveOutcomes derives Outcome records for a week from the live feed.
// Only completed games that appear in the week's schedule produce outcomes.
// When includeThursday is false, Thursday games are dropped entirely so that
// members who submit after Thursday's kickoff are neither penalized nor
// advantaged by an already-decided game.
// Preconditions: receives the week's scheduled matchups and the feed games
// Postconditions: returns the resolved outcomes in schedule order
func ResolveOutcomes(matchups []schedule.Matchup, games []feed.Game, includeThursday bool) []Outcome {
	byKey := make(map[string]feed.Game)
	for _, g := range games {
		if !g.Completed {
			continue
		}
		byKey[g.Competitors[0].Abbreviation+"@"+g.Competitors[1].Abbreviation] = g
	}

	var outcomes []Outcome
	for _, m := range EffectiveMatchups(matchups, includeThursday) {
		g, ok := byKey[m.Key()]
		if !ok {
			continue
		}
		outcomes = append(outcomes, resolveGame(g))
	}
	return outcomes
}

// EffectiveMatchups applies the inclusion policy to a week's schedule:
// Thursday games (day offset -3) are excluded when includeThursday is false.
func EffectiveMatchups(matchups []schedule.Matchup, includeThursday bool) []schedule.Matchup {
	if includeThursday {
		return matchups
	}
	var out []schedule.Matchup
	for _, m := range matchups {
		if m.DayOffset == -3 {
			continue
		}
		out = append(out, m)
	}
	return out
}

func resolveGame(g feed.Game) Outcome {
	away, home := g.Competitors[0], g.Competitors[1]
	winner := Tie
	if away.Winner {
		winner = away.Abbreviation
	} else if home.Winner {
		winner = home.Abbreviation
	}
	return Outcome{
		Away:            away.Abbreviation,
		Home:            home.Abbreviation,
		Winner:          winner,
		TiebreakerValue: away.Score + home.Score,
	}
}

// MergeOutcomes folds a fresh resolution into previously recorded outcomes.
// Re-polling the feed is safe: an unchanged outcome keeps the recorded value,
// a changed one is a feed correction and replaces it, and new outcomes are
// appended. The returned slice preserves recorded order with new outcomes in
// resolution order after it.
func MergeOutcomes(recorded []Outcome, resolved []Outcome) []Outcome {
	index := make(map[string]int, len(recorded))
	merged := make([]Outcome, len(recorded))
	copy(merged, recorded)
	for i, o := range merged {
		index[o.Key()] = i
	}

	for _, o := range resolved {
		if i, ok := index[o.Key()]; ok {
			if merged[i] != o {
				merged[i] = o
			}
			continue
		}
		index[o.Key()] = len(merged)
		merged = append(merged, o)
	}
	return merged
}
