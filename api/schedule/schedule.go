/* schedule.go
 * Contains the schedule model: normalizes the per-team schedule payloads from
 * the score feed into one Matchup row per real game, and provides the week
 * filters and kickoff helpers used by the scoring and aggregation engines
 */

package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"survivor-pool/api/feed"
)

// ErrUnavailable is returned when the schedule source data is missing or
// malformed. Every downstream computation depends on a complete schedule, so
// an empty season is never returned silently.
var ErrUnavailable = errors.New("schedule data unavailable")

// Team is one league team for a season, keyed by abbreviation.
type Team struct {
	ID           string
	Abbreviation string
	Location     string
	Name         string
	ByeWeek      int
}

// Matchup is one scheduled game. DayOffset encodes the kickoff day relative
// to Sunday: Thursday=-3, Friday=-2, Saturday=-1, Sunday=0, Monday=1.
type Matchup struct {
	Week         int
	Date         time.Time
	DayOffset    int
	Hour         int
	Minute       int
	DayName      string
	AwayTeam     string
	HomeTeam     string
	AwayLocation string
	AwayName     string
	HomeLocation string
	HomeName     string
}

// Key identifies a matchup within its week.
func (m Matchup) Key() string {
	return fmt.Sprintf("%s@%s", m.AwayTeam, m.HomeTeam)
}

// IsMondayNight reports whether the matchup counts for the Monday-night
// sub-pool: a Monday game with a late kickoff.
func (m Matchup) IsMondayNight() bool {
	return m.DayOffset == 1 && m.Hour >= 19
}

// dayOffsets maps kickoff weekday to the signed day offset. Tuesday and
// Wednesday games do not occur in this domain; encountering one is an error,
// not a silent mis-tag.
var dayOffsets = map[time.Weekday]int{
	time.Thursday: -3,
	time.Friday:   -2,
	time.Saturday: -1,
	time.Sunday:   0,
	time.Monday:   1,
}

// Build normalizes per-team schedule payloads into one Matchup per game.
// Each game appears in two team payloads; it is emitted once, attributed to
// the listed home side, when iterating the away team's entry.
// Preconditions: receives the validated TeamSchedule list for every team
// Postconditions: returns teams keyed by abbreviation and matchups sorted by
// week then kickoff, or ErrUnavailable / a day-offset error
func Build(payloads []feed.TeamSchedule) (map[string]Team, []Matchup, error) {
	if len(payloads) == 0 {
		return nil, nil, ErrUnavailable
	}

	teams := make(map[string]Team)
	byID := make(map[string]feed.TeamSchedule)
	for _, p := range payloads {
		if p.Abbreviation == "" || p.TeamID == "" {
			return nil, nil, fmt.Errorf("%w: team payload missing identity", ErrUnavailable)
		}
		if _, dup := teams[p.Abbreviation]; dup {
			return nil, nil, fmt.Errorf("%w: duplicate team %s", ErrUnavailable, p.Abbreviation)
		}
		teams[p.Abbreviation] = Team{
			ID:           p.TeamID,
			Abbreviation: p.Abbreviation,
			Location:     p.Location,
			Name:         p.Name,
			ByeWeek:      p.ByeWeek,
		}
		byID[p.TeamID] = p
	}

	var matchups []Matchup
	for _, p := range payloads {
		for _, g := range p.Games {
			// Only the away side emits the row, so each game appears once.
			if g.HomeTeamID == p.TeamID {
				continue
			}
			home, ok := byID[g.HomeTeamID]
			if !ok {
				return nil, nil, fmt.Errorf("%w: week %d game for %s references unknown home team %s",
					ErrUnavailable, g.Week, p.Abbreviation, g.HomeTeamID)
			}

			offset, ok := dayOffsets[g.Date.Weekday()]
			if !ok {
				return nil, nil, fmt.Errorf("week %d game %s@%s kicks off on a %s, which is not a valid game day",
					g.Week, p.Abbreviation, home.Abbreviation, g.Date.Weekday())
			}

			matchups = append(matchups, Matchup{
				Week:         g.Week,
				Date:         g.Date,
				DayOffset:    offset,
				Hour:         g.Date.Hour(),
				Minute:       g.Date.Minute(),
				DayName:      g.Date.Weekday().String(),
				AwayTeam:     p.Abbreviation,
				HomeTeam:     home.Abbreviation,
				AwayLocation: p.Location,
				AwayName:     p.Name,
				HomeLocation: home.Location,
				HomeName:     home.Name,
			})
		}
	}

	sort.Slice(matchups, func(i, j int) bool {
		if matchups[i].Week != matchups[j].Week {
			return matchups[i].Week < matchups[j].Week
		}
		return matchups[i].Date.Before(matchups[j].Date)
	})

	return teams, matchups, nil
}

// Week returns the matchups scheduled for one week, preserving kickoff order.
func Week(matchups []Matchup, week int) []Matchup {
	var out []Matchup
	for _, m := range matchups {
		if m.Week == week {
			out = append(out, m)
		}
	}
	return out
}

// TiebreakerMatchup designates the week's tiebreaker game: the matchup with
// the latest kickoff, which is the Monday night game in a normal week.
// Returns false if the week has no matchups.
func TiebreakerMatchup(matchups []Matchup, week int) (Matchup, bool) {
	weekMatchups := Week(matchups, week)
	if len(weekMatchups) == 0 {
		return Matchup{}, false
	}
	latest := weekMatchups[0]
	for _, m := range weekMatchups[1:] {
		if m.Date.After(latest.Date) {
			latest = m
		}
	}
	return latest, true
}
