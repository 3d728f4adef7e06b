/* parser.go
 * Contains the parse-and-validate boundary between the raw feed JSON and the
 * typed models. Shape mismatches fail here with a descriptive error rather
 * than propagating zero values into the scoring logic.
 */

package feed

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseScoreboard decodes and validates a scoreboard payload.
// Preconditions: receives the raw response body from the scoreboard endpoint
// Postconditions: returns a validated Scoreboard, or an error naming the first
// missing or malformed field
func ParseScoreboard(body []byte) (*Scoreboard, error) {
	var raw rawScoreboard
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("scoreboard is not valid JSON: %w", err)
	}

	if raw.Season == nil || raw.Season.Year == nil || raw.Season.Type == nil {
		return nil, fmt.Errorf("scoreboard is missing season year/type")
	}
	if raw.Week == nil || raw.Week.Number == nil {
		return nil, fmt.Errorf("scoreboard is missing week number")
	}

	sb := &Scoreboard{
		Year:  *raw.Season.Year,
		Week:  *raw.Week.Number,
		Phase: *raw.Season.Type,
	}

	for i, entry := range raw.Calendar {
		if entry.Label == nil || entry.Weeks == nil {
			return nil, fmt.Errorf("calendar entry %d is missing label or weeks", i)
		}
		sb.Calendar = append(sb.Calendar, PhaseWeeks{Phase: *entry.Label, Weeks: *entry.Weeks})
	}

	for i, event := range raw.Events {
		game, err := parseEvent(event)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		sb.Games = append(sb.Games, game)
	}

	return sb, nil
}

// parseEvent validates a single scoreboard event. Every game must have
// exactly two competitors, one home and one away; the returned Game always
// has the away side first.
func parseEvent(event rawEvent) (Game, error) {
	if event.Date == nil || event.Completed == nil {
		return Game{}, fmt.Errorf("missing date or completed flag")
	}
	date, err := time.Parse(time.RFC3339, *event.Date)
	if err != nil {
		return Game{}, fmt.Errorf("bad date %q: %w", *event.Date, err)
	}
	if len(event.Competitors) != 2 {
		return Game{}, fmt.Errorf("expected 2 competitors but got %d", len(event.Competitors))
	}

	var game Game
	game.Date = date
	game.Completed = *event.Completed

	homeSeen, awaySeen := false, false
	for _, c := range event.Competitors {
		if c.Abbreviation == nil || c.Score == nil || c.HomeAway == nil {
			return Game{}, fmt.Errorf("competitor is missing abbreviation, score or homeAway")
		}
		comp := Competitor{
			Abbreviation: *c.Abbreviation,
			Score:        *c.Score,
			Winner:       c.Winner,
		}
		switch *c.HomeAway {
		case "home":
			comp.Home = true
			game.Competitors[1] = comp
			homeSeen = true
		case "away":
			game.Competitors[0] = comp
			awaySeen = true
		default:
			return Game{}, fmt.Errorf("unknown homeAway value %q", *c.HomeAway)
		}
	}
	if !homeSeen || !awaySeen {
		return Game{}, fmt.Errorf("game does not have one home and one away competitor")
	}

	return game, nil
}

// ParseTeamSchedule decodes and validates a per-team schedule payload.
// Preconditions: receives the raw response body from the team schedule endpoint
// Postconditions: returns a validated TeamSchedule, or an error naming the
// first missing or malformed field
func ParseTeamSchedule(body []byte) (*TeamSchedule, error) {
	var raw rawTeamSchedule
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("team schedule is not valid JSON: %w", err)
	}

	if raw.Team == nil || raw.Team.ID == nil || raw.Team.Abbreviation == nil ||
		raw.Team.Location == nil || raw.Team.Name == nil {
		return nil, fmt.Errorf("team schedule is missing team identity fields")
	}
	if raw.ByeWeek == nil {
		return nil, fmt.Errorf("team schedule for %s is missing byeWeek", *raw.Team.Abbreviation)
	}

	ts := &TeamSchedule{
		TeamID:       *raw.Team.ID,
		Abbreviation: *raw.Team.Abbreviation,
		Location:     *raw.Team.Location,
		Name:         *raw.Team.Name,
		ByeWeek:      *raw.ByeWeek,
	}

	for i, g := range raw.Games {
		if g.Week == nil || g.Date == nil || g.HomeTeamID == nil || g.AwayTeamID == nil {
			return nil, fmt.Errorf("game %d for %s is missing fields", i, ts.Abbreviation)
		}
		date, err := time.Parse(time.RFC3339, *g.Date)
		if err != nil {
			return nil, fmt.Errorf("game %d for %s has bad date %q: %w", i, ts.Abbreviation, *g.Date, err)
		}
		ts.Games = append(ts.Games, TeamGame{
			Week:       *g.Week,
			Date:       date,
			HomeTeamID: *g.HomeTeamID,
			AwayTeamID: *g.AwayTeamID,
		})
	}

	return ts, nil
}
