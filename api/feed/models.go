/* models.go
 * This file contains the typed models for the score feed payloads. The raw
 * wire structs mirror the feed JSON exactly; the exported types are the
 * validated forms the rest of the application consumes.
 */

package feed

import "time"

// Scoreboard is the validated live-score payload for one week.
type Scoreboard struct {
	Year     int
	Week     int
	Phase    string // "pre", "regular" or "post"
	Calendar []PhaseWeeks
	Games    []Game
}

// PhaseWeeks is one entry of the season calendar: how many weeks a phase has.
type PhaseWeeks struct {
	Phase string
	Weeks int
}

// Game is a single game from the scoreboard feed. Competitors[0] is always
// the away side and Competitors[1] the home side after validation.
type Game struct {
	Date        time.Time
	Completed   bool
	Competitors [2]Competitor
}

// Competitor is one side of a game.
type Competitor struct {
	Abbreviation string
	Score        int
	Home         bool
	Winner       bool
}

// TeamSchedule is the validated per-team season schedule payload.
type TeamSchedule struct {
	TeamID       string
	Abbreviation string
	Location     string
	Name         string
	ByeWeek      int
	Games        []TeamGame
}

// TeamGame is one scheduled game from a team's season schedule.
type TeamGame struct {
	Week       int
	Date       time.Time
	HomeTeamID string
	AwayTeamID string
}

// Raw wire structs. Pointer fields distinguish a missing key from a zero
// value so the parser can fail fast on shape mismatches.

type rawScoreboard struct {
	Season *struct {
		Year *int    `json:"year"`
		Type *string `json:"type"`
	} `json:"season"`
	Week *struct {
		Number *int `json:"number"`
	} `json:"week"`
	Calendar []struct {
		Label *string `json:"label"`
		Weeks *int    `json:"weeks"`
	} `json:"calendar"`
	Events []rawEvent `json:"events"`
}

type rawEvent struct {
	Date      *string `json:"date"`
	Completed *bool   `json:"completed"`
	Competitors []struct {
		Abbreviation *string `json:"abbreviation"`
		Score        *int    `json:"score"`
		HomeAway     *string `json:"homeAway"`
		Winner       bool    `json:"winner"`
	} `json:"competitors"`
}

type rawTeamSchedule struct {
	Team *struct {
		ID           *string `json:"id"`
		Abbreviation *string `json:"abbreviation"`
		Location     *string `json:"location"`
		Name         *string `json:"name"`
	} `json:"team"`
	ByeWeek *int `json:"byeWeek"`
	Games   []struct {
		Week       *int    `json:"week"`
		Date       *string `json:"date"`
		HomeTeamID *string `json:"homeTeamId"`
		AwayTeamID *string `json:"awayTeamId"`
	} `json:"games"`
}
