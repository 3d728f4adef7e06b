/* models.go
 * This file contains the structs and conversion helpers that relate to DB
 * documents. The derived documents (week results, standings, survivor state)
 * are published views: they are regenerated from source data on every
 * recompute and never hand-edited
 */

package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"survivor-pool/api/logic"
	"survivor-pool/api/schedule"
)

// MemberDoc is one pool member for a season.
type MemberDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Season int                `bson:"season"`
	UserID string             `bson:"userid,omitempty"`
	Name   string             `bson:"name"`
}

// PickSheetDoc is one member's weekly pick sheet.
type PickSheetDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Season          int                `bson:"season"`
	Week            int                `bson:"week"`
	Member          string             `bson:"member"`
	Picks           map[string]string  `bson:"picks"`
	TiebreakerGuess *int               `bson:"tiebreaker_guess,omitempty"`
}

// SurvivorPickDoc is one member's weekly survivor pick.
type SurvivorPickDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Season       int                `bson:"season"`
	Week         int                `bson:"week"`
	Member       string             `bson:"member"`
	SelectedTeam string             `bson:"selected_team"`
}

// BonusDoc is an admin-set per-matchup bonus weight.
type BonusDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Season     int                `bson:"season"`
	Week       int                `bson:"week"`
	Matchup    string             `bson:"matchup"`
	Multiplier int                `bson:"multiplier"`
}

// OutcomeDoc is one recorded game outcome.
type OutcomeDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Season          int                `bson:"season"`
	Week            int                `bson:"week"`
	Away            string             `bson:"away"`
	Home            string             `bson:"home"`
	Winner          string             `bson:"winner"`
	TiebreakerValue int                `bson:"tiebreaker_value"`
}

// MatchupDoc is one scheduled game row.
type MatchupDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Season       int                `bson:"season"`
	Week         int                `bson:"week"`
	Date         time.Time          `bson:"date"`
	DayOffset    int                `bson:"day_offset"`
	Hour         int                `bson:"hour"`
	Minute       int                `bson:"minute"`
	DayName      string             `bson:"day_name"`
	AwayTeam     string             `bson:"away_team"`
	HomeTeam     string             `bson:"home_team"`
	AwayLocation string             `bson:"away_location"`
	AwayName     string             `bson:"away_name"`
	HomeLocation string             `bson:"home_location"`
	HomeName     string             `bson:"home_name"`
}

// WeekScoreEntry is one member's line inside a published week result.
type WeekScoreEntry struct {
	Member         string   `bson:"member"`
	Points         int      `bson:"points"`
	Rank           int      `bson:"rank"`
	PercentCorrect *float64 `bson:"percent_correct,omitempty"`
}

// WeekResultDoc is the published scoring output for one week.
type WeekResultDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Season   int                `bson:"season"`
	Week     int                `bson:"week"`
	Complete bool               `bson:"complete"`
	Tie      bool               `bson:"tie"`
	Winners  []string           `bson:"winners,omitempty"`
	Scores   []WeekScoreEntry   `bson:"scores"`
	Updated  time.Time          `bson:"updated_at"`
}

// StandingsRow is one member's line in the published season standings.
type StandingsRow struct {
	Member         string   `bson:"member"`
	TotalPoints    int      `bson:"total_points"`
	TotalRank      int      `bson:"total_rank"`
	AvgPercent     *float64 `bson:"avg_percent,omitempty"`
	AvgPercentRank int      `bson:"avg_percent_rank,omitempty"`
	MNFPoints      int      `bson:"mnf_points"`
	WeeklyWins     int      `bson:"weekly_wins"`
	SurvivorStatus string   `bson:"survivor_status"`
}

// StandingsDoc is the published season leaderboard. Provisional marks
// standings that include a partial week.
type StandingsDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Season      int                `bson:"season"`
	ThroughWeek int                `bson:"through_week"`
	Provisional bool               `bson:"provisional"`
	Rows        []StandingsRow     `bson:"rows"`
	Updated     time.Time          `bson:"updated_at"`
}

// SurvivorStatusEntry is one member's line in the published survivor state.
type SurvivorStatusEntry struct {
	Member         string `bson:"member"`
	EliminatedWeek int    `bson:"eliminated_week"` // 0 while alive
}

// SurvivorStateDoc is the published survivor pool state.
type SurvivorStateDoc struct {
	ID           primitive.ObjectID    `bson:"_id,omitempty"`
	Season       int                   `bson:"season"`
	StartWeek    int                   `bson:"start_week"`
	ThroughWeek  int                   `bson:"through_week"`
	TotalMembers int                   `bson:"total_members"`
	Done         bool                  `bson:"done"`
	Statuses     []SurvivorStatusEntry `bson:"statuses"`
	Updated      time.Time             `bson:"updated_at"`
}

// toMatchup converts a stored schedule row back to the model type.
func (d MatchupDoc) toMatchup() schedule.Matchup {
	return schedule.Matchup{
		Week:         d.Week,
		Date:         d.Date,
		DayOffset:    d.DayOffset,
		Hour:         d.Hour,
		Minute:       d.Minute,
		DayName:      d.DayName,
		AwayTeam:     d.AwayTeam,
		HomeTeam:     d.HomeTeam,
		AwayLocation: d.AwayLocation,
		AwayName:     d.AwayName,
		HomeLocation: d.HomeLocation,
		HomeName:     d.HomeName,
	}
}

// toOutcome converts a stored outcome back to the model type.
func (d OutcomeDoc) toOutcome() logic.Outcome {
	return logic.Outcome{
		Away:            d.Away,
		Home:            d.Home,
		Winner:          d.Winner,
		TiebreakerValue: d.TiebreakerValue,
	}
}
