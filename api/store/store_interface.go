/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"survivor-pool/api/logic"
	"survivor-pool/api/schedule"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	UpsertMember(name string, userID string) error
	ListMembers() ([]string, error)
	MemberByUserID(userID string) (string, error)

	StorePickSheet(week int, sheet logic.PickSheet) error
	FetchPickSheets(week int) ([]logic.PickSheet, error)
	StoreSurvivorPick(pick logic.SurvivorPick) error
	FetchSurvivorPicks() ([]logic.SurvivorPick, error)

	StoreBonus(week int, matchup string, multiplier int) error
	FetchBonuses(week int) (map[string]int, error)

	StoreOutcomes(week int, outcomes []logic.Outcome) error
	FetchOutcomes(week int) ([]logic.Outcome, error)
	FetchAllOutcomes() (map[int][]logic.Outcome, error)

	StoreSchedule(matchups []schedule.Matchup) error
	FetchSchedule() ([]schedule.Matchup, error)
	EnsureSchedule() error

	StoreWeekResult(result logic.WeekResult) error
	FetchWeekResult(week int) (logic.WeekResult, error)
	StoreStandings(throughWeek int, provisional bool, rows []logic.SummaryRow) error
	FetchStandings() (StandingsDoc, error)
	StoreSurvivorState(report logic.SurvivorReport) error
	FetchSurvivorState() (SurvivorStateDoc, error)

	// Getter methods for accessing fields
	GetSeason() int
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetSeason returns the season year the store is keyed by
func (s *Store) GetSeason() int {
	return s.Season
}

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
