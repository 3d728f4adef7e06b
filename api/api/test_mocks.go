/* test_mocks.go
 * Contains mock structures for testing the API package
 */

package api

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"survivor-pool/api/logic"
	"survivor-pool/api/schedule"
	"survivor-pool/api/store"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Storage for mock data
	Members       []string
	UserIDs       map[string]string // userid -> member name
	Sheets        map[int][]logic.PickSheet
	SurvivorPicks []logic.SurvivorPick
	Bonuses       map[int]map[string]int
	Outcomes      map[int][]logic.Outcome
	Schedule      []schedule.Matchup
	WeekResults   map[int]logic.WeekResult
	Standings     *store.StandingsDoc
	SurvivorState *store.SurvivorStateDoc

	// Error injection for testing error paths
	EnsureScheduleError  error
	ListMembersError     error
	FetchOutcomesError   error
	StoreWeekResultError error
	StoreStandingsError  error

	Season       int
	DatabaseName string
}

type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

type mockClient struct{}

func (m *mockClient) Disconnect(context.Context) error {
	return nil
}

// NewMockStore creates a new MockStore with empty season data
func NewMockStore(season int) *MockStore {
	return &MockStore{
		UserIDs:      make(map[string]string),
		Sheets:       make(map[int][]logic.PickSheet),
		Bonuses:      make(map[int]map[string]int),
		Outcomes:     make(map[int][]logic.Outcome),
		WeekResults:  make(map[int]logic.WeekResult),
		Season:       season,
		DatabaseName: "test_pool",
	}
}

func (m *MockStore) UpsertMember(name string, userID string) error {
	normalized := name
	for _, existing := range m.Members {
		if existing == normalized {
			return nil
		}
	}
	m.Members = append(m.Members, normalized)
	if userID != "" {
		m.UserIDs[userID] = normalized
	}
	return nil
}

func (m *MockStore) ListMembers() ([]string, error) {
	if m.ListMembersError != nil {
		return nil, m.ListMembersError
	}
	return m.Members, nil
}

func (m *MockStore) MemberByUserID(userID string) (string, error) {
	name, ok := m.UserIDs[userID]
	if !ok {
		return "", mongo.ErrNoDocuments
	}
	return name, nil
}

func (m *MockStore) StorePickSheet(week int, sheet logic.PickSheet) error {
	sheets := m.Sheets[week]
	for i, s := range sheets {
		if s.Member == sheet.Member {
			sheets[i] = sheet
			return nil
		}
	}
	m.Sheets[week] = append(sheets, sheet)
	return nil
}

func (m *MockStore) FetchPickSheets(week int) ([]logic.PickSheet, error) {
	return m.Sheets[week], nil
}

func (m *MockStore) StoreSurvivorPick(pick logic.SurvivorPick) error {
	for i, p := range m.SurvivorPicks {
		if p.Member == pick.Member && p.Week == pick.Week {
			m.SurvivorPicks[i] = pick
			return nil
		}
	}
	m.SurvivorPicks = append(m.SurvivorPicks, pick)
	return nil
}

func (m *MockStore) FetchSurvivorPicks() ([]logic.SurvivorPick, error) {
	return m.SurvivorPicks, nil
}

func (m *MockStore) StoreBonus(week int, matchup string, multiplier int) error {
	if m.Bonuses[week] == nil {
		m.Bonuses[week] = make(map[string]int)
	}
	m.Bonuses[week][matchup] = multiplier
	return nil
}

func (m *MockStore) FetchBonuses(week int) (map[string]int, error) {
	return m.Bonuses[week], nil
}

func (m *MockStore) StoreOutcomes(week int, outcomes []logic.Outcome) error {
	m.Outcomes[week] = outcomes
	return nil
}

func (m *MockStore) FetchOutcomes(week int) ([]logic.Outcome, error) {
	if m.FetchOutcomesError != nil {
		return nil, m.FetchOutcomesError
	}
	return m.Outcomes[week], nil
}

func (m *MockStore) FetchAllOutcomes() (map[int][]logic.Outcome, error) {
	if m.FetchOutcomesError != nil {
		return nil, m.FetchOutcomesError
	}
	return m.Outcomes, nil
}

func (m *MockStore) StoreSchedule(matchups []schedule.Matchup) error {
	m.Schedule = matchups
	return nil
}

func (m *MockStore) FetchSchedule() ([]schedule.Matchup, error) {
	return m.Schedule, nil
}

func (m *MockStore) EnsureSchedule() error {
	if m.EnsureScheduleError != nil {
		return m.EnsureScheduleError
	}
	if len(m.Schedule) == 0 {
		return fmt.Errorf("no schedule stored")
	}
	return nil
}

func (m *MockStore) StoreWeekResult(result logic.WeekResult) error {
	if m.StoreWeekResultError != nil {
		return m.StoreWeekResultError
	}
	m.WeekResults[result.Week] = result
	return nil
}

func (m *MockStore) FetchWeekResult(week int) (logic.WeekResult, error) {
	result, ok := m.WeekResults[week]
	if !ok {
		return logic.WeekResult{}, mongo.ErrNoDocuments
	}
	return result, nil
}

func (m *MockStore) StoreStandings(throughWeek int, provisional bool, rows []logic.SummaryRow) error {
	if m.StoreStandingsError != nil {
		return m.StoreStandingsError
	}
	doc := store.StandingsDoc{Season: m.Season, ThroughWeek: throughWeek, Provisional: provisional}
	for _, row := range rows {
		doc.Rows = append(doc.Rows, store.StandingsRow{
			Member:         row.Member,
			TotalPoints:    row.TotalPoints,
			TotalRank:      row.TotalRank,
			AvgPercent:     row.AvgPercent,
			AvgPercentRank: row.AvgPercentRank,
			MNFPoints:      row.MNFPoints,
			WeeklyWins:     row.WeeklyWins,
			SurvivorStatus: row.SurvivorStatus,
		})
	}
	m.Standings = &doc
	return nil
}

func (m *MockStore) FetchStandings() (store.StandingsDoc, error) {
	if m.Standings == nil {
		return store.StandingsDoc{}, mongo.ErrNoDocuments
	}
	return *m.Standings, nil
}

func (m *MockStore) StoreSurvivorState(report logic.SurvivorReport) error {
	doc := store.SurvivorStateDoc{
		Season:       m.Season,
		StartWeek:    report.StartWeek,
		ThroughWeek:  report.ThroughWeek,
		TotalMembers: report.TotalMembers,
		Done:         report.Done(),
	}
	for _, st := range report.Statuses {
		doc.Statuses = append(doc.Statuses, store.SurvivorStatusEntry{
			Member:         st.Member,
			EliminatedWeek: st.EliminatedWeek,
		})
	}
	m.SurvivorState = &doc
	return nil
}

func (m *MockStore) FetchSurvivorState() (store.SurvivorStateDoc, error) {
	if m.SurvivorState == nil {
		return store.SurvivorStateDoc{}, mongo.ErrNoDocuments
	}
	return *m.SurvivorState, nil
}

func (m *MockStore) GetSeason() int {
	return m.Season
}

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: m.DatabaseName}
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// Ensure MockStore implements the store interface
var _ store.Interface = (*MockStore)(nil)
