/* api.go
 * This file contains the public methods for interacting with this package.
 * For consistent results, functions should only be called from this file,
 * not the sub packages for logic, feed and store. Every recompute runs under
 * the season lock so concurrent triggers cannot interleave partial updates
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"survivor-pool/api/feed"
	"survivor-pool/api/logic"
	"survivor-pool/api/schedule"
	"survivor-pool/api/shared"
	"survivor-pool/api/store"
)

// API provides methods for interacting with the survivor pool data layer.
type API struct {
	Store  store.Interface
	Feed   *feed.Client
	Config shared.PoolConfig

	// Serializes recompute-and-publish for the season. The derived views
	// must never mix the output of two overlapping recomputes.
	mu sync.Mutex
}

// NewAPI creates a new API instance with the provided configuration.
func NewAPI(dbName string, mongoURI string, season int, feedClient *feed.Client, cfg shared.PoolConfig) (*API, error) {
	if dbName == "" || season == 0 {
		return nil, fmt.Errorf("dbName and season are required")
	}
	if cfg.SurvivorStart < 1 {
		cfg.SurvivorStart = 1
	}

	s, err := store.NewStore(dbName, mongoURI, season)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:  s,
		Feed:   feedClient,
		Config: cfg,
	}, nil
}

// RegisterMember adds a member to the season roster. Names are normalized to
// title case; registering an existing name is a no-op apart from updating
// the chat user id.
func (a *API) RegisterMember(user shared.Member) error {
	return a.Store.UpsertMember(user.Name, user.UserID)
}

// SyncSchedule fetches the season schedule from the feed, builds the matchup
// model and stores it. Must run once before any week can be scored.
// Preconditions: receives a context and the feed team ids for the league
// Postconditions: the schedule collection is populated, or an error is
// returned and any previously stored schedule is kept
func (a *API) SyncSchedule(ctx context.Context, teamIDs []string) error {
	payloads, err := a.Feed.FetchTeamSchedules(ctx, a.Store.GetSeason(), teamIDs)
	if err != nil {
		return err
	}
	_, matchups, err := schedule.Build(payloads)
	if err != nil {
		return err
	}
	return a.Store.StoreSchedule(matchups)
}

// SyncOutcomes polls the score feed for one week and records the resolved
// outcomes. Safe to call repeatedly: recording is idempotent and a changed
// winner from the feed is treated as a correction.
func (a *API) SyncOutcomes(ctx context.Context, week int) error {
	if err := a.Store.EnsureSchedule(); err != nil {
		return err
	}
	matchups, err := a.Store.FetchSchedule()
	if err != nil {
		return err
	}

	sb, err := a.Feed.FetchScoreboard(ctx, a.Store.GetSeason(), week)
	if err != nil {
		return err
	}

	// Record every decided game, Thursday included. The latecomer policy
	// only affects scoring, which filters matchups itself; survivor picks
	// need the full outcome set.
	resolved := logic.ResolveOutcomes(schedule.Week(matchups, week), sb.Games, true)
	recorded, err := a.Store.FetchOutcomes(week)
	if err != nil {
		return err
	}
	merged := logic.MergeOutcomes(recorded, resolved)
	return a.Store.StoreOutcomes(week, merged)
}

// SetPicks records a member's weekly pick sheet. The teams are the member's
// winner picks in kickoff order for the week's matchups, with an optional
// combined-score tiebreaker guess.
// Preconditions: receives the member, the week, one team name per matchup in
// kickoff order and the optional guess
// Postconditions: the pick sheet is stored, or an error naming the invalid
// team(s) is returned and the stored sheet is untouched
func (a *API) SetPicks(user shared.Member, week int, teams []string, tiebreakerGuess *int) error {
	if err := a.Store.EnsureSchedule(); err != nil {
		return err
	}
	matchups, err := a.Store.FetchSchedule()
	if err != nil {
		return err
	}
	weekMatchups := schedule.Week(matchups, week)
	if len(weekMatchups) == 0 {
		return fmt.Errorf("week %d has no scheduled matchups", week)
	}
	if len(teams) != len(weekMatchups) {
		return fmt.Errorf("week %d requires %d picks in kickoff order but got %d", week, len(weekMatchups), len(teams))
	}

	member := shared.NormalizeName(user.Name)
	sheet := logic.PickSheet{
		Member:          member,
		Picks:           make(map[string]string, len(weekMatchups)),
		TiebreakerGuess: tiebreakerGuess,
	}

	var invalid []string
	for i, m := range weekMatchups {
		team := stripQuotes(teams[i])
		abbrev, ok := matchTeamInMatchup(team, m)
		if !ok {
			invalid = append(invalid, fmt.Sprintf("'%s' (game %d is %s at %s)", team, i+1, m.AwayName, m.HomeName))
			continue
		}
		sheet.Picks[m.Key()] = abbrev
	}
	if len(invalid) > 0 {
		return fmt.Errorf("the following picks are invalid: %s", strings.Join(invalid, ", "))
	}

	if err := a.Store.UpsertMember(user.Name, user.UserID); err != nil {
		return err
	}
	return a.Store.StorePickSheet(week, sheet)
}

// SetSurvivorPick records a member's single survivor pick for a week.
func (a *API) SetSurvivorPick(user shared.Member, week int, team string) error {
	if err := a.Store.EnsureSchedule(); err != nil {
		return err
	}
	matchups, err := a.Store.FetchSchedule()
	if err != nil {
		return err
	}
	weekMatchups := schedule.Week(matchups, week)
	if len(weekMatchups) == 0 {
		return fmt.Errorf("week %d has no scheduled matchups", week)
	}

	abbrev := ""
	for _, m := range weekMatchups {
		if got, ok := matchTeamInMatchup(stripQuotes(team), m); ok {
			abbrev = got
			break
		}
	}
	if abbrev == "" {
		return fmt.Errorf("'%s' does not play in week %d", team, week)
	}

	if err := a.Store.UpsertMember(user.Name, user.UserID); err != nil {
		return err
	}
	return a.Store.StoreSurvivorPick(logic.SurvivorPick{
		Member:       shared.NormalizeName(user.Name),
		Week:         week,
		SelectedTeam: abbrev,
	})
}

// SetBonus records an admin bonus weight for one matchup.
func (a *API) SetBonus(week int, matchup string, multiplier int) error {
	if !a.Config.BonusEnabled {
		return fmt.Errorf("bonus weights are disabled for this pool")
	}
	return a.Store.StoreBonus(week, matchup, multiplier)
}

// RecomputeWeek rescores one week from source data and publishes the
// result. Runs under the season lock.
func (a *API) RecomputeWeek(week int) (logic.WeekResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	result, err := a.scoreWeek(week)
	if err != nil {
		return logic.WeekResult{}, err
	}
	if err := a.Store.StoreWeekResult(result); err != nil {
		return logic.WeekResult{}, err
	}
	return result, nil
}

// RecomputeSeason rebuilds every derived view from source data: per-week
// results, season standings (general and Monday-night sub-pool) and survivor
// state, through the given week. Everything is computed before anything is
// published, so a failure leaves the previously published views untouched.
func (a *API) RecomputeSeason(throughWeek int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.Store.EnsureSchedule(); err != nil {
		return err
	}
	matchups, err := a.Store.FetchSchedule()
	if err != nil {
		return err
	}
	members, err := a.Store.ListMembers()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return fmt.Errorf("no members registered for season %d", a.Store.GetSeason())
	}
	outcomesByWeek, err := a.Store.FetchAllOutcomes()
	if err != nil {
		return err
	}

	var weekResults, mnfResults []logic.WeekResult
	pastDue := make(map[int]bool)
	provisional := false

	for week := 1; week <= throughWeek; week++ {
		weekMatchups := schedule.Week(matchups, week)
		if len(weekMatchups) == 0 {
			continue
		}
		sheets, err := a.Store.FetchPickSheets(week)
		if err != nil {
			return err
		}
		bonuses, err := a.Store.FetchBonuses(week)
		if err != nil {
			return err
		}

		result, err := logic.ScoreWeek(week, weekMatchups, members, sheets, outcomesByWeek[week], bonuses, a.Config)
		if err != nil {
			return err
		}
		weekResults = append(weekResults, result)
		pastDue[week] = result.Complete
		if !result.Complete {
			provisional = true
		}

		var mnfMatchups []schedule.Matchup
		for _, m := range weekMatchups {
			if m.IsMondayNight() {
				mnfMatchups = append(mnfMatchups, m)
			}
		}
		if len(mnfMatchups) > 0 {
			// Raw-count semantics for the sub-pool: no bonuses, no tiebreak.
			mnfCfg := a.Config
			mnfCfg.BonusEnabled = false
			mnfCfg.TiebreakerEnabled = false
			mnfResult, err := logic.ScoreWeek(week, mnfMatchups, members, sheets, outcomesByWeek[week], nil, mnfCfg)
			if err != nil {
				return err
			}
			mnfResults = append(mnfResults, mnfResult)
		}
	}

	totals := logic.Aggregate(members, weekResults)
	mnfTotals := logic.Aggregate(members, mnfResults)
	survivorPicks, err := a.Store.FetchSurvivorPicks()
	if err != nil {
		return err
	}
	survivor := logic.EvaluateSurvivor(members, survivorPicks, outcomesByWeek, pastDue,
		a.Config.SurvivorStart, throughWeek)
	rows := logic.BuildSummary(members, totals, mnfTotals, weekResults, &survivor)

	// Publish phase. All computation succeeded; write the derived views.
	for _, result := range weekResults {
		if err := a.Store.StoreWeekResult(result); err != nil {
			return err
		}
	}
	if err := a.Store.StoreStandings(throughWeek, provisional, rows); err != nil {
		return err
	}
	return a.Store.StoreSurvivorState(survivor)
}

// scoreWeek computes one week's result from source data without publishing.
func (a *API) scoreWeek(week int) (logic.WeekResult, error) {
	if err := a.Store.EnsureSchedule(); err != nil {
		return logic.WeekResult{}, err
	}
	matchups, err := a.Store.FetchSchedule()
	if err != nil {
		return logic.WeekResult{}, err
	}
	weekMatchups := schedule.Week(matchups, week)
	if len(weekMatchups) == 0 {
		return logic.WeekResult{}, fmt.Errorf("week %d has no scheduled matchups", week)
	}
	members, err := a.Store.ListMembers()
	if err != nil {
		return logic.WeekResult{}, err
	}
	sheets, err := a.Store.FetchPickSheets(week)
	if err != nil {
		return logic.WeekResult{}, err
	}
	outcomes, err := a.Store.FetchOutcomes(week)
	if err != nil {
		return logic.WeekResult{}, err
	}
	bonuses, err := a.Store.FetchBonuses(week)
	if err != nil {
		return logic.WeekResult{}, err
	}
	return logic.ScoreWeek(week, weekMatchups, members, sheets, outcomes, bonuses, a.Config)
}

// GetStandings fetches the published leaderboard and generates a response
// string, best total first.
func (a *API) GetStandings() (string, error) {
	doc, err := a.Store.FetchStandings()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("no standings published yet, run a recompute first")
		}
		return "", err
	}

	rows := doc.Rows
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TotalRank < rows[j].TotalRank
	})

	var response strings.Builder
	if doc.Provisional {
		response.WriteString(fmt.Sprintf("Standings through week %d (provisional, games still in progress):\n", doc.ThroughWeek))
	} else {
		response.WriteString(fmt.Sprintf("Standings through week %d:\n", doc.ThroughWeek))
	}
	for _, row := range rows {
		line := fmt.Sprintf("%d. %s: %d pts", row.TotalRank, row.Member, row.TotalPoints)
		if row.AvgPercent != nil {
			line += fmt.Sprintf(", avg %.1f%%", *row.AvgPercent*100)
		}
		if row.WeeklyWins > 0 {
			line += fmt.Sprintf(", %d weekly win(s)", row.WeeklyWins)
		}
		line += fmt.Sprintf(", survivor: %s\n", row.SurvivorStatus)
		response.WriteString(line)
	}
	return response.String(), nil
}

// GetSurvivorReport fetches the published survivor state and generates a
// response string.
func (a *API) GetSurvivorReport() (string, error) {
	doc, err := a.Store.FetchSurvivorState()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("no survivor state published yet, run a recompute first")
		}
		return "", err
	}

	remaining := 0
	for _, st := range doc.Statuses {
		if st.EliminatedWeek == 0 {
			remaining++
		}
	}

	var response strings.Builder
	response.WriteString(fmt.Sprintf("Survivor pool through week %d: %d of %d remaining\n",
		doc.ThroughWeek, remaining, doc.TotalMembers))
	if doc.Done {
		if remaining == 0 {
			response.WriteString("Everyone has been eliminated. The pot carries or splits by house rule.\n")
		} else {
			response.WriteString("The survivor contest is over.\n")
		}
	}
	for _, st := range doc.Statuses {
		if st.EliminatedWeek == 0 {
			response.WriteString(fmt.Sprintf("- %s: IN\n", st.Member))
		} else {
			response.WriteString(fmt.Sprintf("- %s: OUT (week %d)\n", st.Member, st.EliminatedWeek))
		}
	}
	return response.String(), nil
}

// GetWeekReport fetches the published result for one week and generates a
// response string, flagging provisional (partial week) standings.
func (a *API) GetWeekReport(week int) (string, error) {
	result, err := a.Store.FetchWeekResult(week)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", fmt.Errorf("week %d has not been scored yet", week)
		}
		return "", err
	}

	var response strings.Builder
	if result.Complete {
		if result.Tie {
			response.WriteString(fmt.Sprintf("Week %d final - %d-way tie: %s\n",
				week, len(result.Winners), strings.Join(result.Winners, ", ")))
		} else if len(result.Winners) == 1 {
			response.WriteString(fmt.Sprintf("Week %d final - winner: %s\n", week, result.Winners[0]))
		}
	} else {
		response.WriteString(fmt.Sprintf("Week %d (provisional, games still in progress):\n", week))
	}

	scores := result.Scores
	sort.Slice(scores, func(i, j int) bool {
		return scores[i].Points > scores[j].Points
	})
	for _, s := range scores {
		if s.PercentCorrect == nil {
			response.WriteString(fmt.Sprintf("- %s: no picks submitted\n", s.Member))
			continue
		}
		response.WriteString(fmt.Sprintf("- %s: %d pts (rank %d, %.0f%%)\n",
			s.Member, s.Points, s.Rank, *s.PercentCorrect*100))
	}
	return response.String(), nil
}

// GetUpcomingMatchups lists the week's games that have not kicked off yet.
func (a *API) GetUpcomingMatchups(week int) ([]string, error) {
	if err := a.Store.EnsureSchedule(); err != nil {
		return nil, err
	}
	matchups, err := a.Store.FetchSchedule()
	if err != nil {
		return nil, err
	}

	var upcoming []string
	for _, m := range schedule.Week(matchups, week) {
		if m.Date.Before(time.Now()) {
			continue
		}
		upcoming = append(upcoming, fmt.Sprintf("- %s %s at %s %s (%s %02d:%02d): <t:%d>\n",
			m.AwayLocation, m.AwayName, m.HomeLocation, m.HomeName,
			m.DayName, m.Hour, m.Minute, m.Date.Unix()))
	}
	return upcoming, nil
}

// GetPoolInfo returns basic facts about the pool: season, member count and
// the recognized option settings.
func (a *API) GetPoolInfo() ([]string, error) {
	members, err := a.Store.ListMembers()
	if err != nil {
		return nil, err
	}

	var values []string
	values = append(values, fmt.Sprintf("Pool: %s", a.Store.GetDatabase().Name()))
	values = append(values, fmt.Sprintf("Season: %d", a.Store.GetSeason()))
	values = append(values, fmt.Sprintf("Members: %d", len(members)))
	values = append(values, fmt.Sprintf("Tiebreaker: %t", a.Config.TiebreakerEnabled))
	values = append(values, fmt.Sprintf("Bonus weights: %t (MNF double: %t)", a.Config.BonusEnabled, a.Config.MNFDouble))
	values = append(values, fmt.Sprintf("Thursday games count for latecomers: %t", a.Config.TNFCountsForLatecomers))
	values = append(values, fmt.Sprintf("Survivor start week: %d", a.Config.SurvivorStart))
	return values, nil
}

// stripQuotes removes plain and smart double quotes from user input.
func stripQuotes(s string) string {
	s = strings.ReplaceAll(s, "\"", "")
	s = strings.ReplaceAll(s, "“", "")
	s = strings.ReplaceAll(s, "”", "")
	return strings.TrimSpace(s)
}

// matchTeamInMatchup fuzzy-matches a user-entered team name against the two
// sides of a matchup and returns the matched side's abbreviation.
func matchTeamInMatchup(team string, m schedule.Matchup) (string, bool) {
	candidates := []string{
		m.AwayTeam,
		fmt.Sprintf("%s %s", m.AwayLocation, m.AwayName),
		m.AwayName,
		m.HomeTeam,
		fmt.Sprintf("%s %s", m.HomeLocation, m.HomeName),
		m.HomeName,
	}
	matched, _ := logic.CheckTeamNames([]string{team}, candidates)
	if len(matched) == 0 {
		return "", false
	}
	switch matched[0] {
	case m.AwayTeam, fmt.Sprintf("%s %s", m.AwayLocation, m.AwayName), m.AwayName:
		return m.AwayTeam, true
	default:
		return m.HomeTeam, true
	}
}
