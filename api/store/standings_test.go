/* standings_test.go
 * Contains unit tests for standings.go
 */

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"survivor-pool/api/logic"
)

func TestStoreWeekResult_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("publishes a week result", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.WeekResults = mt.Coll

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		pct := 0.75
		err := store.StoreWeekResult(logic.WeekResult{
			Week:     1,
			Complete: true,
			Winners:  []string{"Alice"},
			Scores: []logic.WeekScore{
				{Member: "Alice", Week: 1, Points: 3, Rank: 1, PercentCorrect: &pct},
			},
		})
		assert.NoError(t, err)
	})
}

func TestStoreWeekResult_DatabaseError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when the upsert fails", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.WeekResults = mt.Coll

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "write failed",
		}))

		err := store.StoreWeekResult(logic.WeekResult{Week: 1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "week result upsert failed")
	})
}

func TestFetchWeekResult_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("round-trips the published scores", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.WeekResults = mt.Coll

		mt.AddMockResponses(mtest.CreateCursorResponse(1, "test.week_results", mtest.FirstBatch, bson.D{
			{Key: "season", Value: 2025},
			{Key: "week", Value: 3},
			{Key: "complete", Value: true},
			{Key: "tie", Value: false},
			{Key: "winners", Value: bson.A{"Alice"}},
			{Key: "scores", Value: bson.A{
				bson.D{
					{Key: "member", Value: "Alice"},
					{Key: "points", Value: 4},
					{Key: "rank", Value: 1},
					{Key: "percent_correct", Value: 1.0},
				},
				bson.D{
					{Key: "member", Value: "Bob"},
					{Key: "points", Value: 2},
					{Key: "rank", Value: 2},
				},
			}},
			{Key: "updated_at", Value: time.Now()},
		}))

		result, err := store.FetchWeekResult(3)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Week)
		assert.True(t, result.Complete)
		assert.Equal(t, []string{"Alice"}, result.Winners)
		require.Len(t, result.Scores, 2)
		assert.Equal(t, 3, result.Scores[0].Week)
		require.NotNil(t, result.Scores[0].PercentCorrect)
		assert.InDelta(t, 1.0, *result.Scores[0].PercentCorrect, 1e-9)
		assert.Nil(t, result.Scores[1].PercentCorrect)
	})
}

func TestFetchWeekResult_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ErrNoDocuments for an unpublished week", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.WeekResults = mt.Coll

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.week_results", mtest.FirstBatch))

		_, err := store.FetchWeekResult(9)
		assert.Equal(t, mongo.ErrNoDocuments, err)
	})
}

func TestStoreStandings_Empty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("refuses to publish empty standings", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Standings = mt.Coll

		err := store.StoreStandings(5, false, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "standings are empty")
	})
}

func TestStoreStandings_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("publishes the season leaderboard", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Standings = mt.Coll

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		pct := 0.6
		err := store.StoreStandings(5, true, []logic.SummaryRow{
			{Member: "Alice", TotalPoints: 20, TotalRank: 1, AvgPercent: &pct, AvgPercentRank: 1,
				MNFPoints: 3, WeeklyWins: 2, SurvivorStatus: "IN"},
		})
		assert.NoError(t, err)
	})
}

func TestFetchStandings_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the published leaderboard document", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Standings = mt.Coll

		mt.AddMockResponses(mtest.CreateCursorResponse(1, "test.standings", mtest.FirstBatch, bson.D{
			{Key: "season", Value: 2025},
			{Key: "through_week", Value: 5},
			{Key: "provisional", Value: true},
			{Key: "rows", Value: bson.A{
				bson.D{
					{Key: "member", Value: "Alice"},
					{Key: "total_points", Value: 20},
					{Key: "total_rank", Value: 1},
					{Key: "mnf_points", Value: 3},
					{Key: "weekly_wins", Value: 2},
					{Key: "survivor_status", Value: "IN"},
				},
			}},
			{Key: "updated_at", Value: time.Now()},
		}))

		doc, err := store.FetchStandings()
		require.NoError(t, err)
		assert.Equal(t, 5, doc.ThroughWeek)
		assert.True(t, doc.Provisional)
		require.Len(t, doc.Rows, 1)
		assert.Equal(t, "Alice", doc.Rows[0].Member)
		assert.Equal(t, "IN", doc.Rows[0].SurvivorStatus)
	})
}

func TestStoreSurvivorState_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("publishes the survivor pool state", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.SurvivorState = mt.Coll

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.StoreSurvivorState(logic.SurvivorReport{
			StartWeek:    1,
			ThroughWeek:  4,
			TotalMembers: 3,
			Statuses: []logic.SurvivorStatus{
				{Member: "Alice"},
				{Member: "Bob", EliminatedWeek: 2},
				{Member: "Carol", EliminatedWeek: 4},
			},
		})
		assert.NoError(t, err)
	})
}

func TestFetchSurvivorState_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ErrNoDocuments before the first recompute", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.SurvivorState = mt.Coll

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.survivor_state", mtest.FirstBatch))

		_, err := store.FetchSurvivorState()
		assert.Equal(t, mongo.ErrNoDocuments, err)
	})
}
