/* outcomes_test.go
 * Contains unit tests for outcomes.go
 */

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"survivor-pool/api/logic"
)

func outcomeBSON(week int, away, home, winner string, tiebreaker int) bson.D {
	return bson.D{
		{Key: "season", Value: 2025},
		{Key: "week", Value: week},
		{Key: "away", Value: away},
		{Key: "home", Value: home},
		{Key: "winner", Value: winner},
		{Key: "tiebreaker_value", Value: tiebreaker},
	}
}

func TestStoreOutcomes_InsertsNew(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("writes outcomes that are not yet recorded", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Outcomes = mt.Coll

		// FetchOutcomes finds nothing recorded, then one upsert per outcome.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.outcomes", mtest.FirstBatch))
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.StoreOutcomes(1, []logic.Outcome{
			{Away: "GB", Home: "CHI", Winner: "GB", TiebreakerValue: 41},
			{Away: "SF", Home: "SEA", Winner: "SEA", TiebreakerValue: 37},
		})
		assert.NoError(t, err)
	})
}

func TestStoreOutcomes_SkipsUnchanged(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("does not rewrite an unchanged outcome", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Outcomes = mt.Coll

		// Only the fetch is mocked: an upsert attempt would fail the test
		// by exhausting the mock responses.
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.outcomes", mtest.FirstBatch,
			outcomeBSON(1, "GB", "CHI", "GB", 41)))

		err := store.StoreOutcomes(1, []logic.Outcome{
			{Away: "GB", Home: "CHI", Winner: "GB", TiebreakerValue: 41},
		})
		assert.NoError(t, err)
	})
}

func TestStoreOutcomes_WritesCorrection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("replaces a recorded outcome whose winner changed", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Outcomes = mt.Coll

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.outcomes", mtest.FirstBatch,
			outcomeBSON(1, "GB", "CHI", "CHI", 41)))
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.StoreOutcomes(1, []logic.Outcome{
			{Away: "GB", Home: "CHI", Winner: "GB", TiebreakerValue: 41},
		})
		assert.NoError(t, err)
	})
}

func TestStoreOutcomes_UpsertError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when an upsert fails", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Outcomes = mt.Coll

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.outcomes", mtest.FirstBatch))
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "write failed",
		}))

		err := store.StoreOutcomes(1, []logic.Outcome{
			{Away: "GB", Home: "CHI", Winner: "GB", TiebreakerValue: 41},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "outcome upsert for GB@CHI failed")
	})
}

func TestFetchOutcomes_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the recorded outcomes for a week", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Outcomes = mt.Coll

		first := mtest.CreateCursorResponse(1, "test.outcomes", mtest.FirstBatch,
			outcomeBSON(1, "GB", "CHI", "GB", 41))
		second := mtest.CreateCursorResponse(1, "test.outcomes", mtest.NextBatch,
			outcomeBSON(1, "SF", "SEA", logic.Tie, 34))
		killCursors := mtest.CreateCursorResponse(0, "test.outcomes", mtest.NextBatch)
		mt.AddMockResponses(first, second, killCursors)

		outcomes, err := store.FetchOutcomes(1)
		require.NoError(t, err)
		require.Len(t, outcomes, 2)
		assert.Equal(t, "GB", outcomes[0].Winner)
		assert.Equal(t, 41, outcomes[0].TiebreakerValue)
		assert.Equal(t, logic.Tie, outcomes[1].Winner)
	})
}

func TestFetchOutcomes_DatabaseError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error on database failure", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Outcomes = mt.Coll

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "database error",
		}))

		_, err := store.FetchOutcomes(1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to fetch outcomes")
	})
}

func TestFetchAllOutcomes_GroupsByWeek(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("keys the season's outcomes by week", func(mt *mtest.T) {
		store := testStore(mt)
		store.Collections.Outcomes = mt.Coll

		first := mtest.CreateCursorResponse(1, "test.outcomes", mtest.FirstBatch,
			outcomeBSON(1, "GB", "CHI", "GB", 41))
		second := mtest.CreateCursorResponse(1, "test.outcomes", mtest.NextBatch,
			outcomeBSON(2, "CHI", "GB", "GB", 44))
		killCursors := mtest.CreateCursorResponse(0, "test.outcomes", mtest.NextBatch)
		mt.AddMockResponses(first, second, killCursors)

		byWeek, err := store.FetchAllOutcomes()
		require.NoError(t, err)
		assert.Len(t, byWeek, 2)
		require.Len(t, byWeek[1], 1)
		assert.Equal(t, "GB@CHI", byWeek[1][0].Key())
		require.Len(t, byWeek[2], 1)
		assert.Equal(t, "CHI@GB", byWeek[2][0].Key())
	})
}
