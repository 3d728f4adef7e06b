/* outcomes.go
 * Contains the methods for interacting with the outcomes collection.
 * Outcome writes are differs-only so that re-polling the score feed is
 * idempotent: an unchanged outcome is never rewritten, a changed winner is
 * a feed correction and replaces the record
 */

package store

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"survivor-pool/api/logic"
)

// StoreOutcomes records a week's resolved outcomes. Only outcomes that are
// new or whose value changed are written.
// Preconditions: receives the week number and the resolved outcomes
// Postconditions: the outcomes collection matches the resolved set for the
// given matchups, or an error is returned
func (s *Store) StoreOutcomes(week int, outcomes []logic.Outcome) error {
	recorded, err := s.FetchOutcomes(week)
	if err != nil {
		return err
	}
	existing := make(map[string]logic.Outcome, len(recorded))
	for _, o := range recorded {
		existing[o.Key()] = o
	}

	for _, o := range outcomes {
		if prev, ok := existing[o.Key()]; ok {
			if prev == o {
				continue
			}
			log.Printf("correcting outcome %s for week %d", o.Key(), week)
		}
		doc := OutcomeDoc{
			Season:          s.Season,
			Week:            week,
			Away:            o.Away,
			Home:            o.Home,
			Winner:          o.Winner,
			TiebreakerValue: o.TiebreakerValue,
		}
		filter := bson.M{"season": s.Season, "week": week, "away": o.Away, "home": o.Home}
		update := bson.M{"$set": doc}
		opts := options.Update().SetUpsert(true)
		if _, err := s.Collections.Outcomes.UpdateOne(context.TODO(), filter, update, opts); err != nil {
			return fmt.Errorf("outcome upsert for %s failed: %w", o.Key(), err)
		}
	}
	return nil
}

// FetchOutcomes returns the recorded outcomes for one week.
func (s *Store) FetchOutcomes(week int) ([]logic.Outcome, error) {
	cursor, err := s.Collections.Outcomes.Find(context.TODO(),
		bson.M{"season": s.Season, "week": week})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outcomes: %w", err)
	}
	defer cursor.Close(context.TODO())

	var outcomes []logic.Outcome
	for cursor.Next(context.TODO()) {
		var doc OutcomeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode outcome: %w", err)
		}
		outcomes = append(outcomes, doc.toOutcome())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("outcome cursor failed: %w", err)
	}
	return outcomes, nil
}

// FetchAllOutcomes returns every recorded outcome for the season keyed by
// week, for the aggregation and survivor engines.
func (s *Store) FetchAllOutcomes() (map[int][]logic.Outcome, error) {
	cursor, err := s.Collections.Outcomes.Find(context.TODO(), bson.M{"season": s.Season})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outcomes: %w", err)
	}
	defer cursor.Close(context.TODO())

	outcomes := make(map[int][]logic.Outcome)
	for cursor.Next(context.TODO()) {
		var doc OutcomeDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode outcome: %w", err)
		}
		outcomes[doc.Week] = append(outcomes[doc.Week], doc.toOutcome())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("outcome cursor failed: %w", err)
	}
	return outcomes, nil
}
