/* bonuses.go
 * Contains the methods for interacting with the bonus_weights collection.
 * Weights are admin-set before a week's outcomes are final; standings are
 * always recomputed from scratch after a change, never patched
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreBonus upserts one matchup's bonus multiplier for a week.
// Preconditions: receives the week, the matchup key and a multiplier in 1..3
// Postconditions: the bonus_weights collection holds one weight per
// (week, matchup), or an error is returned
func (s *Store) StoreBonus(week int, matchup string, multiplier int) error {
	if multiplier < 1 || multiplier > 3 {
		return fmt.Errorf("bonus multiplier %d is not in 1..3", multiplier)
	}

	doc := BonusDoc{Season: s.Season, Week: week, Matchup: matchup, Multiplier: multiplier}
	filter := bson.M{"season": s.Season, "week": week, "matchup": matchup}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	_, err := s.Collections.Bonuses.UpdateOne(context.TODO(), filter, update, opts)
	if err != nil {
		return fmt.Errorf("bonus upsert failed: %w", err)
	}
	return nil
}

// FetchBonuses returns a week's bonus weights keyed by matchup. Matchups
// with no stored weight default in the scoring engine, not here.
func (s *Store) FetchBonuses(week int) (map[string]int, error) {
	cursor, err := s.Collections.Bonuses.Find(context.TODO(),
		bson.M{"season": s.Season, "week": week})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bonuses: %w", err)
	}
	defer cursor.Close(context.TODO())

	bonuses := make(map[string]int)
	for cursor.Next(context.TODO()) {
		var doc BonusDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode bonus: %w", err)
		}
		bonuses[doc.Matchup] = doc.Multiplier
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("bonus cursor failed: %w", err)
	}
	return bonuses, nil
}
