/* survivor_picks.go
 * Contains the methods for interacting with the survivor_picks collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"survivor-pool/api/logic"
)

// StoreSurvivorPick upserts one member's survivor pick for a week.
// Preconditions: receives the pick to store
// Postconditions: the survivor_picks collection holds exactly one pick per
// (member, week), or an error is returned
func (s *Store) StoreSurvivorPick(pick logic.SurvivorPick) error {
	if pick.Member == "" || pick.SelectedTeam == "" {
		return fmt.Errorf("survivor pick needs a member and a team")
	}

	doc := SurvivorPickDoc{
		Season:       s.Season,
		Week:         pick.Week,
		Member:       pick.Member,
		SelectedTeam: pick.SelectedTeam,
	}
	filter := bson.M{"season": s.Season, "week": pick.Week, "member": pick.Member}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	_, err := s.Collections.SurvivorPicks.UpdateOne(context.TODO(), filter, update, opts)
	if err != nil {
		return fmt.Errorf("survivor pick upsert failed: %w", err)
	}
	return nil
}

// FetchSurvivorPicks returns every survivor pick for the season.
func (s *Store) FetchSurvivorPicks() ([]logic.SurvivorPick, error) {
	cursor, err := s.Collections.SurvivorPicks.Find(context.TODO(), bson.M{"season": s.Season})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch survivor picks: %w", err)
	}
	defer cursor.Close(context.TODO())

	var picks []logic.SurvivorPick
	for cursor.Next(context.TODO()) {
		var doc SurvivorPickDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode survivor pick: %w", err)
		}
		picks = append(picks, logic.SurvivorPick{
			Member:       doc.Member,
			Week:         doc.Week,
			SelectedTeam: doc.SelectedTeam,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("survivor pick cursor failed: %w", err)
	}
	return picks, nil
}
