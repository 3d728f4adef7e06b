/* picks.go
 * Contains the methods for interacting with the pick_sheets collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"survivor-pool/api/logic"
)

// StorePickSheet upserts one member's pick sheet for a week. A resubmission
// replaces the previous sheet.
// Preconditions: receives the week number and the sheet to store
// Postconditions: the pick_sheets collection holds exactly one sheet per
// (member, week), or an error is returned
func (s *Store) StorePickSheet(week int, sheet logic.PickSheet) error {
	if sheet.Member == "" {
		return fmt.Errorf("pick sheet has no member")
	}

	doc := PickSheetDoc{
		Season:          s.Season,
		Week:            week,
		Member:          sheet.Member,
		Picks:           sheet.Picks,
		TiebreakerGuess: sheet.TiebreakerGuess,
	}
	filter := bson.M{"season": s.Season, "week": week, "member": sheet.Member}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	_, err := s.Collections.Picks.UpdateOne(context.TODO(), filter, update, opts)
	if err != nil {
		return fmt.Errorf("pick sheet upsert failed: %w", err)
	}
	return nil
}

// FetchPickSheets returns every member's pick sheet for a week. Members who
// did not submit simply have no sheet; that is not an error.
func (s *Store) FetchPickSheets(week int) ([]logic.PickSheet, error) {
	cursor, err := s.Collections.Picks.Find(context.TODO(),
		bson.M{"season": s.Season, "week": week})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pick sheets: %w", err)
	}
	defer cursor.Close(context.TODO())

	var sheets []logic.PickSheet
	for cursor.Next(context.TODO()) {
		var doc PickSheetDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode pick sheet: %w", err)
		}
		sheets = append(sheets, logic.PickSheet{
			Member:          doc.Member,
			Picks:           doc.Picks,
			TiebreakerGuess: doc.TiebreakerGuess,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("pick sheet cursor failed: %w", err)
	}
	return sheets, nil
}
