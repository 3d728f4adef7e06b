/* members.go
 * Contains the methods for interacting with the members collection. Members
 * are never deleted; survivor elimination is additive state kept elsewhere
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"survivor-pool/api/shared"
)

// UpsertMember registers a member for the season, normalizing the name to
// title case. Re-registering an existing member updates the user id only.
// Preconditions: receives the member's display name and optional user id
// Postconditions: the member exists in the members collection exactly once
func (s *Store) UpsertMember(name string, userID string) error {
	normalized := shared.NormalizeName(name)
	if normalized == "" {
		return fmt.Errorf("member name cannot be empty")
	}

	filter := bson.M{"season": s.Season, "name": normalized}
	update := bson.M{"$set": bson.M{"season": s.Season, "name": normalized, "userid": userID}}
	opts := options.Update().SetUpsert(true)

	_, err := s.Collections.Members.UpdateOne(context.TODO(), filter, update, opts)
	if err != nil {
		return fmt.Errorf("member upsert failed: %w", err)
	}
	return nil
}

// ListMembers returns every registered member name for the season, in
// registration order.
func (s *Store) ListMembers() ([]string, error) {
	cursor, err := s.Collections.Members.Find(context.TODO(), bson.M{"season": s.Season})
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer cursor.Close(context.TODO())

	var members []string
	for cursor.Next(context.TODO()) {
		var doc MemberDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode member: %w", err)
		}
		members = append(members, doc.Name)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("member cursor failed: %w", err)
	}
	return members, nil
}

// MemberByUserID resolves a chat user id to the registered member name.
func (s *Store) MemberByUserID(userID string) (string, error) {
	var doc MemberDoc
	err := s.Collections.Members.FindOne(context.TODO(),
		bson.M{"season": s.Season, "userid": userID}).Decode(&doc)
	if err != nil {
		return "", err
	}
	return doc.Name, nil
}
