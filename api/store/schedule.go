/* schedule.go
 * Contains the methods for interacting with the schedule collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"survivor-pool/api/schedule"
)

// StoreSchedule replaces the season's stored schedule with the given
// matchups. The schedule is fetched once per season and treated as immutable
// afterwards, so a full replace is the simplest correct write.
// Preconditions: receives the full matchup list for the season
// Postconditions: the schedule collection holds exactly these rows, or an
// error is returned and the previous schedule is kept
func (s *Store) StoreSchedule(matchups []schedule.Matchup) error {
	if len(matchups) == 0 {
		return fmt.Errorf("refusing to store an empty schedule")
	}

	docs := make([]interface{}, 0, len(matchups))
	for _, m := range matchups {
		docs = append(docs, MatchupDoc{
			Season:       s.Season,
			Week:         m.Week,
			Date:         m.Date,
			DayOffset:    m.DayOffset,
			Hour:         m.Hour,
			Minute:       m.Minute,
			DayName:      m.DayName,
			AwayTeam:     m.AwayTeam,
			HomeTeam:     m.HomeTeam,
			AwayLocation: m.AwayLocation,
			AwayName:     m.AwayName,
			HomeLocation: m.HomeLocation,
			HomeName:     m.HomeName,
		})
	}

	if _, err := s.Collections.Schedule.DeleteMany(context.TODO(), bson.M{"season": s.Season}); err != nil {
		return fmt.Errorf("failed to clear old schedule: %w", err)
	}
	if _, err := s.Collections.Schedule.InsertMany(context.TODO(), docs); err != nil {
		return fmt.Errorf("schedule insert failed: %w", err)
	}
	return nil
}

// FetchSchedule returns the season's stored matchups sorted by week then
// kickoff.
func (s *Store) FetchSchedule() ([]schedule.Matchup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "week", Value: 1}, {Key: "date", Value: 1}})
	cursor, err := s.Collections.Schedule.Find(context.TODO(), bson.M{"season": s.Season}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}
	defer cursor.Close(context.TODO())

	var matchups []schedule.Matchup
	for cursor.Next(context.TODO()) {
		var doc MatchupDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode matchup: %w", err)
		}
		matchups = append(matchups, doc.toMatchup())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("schedule cursor failed: %w", err)
	}
	return matchups, nil
}

// EnsureSchedule verifies the season schedule has been populated. Every
// scoring path depends on it, so callers check this before computing.
func (s *Store) EnsureSchedule() error {
	count, err := s.Collections.Schedule.CountDocuments(context.TODO(), bson.M{"season": s.Season})
	if err != nil {
		return fmt.Errorf("failed to count schedule rows: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("no schedule stored for season %d, run a schedule sync first", s.Season)
	}
	return nil
}
