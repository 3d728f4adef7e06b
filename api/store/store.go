/* store.go
 * Contains the Store struct and NewStore function. The methods for this
 * package are split across topical files: members, picks, survivor_picks,
 * bonuses, outcomes, schedule and standings. Each file contains the methods
 * for interacting with that part of the database
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Season      int
	Collections struct {
		Members       *mongo.Collection
		Picks         *mongo.Collection
		SurvivorPicks *mongo.Collection
		Bonuses       *mongo.Collection
		Outcomes      *mongo.Collection
		Schedule      *mongo.Collection
		WeekResults   *mongo.Collection
		Standings     *mongo.Collection
		SurvivorState *mongo.Collection
	}
}

// NewStore initialises the season store and its db connection.
// Preconditions: receives the database name, the mongo URI and the season year
// Postconditions: returns a pointer to the Store with collection handles set,
// or an error if it occurs
func NewStore(dbName string, mongoURI string, season int) (*Store, error) {
	if dbName == "" || season == 0 {
		return nil, fmt.Errorf("dbName and season are required")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
		Season:   season,
	}
	s.Collections.Members = db.Collection("members")
	s.Collections.Picks = db.Collection("pick_sheets")
	s.Collections.SurvivorPicks = db.Collection("survivor_picks")
	s.Collections.Bonuses = db.Collection("bonus_weights")
	s.Collections.Outcomes = db.Collection("outcomes")
	s.Collections.Schedule = db.Collection("schedule")
	s.Collections.WeekResults = db.Collection("week_results")
	s.Collections.Standings = db.Collection("standings")
	s.Collections.SurvivorState = db.Collection("survivor_state")

	return s, nil
}
