/* standings.go
 * Contains the methods for publishing and fetching the derived views: week
 * results, season standings and survivor state. These documents are
 * regenerated wholesale on every recompute
 */

package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"survivor-pool/api/logic"
)

// StoreWeekResult publishes the scoring output for one week, replacing any
// previously published result.
func (s *Store) StoreWeekResult(result logic.WeekResult) error {
	doc := WeekResultDoc{
		Season:   s.Season,
		Week:     result.Week,
		Complete: result.Complete,
		Tie:      result.Tie,
		Winners:  result.Winners,
		Updated:  time.Now(),
	}
	for _, score := range result.Scores {
		doc.Scores = append(doc.Scores, WeekScoreEntry{
			Member:         score.Member,
			Points:         score.Points,
			Rank:           score.Rank,
			PercentCorrect: score.PercentCorrect,
		})
	}

	filter := bson.M{"season": s.Season, "week": result.Week}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	log.Printf("publishing week %d result", result.Week)
	if _, err := s.Collections.WeekResults.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("week result upsert failed: %w", err)
	}
	return nil
}

// FetchWeekResult returns the published result for one week.
func (s *Store) FetchWeekResult(week int) (logic.WeekResult, error) {
	var doc WeekResultDoc
	err := s.Collections.WeekResults.FindOne(context.TODO(),
		bson.M{"season": s.Season, "week": week}).Decode(&doc)
	if err != nil {
		return logic.WeekResult{}, err
	}

	result := logic.WeekResult{
		Week:     doc.Week,
		Complete: doc.Complete,
		Tie:      doc.Tie,
		Winners:  doc.Winners,
	}
	for _, entry := range doc.Scores {
		result.Scores = append(result.Scores, logic.WeekScore{
			Member:         entry.Member,
			Week:           doc.Week,
			Points:         entry.Points,
			Rank:           entry.Rank,
			PercentCorrect: entry.PercentCorrect,
		})
	}
	return result, nil
}

// StoreStandings publishes the season leaderboard, replacing the previous
// one.
func (s *Store) StoreStandings(throughWeek int, provisional bool, rows []logic.SummaryRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("standings are empty")
	}

	doc := StandingsDoc{
		Season:      s.Season,
		ThroughWeek: throughWeek,
		Provisional: provisional,
		Updated:     time.Now(),
	}
	for _, row := range rows {
		doc.Rows = append(doc.Rows, StandingsRow{
			Member:         row.Member,
			TotalPoints:    row.TotalPoints,
			TotalRank:      row.TotalRank,
			AvgPercent:     row.AvgPercent,
			AvgPercentRank: row.AvgPercentRank,
			MNFPoints:      row.MNFPoints,
			WeeklyWins:     row.WeeklyWins,
			SurvivorStatus: row.SurvivorStatus,
		})
	}

	filter := bson.M{"season": s.Season}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	log.Println("publishing season standings")
	if _, err := s.Collections.Standings.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("standings upsert failed: %w", err)
	}
	return nil
}

// FetchStandings returns the published season leaderboard.
func (s *Store) FetchStandings() (StandingsDoc, error) {
	var doc StandingsDoc
	err := s.Collections.Standings.FindOne(context.TODO(), bson.M{"season": s.Season}).Decode(&doc)
	if err != nil {
		return StandingsDoc{}, err
	}
	return doc, nil
}

// StoreSurvivorState publishes the survivor pool state, replacing the
// previous one.
func (s *Store) StoreSurvivorState(report logic.SurvivorReport) error {
	doc := SurvivorStateDoc{
		Season:       s.Season,
		StartWeek:    report.StartWeek,
		ThroughWeek:  report.ThroughWeek,
		TotalMembers: report.TotalMembers,
		Done:         report.Done(),
		Updated:      time.Now(),
	}
	for _, st := range report.Statuses {
		doc.Statuses = append(doc.Statuses, SurvivorStatusEntry{
			Member:         st.Member,
			EliminatedWeek: st.EliminatedWeek,
		})
	}

	filter := bson.M{"season": s.Season}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	log.Println("publishing survivor state")
	if _, err := s.Collections.SurvivorState.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("survivor state upsert failed: %w", err)
	}
	return nil
}

// FetchSurvivorState returns the published survivor pool state.
func (s *Store) FetchSurvivorState() (SurvivorStateDoc, error) {
	var doc SurvivorStateDoc
	err := s.Collections.SurvivorState.FindOne(context.TODO(), bson.M{"season": s.Season}).Decode(&doc)
	if err != nil {
		return SurvivorStateDoc{}, err
	}
	return doc, nil
}
