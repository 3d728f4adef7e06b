/* aggregate.go
 * Contains the aggregation engine: folds per-week scoring records into
 * running season totals, ranks and average percents. The same fold serves
 * the general pool and the Monday-night-only sub-pool
 */

package logic

// SeasonTotals is one member's season-to-date aggregate: total points, rank
// over totals, mean percent-correct over the weeks where it is defined, and
// rank over that mean. AvgPercent is nil for a member with no defined weeks.
type SeasonTotals struct {
	Member         string
	TotalPoints    int
	TotalRank      int
	AvgPercent     *float64
	AvgPercentRank int
}

// Aggregate folds a season's week results into per-member totals. It is a
// pure fold: recomputing from an unchanged week sequence yields identical
// output.
// Preconditions: receives every member name and the played weeks' results
// Postconditions: returns one SeasonTotals per member, in roster order
func Aggregate(members []string, weeks []WeekResult) []SeasonTotals {
	points := make(map[string]int, len(members))
	pctSum := make(map[string]float64, len(members))
	pctWeeks := make(map[string]int, len(members))

	for _, week := range weeks {
		for _, s := range week.Scores {
			points[s.Member] += s.Points
			if s.PercentCorrect != nil {
				pctSum[s.Member] += *s.PercentCorrect
				pctWeeks[s.Member]++
			}
		}
	}

	totals := make([]SeasonTotals, 0, len(members))
	for _, member := range members {
		t := SeasonTotals{Member: member, TotalPoints: points[member]}
		if n := pctWeeks[member]; n > 0 {
			avg := pctSum[member] / float64(n)
			t.AvgPercent = &avg
		}
		totals = append(totals, t)
	}

	// Standard competition ranking over both triples: ties share the lowest
	// rank number of the group.
	for i := range totals {
		pointsRank, pctRank := 1, 1
		for j := range totals {
			if totals[j].TotalPoints > totals[i].TotalPoints {
				pointsRank++
			}
			if totals[i].AvgPercent != nil && totals[j].AvgPercent != nil &&
				*totals[j].AvgPercent > *totals[i].AvgPercent {
				pctRank++
			}
		}
		totals[i].TotalRank = pointsRank
		if totals[i].AvgPercent != nil {
			totals[i].AvgPercentRank = pctRank
		}
	}

	return totals
}

// CountWeeklyWins returns how many completed weeks the member won or
// co-won.
func CountWeeklyWins(member string, weeks []WeekResult) int {
	wins := 0
	for _, week := range weeks {
		for _, w := range week.Winners {
			if w == member {
				wins++
			}
		}
	}
	return wins
}
