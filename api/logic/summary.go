/* summary.go
 * Contains the summary aggregator: merges the weekly, season and survivor
 * outputs into one leaderboard row per member. No logic of its own beyond
 * null-coalescing missing component outputs
 */

package logic

import "fmt"

// SummaryRow is one member's merged leaderboard row.
type SummaryRow struct {
	Member         string
	TotalPoints    int
	TotalRank      int
	AvgPercent     *float64
	AvgPercentRank int
	MNFPoints      int
	WeeklyWins     int
	SurvivorStatus string // "IN", "OUT (week N)" or "N/A"
}

// BuildSummary merges season totals, MNF sub-pool totals, weekly win counts
// and survivor state into one row per member. A member absent from a
// component's output gets that component's zero value, and a member outside
// the survivor pool shows "N/A" rather than "IN" or "OUT".
func BuildSummary(members []string, totals []SeasonTotals, mnfTotals []SeasonTotals,
	weeks []WeekResult, survivor *SurvivorReport) []SummaryRow {

	totalsByMember := make(map[string]SeasonTotals, len(totals))
	for _, t := range totals {
		totalsByMember[t.Member] = t
	}
	mnfByMember := make(map[string]SeasonTotals, len(mnfTotals))
	for _, t := range mnfTotals {
		mnfByMember[t.Member] = t
	}
	survivorByMember := make(map[string]SurvivorStatus)
	if survivor != nil {
		for _, s := range survivor.Statuses {
			survivorByMember[s.Member] = s
		}
	}

	rows := make([]SummaryRow, 0, len(members))
	for _, member := range members {
		row := SummaryRow{Member: member, SurvivorStatus: "N/A"}
		if t, ok := totalsByMember[member]; ok {
			row.TotalPoints = t.TotalPoints
			row.TotalRank = t.TotalRank
			row.AvgPercent = t.AvgPercent
			row.AvgPercentRank = t.AvgPercentRank
		}
		if t, ok := mnfByMember[member]; ok {
			row.MNFPoints = t.TotalPoints
		}
		row.WeeklyWins = CountWeeklyWins(member, weeks)
		if s, ok := survivorByMember[member]; ok {
			if s.Alive() {
				row.SurvivorStatus = "IN"
			} else {
				row.SurvivorStatus = fmt.Sprintf("OUT (week %d)", s.EliminatedWeek)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
