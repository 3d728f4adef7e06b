/* summary_test.go
 * Contains unit tests for summary.go functions
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSummary_Merge tests merging season, MNF and survivor outputs into
// one row per member
func TestBuildSummary_Merge(t *testing.T) {
	members := []string{"Alice", "Bob"}
	totals := []SeasonTotals{
		{Member: "Alice", TotalPoints: 15, TotalRank: 1, AvgPercent: pct(0.6), AvgPercentRank: 1},
		{Member: "Bob", TotalPoints: 12, TotalRank: 2, AvgPercent: pct(0.5), AvgPercentRank: 2},
	}
	mnf := []SeasonTotals{
		{Member: "Alice", TotalPoints: 2, TotalRank: 1},
		{Member: "Bob", TotalPoints: 1, TotalRank: 2},
	}
	weeks := []WeekResult{{Week: 1, Winners: []string{"Alice"}}}
	survivor := &SurvivorReport{
		StartWeek: 1, ThroughWeek: 2, TotalMembers: 2,
		Statuses: []SurvivorStatus{
			{Member: "Alice"},
			{Member: "Bob", EliminatedWeek: 2},
		},
	}

	rows := BuildSummary(members, totals, mnf, weeks, survivor)

	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Member)
	assert.Equal(t, 15, rows[0].TotalPoints)
	assert.Equal(t, 2, rows[0].MNFPoints)
	assert.Equal(t, 1, rows[0].WeeklyWins)
	assert.Equal(t, "IN", rows[0].SurvivorStatus)

	assert.Equal(t, "OUT (week 2)", rows[1].SurvivorStatus)
	assert.Equal(t, 0, rows[1].WeeklyWins)
}

// TestBuildSummary_MissingComponents tests null-coalescing: members absent
// from a component's output get that component's zero value and "N/A"
// survivor status
func TestBuildSummary_MissingComponents(t *testing.T) {
	rows := BuildSummary([]string{"Alice"}, nil, nil, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, 0, rows[0].TotalPoints)
	assert.Nil(t, rows[0].AvgPercent)
	assert.Equal(t, "N/A", rows[0].SurvivorStatus)
}

// TestBuildSummary_MemberOutsideSurvivor tests that a member missing from
// the survivor report shows N/A rather than IN or OUT
func TestBuildSummary_MemberOutsideSurvivor(t *testing.T) {
	survivor := &SurvivorReport{
		StartWeek: 1, ThroughWeek: 1, TotalMembers: 1,
		Statuses: []SurvivorStatus{{Member: "Alice"}},
	}

	rows := BuildSummary([]string{"Alice", "Newcomer"}, nil, nil, nil, survivor)

	assert.Equal(t, "IN", rows[0].SurvivorStatus)
	assert.Equal(t, "N/A", rows[1].SurvivorStatus)
}
