// internal/analytics/aggregate.go
package analytics

import (
	"sort"
	"strconv"
	"strings"

	apperrors "fastfood-insights/internal/errors"
	"fastfood-insights/internal/models"
)

// DefaultRankLimit is how many restaurants the carb ranking keeps.
const DefaultRankLimit = 5

type groupAccum struct {
	sum   float64
	count int
	min   float64
	max   float64
}

func parseNumeric(rec *models.FoodRecord, column string) (float64, error) {
	raw := rec.Value(column)
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, apperrors.NewDataError(rec.Restaurant, column, raw, err)
	}
	return v, nil
}

// groupBy folds one numeric column into per-restaurant accumulators. The
// grouping key is the restaurant string exactly as ingested; any non-numeric
// value fails the whole fold, because partial statistics are misleading.
func groupBy(records []models.FoodRecord, column string) (map[string]*groupAccum, error) {
	groups := make(map[string]*groupAccum)
	for i := range records {
		rec := &records[i]
		v, err := parseNumeric(rec, column)
		if err != nil {
			return nil, err
		}
		acc, ok := groups[rec.Restaurant]
		if !ok {
			groups[rec.Restaurant] = &groupAccum{sum: v, count: 1, min: v, max: v}
			continue
		}
		acc.sum += v
		acc.count++
		if v < acc.min {
			acc.min = v
		}
		if v > acc.max {
			acc.max = v
		}
	}
	return groups, nil
}

// CalorieStats computes mean, min and max calories per restaurant. An empty
// record set yields an empty map, not an error.
func CalorieStats(records []models.FoodRecord) (map[string]models.CalorieStats, error) {
	groups, err := groupBy(records, models.ColCalories)
	if err != nil {
		return nil, err
	}
	stats := make(map[string]models.CalorieStats, len(groups))
	for restaurant, acc := range groups {
		stats[restaurant] = models.CalorieStats{
			Mean: acc.sum / float64(acc.count),
			Min:  acc.min,
			Max:  acc.max,
		}
	}
	return stats, nil
}

// RankByAverageCarbs returns up to limit restaurants ordered by ascending
// average total_carb. Equal averages are ordered by restaurant name, so the
// ranking is deterministic. Fewer groups than limit returns all of them;
// limit <= 0 falls back to DefaultRankLimit.
func RankByAverageCarbs(records []models.FoodRecord, limit int) ([]models.CarbRank, error) {
	if limit <= 0 {
		limit = DefaultRankLimit
	}
	groups, err := groupBy(records, models.ColTotalCarb)
	if err != nil {
		return nil, err
	}

	ranks := make([]models.CarbRank, 0, len(groups))
	for restaurant, acc := range groups {
		ranks = append(ranks, models.CarbRank{
			Restaurant: restaurant,
			AvgCarbs:   acc.sum / float64(acc.count),
		})
	}
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].AvgCarbs != ranks[j].AvgCarbs {
			return ranks[i].AvgCarbs < ranks[j].AvgCarbs
		}
		return ranks[i].Restaurant < ranks[j].Restaurant
	})

	if len(ranks) > limit {
		ranks = ranks[:limit]
	}
	return ranks, nil
}
