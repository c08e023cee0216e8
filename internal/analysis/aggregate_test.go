package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var twoMetrics = []string{"Volumen_Ausgang", "Ausschuss"}

func rec(key string, metrics ...float64) DailyRecord {
	return DailyRecord{DimensionKey: key, Metrics: metrics}
}

func TestAggregate(t *testing.T) {
	datasets := []DailyDataset{
		{Name: "a", Records: []DailyRecord{
			rec("75x75", 10, 1),
			rec("100x50", 3, 0),
			rec("75x75", 5, 2),
		}},
	}

	agg := Aggregate(twoMetrics, datasets)
	require.Equal(t, 2, agg.Len())
	assert.Equal(t, twoMetrics, agg.Metrics())

	row, ok := agg.Get("75x75")
	require.True(t, ok)
	assert.Equal(t, []float64{15, 3}, row.Metrics)
	assert.Equal(t, 2, row.Records)

	row, ok = agg.Get("100x50")
	require.True(t, ok)
	assert.Equal(t, []float64{3, 0}, row.Metrics)

	_, ok = agg.Get("1x1")
	assert.False(t, ok)
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	datasets := []DailyDataset{
		{Records: []DailyRecord{rec("b", 1, 1), rec("a", 1, 1)}},
		{Records: []DailyRecord{rec("c", 1, 1), rec("b", 1, 1)}},
	}

	rows := Aggregate(twoMetrics, datasets).Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "b", rows[0].DimensionKey)
	assert.Equal(t, "a", rows[1].DimensionKey)
	assert.Equal(t, "c", rows[2].DimensionKey)
}

func TestAggregate_ExactKeyMatch(t *testing.T) {
	datasets := []DailyDataset{
		{Records: []DailyRecord{rec("75x75", 1, 0), rec("75X75", 2, 0), rec("75x75 ", 4, 0)}},
	}

	agg := Aggregate(twoMetrics, datasets)
	assert.Equal(t, 3, agg.Len())
}

func TestAggregate_SplitAcrossFilesIsIdentical(t *testing.T) {
	records := []DailyRecord{
		rec("75x75", 10, 1),
		rec("100x50", 7, 2),
		rec("75x75", 5, 0),
		rec("60x40", 1, 1),
		rec("100x50", 3, 4),
	}

	single := Aggregate(twoMetrics, []DailyDataset{{Name: "all", Records: records}})
	split := Aggregate(twoMetrics, []DailyDataset{
		{Name: "part2", Records: records[3:]},
		{Name: "part1", Records: records[:3]},
	})

	require.Equal(t, single.Len(), split.Len())
	for _, row := range single.Rows() {
		other, ok := split.Get(row.DimensionKey)
		require.True(t, ok, row.DimensionKey)
		assert.Equal(t, row.Metrics, other.Metrics, row.DimensionKey)
		assert.Equal(t, row.Records, other.Records, row.DimensionKey)
	}
}

func TestAggregate_ShortRecordMetrics(t *testing.T) {
	agg := Aggregate(twoMetrics, []DailyDataset{{Records: []DailyRecord{rec("k", 4)}}})

	row, ok := agg.Get("k")
	require.True(t, ok)
	assert.Equal(t, []float64{4, 0}, row.Metrics)
}

func TestAggregate_Empty(t *testing.T) {
	agg := Aggregate(twoMetrics, nil)
	assert.Equal(t, 0, agg.Len())
	assert.Empty(t, agg.Rows())
}
