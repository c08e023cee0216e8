package analysis

import (
	"github.com/dbsmedya/ausbeute/internal/config"
	"github.com/dbsmedya/ausbeute/internal/types"
)

// tableSource is an in-memory Source for tests.
type tableSource struct {
	name  string
	table *types.Table
	err   error
	reads int
}

func (s *tableSource) Name() string { return s.name }

func (s *tableSource) Table() (*types.Table, error) {
	s.reads++
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func referenceSource(rows ...[]string) *tableSource {
	return &tableSource{
		name: "reference.xlsx",
		table: &types.Table{
			Source: "reference.xlsx",
			Header: []string{"Breite", "Hoehe"},
			Rows:   rows,
		},
	}
}

// dailySource builds a daily table with the Dimension column followed by
// the given metric headers.
func dailySource(name string, metrics []string, rows ...[]string) *tableSource {
	header := append([]string{"Dimension"}, metrics...)
	return &tableSource{
		name: name,
		table: &types.Table{
			Source: name,
			Header: header,
			Rows:   rows,
		},
	}
}

func testConfig() *config.Config {
	return config.DefaultConfig()
}

func metricIndex(name string) int {
	for i, m := range config.DefaultMetrics {
		if m == name {
			return i
		}
	}
	return -1
}
