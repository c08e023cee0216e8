package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/dbsmedya/ausbeute/internal/config"
	"github.com/dbsmedya/ausbeute/internal/logger"
)

// Pipeline runs one analysis batch: read the reference, read every daily
// file, aggregate, join and sort. It holds no state between runs.
type Pipeline struct {
	dimensionColumn string
	metrics         []string
	logger          *logger.Logger
}

// NewPipeline creates a pipeline for the daily layout in cfg.
// A nil logger falls back to the default logger.
func NewPipeline(cfg *config.Config, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.NewDefault()
	}

	metrics := make([]string, len(cfg.Daily.Metrics))
	copy(metrics, cfg.Daily.Metrics)

	return &Pipeline{
		dimensionColumn: cfg.Daily.DimensionColumn,
		metrics:         metrics,
		logger:          log,
	}
}

// Run processes reference and daily. Missing inputs, an unreadable reference
// table or the failure of every daily file abort the run. A daily file that
// fails on its own is recorded in Result.Warnings and skipped.
func (p *Pipeline) Run(reference Source, daily []Source) (*Result, error) {
	if reference == nil {
		return nil, ErrMissingReference
	}
	if len(daily) == 0 {
		return nil, ErrMissingDaily
	}

	start := time.Now()
	runID := uuid.NewString()
	log := p.logger.WithRun(runID)

	log.Infow("Starting analysis",
		"reference", reference.Name(),
		"daily_files", len(daily),
	)

	refs, err := p.readReference(reference)
	if err != nil {
		log.Errorw("Reference table rejected", "error", err)
		return nil, err
	}
	log.Infow("Reference table loaded", "rows", len(refs))

	datasets, warnings := p.readDaily(log, daily)
	if len(datasets) == 0 {
		log.Errorw("No daily file could be read", "failed", len(warnings))
		return nil, &NoDailyDataError{Warnings: warnings}
	}

	agg := Aggregate(p.metrics, datasets)
	rows := Join(refs, agg)
	unmatched := UnmatchedKeys(refs, agg)

	stats := Stats{
		ReferenceRows:  len(refs),
		DailyFiles:     len(daily),
		DailyFilesUsed: len(datasets),
		DistinctKeys:   agg.Len(),
		UnmatchedKeys:  unmatched,
	}
	for _, ds := range datasets {
		stats.DailyRecords += len(ds.Records)
	}
	for _, ref := range refs {
		if _, ok := agg.Get(ref.DimensionKey); ok {
			stats.MatchedRows++
		}
	}
	stats.Duration = time.Since(start)

	if len(unmatched) > 0 {
		log.Infow("Daily keys without reference row are not part of the result",
			"count", len(unmatched),
			"keys", unmatched,
		)
	}

	log.Infow("Analysis complete",
		"rows", len(rows),
		"matched", stats.MatchedRows,
		"daily_records", stats.DailyRecords,
		"skipped_files", len(warnings),
		"duration", stats.Duration,
	)

	return &Result{
		RunID:    runID,
		Metrics:  p.metrics,
		Rows:     rows,
		Warnings: warnings,
		Stats:    stats,
	}, nil
}

func (p *Pipeline) readReference(src Source) ([]ReferenceRow, error) {
	t, err := src.Table()
	if err != nil {
		return nil, &ReferenceError{File: src.Name(), Err: err}
	}
	if t.Source == "" {
		t.Source = src.Name()
	}
	return ParseReference(t)
}

func (p *Pipeline) readDaily(log *logger.Logger, sources []Source) ([]DailyDataset, []FileWarning) {
	var (
		datasets []DailyDataset
		warnings []FileWarning
	)

	for _, src := range sources {
		flog := log.WithFile(src.Name())

		t, err := src.Table()
		if err != nil {
			flog.Warnw("Skipping daily file", "error", err)
			warnings = append(warnings, FileWarning{File: src.Name(), Err: err})
			continue
		}
		if t.Source == "" {
			t.Source = src.Name()
		}

		ds, info, err := ParseDaily(t, p.dimensionColumn, p.metrics)
		if err != nil {
			flog.Warnw("Skipping daily file", "error", err)
			warnings = append(warnings, FileWarning{File: src.Name(), Err: err})
			continue
		}

		if len(info.MissingMetrics) > 0 {
			flog.Warnw("Metric columns missing, counted as 0", "columns", info.MissingMetrics)
		}
		if info.NonNumeric > 0 {
			flog.Warnw("Non-numeric metric cells counted as 0", "cells", info.NonNumeric)
		}
		if info.BlankDimension > 0 {
			flog.Debugw("Rows without dimension skipped", "rows", info.BlankDimension)
		}
		flog.Debugw("Daily file loaded", "records", len(ds.Records))

		datasets = append(datasets, ds)
	}

	return datasets, warnings
}
