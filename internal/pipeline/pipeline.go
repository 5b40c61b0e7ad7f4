package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/roach88/haystack/internal/attr"
	"github.com/roach88/haystack/internal/match"
	"github.com/roach88/haystack/internal/table"
	"github.com/roach88/haystack/internal/tableio"
)

// Option configures a run.
type Option func(*runner)

// WithProgress sends the user-facing progress lines to w.
func WithProgress(w io.Writer) Option {
	return func(r *runner) { r.progress = w }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) { r.logger = l }
}

// WithIDGenerator overrides the run ID generator (for testing).
// Defaults to UUIDv7Generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(r *runner) { r.ids = g }
}

type runner struct {
	progress io.Writer
	logger   *slog.Logger
	ids      IDGenerator
}

func (r *runner) say(format string, args ...any) {
	fmt.Fprintf(r.progress, format+"\n", args...)
}

// Run executes one extraction described by cfg.
//
// Stages run strictly in order: load, split (optional), match, write,
// unmatched. ctx is checked between stages.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Report, error) {
	r := &runner{
		progress: io.Discard,
		logger:   slog.Default(),
		ids:      UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(r)
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	report := &Report{
		RunID:     r.ids.Generate(),
		OutPath:   cfg.OutPath,
		Semantics: cfg.Unmatched,
	}
	log := r.logger.With("run_id", report.RunID)

	// Load
	r.say("Reading input files...")
	start := time.Now()
	needle, err := tableio.Load(ctx, cfg.Needle)
	if err != nil {
		return nil, stageErr(StageLoad, err)
	}
	haystack, err := tableio.Load(ctx, cfg.Haystack)
	if err != nil {
		return nil, stageErr(StageLoad, err)
	}
	report.NeedleRows = needle.Len()
	report.HaystackRows = haystack.Len()
	log.Info("inputs loaded",
		"haystack", cfg.Haystack.Path, "haystack_rows", haystack.Len(),
		"needle", cfg.Needle.Path, "needle_rows", needle.Len())
	log.Debug("stage finished", "stage", StageLoad, "elapsed", time.Since(start))
	r.say("Done!")

	// Split
	if cfg.Split != nil {
		if err := ctx.Err(); err != nil {
			return nil, stageErr(StageSplit, err)
		}
		r.say("Splitting column...")
		start = time.Now()
		haystack, report.Divergences, err = splitHaystack(haystack, *cfg.Split)
		if err != nil {
			return nil, stageErr(StageSplit, err)
		}
		for _, d := range report.Divergences {
			log.Warn("attribute keys differ from first row", "row", d.Row, "expected", d.Expected, "got", d.Got)
		}
		log.Debug("stage finished", "stage", StageSplit, "elapsed", time.Since(start), "columns", haystack.Width())
		r.say("Done!")
	}

	// Match
	if err := ctx.Err(); err != nil {
		return nil, stageErr(StageMatch, err)
	}
	r.say("Extracting rows...")
	start = time.Now()
	needleValues, err := needle.ColumnByRef(cfg.NeedleCol)
	if err != nil {
		return nil, stageErr(StageMatch, fmt.Errorf("needle: %w", err))
	}
	matched, err := match.Rows(haystack, cfg.HaystackCol, needleValues)
	if err != nil {
		return nil, stageErr(StageMatch, fmt.Errorf("haystack: %w", err))
	}
	report.Matched = matched
	report.MatchedRows = matched.Len()
	report.Columns = matched.Columns()
	log.Info("rows matched", "matched_rows", matched.Len())
	log.Debug("stage finished", "stage", StageMatch, "elapsed", time.Since(start))
	r.say("Done!")

	// Write
	if err := ctx.Err(); err != nil {
		return nil, stageErr(StageWrite, err)
	}
	if err := tableio.WriteDelimited(cfg.OutPath, matched, cfg.Haystack.Delim, cfg.Haystack.Header); err != nil {
		return nil, stageErr(StageWrite, err)
	}
	r.say("Extracted rows written to: \"%s\"", cfg.OutPath)

	// Unmatched, from the table that was just written
	matchedValues, err := matched.ColumnByRef(cfg.HaystackCol)
	if err != nil {
		return report, stageErr(StageUnmatched, err)
	}
	report.Unmatched = match.Unmatched(matchedValues, needleValues, cfg.Unmatched)
	log.Info("run finished", "unmatched", len(report.Unmatched), "needle_rows", report.NeedleRows, "semantics", cfg.Unmatched)

	return report, nil
}

func splitHaystack(haystack *table.Table, split SplitConfig) (*table.Table, []attr.Divergence, error) {
	column, err := haystack.ColumnByRef(split.Col)
	if err != nil {
		return nil, nil, err
	}
	divergences := attr.Validate(column, split.Delim)

	combined, err := attr.Combine(haystack, split.Col, split.Delim)
	if err != nil {
		return nil, nil, err
	}
	return combined, divergences, nil
}
