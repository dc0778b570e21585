package pipeline

import (
	"context"

	"calfilter/internal/config"
	"calfilter/internal/ics"
	"calfilter/internal/model"
)

// Fetcher downloads the raw feed. *ics.Fetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Runner executes Fetch → Parse → Filter → Serialize → Write.
type Runner struct {
	cfg     *config.Config
	fetcher Fetcher
}

func New(cfg *config.Config, fetcher Fetcher) *Runner {
	return &Runner{cfg: cfg, fetcher: fetcher}
}

// Run performs one complete run and reports what it did. The first error
// aborts it; fetch and parse failures never touch the output file.
func (r *Runner) Run(ctx context.Context) (model.Report, error) {
	var report model.Report

	body, err := r.fetcher.Fetch(ctx, r.cfg.SourceURL)
	if err != nil {
		return report, err
	}

	src, err := ics.Parse(body)
	if err != nil {
		return report, err
	}
	report.CalendarName = ics.MetadataOf(src).Name

	res := ics.Filter(src, r.cfg.Keyword)
	report.TotalEvents = res.Total
	report.FilteredEvents = len(res.Filtered)
	report.Filtered = res.Filtered
	report.InvalidRecurrences = ics.InvalidRecurrences(res.Calendar)

	data := ics.Serialize(res.Calendar)
	path, err := ics.Write(r.cfg.OutputDir, r.cfg.OutputFile, data)
	if err != nil {
		return report, err
	}
	report.OutputPath = path
	report.BytesOut = len(data)

	return report, nil
}
