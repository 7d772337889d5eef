// Package pipeline wires the fetch, aggregation and report stages of a
// single analysis run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/lildude/stravastats/internal/analysis"
	"github.com/lildude/stravastats/internal/client"
	"github.com/lildude/stravastats/internal/config"
	"github.com/lildude/stravastats/internal/report"
	"github.com/lildude/stravastats/internal/strava"
	"github.com/lildude/stravastats/internal/tokens"
)

// ErrNoActivities is returned when the API reports an empty history; there
// is nothing to aggregate or chart.
var ErrNoActivities = errors.New("pipeline: no activities fetched")

// Result summarises a completed run for the caller to print.
type Result struct {
	Activities int
	Excluded   int
	Days       int
	TypeCounts map[string]int
	Splits     []analysis.SplitEstimate
	ReportPath string
}

// Run fetches the athlete's full activity history, derives the summary views
// and writes the chart report. The token is resolved before anything touches
// the API, so a missing credential fails fast.
func Run(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*Result, error) {
	token, err := tokens.Resolve(ctx, cfg)
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.StravaBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing strava base URL: %w", err)
	}

	cc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	cc.Timeout = cfg.HTTPTimeout

	svc, err := strava.NewActivityService(client.NewClient(base, cc), log, cfg.PerPage, cfg.MaxPages)
	if err != nil {
		return nil, err
	}

	activities, err := svc.ListAllActivities(ctx)
	if err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, ErrNoActivities
	}
	log.WithField("activities", len(activities)).Info("fetched full history")

	table := analysis.NewTable(activities)
	if table.Excluded() > 0 {
		log.WithField("count", table.Excluded()).Warn("excluded records without a start timestamp")
	}

	days := table.DistanceByDay()
	counts := table.TypeCounts()
	splits := table.SplitEstimates(cfg.TargetDistances)

	rep := &report.Report{Days: days, Types: counts, Splits: splits}
	if err := rep.WriteFile(cfg.ReportPath); err != nil {
		return nil, err
	}
	log.WithField("path", cfg.ReportPath).Info("wrote report")

	return &Result{
		Activities: table.Len(),
		Excluded:   table.Excluded(),
		Days:       len(days),
		TypeCounts: counts,
		Splits:     splits,
		ReportPath: cfg.ReportPath,
	}, nil
}
