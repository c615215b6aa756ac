// Package evaluation scores OCR candidates against their groundtruth and
// aggregates the scores per evaluation domain.
//
// An Evaluator loads every matched candidate/groundtruth pair through the
// digo document model, runs all configured metrics on the extracted texts
// and groups the scores under keys of the form "<metric>@<domain>". Entries
// are evaluated by a bounded worker pool; results are merged by entry
// position, so the outcome does not depend on completion order.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gardar/ocreval/pkg/digo"
	"github.com/gardar/ocreval/pkg/metrics"
	"github.com/gardar/ocreval/pkg/resolve"
	"github.com/gardar/ocreval/pkg/stats"
)

// ErrNoEvaluationData reports an aggregation without evaluated entries
var ErrNoEvaluationData = errors.New("no evaluation data")

// Score is the value of one metric for one entry
type Score struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
	Refs   int     `json:"refs"`
}

// Record holds the scores of an evaluated entry, one per configured metric
type Record struct {
	Entry  resolve.Entry `json:"entry"`
	Lines  int           `json:"lines"` // Lines of the groundtruth
	Scores []Score       `json:"scores"`
}

// Failure is an entry that could not be evaluated
type Failure struct {
	Entry resolve.Entry
	Err   error
}

// Error implements the error interface.
func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Entry.Candidate, f.Err)
}

// Unwrap returns the underlying error.
func (f Failure) Unwrap() error { return f.Err }

// Evaluator runs metrics over candidate/groundtruth pairs
type Evaluator struct {
	candidates string
	reference  string
	metrics    []metrics.Metric
	cfg        Config

	records  []Record
	failures []Failure
	results  []stats.EvaluationResult
}

// New creates an evaluator for the given roots and metrics.
func New(candidates, reference string, ms []metrics.Metric, cfg Config) *Evaluator {
	return &Evaluator{
		candidates: candidates,
		reference:  reference,
		metrics:    ms,
		cfg:        cfg,
	}
}

// Candidates returns the candidate root.
func (e *Evaluator) Candidates() string { return e.candidates }

// Reference returns the groundtruth root.
func (e *Evaluator) Reference() string { return e.reference }

// Metrics returns the configured metrics.
func (e *Evaluator) Metrics() []metrics.Metric { return e.metrics }

// Records returns the evaluated entries sorted by candidate path.
func (e *Evaluator) Records() []Record { return e.records }

// Failures returns the entries that failed under the CollectErrors policy.
func (e *Evaluator) Failures() []Failure { return e.failures }

// Results returns the aggregated results sorted by key.
func (e *Evaluator) Results() []stats.EvaluationResult { return e.results }

// EvalEntry loads both documents of an entry and scores them with every metric.
func (e *Evaluator) EvalEntry(entry resolve.Entry) (Record, error) {
	logger := e.cfg.logger().WithFields(logrus.Fields{
		"candidate":   entry.Candidate,
		"groundtruth": entry.Groundtruth,
	})
	logger.Debug("Evaluating entry")

	gt, err := digo.Load(entry.Groundtruth)
	if err != nil {
		return Record{}, fmt.Errorf("groundtruth: %w", err)
	}
	if gt.Text == "" {
		logger.Warn("Groundtruth contains no text")
	}

	candidate, err := digo.Load(entry.Candidate)
	if err != nil {
		return Record{}, fmt.Errorf("candidate: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"reference_text": gt.Text,
		"candidate_text": candidate.Text,
	}).Trace("Extracted texts")

	record := Record{
		Entry:  entry,
		Lines:  lineCount(gt),
		Scores: make([]Score, 0, len(e.metrics)),
	}
	for _, m := range e.metrics {
		value, err := m.Calculate(candidate.Text, &gt.Text)
		if err != nil {
			return Record{}, err
		}
		record.Scores = append(record.Scores, Score{
			Metric: m.Label(),
			Value:  value,
			Refs:   m.RefCount(gt.Text),
		})
		logger.WithField("metric", m.Label()).Tracef("Score %s", m.Format(value))
	}
	return record, nil
}

// EvalAll evaluates all entries that have a groundtruth.
//
// With FailFast the first failure cancels the remaining work and is returned.
// With CollectErrors failures are kept in Failures and the run continues.
// Records, failures and results of a previous run are discarded, also when
// this run fails.
func (e *Evaluator) EvalAll(ctx context.Context, entries []resolve.Entry) error {
	e.records, e.failures, e.results = nil, nil, nil

	logger := e.cfg.logger()
	workers := e.cfg.workers()
	logger.WithFields(logrus.Fields{
		"entries": len(entries),
		"workers": workers,
		"policy":  e.cfg.Policy.String(),
	}).Info("Evaluating entries")

	records := make([]*Record, len(entries))
	failures := make([]error, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, entry := range entries {
		if !entry.HasGroundtruth() {
			logger.WithField("candidate", entry.Candidate).Debug("Skipping entry without groundtruth")
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			record, err := e.EvalEntry(entry)
			if err != nil {
				if e.cfg.Policy == FailFast {
					return Failure{Entry: entry, Err: err}
				}
				logger.WithError(err).WithField("candidate", entry.Candidate).Warn("Evaluation failed")
				failures[i] = err
				return nil
			}
			records[i] = &record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("Evaluation aborted")
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for i := range entries {
		if records[i] != nil {
			e.records = append(e.records, *records[i])
		}
		if failures[i] != nil {
			e.failures = append(e.failures, Failure{Entry: entries[i], Err: failures[i]})
		}
	}
	slices.SortStableFunc(e.records, func(a, b Record) int {
		return strings.Compare(a.Entry.Candidate, b.Entry.Candidate)
	})

	logger.WithFields(logrus.Fields{
		"evaluated": len(e.records),
		"failed":    len(e.failures),
	}).Info("Evaluation finished")
	return nil
}

// Aggregate groups the scores of all records by key and computes one
// EvaluationResult per key. Every record contributes to
// "<metric>@<domain>" for each of its domains and, with byType and a known
// groundtruth type, to "<metric>@<root domain>@<type>".
func (e *Evaluator) Aggregate(byType bool) error {
	if len(e.records) == 0 {
		return ErrNoEvaluationData
	}

	groups := make(map[string][]stats.DataPoint)
	for i, m := range e.metrics {
		for _, r := range e.records {
			if i >= len(r.Scores) || len(r.Entry.Domains) == 0 {
				continue
			}
			point := stats.DataPoint{
				Path:  r.Entry.Candidate,
				Value: r.Scores[i].Value,
				Refs:  r.Scores[i].Refs,
				Lines: r.Lines,
			}
			for _, domain := range r.Entry.Domains {
				key := m.Label() + "@" + domain
				groups[key] = append(groups[key], point)
			}
			if byType && r.Entry.Type != "" && r.Entry.Type != resolve.NotSet {
				key := m.Label() + "@" + r.Entry.Domains[0] + "@" + r.Entry.Type
				groups[key] = append(groups[key], point)
			}
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	e.results = make([]stats.EvaluationResult, 0, len(keys))
	for _, k := range keys {
		e.results = append(e.results, stats.Evaluate(k, groups[k]))
	}
	e.cfg.logger().WithField("keys", len(keys)).Info("Aggregated results")
	return nil
}

// lineCount returns the number of lines of a document; plain text counts non blank lines
func lineCount(doc *digo.DigitalObject) int {
	if doc.Format != digo.Text {
		return len(doc.Lines())
	}
	n := 0
	for _, l := range strings.Split(doc.Text, "\n") {
		if strings.TrimSpace(l) != "" {
			n++
		}
	}
	return n
}
