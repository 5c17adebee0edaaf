// Package batch evaluates many input sets against one model and keeps
// their order, for test tables and offline scoring.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/internal/utils"
)

//go:generate mockgen -package batch -destination mock_evaluator_test.go github.com/nguyenthanhtrungbkhn/go-fuzzy-logic/batch Evaluator

// An Evaluator computes a crisp output. *fuzzy.Engine implements it.
type Evaluator interface {
	Compute(inputs map[string]float64) (float64, error)
}

// A Case is one input set.
type Case struct {
	Inputs map[string]float64
}

// An Outcome is the result of one Case. Err is set if the evaluation failed,
// Output is then meaningless.
type Outcome struct {
	Inputs map[string]float64
	Output float64
	Err    error
}

// Tuples names the values of every row after names.
func Tuples(names []string, rows [][]float64) ([]Case, error) {
	cases := make([]Case, len(rows))
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("batch: row %d has %d values for %d names", i, len(row), len(names))
		}
		inputs := make(map[string]float64, len(names))
		for j, name := range names {
			inputs[name] = row[j]
		}
		cases[i] = Case{Inputs: inputs}
	}
	return cases, nil
}

// Config of a Runner
type Config struct {
	// Workers evaluating cases in parallel. Defaults to GOMAXPROCS.
	Workers int
	// CacheSize is the number of memoized results. 0 disables the cache.
	// Only deterministic evaluators may be cached.
	CacheSize int
	// Registerer receives the runner metrics. nil disables metrics.
	Registerer prometheus.Registerer
}

func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Config{
		Workers:    workers,
		CacheSize:  config.CacheSize,
		Registerer: config.Registerer,
	}
}

// A Runner evaluates batches of cases.
type Runner struct {
	eval    Evaluator
	config  *Config
	cache   *lru.Cache
	metrics *metrics
}

type result struct {
	output float64
	err    error
}

// NewRunner creates a runner for eval.
func NewRunner(eval Evaluator, config *Config) (*Runner, error) {
	if eval == nil {
		return nil, fmt.Errorf("batch: nil evaluator")
	}
	config = populateConfig(config)
	r := &Runner{eval: eval, config: config}
	if config.CacheSize > 0 {
		cache, err := lru.New(config.CacheSize)
		if err != nil {
			return nil, err
		}
		r.cache = cache
	}
	if config.Registerer != nil {
		m, err := newMetrics(config.Registerer)
		if err != nil {
			return nil, err
		}
		r.metrics = m
	}
	return r, nil
}

// Run evaluates every case. Outcomes are in the order of cases. Evaluation
// errors are reported per outcome, Run itself only fails if ctx is done.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Outcome, error) {
	outcomes := make([]Outcome, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)
	for i := range cases {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = r.evaluate(cases[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	utils.Infof("Evaluated %d cases with %d workers", len(cases), r.config.Workers)
	return outcomes, nil
}

func (r *Runner) evaluate(c Case) Outcome {
	inputs := make(map[string]float64, len(c.Inputs))
	for k, v := range c.Inputs {
		inputs[k] = v
	}

	var key string
	if r.cache != nil {
		key = cacheKey(inputs)
		if v, ok := r.cache.Get(key); ok {
			res := v.(result)
			r.metrics.cacheHit()
			r.metrics.observe(res.err)
			return Outcome{Inputs: inputs, Output: res.output, Err: res.err}
		}
	}

	out, err := r.eval.Compute(inputs)
	if err != nil {
		utils.Debugf("Evaluation of %v failed: %s", inputs, err)
	}
	if r.cache != nil {
		r.cache.Add(key, result{output: out, err: err})
	}
	r.metrics.observe(err)
	return Outcome{Inputs: inputs, Output: out, Err: err}
}

// cacheKey is a canonical, exact encoding of the inputs.
func cacheKey(inputs map[string]float64) string {
	names := make([]string, 0, len(inputs))
	for name := range inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		b.WriteString(strconv.Quote(name))
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(inputs[name], 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}
