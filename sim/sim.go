// Package sim drops many balls headless to measure the payout distribution
// of a board. Workers share the read-only board and each own a projectile
// stream and random generator, so results depend only on the seed and the
// worker count.
package sim

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/constants"
	"github.com/lixenwraith/plinko/physics"
	"github.com/lixenwraith/plinko/scoring"
	"github.com/lixenwraith/plinko/vmath"
)

// ErrNoBalls is returned when Options.Balls is not positive
var ErrNoBalls = errors.New("ball count must be positive")

// cancelCheckEvery is how many drops a worker runs between context checks
const cancelCheckEvery = 256

type Options struct {
	Balls   int
	Workers int // 0 uses GOMAXPROCS
	Seed    uint64
	Wager   decimal.Decimal
	// MaxTicks abandons a drop that has not settled; 0 uses the default
	MaxTicks int
	Logger   *zap.Logger
}

// Report summarizes a run
type Report struct {
	Balls       int       `json:"balls"`
	Workers     int       `json:"workers"`
	Seed        uint64    `json:"seed"`
	Abandoned   int       `json:"abandoned"`
	BinHits     []int64   `json:"bin_hits"`
	BinShare    []float64 `json:"bin_share"`
	Multipliers []float64 `json:"multipliers"`
	Wagered     string    `json:"wagered"`
	Paid        string    `json:"paid"`
	RTP         string    `json:"rtp"`
	MeanTicks   float64   `json:"mean_ticks"`
	MaxTicks    int       `json:"max_ticks"`
}

type workerResult struct {
	ledger     *scoring.Ledger
	abandoned  int
	totalTicks int64
	maxTicks   int
}

// Run drops opts.Balls balls on b split across workers
func Run(ctx context.Context, b *board.Board, profile *physics.Profile, opts Options) (*Report, error) {
	if opts.Balls <= 0 {
		return nil, ErrNoBalls
	}
	if err := scoring.ValidateWager(opts.Wager.InexactFloat64()); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Balls {
		workers = opts.Balls
	}
	maxTicks := opts.MaxTicks
	if maxTicks <= 0 {
		maxTicks = constants.MaxTicksPerDrop
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Child streams are split up front so the outcome is independent of
	// goroutine scheduling
	root := vmath.NewFastRand(opts.Seed)
	results := make([]workerResult, workers)
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		share := opts.Balls / workers
		if w < opts.Balls%workers {
			share++
		}
		rng := root.Split()
		res := &results[w]
		g.Go(func() error {
			return runWorker(gctx, b, profile, rng, opts.Wager, share, maxTicks, res)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := scoring.NewLedger(b.BinCount())
	report := &Report{
		Balls:   opts.Balls,
		Workers: workers,
		Seed:    opts.Seed,
	}
	var ticks int64
	for i := range results {
		total.Merge(results[i].ledger)
		report.Abandoned += results[i].abandoned
		ticks += results[i].totalTicks
		report.MaxTicks = max(report.MaxTicks, results[i].maxTicks)
	}

	report.BinHits = total.BinHits()
	report.BinShare = make([]float64, len(report.BinHits))
	report.Multipliers = make([]float64, b.BinCount())
	for i, hits := range report.BinHits {
		if total.Rounds() > 0 {
			report.BinShare[i] = float64(hits) / float64(total.Rounds())
		}
		report.Multipliers[i] = b.Multiplier(i)
	}
	report.Wagered = total.Wagered().StringFixed(2)
	report.Paid = total.Paid().StringFixed(2)
	report.RTP = total.RTP().StringFixed(4)
	if settled := total.Rounds(); settled > 0 {
		report.MeanTicks = float64(ticks) / float64(settled)
	}

	logger.Info("simulation complete",
		zap.Int("balls", report.Balls),
		zap.Int("workers", workers),
		zap.Int("abandoned", report.Abandoned),
		zap.String("rtp", report.RTP),
	)
	return report, nil
}

func runWorker(ctx context.Context, b *board.Board, profile *physics.Profile, rng *vmath.FastRand, wager decimal.Decimal, balls, maxTicks int, out *workerResult) error {
	out.ledger = scoring.NewLedger(b.BinCount())
	wf := wager.InexactFloat64()

	for i := 0; i < balls; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		ball := physics.Spawn(b, profile, rng)
		for !ball.Settled() && ball.Ticks() < maxTicks {
			if _, err := ball.Step(b, wf); err != nil {
				return fmt.Errorf("drop %d: %w", i, err)
			}
		}
		if !ball.Settled() {
			out.abandoned++
			continue
		}

		payout, _ := ball.Payout()
		out.ledger.Record(ball.BinIndex(), wager, decimal.NewFromFloat(payout))
		out.totalTicks += int64(ball.Ticks())
		out.maxTicks = max(out.maxTicks, ball.Ticks())
	}
	return nil
}
