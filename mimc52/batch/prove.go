package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/TheusHen/mimc52/mimc52"
)

func workerLimit(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}

// ProveAll runs Delay for every challenge on up to workers goroutines
// (GOMAXPROCS when workers <= 0). Records come back in input order. The
// first failure, including ctx ending, cancels the remaining work.
func ProveAll(ctx context.Context, challenges [][mimc52.ChallengeSize]byte, rounds uint64, workers int) ([]Record, error) {
	records := make([]Record, len(challenges))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(workers))
	for i := range challenges {
		i := i
		g.Go(func() error {
			proof, err := mimc52.DelayContext(ctx, challenges[i], rounds)
			if err != nil {
				return err
			}
			records[i] = Record{Challenge: challenges[i], Rounds: rounds, Proof: proof}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// VerifyAll checks every record and reports the results in input order.
// A failed proof is a false entry, not an error; the only error is ctx
// ending before all records were checked, which also stops a record that
// is still being verified.
func VerifyAll(ctx context.Context, records []Record, workers int) ([]bool, error) {
	results := make([]bool, len(records))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerLimit(workers))
	for i := range records {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := records[i].VerifyContext(ctx)
			if err != nil {
				return err
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
