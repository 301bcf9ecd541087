package ecdsak1

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// BatchItem is one signature to check in a batch.
type BatchItem struct {
	Message   []byte
	PublicKey Point
	Signature *Signature
}

// BatchResult is the outcome for the item at Index. Err holds a precondition
// error from Verify, or the context error for items that were never verified
// because ctx was cancelled.
type BatchResult struct {
	Index int
	Valid bool
	Err   error
}

// VerifyBatch verifies items on a pool of workers (VerifierConfig.Workers,
// 0 = number of CPUs) and returns one result per item, in input order.
//
// Cancelling ctx stops dispatching new items; items already handed to a
// worker are still verified. With an already cancelled ctx nothing is
// verified.
func (v *Verifier) VerifyBatch(ctx context.Context, items []BatchItem) []BatchResult {
	results := make([]BatchResult, len(items))
	if len(items) == 0 {
		return results
	}

	numWorkers := v.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(items) {
		numWorkers = len(items)
	}

	workChan := make(chan int, numWorkers*10)
	processed := make([]bool, len(items))
	var verified int64

	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for i := range workChan {
				item := items[i]
				valid, err := v.Verify(item.Message, item.PublicKey, item.Signature)
				results[i] = BatchResult{Index: i, Valid: valid, Err: err}
				processed[i] = true
				atomic.AddInt64(&verified, 1)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(workChan)
		for i := range items {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case <-gctx.Done():
				return gctx.Err()
			case workChan <- i:
			}
		}
		return nil
	})

	// The only error comes from the dispatcher and equals ctx.Err().
	_ = g.Wait()

	for i := range results {
		if !processed[i] {
			results[i] = BatchResult{Index: i, Err: ctx.Err()}
		}
	}

	v.logger.Debug(ctx, "batch verification finished",
		"items", len(items),
		"verified", atomic.LoadInt64(&verified),
		"workers", numWorkers)

	return results
}
