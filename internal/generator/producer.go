package generator

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"github.com/peak/xsort/internal/record"
)

// ProducerOptions configures one line-producer task.
type ProducerOptions struct {
	Out           chan<- Batch
	LinesPerBatch int
	TextSource    TextSource
	ReusePolicy   ReusePolicy
	Rand          *rand.Rand
}

// batchPool recycles the scratch buffer producers fill before handing a
// right-sized copy to the channel (spec §4.4: "Use a reusable buffer
// during fill, but transfer ownership via a right-sized copy so the
// buffer may be returned to the pool before the send awaits").
var batchPool = sync.Pool{
	New: func() interface{} {
		return make(Batch, 0, 4096)
	},
}

// RunProducer fills batches of exactly opts.LinesPerBatch records (fewer
// only if ctx is cancelled mid-batch) and sends each one through opts.Out
// until ctx is cancelled. RunProducer never closes opts.Out; the
// generator orchestrator owns that, and closes it only after every
// producer has returned.
func RunProducer(ctx context.Context, opts ProducerOptions) error {
	policy := opts.ReusePolicy
	if policy == nil {
		policy = DefaultReusePolicy
	}

	for {
		scratch := batchPool.Get().(Batch)
		scratch = scratch[:0]

		for i := 0; i < opts.LinesPerBatch; i++ {
			if err := ctx.Err(); err != nil {
				err := sendPartial(ctx, opts.Out, scratch)
				batchPool.Put(scratch[:0])
				return err
			}

			var r record.Record
			if idx, reuse := policy(opts.Rand, len(scratch)); reuse && idx < len(scratch) {
				r = record.New(opts.Rand.Int63(), scratch[idx].Text)
			} else {
				r = record.New(opts.Rand.Int63(), opts.TextSource(opts.Rand))
			}
			scratch = append(scratch, r)
		}

		batch := make(Batch, len(scratch))
		copy(batch, scratch)
		batchPool.Put(scratch[:0])

		select {
		case opts.Out <- batch:
		case <-ctx.Done():
			return nil
		}

		runtime.Gosched()
	}
}

// sendPartial offers whatever was accumulated before cancellation was
// observed (spec §4.4: "repeatedly produces batches of exactly
// lines_per_batch records, or fewer if cancelled mid-batch") without
// waiting: ctx is already done when it is called, so the batch is
// delivered only if out has room and the select picks the send, and is
// dropped otherwise. It returns nil: cancellation is a normal stop
// condition, not an error.
func sendPartial(ctx context.Context, out chan<- Batch, scratch Batch) error {
	if len(scratch) == 0 {
		return nil
	}
	batch := make(Batch, len(scratch))
	copy(batch, scratch)
	select {
	case out <- batch:
	case <-ctx.Done():
	}
	return nil
}
