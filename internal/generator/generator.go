package generator

import (
	"context"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/peak/xsort/internal/xerrors"
)

// DefaultChannelCapacity is the bounded channel's default capacity (spec
// §3: "capacity C (configurable, default 100-1000)").
const DefaultChannelCapacity = 256

// DefaultLinesPerBatch is the default batch size produced per turn.
const DefaultLinesPerBatch = 1000

// Options configures a full generation run.
type Options struct {
	OutputPath      string
	TargetBytes     int64
	ChannelCapacity int
	LinesPerBatch   int
	Producers       int
	TextSource      TextSource
	ReusePolicy     ReusePolicy
}

// defaultTextSource produces short alphabetic placeholder text. The exact
// alphabet and length distribution are explicitly out of scope (spec
// §1); this is a reasonable concrete default so the generator is usable
// standalone.
func defaultTextSource(rng *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	n := 3 + rng.Intn(12)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// Run constructs the bounded channel, launches opts.Producers line
// producers and one file writer, waits for the producers, closes the
// channel, then waits for the writer (spec §4.6).
//
// The writer and the producers share one cancellation source: when the
// writer trips it after reaching opts.TargetBytes, producers observe it
// and stop; the channel is then closed. The writer has already returned
// at that point: batches still in the channel are not written.
func Run(ctx context.Context, opts Options) error {
	producers := opts.Producers
	if producers <= 0 {
		producers = runtime.NumCPU()
	}
	channelCapacity := opts.ChannelCapacity
	if channelCapacity <= 0 {
		channelCapacity = DefaultChannelCapacity
	}
	linesPerBatch := opts.LinesPerBatch
	if linesPerBatch <= 0 {
		linesPerBatch = DefaultLinesPerBatch
	}
	textSource := opts.TextSource
	if textSource == nil {
		textSource = defaultTextSource
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	batches := make(chan Batch, channelCapacity)

	producerGroup, producerCtx := errgroup.WithContext(runCtx)
	for i := 0; i < producers; i++ {
		seed := time.Now().UnixNano() + int64(i)
		rng := rand.New(rand.NewSource(seed))
		producerGroup.Go(func() error {
			return RunProducer(producerCtx, ProducerOptions{
				Out:           batches,
				LinesPerBatch: linesPerBatch,
				TextSource:    textSource,
				ReusePolicy:   opts.ReusePolicy,
				Rand:          rng,
			})
		})
	}

	writerErr := make(chan error, 1)
	go func() {
		writerErr <- RunWriter(runCtx, WriterOptions{
			In:          batches,
			Path:        opts.OutputPath,
			TargetBytes: opts.TargetBytes,
			Cancel:      cancel,
		})
	}()

	producerWaitErr := producerGroup.Wait()
	close(batches)
	werr := <-writerErr

	if werr != nil {
		return werr
	}
	if producerWaitErr != nil && !xerrors.IsCancelled(producerWaitErr) {
		return producerWaitErr
	}

	return nil
}
