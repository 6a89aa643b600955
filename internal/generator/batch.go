// Package generator implements the multi-producer/single-consumer
// synthetic file generator: P producer tasks each emit fixed-size batches
// of Records through a bounded channel, and one writer drains them to
// disk until the target size is reached.
package generator

import (
	"math/rand"

	"github.com/peak/xsort/internal/record"
)

// Batch is a fixed-length slice of Records produced by one producer in
// one turn. Ownership passes exclusively from producer to channel to
// consumer.
type Batch []record.Record

// TextSource supplies the random text used for freshly generated
// records. It is a collaborator, not part of this spec's core: the exact
// alphabet and length distribution are deliberately left to the caller
// (spec §1: "random-text generation details... are out of scope").
type TextSource func(rng *rand.Rand) string

// ReusePolicy decides, for slot i of a batch with count records already
// appended to it, whether that slot should be generated by reusing an
// existing record's text (returning true and the index to reuse) or by
// generating fresh text (returning false). The default policy
// (DefaultReusePolicy) reuses the most recently appended record with
// roughly 1-in-500 probability (spec §4.4).
type ReusePolicy func(rng *rand.Rand, count int) (index int, reuse bool)

// DefaultReusePolicy reuses the most recently appended record in a batch
// with probability 1/500.
func DefaultReusePolicy(rng *rand.Rand, count int) (int, bool) {
	if count == 0 {
		return 0, false
	}
	if rng.Intn(500) == 0 {
		return count - 1, true
	}
	return 0, false
}
