package generator

import (
	"bufio"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peak/xsort/internal/record"
	"gotest.tools/v3/assert"
)

func TestRunGeneratesFileAtLeastTargetSize(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const target = int64(64 * 1024)
	err := Run(ctx, Options{
		OutputPath:      path,
		TargetBytes:     target,
		Producers:       2,
		LinesPerBatch:   50,
		ChannelCapacity: 8,
		TextSource:      func(r *rand.Rand) string { return "FixedTextValue" },
	})
	assert.NilError(t, err)

	info, err := os.Stat(path)
	assert.NilError(t, err)
	assert.Assert(t, info.Size() >= target)
}

func TestRunGeneratesParsableRecords(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := Run(ctx, Options{
		OutputPath:      path,
		TargetBytes:     8 * 1024,
		Producers:       1,
		LinesPerBatch:   20,
		ChannelCapacity: 4,
	})
	assert.NilError(t, err)

	f, err := os.Open(path)
	assert.NilError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		_, ok := record.Parse(scanner.Text())
		assert.Assert(t, ok)
		lines++
	}
	assert.Assert(t, lines > 0)
}
