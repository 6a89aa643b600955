package sortengine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func writeChunkFile(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMergePreparedChunks(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	c1 := writeChunkFile(t, dir, "chunk_0.tmp", []string{"5. Apple", "15. Manatee"})
	c2 := writeChunkFile(t, dir, "chunk_1.tmp", []string{"1. Ant", "99. Zebra"})
	c3 := writeChunkFile(t, dir, "chunk_2.tmp", []string{"10. Cherry", "20. Orange"})

	output := filepath.Join(dir, "out.txt")
	err := Merge(context.Background(), MergeOptions{ChunkPaths: []string{c1, c2, c3}, OutputPath: output})
	assert.NilError(t, err)

	got := readLines(t, output)
	want := []string{"1. Ant", "5. Apple", "10. Cherry", "15. Manatee", "20. Orange", "99. Zebra"}
	assert.DeepEqual(t, got, want)
}

func TestMergeEmptyChunkPaths(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	output := filepath.Join(dir, "out.txt")

	err := Merge(context.Background(), MergeOptions{OutputPath: output})
	assert.NilError(t, err)

	got := readLines(t, output)
	assert.Equal(t, len(got), 0)
}

func TestMergeAbandonsChunkWithUnparseableTail(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	good := writeChunkFile(t, dir, "chunk_0.tmp", []string{"1. Apple", "2. Banana"})
	bad := writeChunkFile(t, dir, "chunk_1.tmp", []string{"5. Cherry", "not a valid line", "6. Date"})

	output := filepath.Join(dir, "out.txt")
	err := Merge(context.Background(), MergeOptions{ChunkPaths: []string{good, bad}, OutputPath: output})
	assert.NilError(t, err)

	got := readLines(t, output)
	want := []string{"1. Apple", "2. Banana", "5. Cherry"}
	assert.DeepEqual(t, got, want)
}

func TestMergeChunkWithOnlyBlankLinesIsEmpty(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	blank := writeChunkFile(t, dir, "chunk_0.tmp", []string{"", "   "})
	good := writeChunkFile(t, dir, "chunk_1.tmp", []string{"1. Apple"})

	output := filepath.Join(dir, "out.txt")
	err := Merge(context.Background(), MergeOptions{ChunkPaths: []string{blank, good}, OutputPath: output})
	assert.NilError(t, err)

	got := readLines(t, output)
	assert.DeepEqual(t, got, []string{"1. Apple"})
}
