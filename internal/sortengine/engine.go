package sortengine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peak/xsort/internal/xerrors"
	"github.com/peak/xsort/internal/xlog"
)

// DefaultMaxChunkBytes is the default chunk memory budget (spec §6:
// "chunk_size_mb defaults to 2048").
const DefaultMaxChunkBytes = 2048 * 1024 * 1024

// Options configures a sort run end to end (spec §4.3's orchestrator
// contract).
type Options struct {
	InputPath     string
	OutputPath    string
	TempDir       string
	MaxChunkBytes int64
	Logger        *xlog.Logger
}

// Run validates inputs, ensures TempDir exists, runs the chunking phase
// then (unless it produced no chunks) the merge phase, and guarantees
// temp-file cleanup on every exit path.
//
// Cancellation is swallowed: Run returns nil, but first deletes
// OutputPath if it was created. Any other error is returned after
// cleanup has run.
func Run(ctx context.Context, opts Options) error {
	if _, err := os.Stat(opts.InputPath); err != nil {
		if os.IsNotExist(err) {
			return xerrors.New(xerrors.InputMissing, "sort", fmt.Errorf("input file not found: %v", opts.InputPath))
		}
		return xerrors.ClassifyIO("stat input", err)
	}

	if err := validate(opts); err != nil {
		return err
	}

	createdTempDir := false
	if _, err := os.Stat(opts.TempDir); os.IsNotExist(err) {
		if err := os.MkdirAll(opts.TempDir, 0o755); err != nil {
			return xerrors.ClassifyIO("create temp dir", err)
		}
		createdTempDir = true
	}

	runErr := run(ctx, opts)

	cleanup(opts.TempDir, createdTempDir, opts.Logger)

	if xerrors.IsCancelled(runErr) {
		if err := os.Remove(opts.OutputPath); err != nil && !os.IsNotExist(err) {
			if opts.Logger != nil {
				opts.Logger.Warning(xlog.CleanupWarningMessage{Path: opts.OutputPath, Err: err.Error()})
			}
		}
		return nil
	}

	if runErr != nil {
		return xerrors.ClassifyIO("sort", runErr)
	}

	return nil
}

func run(ctx context.Context, opts Options) error {
	maxChunkBytes := opts.MaxChunkBytes
	if maxChunkBytes <= 0 {
		maxChunkBytes = DefaultMaxChunkBytes
	}

	chunkPaths, err := BuildChunks(ctx, ChunkOptions{
		InputPath:     opts.InputPath,
		TempDir:       opts.TempDir,
		MaxChunkBytes: maxChunkBytes,
		Logger:        opts.Logger,
	})
	if err != nil {
		return err
	}

	if len(chunkPaths) == 0 {
		f, err := os.Create(opts.OutputPath)
		if err != nil {
			return err
		}
		return f.Close()
	}

	return Merge(ctx, MergeOptions{
		ChunkPaths: chunkPaths,
		OutputPath: opts.OutputPath,
		Logger:     opts.Logger,
	})
}

func validate(opts Options) error {
	if strings.TrimSpace(opts.OutputPath) == "" {
		return xerrors.New(xerrors.InvalidArgument, "sort", fmt.Errorf("output path must not be blank"))
	}
	if strings.TrimSpace(opts.TempDir) == "" {
		return xerrors.New(xerrors.InvalidArgument, "sort", fmt.Errorf("temp directory must not be blank"))
	}
	return nil
}

// cleanup deletes every chunk_*.tmp file left in tempDir, then removes
// tempDir itself if it is now empty and this run created it. Failures are
// logged as warnings and never propagated (spec §4.3).
func cleanup(tempDir string, createdByRun bool, logger *xlog.Logger) {
	entries, err := os.ReadDir(tempDir)
	if err != nil {
		if !os.IsNotExist(err) && logger != nil {
			logger.Warning(xlog.CleanupWarningMessage{Path: tempDir, Err: err.Error()})
		}
		return
	}

	remaining := 0
	for _, e := range entries {
		matched, _ := filepath.Match("chunk_*.tmp", e.Name())
		if !matched {
			remaining++
			continue
		}
		path := filepath.Join(tempDir, e.Name())
		if err := os.Remove(path); err != nil {
			if logger != nil {
				logger.Warning(xlog.CleanupWarningMessage{Path: path, Err: err.Error()})
			}
			remaining++
		}
	}

	if remaining == 0 && createdByRun {
		if err := os.Remove(tempDir); err != nil && logger != nil {
			logger.Warning(xlog.CleanupWarningMessage{Path: tempDir, Err: err.Error()})
		}
	}
}
