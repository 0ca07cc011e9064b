package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ProcessTree converts every matching file under inputRoot, one at a time in
// sorted path order. A failed file is counted and the walk continues.
func (w *implWalker) ProcessTree(ctx context.Context, inputRoot, outputRoot string, preserveStructure bool) (Summary, error) {
	summary := Summary{RunID: uuid.NewString()}

	info, err := os.Stat(inputRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Error(ctx, "Input directory does not exist: %s", inputRoot)
			return summary, fmt.Errorf("%w: %s", ErrInputNotFound, inputRoot)
		}
		return summary, fmt.Errorf("stat input: %w", err)
	}
	if !info.IsDir() {
		return summary, fmt.Errorf("input is not a directory: %s", inputRoot)
	}

	files, err := w.discover(ctx, inputRoot, outputRoot)
	if err != nil {
		return summary, fmt.Errorf("discover files: %w", err)
	}
	if len(files) == 0 {
		w.logger.Warn(ctx, "No %s files found in %s", w.converter.Direction().From, inputRoot)
		return summary, fmt.Errorf("%w: %s", ErrNoFiles, inputRoot)
	}

	if err := os.MkdirAll(outputRoot, 0755); err != nil {
		w.logger.Error(ctx, "Failed to create output directory %s: %v", outputRoot, err)
		return summary, fmt.Errorf("create output dir: %w", err)
	}

	summary.Total = len(files)
	w.logger.Info(ctx, "[%s] Found %d %s files under %s", summary.RunID, summary.Total, w.converter.Direction().From, inputRoot)

	for i, src := range files {
		job := Job{
			Source:      src,
			Destination: OutputPath(inputRoot, outputRoot, src, w.converter.Direction().To.Ext(), preserveStructure),
		}

		if ctx.Err() != nil {
			job.Outcome = Skipped
			job.Err = ctx.Err()
			summary.add(job)
			continue
		}

		w.logger.Debug(ctx, "[%d/%d] %s", i+1, summary.Total, src)
		job.Entries, job.Err = w.converter.Convert(ctx, job.Source, job.Destination)
		if job.Err != nil {
			job.Outcome = Failed
		} else {
			job.Outcome = Succeeded
		}
		summary.add(job)
	}

	w.logger.Info(ctx, "[%s] Directory conversion complete: %d/%d files converted", summary.RunID, summary.Succeeded, summary.Total)
	if ctx.Err() != nil {
		return summary, ctx.Err()
	}
	return summary, nil
}

// OutputPath maps src below inputRoot to its destination below outputRoot
// with ext as the new extension.
func OutputPath(inputRoot, outputRoot, src, ext string, preserveStructure bool) string {
	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ext
	if !preserveStructure {
		return filepath.Join(outputRoot, name)
	}

	rel, err := filepath.Rel(inputRoot, filepath.Dir(src))
	if err != nil || rel == "." {
		return filepath.Join(outputRoot, name)
	}
	return filepath.Join(outputRoot, rel, name)
}

func (w *implWalker) discover(ctx context.Context, inputRoot, outputRoot string) ([]string, error) {
	ext := w.converter.Direction().From.Ext()
	skipDir, _ := filepath.Abs(outputRoot)

	var files []string
	err := filepath.WalkDir(inputRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return w.walkError(ctx, inputRoot, path, err)
		}
		if d.IsDir() {
			if abs, _ := filepath.Abs(path); abs == skipDir && path != inputRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// walkError aborts discovery only when the root itself cannot be read.
func (w *implWalker) walkError(ctx context.Context, root, path string, err error) error {
	if path == root {
		return err
	}
	w.logger.Warn(ctx, "Skipping unreadable path %s: %v", path, err)
	return nil
}
