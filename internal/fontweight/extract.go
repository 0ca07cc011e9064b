package fontweight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (e *implExtractor) Extract(ctx context.Context, path, outDir string) ([]string, error) {
	faces, err := e.Inspect(ctx, path)
	if err != nil {
		return nil, err
	}

	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(path), e.defaultDir)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var (
		written []string
		errs    []error
		seen    = make(map[string]bool)
	)

	for _, face := range faces {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if face.Variable() {
			if len(faces) > 1 {
				e.logger.Warn(ctx, "Skipping variable font %d inside collection %s", face.Index, path)
				continue
			}
			out, err := e.extractInstances(ctx, face, stem, outDir)
			written = append(written, out...)
			if err != nil {
				errs = append(errs, err)
			}
			continue
		}

		if face.Weight == 0 {
			e.logger.Warn(ctx, "Cannot determine weight of %s (font %d), skipping", path, face.Index)
			errs = append(errs, fmt.Errorf("%s font %d: %w", path, face.Index, ErrNoWeight))
			continue
		}

		dst := filepath.Join(outDir, stem+"_"+WeightName(face.Weight)+ext)
		if seen[dst] {
			continue
		}
		seen[dst] = true

		if err := copyFile(path, dst); err != nil {
			e.logger.Error(ctx, "Failed to copy %s: %v", path, err)
			errs = append(errs, err)
			continue
		}
		e.logger.Info(ctx, "Extracted: %s -> %s (%s)", filepath.Base(path), filepath.Base(dst), WeightName(face.Weight))
		written = append(written, dst)
	}

	return written, errors.Join(errs...)
}

// extractInstances pins the wght axis of a variable font at every named
// instance through fonttools.
func (e *implExtractor) extractInstances(ctx context.Context, face Face, stem, outDir string) ([]string, error) {
	if len(face.Instances) == 0 {
		e.logger.Warn(ctx, "Variable font %s has no named instances, skipping", face.Path)
		return nil, nil
	}
	if _, err := e.exec.LookPath(e.fontTools); err != nil {
		e.logger.Error(ctx, "Cannot instance %s: %v", face.Path, err)
		return nil, fmt.Errorf("%s: %w", face.Path, ErrToolMissing)
	}

	var (
		written []string
		errs    []error
		used    = make(map[string]int)
	)

	for _, inst := range face.Instances {
		wght, ok := inst.Coordinates[tagWeightAxis]
		if !ok {
			continue
		}

		suffix := uniqueSuffix(used, strings.ReplaceAll(inst.Name, " ", ""))
		dst := filepath.Join(outDir, stem+"_"+suffix+".ttf")

		_, err := e.exec.Execute(ctx, e.fontTools, "varLib.instancer", face.Path,
			"wght="+strconv.FormatFloat(wght, 'f', -1, 64), "-o", dst)
		if err != nil {
			e.logger.Error(ctx, "Failed to instance %s at wght=%g: %v", face.Path, wght, err)
			errs = append(errs, fmt.Errorf("instance %s: %w", inst.Name, err))
			continue
		}

		e.logger.Info(ctx, "Extracted: %s -> %s (wght=%g)", filepath.Base(face.Path), filepath.Base(dst), wght)
		written = append(written, dst)
	}

	return written, errors.Join(errs...)
}

// uniqueSuffix returns name, then name_2, name_3 ... on repeats.
func uniqueSuffix(used map[string]int, name string) string {
	if name == "" {
		name = "Instance"
	}
	used[name]++
	if n := used[name]; n > 1 {
		return fmt.Sprintf("%s_%d", name, n)
	}
	return name
}

// copyFile copies src to dst and keeps the modification time.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open font: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat font: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy font: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dst, err)
	}

	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
