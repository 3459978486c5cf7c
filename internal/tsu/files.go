package tsu

import (
	"context"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/tsu/internal/format"
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
	"golang.org/x/sync/errgroup"
)

// programExtensions are the file extensions recognised as program files.
var programExtensions = []string{".json", ".yaml", ".yml"}

// allProgramFiles returns an iterator over all program files under root, recursively.
//
// A call to allProgramFiles like this:
//
//	for file, err := range allProgramFiles(".") {
//	    // Loop body
//	}
//
// Is roughly equivalent to the following in bash:
//
//	for file in **/*.{json,yaml,yml}; do { # stuff }; done
//
// The sequence ends after the first error.
func allProgramFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		// Every error is sent from inside the walk so WalkDir itself only ever
		// returns nil
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// The walk stops at the first error whatever the caller does with it
				yield("", walkErr)
				return fs.SkipAll
			}

			if d.Type().IsRegular() && slices.Contains(programExtensions, filepath.Ext(d.Name())) {
				if !yield(path, nil) {
					return fs.SkipAll
				}
			}

			return nil
		})
	}
}

// programPaths resolves path, which may be a single program file or a directory, to
// the sorted list of program files it names.
func programPaths(logger *log.Logger, path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		logger.Debug("Path is a file")
		return []string{path}, nil
	}

	logger.Debug("Path is a directory")

	var paths []string

	for file, err := range allProgramFiles(path) {
		if err != nil {
			return nil, fmt.Errorf("could not walk %s: %w", path, err)
		}

		paths = append(paths, file)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no program files (%v) found in %s", programExtensions, path)
	}

	slices.Sort(paths)

	return paths, nil
}

// loadFile decodes the program file at path into a term tree, problems with the
// tree are reported to handler.
func loadFile(path string, handler syntax.ErrorHandler) (ast.File, error) {
	importer, err := format.ImporterFor(path, handler)
	if err != nil {
		return ast.File{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return ast.File{}, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	file, err := importer.Import(f)
	if err != nil {
		return ast.File{}, fmt.Errorf("could not load %s: %w", path, err)
	}

	return file, nil
}

// loadAll loads every file in paths concurrently, the returned files are in the
// same order as paths.
func loadAll(ctx context.Context, logger *log.Logger, paths []string, handler syntax.ErrorHandler) ([]ast.File, error) {
	start := time.Now()
	files := make([]ast.File, len(paths))

	group, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := loadFile(path, handler)
			if err != nil {
				return err
			}

			files[i] = file

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Loaded program files", slog.Int("count", len(files)), slog.Duration("took", time.Since(start)))

	return files, nil
}

// lockedHandler returns a [syntax.ErrorHandler] that serialises calls to handler, so
// it may be shared by goroutines loading different files.
func lockedHandler(handler syntax.ErrorHandler) syntax.ErrorHandler {
	if handler == nil {
		return nil
	}

	var mu sync.Mutex

	return func(span syntax.Span, msg string) {
		mu.Lock()
		defer mu.Unlock()

		handler(span, msg)
	}
}
