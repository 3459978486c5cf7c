package tsu

import (
	"context"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/tsu/internal/syntax"
	"go.followtheprocess.codes/tsu/internal/syntax/ast"
	"go.followtheprocess.codes/tsu/internal/syntax/resolver"
	"golang.org/x/sync/errgroup"
)

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Debug enables debug logging.
	Debug bool
}

// Check implements the check subcommand.
func (t Tsu) Check(ctx context.Context, handler syntax.ErrorHandler, options CheckOptions) error {
	logger := t.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	paths, err := programPaths(logger, options.Path)
	if err != nil {
		return err
	}

	logger.Debug("Checking program files given by path", slog.Int("number", len(paths)))

	handler = lockedHandler(handler)

	group := errgroup.Group{}

	for _, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return checkFile(path, handler)
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for _, path := range paths {
		msg.Fsuccess(t.stdout, "%s is valid", path)
	}

	return nil
}

// checkFile loads and statically checks a single file.
func checkFile(path string, handler syntax.ErrorHandler) error {
	file, err := loadFile(path, handler)
	if err != nil {
		return err
	}

	return checkTree(path, file, handler)
}

// checkTree statically checks an already loaded tree.
func checkTree(path string, file ast.File, handler syntax.ErrorHandler) error {
	if err := resolver.New(path, handler).Resolve(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}
