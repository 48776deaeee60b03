// entitygen writes the entities mapping methods for every struct marked with
// //entities:table in the given packages.
//
//	//go:generate go run github.com/gtechsltn/entities/cmd/entitygen
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"github.com/gtechsltn/entities/gen"
)

func main() {
	out := flag.String("o", "entities_gen.go", "output file name, written next to each package's sources")
	workers := flag.Int("j", 4, "number of packages generated in parallel")
	flag.Parse()

	patterns := flag.Args()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "entitygen: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), logger, "", *out, *workers, patterns); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
}

// run generates out for every package matching patterns, resolved from dir
// (the working directory when empty).
func run(ctx context.Context, logger *zap.Logger, dir, out string, workers int, patterns []string) error {
	pkgs, err := packages.Load(&packages.Config{
		Context: ctx,
		Dir:     dir,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
	}, patterns...)
	if err != nil {
		return err
	}
	if packages.PrintErrors(pkgs) > 0 {
		return fmt.Errorf("failed to load %v", patterns)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for _, pkg := range pkgs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return generate(logger, pkg, out)
		})
	}
	return eg.Wait()
}

func generate(logger *zap.Logger, pkg *packages.Package, out string) error {
	if len(pkg.GoFiles) == 0 {
		return nil
	}
	src, err := gen.Package(pkg.Name, pkg.Syntax)
	if err != nil {
		return fmt.Errorf("%s: %w", pkg.PkgPath, err)
	}
	if src == nil {
		logger.Debug("no entities", zap.String("package", pkg.PkgPath))
		return nil
	}

	path := filepath.Join(filepath.Dir(pkg.GoFiles[0]), out)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return err
	}
	logger.Info("generated", zap.String("package", pkg.PkgPath), zap.String("file", path))
	return nil
}
