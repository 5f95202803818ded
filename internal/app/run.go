package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/specialistvlad/compressopts/internal/compress"
	"github.com/specialistvlad/compressopts/internal/config"
	"github.com/specialistvlad/compressopts/internal/ctxlog"
	"github.com/specialistvlad/compressopts/internal/fsutil"
	"github.com/specialistvlad/compressopts/internal/terser"
	"golang.org/x/sync/errgroup"
)

// Run translates every configured option file and writes the results in
// sorted path order.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	files, err := a.collectFiles()
	if err != nil {
		return err
	}
	a.logger.Debug("Option files collected.", "count", len(files))

	docs, err := a.translateAll(ctx, files)
	if err != nil {
		return err
	}
	a.logger.Info("Translation finished.", "files", len(docs))

	if err := a.write(docs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// collectFiles expands directories into the option files they contain. Each
// path appears once.
func (a *App) collectFiles() ([]string, error) {
	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, path := range a.config.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if !info.IsDir() {
			if !a.loader.Supports(path) {
				return nil, fmt.Errorf("unsupported option file format for %s", path)
			}
			add(path)
			continue
		}

		found, err := fsutil.FindFilesByExtension(path, a.loader.Extensions()...)
		if err != nil {
			return nil, fmt.Errorf("failed to search directory %s: %w", path, err)
		}
		if len(found) == 0 {
			return nil, fmt.Errorf("no option files found in directory %s", path)
		}
		a.logger.Debug("Directory searched.", "path", path, "count", len(found))
		for _, f := range found {
			add(f)
		}
	}

	sort.Strings(files)
	return files, nil
}

// translateAll runs one translation per file on at most WorkerCount
// goroutines. The first failure cancels the rest.
func (a *App) translateAll(ctx context.Context, files []string) ([]config.Document, error) {
	docs := make([]config.Document, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			opts, err := a.translateFile(ctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			docs[i] = config.Document{Path: path, Options: opts}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (a *App) translateFile(ctx context.Context, path string) (compress.Options, error) {
	logger := ctxlog.FromContext(ctx).With("file", path)

	val, err := a.loader.Load(ctx, path)
	if err != nil {
		return compress.Options{}, err
	}

	raw, err := terser.Decode(val)
	if err != nil {
		return compress.Options{}, err
	}
	if raw.TopLevel.IsString() {
		logger.Warn("String form of toplevel has no effect; use a boolean.", "value", raw.TopLevel.Text())
	}

	opts, err := terser.Convert(raw)
	if err != nil {
		return compress.Options{}, err
	}

	logger.Debug("Option file translated.", "ecma", opts.Ecma.String(), "passes", opts.Passes)
	return opts, nil
}

// write encodes every document before touching the output file, so a failed
// encoding leaves any existing file as it was.
func (a *App) write(docs []config.Document) error {
	var buf bytes.Buffer
	if err := a.writer.Write(&buf, docs); err != nil {
		return err
	}

	if a.config.OutputPath == "" {
		_, err := buf.WriteTo(a.outW)
		return err
	}

	if err := os.WriteFile(a.config.OutputPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	a.logger.Debug("Output written.", "path", a.config.OutputPath, "bytes", buf.Len())
	return nil
}
