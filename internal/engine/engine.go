// Package engine orchestrates batch conversion: file discovery, a
// bounded worker pool, and the per-run manifest. Individual file
// conversions are independent pure computations, so the pool shares no
// state beyond the output tree, and one file's failure never aborts the
// batch.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wikikg-labs/mconv/pkg/convert"
)

// Config configures an Engine.
type Config struct {
	// InputRoot is a source file or a directory tree of source files.
	InputRoot string

	// OutputRoot mirrors InputRoot: a directory for batch runs, or the
	// output file path when InputRoot is a single file.
	OutputRoot string

	// Recursive enables descending into subdirectories of InputRoot.
	Recursive bool

	// Workers bounds the conversion pool. Defaults to GOMAXPROCS.
	Workers int

	// Extension selects eligible input files (default ".m").
	Extension string

	// OutExtension replaces Extension on output paths (default ".py").
	OutExtension string

	// ArticleHeader derives an article-name comment for each output
	// file from its file name.
	ArticleHeader bool

	// StripComments drops source comments from the output instead of
	// rewriting them.
	StripComments bool

	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Engine runs batch conversions.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Engine, applying config defaults.
func New(cfg Config) (*Engine, error) {
	if cfg.InputRoot == "" {
		return nil, fmt.Errorf("input root is required")
	}
	if cfg.OutputRoot == "" {
		return nil, fmt.Errorf("output root is required")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Extension == "" {
		cfg.Extension = ".m"
	}
	if cfg.OutExtension == "" {
		cfg.OutExtension = ".py"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{cfg: cfg, logger: logger}, nil
}

// Run discovers eligible files and converts them concurrently. Per-file
// failures (conversion or I/O) are recorded in the manifest; Run itself
// only fails for invocation-level problems such as a missing input
// root. When ctx is canceled, in-flight files finish and the rest are
// recorded as skipped.
func (e *Engine) Run(ctx context.Context) (*Manifest, error) {
	files, single, err := e.Discover()
	if err != nil {
		return nil, err
	}
	e.logger.Info("starting batch", "files", len(files), "workers", e.cfg.Workers)

	m := newManifest(e.cfg.InputRoot, e.cfg.OutputRoot)
	results := make([]FileResult, len(files))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(e.cfg.Workers)
	for idx, rel := range files {
		eg.Go(func() error {
			select {
			case <-egctx.Done():
				results[idx] = FileResult{Path: rel, Status: StatusSkipped, Message: "not attempted"}
				return nil
			default:
			}
			results[idx] = e.convertOne(rel, single)
			return nil
		})
	}
	// Workers never return errors; failures live in the manifest.
	_ = eg.Wait()

	m.finish(results)
	e.logger.Info("batch complete",
		"run_id", m.RunID, "succeeded", m.Succeeded, "failed", m.Failed, "skipped", m.Skipped)
	return m, nil
}

// convertOne converts a single discovered file and reports the outcome.
func (e *Engine) convertOne(rel string, single bool) FileResult {
	inPath := e.inputFor(rel, single)
	outPath := e.outputFor(rel, single)

	opts := convert.Options{StripComments: e.cfg.StripComments}
	if e.cfg.ArticleHeader {
		opts.ArticleName = articleNameFor(rel)
	}

	if err := convert.ConvertFileWithOptions(inPath, outPath, opts); err != nil {
		res := FileResult{Path: rel, Status: StatusFailed, Message: err.Error()}
		var cerr *convert.Error
		if errors.As(err, &cerr) {
			res.ErrKind = cerr.Kind.String()
			res.Line = cerr.Pos.Line
			res.Column = cerr.Pos.Column
		}
		e.logger.Debug("conversion failed", "path", rel, "error", err)
		return res
	}
	e.logger.Debug("converted", "path", rel, "output", outPath)
	return FileResult{Path: rel, Status: StatusSucceeded}
}

func (e *Engine) inputFor(rel string, single bool) string {
	if single {
		return e.cfg.InputRoot
	}
	return filepath.Join(e.cfg.InputRoot, rel)
}

// outputFor mirrors the relative input path under the output root,
// swapping the extension. For single-file runs the output root is used
// verbatim when it already names a file of the output extension.
func (e *Engine) outputFor(rel string, single bool) string {
	if single && strings.HasSuffix(e.cfg.OutputRoot, e.cfg.OutExtension) {
		return e.cfg.OutputRoot
	}
	out := strings.TrimSuffix(rel, e.cfg.Extension) + e.cfg.OutExtension
	return filepath.Join(e.cfg.OutputRoot, out)
}

// articleNameFor recovers a human-readable article name from a corpus
// file name like 00123_Article_Name.m.
func articleNameFor(rel string) string {
	stem := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	if i := strings.IndexByte(stem, '_'); i > 0 {
		digits := true
		for _, c := range stem[:i] {
			if c < '0' || c > '9' {
				digits = false
				break
			}
		}
		if digits {
			stem = stem[i+1:]
		}
	}
	return strings.ReplaceAll(stem, "_", " ")
}

// EnsureOutputRoot creates the output directory tree root.
func (e *Engine) EnsureOutputRoot() error {
	dir := e.cfg.OutputRoot
	if strings.HasSuffix(dir, e.cfg.OutExtension) {
		dir = filepath.Dir(dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output root not writable: %w", err)
	}
	return nil
}
