package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wikikg-labs/mconv/internal/cli/config"
	"github.com/wikikg-labs/mconv/internal/cli/output"
	"github.com/wikikg-labs/mconv/internal/engine"
)

// ConvertOptions holds options for the convert command.
type ConvertOptions struct {
	Output        string
	Recursive     bool
	ErrorLog      string
	Manifest      string
	ArticleHeader bool
	StripComments bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	opts := &ConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert INPUT",
		Short: "Convert a file or directory of fact files",
		Long: `Convert Wolfram-Language-notation fact files to Python notation.

INPUT is a single file or a directory. Directories require --recursive
and are mirrored under the output root, preserving relative paths. A
failing file never aborts the batch; failures are summarized and written
to the error log.`,
		Example: `  # Convert one file
  mconv convert wing.m -o wing.py

  # Convert a corpus tree
  mconv convert data/raw -o data/converted -r

  # Keep the batch manifest for later inspection
  mconv convert data/raw -o data/converted -r --manifest run.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output-path", "o", "", "Output file or directory (required)")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "Process directories recursively")
	cmd.Flags().StringVar(&opts.ErrorLog, "error-log", "", "Error log file (default from config)")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Write the batch manifest JSON to this path")
	cmd.Flags().BoolVar(&opts.ArticleHeader, "article-header", false, "Derive an article-name comment from each file name")
	cmd.Flags().BoolVar(&opts.StripComments, "strip-comments", false, "Drop source comments instead of rewriting them")
	_ = cmd.MarkFlagRequired("output-path")

	return cmd
}

func runConvert(cmd *cobra.Command, input string, opts *ConvertOptions) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())
	render := output.NewRenderer(cmd.OutOrStdout(), output.Mode(cfg.Output))

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input path: %w", err)
	}
	if info.IsDir() && !opts.Recursive {
		return fmt.Errorf("%s is a directory; pass --recursive to convert a tree", input)
	}

	eng, err := engine.New(engine.Config{
		InputRoot:     input,
		OutputRoot:    opts.Output,
		Recursive:     opts.Recursive,
		Workers:       cfg.Workers,
		Extension:     cfg.Extension,
		OutExtension:  cfg.OutExtension,
		ArticleHeader: opts.ArticleHeader,
		StripComments: opts.StripComments,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	if err := eng.EnsureOutputRoot(); err != nil {
		return err
	}

	manifest, err := eng.Run(cmd.Context())
	if err != nil {
		return err
	}

	if render.JSON {
		if err := manifest.WriteJSON(render.Out); err != nil {
			return err
		}
	} else {
		printSummary(render, manifest)
	}

	errorLog := opts.ErrorLog
	if errorLog == "" {
		errorLog = cfg.ErrorLog
	}
	if manifest.Failed > 0 && errorLog != "" {
		if err := manifest.WriteErrorLog(errorLog); err != nil {
			return err
		}
		fmt.Fprintf(render.Out, "Failures written to %s\n", errorLog)
	}

	if opts.Manifest != "" {
		f, err := os.Create(opts.Manifest)
		if err != nil {
			return fmt.Errorf("creating manifest file: %w", err)
		}
		defer f.Close()
		if err := manifest.WriteJSON(f); err != nil {
			return err
		}
	}

	// Per-file failures are reported, not fatal: the invocation itself
	// succeeded.
	return nil
}

func printSummary(render *output.Renderer, m *engine.Manifest) {
	line := fmt.Sprintf("Converted %s in %s", m.Summary(), m.Duration.Round(time.Millisecond))
	if m.Failed > 0 {
		fmt.Fprintln(render.Out, render.Styles.Warning.Render(line))
	} else {
		fmt.Fprintln(render.Out, render.Styles.Success.Render(line))
	}
	for _, f := range m.Failures() {
		fmt.Fprintf(render.Out, "  %s %s (%s)\n", render.Styles.Error.Render("FAIL"), f.Path, f.ErrKind)
	}
}
