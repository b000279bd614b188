package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wikikg-labs/mconv/internal/cli/config"
	"github.com/wikikg-labs/mconv/internal/cli/output"
	"github.com/wikikg-labs/mconv/internal/engine"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	var (
		outDir        string
		recursive     bool
		articleHeader bool
	)

	cmd := &cobra.Command{
		Use:   "watch INPUT",
		Short: "Reconvert fact files as they change",
		Long: `Watch INPUT and reconvert files on write. Events are debounced so an
editor's save burst produces one conversion. Runs until interrupted.`,
		Example: `  # Keep an output tree in sync with its sources
  mconv watch data/raw -o data/converted -r`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], outDir, recursive, articleHeader)
		},
	}

	cmd.Flags().StringVarP(&outDir, "output-path", "o", "", "Output file or directory (required)")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Watch subdirectories too")
	cmd.Flags().BoolVar(&articleHeader, "article-header", false, "Derive an article-name comment from each file name")
	_ = cmd.MarkFlagRequired("output-path")

	return cmd
}

func runWatch(cmd *cobra.Command, input, outDir string, recursive, articleHeader bool) error {
	cfg := config.GetCurrentConfig()
	logger := config.GetLogger(cmd.Context())
	render := output.NewRenderer(cmd.OutOrStdout(), output.Mode(cfg.Output))

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("input path: %w", err)
	}
	if info.IsDir() && !recursive {
		return fmt.Errorf("%s is a directory; pass --recursive to watch a tree", input)
	}

	eng, err := engine.New(engine.Config{
		InputRoot:     input,
		OutputRoot:    outDir,
		Recursive:     recursive,
		Workers:       cfg.Workers,
		Extension:     cfg.Extension,
		OutExtension:  cfg.OutExtension,
		ArticleHeader: articleHeader,
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	if err := eng.EnsureOutputRoot(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(render.Out, render.Styles.Info.Render(fmt.Sprintf("Watching %s (ctrl-c to stop)", input)))
	if err := eng.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
