package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wikikg-labs/mconv/internal/cli/config"
	"github.com/wikikg-labs/mconv/internal/cli/output"
	"github.com/wikikg-labs/mconv/internal/engine"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "list INPUT",
		Short: "List the fact files a convert run would process",
		Long: `List the eligible input files under INPUT without converting them.

Files are matched by the configured input extension and reported in the
same order convert would record them in its manifest.`,
		Example: `  # List fact files in a directory
  mconv list data/raw -r

  # Machine-readable listing
  mconv list data/raw -r --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args[0], recursive)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")

	return cmd
}

func runList(cmd *cobra.Command, input string, recursive bool) error {
	cfg := config.GetCurrentConfig()
	render := output.NewRenderer(cmd.OutOrStdout(), output.Mode(cfg.Output))

	eng, err := engine.New(engine.Config{
		InputRoot:    input,
		OutputRoot:   os.TempDir(),
		Recursive:    recursive,
		Extension:    cfg.Extension,
		OutExtension: cfg.OutExtension,
	})
	if err != nil {
		return err
	}

	files, single, err := eng.Discover()
	if err != nil {
		return err
	}

	if render.JSON {
		enc := json.NewEncoder(render.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(files)
	}

	t := table.NewWriter()
	t.SetOutputMirror(render.Out)
	t.AppendHeader(table.Row{"#", "File", "Size"})
	for i, rel := range files {
		full := filepath.Join(input, rel)
		if single {
			full = input
		}
		size := "?"
		if info, err := os.Stat(full); err == nil {
			size = fmt.Sprintf("%d B", info.Size())
		}
		t.AppendRow(table.Row{i + 1, rel, size})
	}
	t.Render()
	fmt.Fprintln(render.Out, render.Styles.Info.Render(fmt.Sprintf("%d file(s)", len(files))))
	return nil
}
