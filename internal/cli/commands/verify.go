package commands

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wikikg-labs/mconv/internal/cli/config"
	"github.com/wikikg-labs/mconv/internal/cli/output"
	"github.com/wikikg-labs/mconv/internal/verify"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand() *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "verify PATH",
		Short: "Check converted output against the fact-API call shapes",
		Long: `Verify one converted file, or a tree of them, without executing anything.

Each file is scanned for AddEntity, SetPropertyCited and AssertCited
calls; unknown relation names, duplicate entities and malformed
arguments are reported with line numbers. The command exits nonzero
when any file has problems.`,
		Example: `  # Verify a single converted file
  mconv verify data/converted/wing.py

  # Verify a whole output tree
  mconv verify data/converted -r`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, args[0], recursive)
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")

	return cmd
}

func runVerify(cmd *cobra.Command, path string, recursive bool) error {
	cfg := config.GetCurrentConfig()
	render := output.NewRenderer(cmd.OutOrStdout(), output.Mode(cfg.Output))

	files, err := verifyTargets(path, cfg.OutExtension, recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files under %s", cfg.OutExtension, path)
	}

	var reports []*verify.Report
	for _, f := range files {
		rep, err := verify.VerifyFile(f)
		if err != nil {
			return err
		}
		reports = append(reports, rep)
	}

	if render.JSON {
		enc := json.NewEncoder(render.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		renderVerifyTable(render, reports)
	}

	for _, rep := range reports {
		if !rep.OK() {
			return fmt.Errorf("verification found problems in %d file(s)", countBad(reports))
		}
	}
	return nil
}

func countBad(reports []*verify.Report) int {
	n := 0
	for _, r := range reports {
		if !r.OK() {
			n++
		}
	}
	return n
}

func renderVerifyTable(render *output.Renderer, reports []*verify.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(render.Out)
	t.AppendHeader(table.Row{"File", "Entities", "Props", "Relations", "Status"})
	for _, rep := range reports {
		status := render.Styles.Success.Render("OK")
		if !rep.OK() {
			status = render.Styles.Error.Render(fmt.Sprintf("%d problem(s)", len(rep.Problems)))
		}
		t.AppendRow(table.Row{rep.Path, rep.Entities, rep.Properties, rep.Relations, status})
	}
	t.Render()

	for _, rep := range reports {
		for _, p := range rep.Problems {
			fmt.Fprintf(render.Out, "  %s:%d: %s\n", rep.Path, p.Line, p.Message)
		}
		if len(rep.UnknownRelations) > 0 {
			fmt.Fprintf(render.Out, "  %s: unknown relations: %s\n",
				rep.Path, strings.Join(rep.UnknownRelations, ", "))
		}
	}
}

func verifyTargets(path, ext string, recursive bool) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("verify path: %w", err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != path && !recursive {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ext) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking verify path: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
