package commands

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/wikikg-labs/mconv/internal/cli/config"
	"github.com/wikikg-labs/mconv/internal/cli/output"
	"github.com/wikikg-labs/mconv/internal/engine"
)

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "report MANIFEST",
		Short: "Summarize a batch manifest",
		Long: `Print the summary of a convert run recorded with --manifest.

With --addr the summary is served over HTTP instead: a small status
page at / and the raw manifest at /manifest.json.`,
		Example: `  # Print a run summary
  mconv report run.json

  # Browse a run summary
  mconv report run.json --addr :8823`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args[0], addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Serve the report over HTTP on this address")

	return cmd
}

func runReport(cmd *cobra.Command, path, addr string) error {
	cfg := config.GetCurrentConfig()
	render := output.NewRenderer(cmd.OutOrStdout(), output.Mode(cfg.Output))

	m, err := engine.ReadManifest(path)
	if err != nil {
		return err
	}

	if addr != "" {
		return serveReport(cmd, m, addr)
	}

	if render.JSON {
		return m.WriteJSON(render.Out)
	}

	fmt.Fprintf(render.Out, "Run %s\n", m.RunID)
	fmt.Fprintf(render.Out, "  %s -> %s\n", m.InputRoot, m.OutputRoot)
	fmt.Fprintf(render.Out, "  started %s, took %s\n", m.StartedAt.Format(time.RFC3339), m.Duration.Round(time.Millisecond))
	fmt.Fprintf(render.Out, "  %s\n", m.Summary())
	for _, f := range m.Failures() {
		loc := ""
		if f.Line > 0 {
			loc = fmt.Sprintf(" at %d:%d", f.Line, f.Column)
		}
		fmt.Fprintf(render.Out, "  %s %s%s: %s\n", render.Styles.Error.Render("FAIL"), f.Path, loc, f.Message)
	}
	return nil
}

var reportPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><title>mconv run {{.RunID}}</title></head>
<body>
<h1>Run {{.RunID}}</h1>
<p>{{.InputRoot}} &rarr; {{.OutputRoot}}</p>
<p>succeeded {{.Succeeded}}, failed {{.Failed}}, skipped {{.Skipped}}, total {{.Total}}</p>
<table border="1" cellpadding="4">
<tr><th>File</th><th>Status</th><th>Message</th></tr>
{{range .Results}}<tr><td>{{.Path}}</td><td>{{.Status}}</td><td>{{.Message}}</td></tr>
{{end}}</table>
<p><a href="/manifest.json">manifest.json</a></p>
</body>
</html>
`))

func serveReport(cmd *cobra.Command, m *engine.Manifest, addr string) error {
	logger := config.GetLogger(cmd.Context())

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := reportPage.Execute(w, m); err != nil {
			logger.Error("rendering report page", "error", err)
		}
	})
	r.Get("/manifest.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(m)
	})

	fmt.Fprintf(cmd.OutOrStdout(), "Serving report at http://localhost%s\n", addr)
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}
