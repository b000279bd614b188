package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const goodSource = `AddEntity[Wing, <|"Medium" -> "air"|>];`

func TestRunSingleFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wing.m")
	out := filepath.Join(dir, "wing.py")
	writeFile(t, in, goodSource)

	eng, err := New(Config{InputRoot: in, OutputRoot: out})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Succeeded != 1 || m.Failed != 0 || m.Total != 1 {
		t.Errorf("manifest counts = %s", m.Summary())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), `Wing = AddEntity("Wing",`) {
		t.Errorf("unexpected output:\n%s", data)
	}
}

func TestRunDirectoryMirrorsTree(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := t.TempDir()
	writeFile(t, filepath.Join(inRoot, "a.m"), goodSource)
	writeFile(t, filepath.Join(inRoot, "sub", "b.m"), goodSource)
	writeFile(t, filepath.Join(inRoot, "notes.txt"), "ignore me")

	eng, err := New(Config{InputRoot: inRoot, OutputRoot: outRoot, Recursive: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Succeeded != 2 || m.Total != 2 {
		t.Errorf("manifest counts = %s", m.Summary())
	}

	for _, rel := range []string{"a.py", filepath.Join("sub", "b.py")} {
		if _, err := os.Stat(filepath.Join(outRoot, rel)); err != nil {
			t.Errorf("missing output %s: %v", rel, err)
		}
	}
}

func TestRunNonRecursiveSkipsSubdirs(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := t.TempDir()
	writeFile(t, filepath.Join(inRoot, "a.m"), goodSource)
	writeFile(t, filepath.Join(inRoot, "sub", "b.m"), goodSource)

	eng, err := New(Config{InputRoot: inRoot, OutputRoot: outRoot})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Total != 1 {
		t.Errorf("total = %d, want 1", m.Total)
	}
}

func TestRunBatchSurvivesFailingFile(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := t.TempDir()
	writeFile(t, filepath.Join(inRoot, "bad.m"), "AddEntity[Wing")
	writeFile(t, filepath.Join(inRoot, "good.m"), goodSource)

	eng, err := New(Config{InputRoot: inRoot, OutputRoot: outRoot, Workers: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Succeeded != 1 || m.Failed != 1 {
		t.Errorf("manifest counts = %s", m.Summary())
	}

	failures := m.Failures()
	if len(failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(failures))
	}
	f := failures[0]
	if f.Path != "bad.m" {
		t.Errorf("failure path = %q", f.Path)
	}
	if f.ErrKind != "unbalanced_brackets" {
		t.Errorf("failure kind = %q", f.ErrKind)
	}
	if f.Line != 1 {
		t.Errorf("failure line = %d", f.Line)
	}

	if _, err := os.Stat(filepath.Join(outRoot, "bad.py")); !os.IsNotExist(err) {
		t.Errorf("failed file should produce no output")
	}
	if _, err := os.Stat(filepath.Join(outRoot, "good.py")); err != nil {
		t.Errorf("good file missing: %v", err)
	}
}

func TestRunManifestOrderedByPath(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := t.TempDir()
	for _, name := range []string{"c.m", "a.m", "b.m"} {
		writeFile(t, filepath.Join(inRoot, name), goodSource)
	}

	eng, err := New(Config{InputRoot: inRoot, OutputRoot: outRoot, Workers: 3})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var got []string
	for _, r := range m.Results {
		got = append(got, r.Path)
	}
	want := []string{"a.m", "b.m", "c.m"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("results order = %v, want %v", got, want)
		}
	}
}

func TestRunCanceledContextSkips(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := t.TempDir()
	for i := 0; i < 8; i++ {
		writeFile(t, filepath.Join(inRoot, string(rune('a'+i))+".m"), goodSource)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng, err := New(Config{InputRoot: inRoot, OutputRoot: outRoot, Workers: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := eng.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if m.Skipped != m.Total {
		t.Errorf("skipped = %d, total = %d; want all skipped", m.Skipped, m.Total)
	}
	for _, r := range m.Results {
		if r.Status == StatusSkipped && r.Message != "not attempted" {
			t.Errorf("skip message = %q", r.Message)
		}
	}
}

func TestRunMissingInputRoot(t *testing.T) {
	eng, err := New(Config{InputRoot: filepath.Join(t.TempDir(), "nope"), OutputRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := eng.Run(context.Background()); err == nil {
		t.Error("expected error for missing input root")
	}
}

func TestArticleNameFor(t *testing.T) {
	cases := map[string]string{
		"00123_Fixed_wing.m": "Fixed wing",
		"Fixed_wing.m":       "Fixed wing",
		"wing.m":             "wing",
		"12a_Thing.m":        "12a Thing",
	}
	for in, want := range cases {
		if got := articleNameFor(in); got != want {
			t.Errorf("articleNameFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestArticleHeaderOption(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := t.TempDir()
	writeFile(t, filepath.Join(inRoot, "00042_Fixed_wing.m"), goodSource)

	eng, err := New(Config{InputRoot: inRoot, OutputRoot: outRoot, ArticleHeader: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := eng.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outRoot, "00042_Fixed_wing.py"))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.HasPrefix(string(data), "# Knowledge graph for: Fixed wing\n") {
		t.Errorf("missing article header:\n%s", data)
	}
}
