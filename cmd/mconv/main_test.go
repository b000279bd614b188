// Package main provides tests for the mconv CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wikikg-labs/mconv/internal/cli"
	"github.com/wikikg-labs/mconv/internal/cli/config"
)

func newTestCmd(t *testing.T, args ...string) (*bytes.Buffer, func() error) {
	t.Helper()
	t.Cleanup(config.ResetConfig)
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	return buf, cmd.Execute
}

func TestVersionCommand(t *testing.T) {
	buf, run := newTestCmd(t, "version")
	if err := run(); err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(buf.String(), "mconv") {
		t.Errorf("version output should contain 'mconv', got: %s", buf.String())
	}
}

func TestHelpCommand(t *testing.T) {
	buf, run := newTestCmd(t, "--help")
	if err := run(); err != nil {
		t.Errorf("help command error = %v", err)
	}
	for _, expected := range []string{"convert", "list", "verify", "watch", "report", "version"} {
		if !strings.Contains(buf.String(), expected) {
			t.Errorf("help output should contain %q, got: %s", expected, buf.String())
		}
	}
}

func TestConvertCommandSingleFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wing.m")
	out := filepath.Join(dir, "wing.py")
	if err := os.WriteFile(in, []byte(`AddEntity[Wing, <|"Medium" -> "air"|>];`), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	buf, run := newTestCmd(t, "convert", in, "-o", out, "--output", "text")
	if err := run(); err != nil {
		t.Fatalf("convert error = %v\noutput: %s", err, buf.String())
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), `Wing = AddEntity("Wing", {"Medium": "air"})`) {
		t.Errorf("unexpected conversion:\n%s", data)
	}
}

func TestConvertCommandDirectoryNeedsRecursive(t *testing.T) {
	dir := t.TempDir()
	_, run := newTestCmd(t, "convert", dir, "-o", t.TempDir())
	if err := run(); err == nil {
		t.Error("converting a directory without --recursive should fail")
	}
}

func TestConvertCommandFailuresDoNotFailInvocation(t *testing.T) {
	inRoot := t.TempDir()
	outRoot := t.TempDir()
	if err := os.WriteFile(filepath.Join(inRoot, "bad.m"), []byte("AddEntity[Wing"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	errLog := filepath.Join(outRoot, "errors.log")

	buf, run := newTestCmd(t, "convert", inRoot, "-o", outRoot, "-r",
		"--error-log", errLog, "--output", "text")
	if err := run(); err != nil {
		t.Fatalf("per-file failures must not fail the invocation: %v", err)
	}
	if !strings.Contains(buf.String(), "failed: 1") {
		t.Errorf("summary should report the failure, got: %s", buf.String())
	}
	if _, err := os.Stat(errLog); err != nil {
		t.Errorf("error log missing: %v", err)
	}
}

func TestConvertCommandWritesManifest(t *testing.T) {
	inRoot := t.TempDir()
	if err := os.WriteFile(filepath.Join(inRoot, "a.m"), []byte("x = 1"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	manifest := filepath.Join(t.TempDir(), "run.json")

	_, run := newTestCmd(t, "convert", inRoot, "-o", t.TempDir(), "-r", "--manifest", manifest)
	if err := run(); err != nil {
		t.Fatalf("convert error = %v", err)
	}

	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("manifest missing: %v", err)
	}
	if !strings.Contains(string(data), `"run_id"`) {
		t.Errorf("manifest content unexpected: %s", data)
	}
}

func TestListCommand(t *testing.T) {
	inRoot := t.TempDir()
	for _, name := range []string{"a.m", "b.m", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(inRoot, name), []byte("x = 1"), 0o644); err != nil {
			t.Fatalf("write input: %v", err)
		}
	}

	buf, run := newTestCmd(t, "list", inRoot, "--output", "text")
	if err := run(); err != nil {
		t.Fatalf("list error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "a.m") || !strings.Contains(out, "b.m") {
		t.Errorf("list output missing files: %s", out)
	}
	if strings.Contains(out, "skip.txt") {
		t.Errorf("list should only show matching extensions: %s", out)
	}
}

func TestVerifyCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.py")
	if err := os.WriteFile(good, []byte(`Wing = AddEntity("Wing", {})`+"\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	_, run := newTestCmd(t, "verify", good, "--output", "text")
	if err := run(); err != nil {
		t.Errorf("verify of clean file error = %v", err)
	}
}

func TestVerifyCommandFlagsProblems(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.py")
	if err := os.WriteFile(bad, []byte(`AssertCited(EATS_CHEESE(A, B), "src")`+"\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	buf, run := newTestCmd(t, "verify", bad, "--output", "text")
	if err := run(); err == nil {
		t.Errorf("verify should fail on unknown relations, output: %s", buf.String())
	}
}

func TestReportCommand(t *testing.T) {
	inRoot := t.TempDir()
	if err := os.WriteFile(filepath.Join(inRoot, "a.m"), []byte("x = 1"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	manifest := filepath.Join(t.TempDir(), "run.json")

	_, run := newTestCmd(t, "convert", inRoot, "-o", t.TempDir(), "-r", "--manifest", manifest)
	if err := run(); err != nil {
		t.Fatalf("convert error = %v", err)
	}

	buf, run := newTestCmd(t, "report", manifest, "--output", "text")
	if err := run(); err != nil {
		t.Fatalf("report error = %v", err)
	}
	if !strings.Contains(buf.String(), "succeeded: 1") {
		t.Errorf("report summary unexpected: %s", buf.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	_, run := newTestCmd(t, "frobnicate")
	if err := run(); err == nil {
		t.Error("unknown command should error")
	}
}
