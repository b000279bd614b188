// Package convert rewrites Wolfram-Language-notation knowledge-graph
// fact files into Python-notation files callable against the wikikg
// fact-assertion API.
//
// The conversion is a fixed pipeline of text-to-text stages: Unicode
// normalization, block-comment conversion, package-line stripping, then
// a set of scanner-driven rewrites (call brackets, rule arrows,
// association literals, entity assignments) followed by cleanup and the
// import header. Every rewriting stage re-scans its own input, so
// offsets always refer to the current text. Naive substitution cannot
// survive nested brackets or bracket characters inside strings; each
// rewrite is driven by the bracket-group tree instead.
package convert

import (
	"errors"
	"os"
	"path/filepath"
)

// Options controls per-document conversion behavior.
type Options struct {
	// ArticleName, when set, is emitted as a comment line above the
	// import header.
	ArticleName string

	// StripComments drops block comments entirely instead of rewriting
	// them to # line comments.
	StripComments bool
}

// Convert converts a single document. Pure and synchronous: the same
// input always produces the same output, and on failure no pipeline
// stage is partially applied.
func Convert(src string) (string, error) {
	return ConvertWithOptions(src, Options{})
}

// ConvertWithOptions converts a single document with explicit options.
func ConvertWithOptions(src string, opts Options) (string, error) {
	text := Normalize(src)

	var err error
	if opts.StripComments {
		text, err = stripComments(text)
	} else {
		text, err = convertComments(text)
	}
	if err != nil {
		return "", err
	}
	text = stripPackageLines(text)

	// Validate balance and string termination before any rewrite
	// touches the buffer.
	if _, err := Scan(text); err != nil {
		return "", err
	}

	for _, stage := range []func(string) (string, error){
		rewriteCallBrackets,
		convertRuleArrows,
		convertAssociations,
		detectEntityAssignments,
		cleanup,
	} {
		text, err = stage(text)
		if err != nil {
			return "", err
		}
	}

	return injectHeader(text, opts.ArticleName), nil
}

// ConvertFile reads inputPath, converts it, and writes the result to
// outputPath, creating intermediate directories as needed. On any
// failure the output file is not written.
func ConvertFile(inputPath, outputPath string) error {
	return ConvertFileWithOptions(inputPath, outputPath, Options{})
}

// ConvertFileWithOptions is ConvertFile with explicit options.
func ConvertFileWithOptions(inputPath, outputPath string, opts Options) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return ioError(inputPath, "read failed", err)
	}

	out, err := ConvertWithOptions(string(data), opts)
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			cerr.Path = inputPath
		}
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return ioError(outputPath, "mkdir failed", err)
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return ioError(outputPath, "write failed", err)
	}
	return nil
}
