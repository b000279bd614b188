package convert

import (
	"regexp"
	"strings"

	"github.com/wikikg-labs/mconv/pkg/token"
)

// Package declaration lines carry no facts and have no destination
// equivalent; they are dropped wholesale before rewriting.
var packageLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*BeginPackage\s*\[.*\]\s*;?\s*$`),
	regexp.MustCompile(`^\s*Begin\s*\[.*\]\s*;?\s*$`),
	regexp.MustCompile(`^\s*End\s*\[\s*\]\s*;?\s*$`),
	regexp.MustCompile(`^\s*EndPackage\s*\[\s*\]\s*;?\s*$`),
}

func stripPackageLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
lineLoop:
	for _, line := range lines {
		for _, pat := range packageLinePatterns {
			if pat.MatchString(line) {
				continue lineLoop
			}
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// cleanup applies the post-rewrite fixups: trailing statement
// semicolons are removed, leading zeros in decimal integer literals are
// dropped, and blank lines at both ends of the document are trimmed.
// All edits are restricted to Code spans.
func cleanup(text string) (string, error) {
	res, err := Scan(text)
	if err != nil {
		return "", err
	}

	var edits []edit
	lineEnd := len(text)
	for i := len(text) - 1; i >= -1; i-- {
		if i >= 0 && text[i] != '\n' {
			continue
		}
		// text[i+1:lineEnd] is one line; find its trailing semicolon.
		j := lineEnd - 1
		for j > i && (text[j] == ' ' || text[j] == '\t' || text[j] == '\r') {
			j--
		}
		if j > i && text[j] == ';' && res.SpanAt(j).Kind == token.Code {
			edits = append(edits, edit{j, j + 1, ""})
		}
		lineEnd = i
	}

	edits = append(edits, leadingZeroEdits(text, res)...)
	text = applyEdits(text, edits)
	return trimBlankEdges(text), nil
}

// leadingZeroEdits removes the redundant zero from integer literals like
// 09, which the destination notation rejects. A zero is redundant when
// it starts a digit run and the next digit is nonzero; 0x/0o/0b prefixes
// and fractional digits after a dot are left alone.
func leadingZeroEdits(text string, res *ScanResult) []edit {
	var edits []edit
	for i := 0; i+1 < len(text); i++ {
		if text[i] != '0' {
			continue
		}
		next := text[i+1]
		if next < '1' || next > '9' {
			continue
		}
		if i > 0 {
			prev := text[i-1]
			if (prev >= '0' && prev <= '9') || prev == '.' || isIdentByte(prev) {
				continue
			}
		}
		if res.SpanAt(i).Kind != token.Code {
			continue
		}
		edits = append(edits, edit{i, i + 1, ""})
	}
	return edits
}

func trimBlankEdges(text string) string {
	lines := strings.Split(text, "\n")
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
