package convert

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// unicodeReplacements maps typographic and symbolic code points that
// break the destination notation onto ASCII equivalents. The table is
// fixed; anything not listed passes through untouched.
var unicodeReplacements = map[rune]string{
	// Curly/smart quotes -> straight quotes
	'“': `"`, // left double quotation mark
	'”': `"`, // right double quotation mark
	'„': `"`, // double low-9 quotation mark
	'«': `"`, // left-pointing double angle quotation mark
	'»': `"`, // right-pointing double angle quotation mark
	'‘': `'`, // left single quotation mark
	'’': `'`, // right single quotation mark
	'‚': `'`, // single low-9 quotation mark
	'‹': `'`, // single left-pointing angle quotation mark
	'›': `'`, // single right-pointing angle quotation mark
	'′': `'`, // prime (arcminutes)
	'″': `''`, // double prime (arcseconds), '' keeps strings intact

	// Dashes -> hyphen-minus
	'–': "-", // en dash
	'—': "-", // em dash
	'−': "-", // minus sign
	'‐': "-", // hyphen
	'‑': "-", // non-breaking hyphen

	// Spaces
	' ': " ", // no-break space
	' ': " ", // em space
	' ': " ", // en space
	' ': " ", // thin space

	// Other punctuation
	'…': "...", // horizontal ellipsis
	'·': ".",   // middle dot

	// Symbols spelled out to keep converted strings parseable
	'°': " degrees ", // degree sign
	'×': "x",         // multiplication sign
	'÷': "/",         // division sign
	'±': "+/-",       // plus-minus sign
	'≈': "~",         // almost equal to
	'≠': "!=",        // not equal to
	'≤': "<=",        // less-than or equal to
	'≥': ">=",        // greater-than or equal to
	'→': "->",        // rightwards arrow
	'←': "<-",        // leftwards arrow
	'↔': "<->",       // left right arrow
}

// Normalize maps non-ASCII punctuation to canonical ASCII equivalents.
// Pure and total: any input produces output, with no failure states.
// Input is NFC-composed first so decomposed forms of the mapped code
// points hit the table.
func Normalize(text string) string {
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if repl, ok := unicodeReplacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
