package convert

// ImportHeader is the fixed preamble every converted file starts with.
// It is prepended exactly once per file; re-running the converter on its
// own output is not a supported input, so no deduplication is attempted.
const ImportHeader = "from wikikg import *\n\n"

func injectHeader(text, articleName string) string {
	if articleName != "" {
		return "# Knowledge graph for: " + articleName + "\n" + ImportHeader + text
	}
	return ImportHeader + text
}
