package convert

import (
	"fmt"

	"github.com/wikikg-labs/mconv/pkg/token"
)

// ErrorKind classifies conversion failures.
type ErrorKind int

// Error kinds. All are deterministic syntactic failures except IoError.
const (
	UnbalancedBrackets ErrorKind = iota
	UnterminatedString
	UnterminatedComment
	IoError
)

func (k ErrorKind) String() string {
	switch k {
	case UnbalancedBrackets:
		return "unbalanced_brackets"
	case UnterminatedString:
		return "unterminated_string"
	case UnterminatedComment:
		return "unterminated_comment"
	case IoError:
		return "io_error"
	default:
		return "unknown"
	}
}

// Error is a conversion failure with the offset at which it was detected.
type Error struct {
	Kind    ErrorKind
	Pos     token.Position
	Path    string // input file, empty for in-memory conversion
	Message string
	Err     error // wrapped cause, set for IoError
}

func (e *Error) Error() string {
	prefix := ""
	if e.Path != "" {
		prefix = e.Path + ": "
	}
	if e.Kind == IoError {
		return fmt.Sprintf("%s%s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%sconvert error at line %d, column %d: %s", prefix, e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds a syntactic conversion error at the given position.
func newError(kind ErrorKind, pos token.Position, msg string) *Error {
	return &Error{Kind: kind, Pos: pos, Message: msg}
}

// ioError wraps a file system failure.
func ioError(path, msg string, err error) *Error {
	return &Error{Kind: IoError, Path: path, Message: msg, Err: err}
}
