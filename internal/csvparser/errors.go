package csvparser

import (
	"errors"
	"fmt"
)

// Kind classifies an import failure. The set is closed: callers switch on it.
type Kind int

const (
	// KindUnclassified is an unexpected fault while parsing a line.
	KindUnclassified Kind = iota

	// KindFileNotFound means the input file does not exist. The file is skipped.
	KindFileNotFound

	// KindIO is a read or open failure. Reading of the current file stops.
	KindIO

	// KindDateFormat means the date field did not match the date layout.
	KindDateFormat

	// KindNumberFormat means the amount field is not a decimal number.
	KindNumberFormat

	// KindMalformedLine means the line has fewer than three fields.
	KindMalformedLine

	// KindClose means the file handle could not be released.
	KindClose
)

var kindNames = map[Kind]string{
	KindUnclassified:  "unclassified error",
	KindFileNotFound:  "file not found",
	KindIO:            "I/O error",
	KindDateFormat:    "date format error",
	KindNumberFormat:  "number format error",
	KindMalformedLine: "malformed line",
	KindClose:         "close error",
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ImportError is a classified failure raised while importing a file or line.
type ImportError struct {
	// Kind is the failure class.
	Kind Kind

	// File is the input file, when known.
	File string

	// Line is the raw line text for line-level failures.
	Line string

	// LineNumber is the 1-based line number for line-level failures.
	LineNumber int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	msg := e.Kind.String()
	if e.File != "" {
		msg += " in " + e.File
	}
	if e.LineNumber > 0 {
		msg += fmt.Sprintf(" at line %d", e.LineNumber)
	}
	if e.Line != "" {
		msg += fmt.Sprintf(" (%q)", e.Line)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err. Errors that are not an ImportError
// are reported as KindUnclassified.
func KindOf(err error) Kind {
	var ie *ImportError
	if errors.As(err, &ie) {
		return ie.Kind
	}
	return KindUnclassified
}
