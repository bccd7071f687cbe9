package jsoncodable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reoring/jsoncodable/i18n"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingValue          = "missing_value"
	CodeIncompatibleType      = "incompatible_type"
	CodeExpectedArray         = "expected_array"
	CodeExpectedObject        = "expected_object"
	CodeTransformerFailed     = "transformer_failed"
	CodeChildIncompatibleType = "child_incompatible_type"
	CodeInvalidValue          = "invalid_value"
	CodeParseError            = "parse_error"
)

// Issue describes a single decode or encode failure.
type Issue struct {
	Path     string // Path expression of the offending value ("" is the root).
	Code     string // One of the codes listed above.
	Message  string
	Got      string // Kind or type that was found, when applicable.
	Expected string // Kind or type that was wanted, when applicable.
	Cause    error  // Optional: underlying error.
}

// Issues is a collection of issues that implements error. The engine stops at
// the first failure, so decode and encode calls return a single entry; best
// effort collections report the entries they dropped through DecodeOptions.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		path := it.Path
		if path == "" {
			path = "<root>"
		}
		// e.g. incompatible_type at user.age: got string, want number
		fmt.Fprintf(b, "%s at %s", it.Code, path)
		switch {
		case it.Got != "" && it.Expected != "":
			fmt.Fprintf(b, ": got %s, want %s", it.Got, it.Expected)
		case it.Got != "":
			fmt.Fprintf(b, ": got %s", it.Got)
		case it.Expected != "":
			fmt.Fprintf(b, ": want %s", it.Expected)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Unwrap exposes the causes so errors.Is/As can reach them.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether err carries an issue with the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// MissingValue reports a required value absent at path.
func MissingValue(path string) Issues {
	return Issues{{Path: path, Code: CodeMissingValue, Message: i18n.T(CodeMissingValue, nil)}}
}

// IncompatibleType reports a value of the wrong kind or an unmapped raw value.
func IncompatibleType(path, got, expected string) Issues {
	return Issues{{
		Path:     path,
		Code:     CodeIncompatibleType,
		Message:  i18n.T(CodeIncompatibleType, map[string]string{"got": got, "expected": expected}),
		Got:      got,
		Expected: expected,
	}}
}

// ExpectedArray reports a non-array value where an array shape was requested.
func ExpectedArray(path, got string) Issues {
	return Issues{{Path: path, Code: CodeExpectedArray, Message: i18n.T(CodeExpectedArray, map[string]string{"got": got}), Got: got, Expected: "array"}}
}

// ExpectedObject reports a non-object value where a record or map was requested.
func ExpectedObject(path, got string) Issues {
	return Issues{{Path: path, Code: CodeExpectedObject, Message: i18n.T(CodeExpectedObject, map[string]string{"got": got}), Got: got, Expected: "object"}}
}

// TransformerFailed reports a transformer that rejected its input.
func TransformerFailed(path, transformer string) Issues {
	return Issues{{Path: path, Code: CodeTransformerFailed, Message: i18n.T(CodeTransformerFailed, map[string]string{"transformer": transformer}), Expected: transformer}}
}

// ChildIncompatibleType reports a value that cannot be encoded into JSON.
func ChildIncompatibleType(path, elementType string) Issues {
	return Issues{{Path: path, Code: CodeChildIncompatibleType, Message: i18n.T(CodeChildIncompatibleType, map[string]string{"type": elementType}), Got: elementType}}
}

// asPathIssues returns err unchanged when it already is Issues and wraps any
// other error as an invalid_value issue at path.
func asPathIssues(path string, err error) error {
	if err == nil {
		return nil
	}
	if iss, ok := AsIssues(err); ok {
		return iss
	}
	return Issues{{Path: path, Code: CodeInvalidValue, Message: err.Error(), Cause: err}}
}
