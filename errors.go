package tinydot

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeKeyCollision = "key_collision"
)

// ErrUnknownField is returned by Record.Set for names the record was not
// built with.
var ErrUnknownField = errors.New("tinydot: unknown field")

// Issue represents a single problem found while converting input.
type Issue struct {
	Path    string // JSON Pointer of the containing mapping (for example: /servers/2).
	Code    string
	Message string
	Field   string // Sanitized field name, when relevant.
	Keys    []string
}

// Issues is a collection of conversion problems that implements error.
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
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
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
