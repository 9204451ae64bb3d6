package blockkit

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyCollection = "empty_collection"
	CodeLimitExceeded   = "limit_exceeded"
	CodeInvalidLength   = "invalid_length"
	// Input decoding (manifest, codec)
	CodeInvalidType   = "invalid_type"
	CodeInvalidFormat = "invalid_format"
	CodeUnknownKind   = "unknown_kind"
)

// EmptyCollectionError reports a container that must hold at least one
// element but holds none.
type EmptyCollectionError struct {
	Path       string // JSON Pointer of the offending node.
	Collection string // Wire name of the collection (blocks, fields, elements).
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("%s: there must be at least one element in %s", e.Path, e.Collection)
}

// Issue converts the error into an Issue.
func (e *EmptyCollectionError) Issue() Issue {
	return Issue{
		Path:    e.Path,
		Code:    CodeEmptyCollection,
		Message: "there must be at least one element in " + e.Collection,
		Params:  map[string]any{"collection": e.Collection},
		Cause:   e,
	}
}

// CollectionLimitExceededError reports a bounded collection holding more
// entries than its cap.
type CollectionLimitExceededError struct {
	Path       string
	Collection string
	Limit      int
	Count      int
}

func (e *CollectionLimitExceededError) Error() string {
	return fmt.Sprintf("%s: maximum limit of %s is %d, got %d", e.Path, e.Collection, e.Limit, e.Count)
}

// Issue converts the error into an Issue.
func (e *CollectionLimitExceededError) Issue() Issue {
	return Issue{
		Path:    e.Path,
		Code:    CodeLimitExceeded,
		Message: fmt.Sprintf("maximum limit of %s is %d", e.Collection, e.Limit),
		Params:  map[string]any{"collection": e.Collection, "max": e.Limit, "got": e.Count},
		Cause:   e,
	}
}

// IdentifierTooLongError reports a block_id longer than the allowed length.
type IdentifierTooLongError struct {
	Path   string
	Limit  int
	Length int
}

func (e *IdentifierTooLongError) Error() string {
	return fmt.Sprintf("%s: maximum length for the block_id field is %d characters, got %d", e.Path, e.Limit, e.Length)
}

// Issue converts the error into an Issue.
func (e *IdentifierTooLongError) Issue() Issue {
	return Issue{
		Path:    e.Path,
		Code:    CodeInvalidLength,
		Message: fmt.Sprintf("maximum length for the block_id field is %d characters", e.Limit),
		Params:  map[string]any{"field": "block_id", "max": e.Limit, "got": e.Length},
		Cause:   e,
	}
}

// structuralError is implemented by the three typed serialization errors.
type structuralError interface {
	error
	Issue() Issue
}

// Issue represents a single structural violation found while serializing.
type Issue struct {
	Path    string // JSON Pointer (for example: /attachments/0/blocks).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"max":25, "got":26}).
	Params map[string]any
	// Cause holds the typed error behind the issue.
	Cause error
}

// Issues is a collection of violations that implements error.
type Issues []Issue

// Error lists the first three issues as "code at path" and counts the rest.
func (iss Issues) Error() string {
	const shown = 3
	parts := make([]string, 0, shown+1)
	for i, it := range iss {
		if i == shown {
			parts = append(parts, fmt.Sprintf("... (total %d)", len(iss)))
			break
		}
		parts = append(parts, it.Code+" at "+it.Path)
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes the typed causes so errors.As can reach them.
func (iss Issues) Unwrap() []error {
	out := make([]error, 0, len(iss))
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
}

// AppendIssues appends more to dst. The result is never nil.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = make(Issues, 0, len(more))
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally. A single
// typed serialization error is lifted into a one-entry Issues.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	var se structuralError
	if errors.As(err, &se) {
		return Issues{se.Issue()}, true
	}
	return nil, false
}
