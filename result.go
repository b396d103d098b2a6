package h5walk

import (
	"errors"
	"fmt"
)

// Result records one attempted export item. Path is the output artifact
// the item belongs to; Source is the container path of the dataset behind
// it, when there is one. For combined artifacts there is one result per
// dataset, so Rows counts the item's own rows while Bytes reports the size
// of the whole artifact it contributed to. Rows and Bytes are set on
// success only. Results are never mutated after the run completes.
type Result struct {
	Path   string
	Source string
	Rows   int
	Bytes  int
	Err    error
}

// Failed reports whether the item failed.
func (r Result) Failed() bool { return r.Err != nil }

// ErrorKind returns a short classification of a failed result, or "" for a
// success.
func (r Result) ErrorKind() string {
	switch {
	case r.Err == nil:
		return ""
	case errors.Is(r.Err, ErrUnsupportedType):
		return "unsupported-type"
	case errors.Is(r.Err, ErrContainerRead):
		return "container-read"
	case errors.Is(r.Err, ErrContainerOpen):
		return "container-open"
	default:
		return "io"
	}
}

// Report accumulates the results of one export run, in the order the items
// were attempted. Individual failures never halt the walk; a run always
// completes and always yields a summary.
type Report struct {
	Results []Result
}

func (rep *Report) success(path, source string, rows, bytes int) {
	rep.Results = append(rep.Results, Result{Path: path, Source: source, Rows: rows, Bytes: bytes})
}

func (rep *Report) failure(path, source string, err error) {
	rep.Results = append(rep.Results, Result{Path: path, Source: source, Err: err})
}

// Succeeded returns the number of successful items.
func (rep Report) Succeeded() int { return len(rep.Results) - rep.Failed() }

// Failed returns the number of failed items.
func (rep Report) Failed() int {
	n := 0
	for _, r := range rep.Results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// HasFailures reports whether any item failed.
func (rep Report) HasFailures() bool { return rep.Failed() > 0 }

// Summary returns the user-facing one-line outcome of the run.
func (rep Report) Summary() string {
	return fmt.Sprintf("%d succeeded, %d failed", rep.Succeeded(), rep.Failed())
}
