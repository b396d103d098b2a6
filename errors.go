package h5walk

import "errors"

// Sentinel errors for programmatic error handling.
var (
	// ErrContainerOpen means a container file could not be opened at all:
	// missing, unreadable, or not a recognized container. Fatal to the
	// open action only.
	ErrContainerOpen = errors.New("cannot open container")

	// ErrContainerRead means a specific group or dataset could not be read
	// from an otherwise open container. Fatal to that subtree's export,
	// recorded per item, never fatal to the run.
	ErrContainerRead = errors.New("container read failed")

	// ErrUnsupportedType means a dataset's element type cannot be
	// represented as scalar cells in tabular output.
	ErrUnsupportedType = errors.New("unsupported element type")

	// ErrNotGroup is returned when an operation that requires a group is
	// given a dataset node.
	ErrNotGroup = errors.New("node is not a group")
)
