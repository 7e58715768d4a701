package relabel

import "errors"

// Failure kinds of labeling operations. Every error returned by this package
// wraps exactly one of them, so callers can match with errors.Is.
var (
	// ErrInvalidClass is the failure of mapping an object to a security
	// class: either its mode bits correspond to none of the recognized
	// filesystem object types, or the loaded policy does not define the
	// class.
	ErrInvalidClass = errors.New("invalid security class")

	// ErrContextQuery is the failure of any security context read.
	ErrContextQuery = errors.New("security context query failed")

	// ErrContextApply is the failure of any security context write.
	ErrContextApply = errors.New("security context apply failed")

	// ErrContextParse is the failure of parsing a security context string
	// into its structured form.
	ErrContextParse = errors.New("security context not parsable")

	// ErrTraversal is the failure of the directory walk itself, as opposed
	// to the relabeling of a single walked entry.
	ErrTraversal = errors.New("directory traversal failed")
)
