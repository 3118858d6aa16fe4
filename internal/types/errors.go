package types

import (
	"fmt"
	"strings"
)

// UnresolvedInputError reports a specifier whose attribute path is not
// present in the package index.
type UnresolvedInputError struct {
	Specifier InputSpecifier
}

func (e UnresolvedInputError) Error() string {
	return fmt.Sprintf("unresolved input: %s", e.Specifier)
}

// VersionMismatchError reports a specifier whose qualifier is not
// satisfied by the descriptor found in the index.
type VersionMismatchError struct {
	Specifier InputSpecifier
	Found     string
}

func (e VersionMismatchError) Error() string {
	return fmt.Sprintf("version mismatch for %s: found %s", e.Specifier, e.Found)
}

// ResolutionError aggregates every failing specifier from one
// resolution pass so the caller sees the whole set of problems at once.
type ResolutionError struct {
	Failures []error
}

func (e ResolutionError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, failure := range e.Failures {
		parts = append(parts, failure.Error())
	}
	return fmt.Sprintf("%d input(s) failed to resolve: %s", len(e.Failures), strings.Join(parts, "; "))
}

func (e ResolutionError) Unwrap() []error {
	return e.Failures
}

// DescriptorSyntaxError reports a malformed line in an environment
// descriptor file. Line numbers are 1-based.
type DescriptorSyntaxError struct {
	Line   int
	Detail string
}

func (e DescriptorSyntaxError) Error() string {
	return fmt.Sprintf("descriptor syntax error at line %d: %s", e.Line, e.Detail)
}

// IntegrityError reports a content-addressing violation: the digest of
// the retrieved snapshot does not match the pinned revision.
type IntegrityError struct {
	Locator SnapshotLocator
	Got     string
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("snapshot integrity check failed for %s: content digest is %s", e.Locator, e.Got)
}
