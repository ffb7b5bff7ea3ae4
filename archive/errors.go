// SPDX-License-Identifier: MIT
// Package archive: sentinel errors.

package archive

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownClass indicates a node class with no registered factory.
	ErrUnknownClass = errors.New("archive: unknown class")

	// ErrNotArchivable indicates a value that neither is a substrate type
	// nor implements Archiver.
	ErrNotArchivable = errors.New("archive: value is not archivable")

	// ErrMalformed indicates a node missing a required property or child.
	ErrMalformed = errors.New("archive: malformed node")
)

// Operation tags.
const (
	opSave   = "Save"
	opLoad   = "Load"
	opEncode = "Encode"
	opDecode = "Decode"
)

// archiveErrorf wraps err with an operation tag.
func archiveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
