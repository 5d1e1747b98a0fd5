// Package commands implements the kickstart directives the document handler
// dispatches to, one Command per directive name. A directive may appear many
// times in a document; each occurrence is fed to Parse with its argument
// tokens and originating line number.
package commands

import (
	"fmt"

	"kickstart/internal/kserrors"
	"kickstart/internal/version"
)

// Data is a record produced by parsing one directive occurrence.
type Data interface {
	fmt.Stringer
}

// Command is the contract the line-scanning driver works against.
type Command interface {
	// Name returns the directive name, e.g. "multipath".
	Name() string

	// Parse handles one occurrence of the directive. The returned Data
	// is the record the occurrence produced; see the concrete command
	// for what exactly is returned.
	Parse(lineno int, args []string) (Data, error)

	// String renders every record the command holds back to kickstart
	// text.
	String() string
}

// Deprecated stands in for a directive that was removed in a later syntax
// release. It keeps the directive registered, so old documents still name a
// known command, but any use is an error.
type Deprecated struct {
	name      string
	removedIn version.Version
}

// NewDeprecated creates the marker for a directive removed in the given
// release.
func NewDeprecated(name string, removedIn version.Version) *Deprecated {
	return &Deprecated{name: name, removedIn: removedIn}
}

// Name implements Command.
func (c *Deprecated) Name() string { return c.name }

// Parse implements Command. It always fails: the directive no longer
// accepts input.
func (c *Deprecated) Parse(lineno int, args []string) (Data, error) {
	return nil, kserrors.Errorf(lineno, "the %s command was removed in %s and may no longer be used", c.name, c.removedIn)
}

// String implements Command. A removed directive holds no records.
func (c *Deprecated) String() string { return "" }
