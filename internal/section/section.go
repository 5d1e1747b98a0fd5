// Package section implements the %-delimited sections of a kickstart
// document: the script sections (%pre, %pre-install, %post, %traceback),
// the %packages section, and a null sink for tags that should be tolerated
// but ignored.
//
// A section is driven through three lifecycle hooks: HandleHeader when its
// opening tag is seen, HandleLine for each body line, and Finalize when the
// %end terminator (or end of input) is reached. Sections hold no global
// state; every instance belongs to exactly one document handler.
package section

// Section is the contract the line-scanning driver works against.
type Section interface {
	// OpenTag returns the literal tag that opens the section, including
	// the leading percent sign.
	OpenTag() string

	// AllLines reports whether every body line must be delivered to
	// HandleLine, including blanks and comments. When false the driver
	// may drop such lines before they reach the section.
	AllLines() bool

	// HandleHeader processes the arguments of the opening tag. It is
	// called once per occurrence of the section, including re-entry
	// after a previous Finalize.
	HandleHeader(lineno int, args []string) error

	// HandleLine receives one body line, with any trailing newline.
	HandleLine(line string)

	// Finalize is called when the section's terminator is seen.
	Finalize()

	// Seen reports whether the section's header has appeared at all.
	Seen() bool

	// TimesSeen returns how often the section's header has appeared.
	TimesSeen() int
}

// base carries the occurrence counting shared by all sections.
type base struct {
	timesSeen int
}

func (b *base) sawHeader()     { b.timesSeen++ }
func (b *base) Seen() bool     { return b.timesSeen > 0 }
func (b *base) TimesSeen() int { return b.timesSeen }

// NullSection recognizes a tag and discards everything in it. Registering
// one keeps the driver from rejecting a section the handler does not model.
type NullSection struct {
	base
	tag string
}

// NewNull creates a NullSection for the given open tag (leading '%'
// included).
func NewNull(tag string) *NullSection {
	return &NullSection{tag: tag}
}

// OpenTag implements Section.
func (s *NullSection) OpenTag() string { return s.tag }

// AllLines implements Section.
func (s *NullSection) AllLines() bool { return false }

// HandleHeader implements Section. It only counts the occurrence.
func (s *NullSection) HandleHeader(lineno int, args []string) error {
	s.sawHeader()
	return nil
}

// HandleLine implements Section. The line is discarded.
func (s *NullSection) HandleLine(line string) {}

// Finalize implements Section.
func (s *NullSection) Finalize() {}
