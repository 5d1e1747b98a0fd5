// Package options implements the option parser used by kickstart section
// headers and directives. Unlike a general-purpose flag package, every
// option carries the syntax release it was introduced, deprecated or removed
// in, and parsing is checked against the version of the document being read.
package options

import (
	"strings"

	"kickstart/internal/kserrors"
	"kickstart/internal/version"
)

// WarnFunc receives non-fatal diagnostics, such as use of a deprecated
// option. The line number of the offending input is passed first.
type WarnFunc func(lineno int, format string, args ...any)

// Option describes a single recognized option. Options are created through
// Parser.Flag and Parser.Value and configured by chaining.
type Option struct {
	name       string
	aliases    []string
	takesValue bool
	required   bool
	def        string
	introduced version.Version
	deprecated version.Version
	removed    version.Version
}

// Required marks the option as mandatory.
func (o *Option) Required() *Option {
	o.required = true
	return o
}

// Default sets the value reported when the option is absent.
func (o *Option) Default(s string) *Option {
	o.def = s
	return o
}

// Introduced records the release the option first appeared in.
func (o *Option) Introduced(v version.Version) *Option {
	o.introduced = v
	return o
}

// Deprecated records the release the option was deprecated in.
func (o *Option) Deprecated(v version.Version) *Option {
	o.deprecated = v
	return o
}

// Removed records the release the option was dropped in.
func (o *Option) Removed(v version.Version) *Option {
	o.removed = v
	return o
}

// Parser parses the argument list of one header or directive occurrence.
type Parser struct {
	version version.Version
	opts    []*Option
	warn    WarnFunc
}

// New creates a Parser gated on the given document version.
func New(v version.Version) *Parser {
	return &Parser{version: v}
}

// OnWarn installs the sink for deprecation warnings. A nil sink discards
// them.
func (p *Parser) OnWarn(fn WarnFunc) *Parser {
	p.warn = fn
	return p
}

// Flag registers a boolean option, e.g. "erroronfail".
func (p *Parser) Flag(name string, aliases ...string) *Option {
	o := &Option{name: name, aliases: aliases}
	p.opts = append(p.opts, o)
	return o
}

// Value registers an option that takes a value, e.g. "interpreter".
func (p *Parser) Value(name string, aliases ...string) *Option {
	o := &Option{name: name, aliases: aliases, takesValue: true}
	p.opts = append(p.opts, o)
	return o
}

// Values holds the result of one Parse call.
type Values struct {
	opts map[string]*Option
	strs map[string]string
	seen map[string]bool
}

// Seen reports whether the option was given explicitly.
func (v *Values) Seen(name string) bool {
	return v.seen[name]
}

// Flag reports whether a boolean option was given.
func (v *Values) Flag(name string) bool {
	return v.seen[name]
}

// String returns the value of an option, or its default when absent.
func (v *Values) String(name string) string {
	if s, ok := v.strs[name]; ok {
		return s
	}
	if o, ok := v.opts[name]; ok {
		return o.def
	}
	return ""
}

func (p *Parser) lookup(name string) *Option {
	for _, o := range p.opts {
		if o.name == name {
			return o
		}
		for _, a := range o.aliases {
			if a == name {
				return o
			}
		}
	}
	return nil
}

func (p *Parser) gate(lineno int, o *Option) error {
	if o.removed != version.Unknown && p.version >= o.removed {
		return kserrors.Errorf(lineno, "the --%s option is no longer supported (removed in %s)", o.name, o.removed)
	}
	if o.introduced != version.Unknown && p.version < o.introduced {
		return kserrors.Errorf(lineno, "the --%s option is not supported before %s", o.name, o.introduced)
	}
	if o.deprecated != version.Unknown && p.version >= o.deprecated && p.warn != nil {
		p.warn(lineno, "the --%s option has been deprecated and will be removed", o.name)
	}
	return nil
}

// Parse consumes args of the form --name, --name=value or --name value.
// Unknown options, missing values, version gate violations and missing
// required options are reported as line-numbered parse errors.
func (p *Parser) Parse(lineno int, args []string) (*Values, error) {
	vals := &Values{
		opts: make(map[string]*Option, len(p.opts)),
		strs: make(map[string]string),
		seen: make(map[string]bool),
	}
	for _, o := range p.opts {
		vals.opts[o.name] = o
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			return nil, kserrors.Errorf(lineno, "unexpected argument %q", arg)
		}
		name, value, hasValue := strings.Cut(arg[2:], "=")
		o := p.lookup(name)
		if o == nil {
			return nil, kserrors.Errorf(lineno, "unknown option --%s", name)
		}
		if err := p.gate(lineno, o); err != nil {
			return nil, err
		}
		if o.takesValue && !hasValue {
			if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
				return nil, kserrors.Errorf(lineno, "expected a value for option --%s", o.name)
			}
			i++
			value = args[i]
			hasValue = true
		}
		if !o.takesValue && hasValue {
			return nil, kserrors.Errorf(lineno, "option --%s takes no value", o.name)
		}
		vals.seen[o.name] = true
		if o.takesValue {
			vals.strs[o.name] = value
		}
	}

	for _, o := range p.opts {
		if o.required && !vals.seen[o.name] {
			return nil, kserrors.Errorf(lineno, "required option --%s is missing", o.name)
		}
	}
	return vals, nil
}
