// Package handler ties one kickstart document together: it owns the shared
// script list and package record the sections write into, and the registries
// the line-scanning driver looks sections and directives up in. Which
// commands are live depends on the document's syntax version.
package handler

import (
	"sort"
	"strings"

	"github.com/iancoleman/orderedmap"

	"kickstart/internal/commands"
	"kickstart/internal/options"
	"kickstart/internal/section"
	"kickstart/internal/version"
)

// Handler holds the parsed state of one document. Instances are independent;
// parsing two documents concurrently requires two handlers.
type Handler struct {
	Version  version.Version
	Scripts  []*section.Script
	Packages *section.Packages

	// Warnf receives non-fatal diagnostics such as deprecated-option use.
	// It may be set any time before parsing; nil discards them.
	Warnf options.WarnFunc

	sections map[string]section.Section
	commands *orderedmap.OrderedMap
}

// New creates a handler for the given syntax version with the builtin
// sections and version-appropriate commands registered.
func New(v version.Version) *Handler {
	h := &Handler{
		Version:  v,
		Packages: section.NewPackages(),
		sections: make(map[string]section.Section),
		commands: orderedmap.New(),
	}

	sink := func(s *section.Script) { h.Scripts = append(h.Scripts, s) }
	for _, kind := range []section.ScriptKind{section.Pre, section.PreInstall, section.Post, section.Traceback} {
		h.RegisterSection(section.NewScript(v, kind, sink).OnWarn(h.warn))
	}
	h.RegisterSection(section.NewPackageSection(v, h.Packages).OnWarn(h.warn))

	if v >= version.F24 {
		h.RegisterCommand(commands.NewDeprecated("multipath", version.F24))
	} else {
		h.RegisterCommand(commands.NewMultipath(v))
	}
	if v >= version.F23 {
		h.RegisterCommand(commands.NewReqpart(v))
	}
	return h
}

func (h *Handler) warn(lineno int, format string, args ...any) {
	if h.Warnf != nil {
		h.Warnf(lineno, format, args...)
	}
}

// RegisterSection adds or replaces the section for its open tag.
func (h *Handler) RegisterSection(s section.Section) {
	h.sections[s.OpenTag()] = s
}

// RegisterNull makes the handler tolerate and discard a section tag it does
// not otherwise model.
func (h *Handler) RegisterNull(tag string) {
	h.RegisterSection(section.NewNull(tag))
}

// Section looks up the section registered for tag.
func (h *Handler) Section(tag string) (section.Section, bool) {
	s, ok := h.sections[tag]
	return s, ok
}

// SectionTags returns all registered open tags, sorted.
func (h *Handler) SectionTags() []string {
	tags := make([]string, 0, len(h.sections))
	for tag := range h.sections {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// RegisterCommand adds or replaces the command for its directive name.
// Rendering emits commands in first-registration order.
func (h *Handler) RegisterCommand(c commands.Command) {
	h.commands.Set(c.Name(), c)
}

// Command looks up the command registered for a directive name.
func (h *Handler) Command(name string) (commands.Command, bool) {
	v, ok := h.commands.Get(name)
	if !ok {
		return nil, false
	}
	return v.(commands.Command), true
}

// String renders the whole document: directives in registration order, then
// the %packages section if seen, then the scripts in the order they were
// finished.
func (h *Handler) String() string {
	var b strings.Builder
	for _, name := range h.commands.Keys() {
		c, _ := h.Command(name)
		b.WriteString(c.String())
	}
	if h.Packages.Seen {
		b.WriteString(h.Packages.String())
	}
	for _, s := range h.Scripts {
		b.WriteString(s.String())
	}
	return b.String()
}
