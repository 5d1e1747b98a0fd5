// Package parser drives a handler over the lines of a kickstart document.
// It recognizes section boundaries, skips blanks and comments where a
// section allows it, splits directive arguments shell-style, and routes
// everything else to the active section or the named command.
package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anmitsu/go-shlex"

	"kickstart/internal/handler"
	"kickstart/internal/kserrors"
	"kickstart/internal/section"
)

// Parser scans one document into a handler. A Parser is single-use state
// over a single-threaded scan; create one per Parse call site.
type Parser struct {
	handler *handler.Handler
	cur     section.Section
}

// New creates a Parser feeding the given handler.
func New(h *handler.Handler) *Parser {
	return &Parser{handler: h}
}

// ParseFile parses the named kickstart file.
func (p *Parser) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open kickstart file: %w", err)
	}
	defer f.Close()
	return p.Parse(f)
}

// ParseString parses a document held in memory.
func (p *Parser) ParseString(doc string) error {
	return p.Parse(strings.NewReader(doc))
}

// Parse reads the document line by line, preserving trailing newlines so
// script bodies round-trip verbatim. A section left open at end of input is
// finalized, matching old-style documents whose last section has no %end.
func (p *Parser) Parse(r io.Reader) error {
	br := bufio.NewReader(r)
	lineno := 0
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineno++
			if perr := p.handleLine(lineno, line); perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read kickstart input: %w", err)
		}
	}
	if p.cur != nil {
		p.cur.Finalize()
		p.cur = nil
	}
	return nil
}

func (p *Parser) handleLine(lineno int, line string) error {
	trimmed := strings.TrimSpace(line)

	if p.cur != nil {
		if trimmed == "%end" {
			p.cur.Finalize()
			p.cur = nil
			return nil
		}
		if !p.cur.AllLines() && (trimmed == "" || strings.HasPrefix(trimmed, "#")) {
			return nil
		}
		p.cur.HandleLine(line)
		return nil
	}

	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	tokens, err := shlex.Split(trimmed, true)
	if err != nil {
		return kserrors.Wrap(lineno, fmt.Errorf("malformed line: %w", err))
	}
	if len(tokens) == 0 {
		return nil
	}

	if strings.HasPrefix(tokens[0], "%") {
		if tokens[0] == "%end" {
			return kserrors.Errorf(lineno, "%%end outside of a section")
		}
		sec, ok := p.handler.Section(tokens[0])
		if !ok {
			return kserrors.Errorf(lineno, "unknown kickstart section %s", tokens[0])
		}
		if err := sec.HandleHeader(lineno, tokens[1:]); err != nil {
			return err
		}
		p.cur = sec
		return nil
	}

	cmd, ok := p.handler.Command(tokens[0])
	if !ok {
		return kserrors.Errorf(lineno, "unknown kickstart command %q", tokens[0])
	}
	_, err = cmd.Parse(lineno, tokens[1:])
	return err
}
