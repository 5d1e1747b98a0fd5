package section

import (
	"fmt"
	"strings"

	"kickstart/internal/options"
	"kickstart/internal/version"
)

// ScriptKind distinguishes the four script section variants. The variants
// share one accumulation implementation and differ only in their open tag,
// their chroot behavior and whether --nochroot is recognized.
type ScriptKind int

const (
	Pre ScriptKind = iota
	PreInstall
	Post
	Traceback
)

type scriptKindInfo struct {
	tag      string
	inChroot bool
	noChroot bool // recognizes the --nochroot flag
}

var scriptKinds = map[ScriptKind]scriptKindInfo{
	Pre:        {tag: "%pre"},
	PreInstall: {tag: "%pre-install"},
	Post:       {tag: "%post", inChroot: true, noChroot: true},
	Traceback:  {tag: "%traceback"},
}

// String returns the section tag for the kind.
func (k ScriptKind) String() string { return scriptKinds[k].tag }

// DefaultInterp is the interpreter used when a script section does not name
// one.
const DefaultInterp = "/bin/sh"

// Script is the finished record of one script section body.
type Script struct {
	Kind        ScriptKind
	Interp      string
	InChroot    bool
	Lineno      int
	LogFile     string
	ErrorOnFail bool

	// Body holds the raw section lines, trailing newlines preserved.
	Body []string
}

// String renders the script back to kickstart text, emitting only the
// header options that differ from their defaults.
func (s *Script) String() string {
	var b strings.Builder
	b.WriteString(scriptKinds[s.Kind].tag)
	if s.Interp != "" && s.Interp != DefaultInterp {
		fmt.Fprintf(&b, " --interpreter=%s", s.Interp)
	}
	if s.LogFile != "" {
		fmt.Fprintf(&b, " --log=%s", s.LogFile)
	}
	if s.ErrorOnFail {
		b.WriteString(" --erroronfail")
	}
	if s.Kind == Post && !s.InChroot {
		b.WriteString(" --nochroot")
	}
	b.WriteString("\n")
	for _, line := range s.Body {
		b.WriteString(line)
	}
	if n := len(s.Body); n > 0 && !strings.HasSuffix(s.Body[n-1], "\n") {
		b.WriteString("\n")
	}
	b.WriteString("%end\n")
	return b.String()
}

// ScriptSection accumulates one script body between its header and %end and
// hands the finished Script to the sink it was constructed with.
type ScriptSection struct {
	base
	kind    ScriptKind
	version version.Version
	warn    options.WarnFunc
	sink    func(*Script)
	cur     *Script
}

// NewScript creates the section for one script kind. Finished records are
// passed to sink, which is typically the document handler's script list.
func NewScript(v version.Version, kind ScriptKind, sink func(*Script)) *ScriptSection {
	s := &ScriptSection{kind: kind, version: v, sink: sink}
	s.reset()
	return s
}

// OnWarn installs the sink for deprecation warnings raised while parsing
// header options.
func (s *ScriptSection) OnWarn(fn options.WarnFunc) *ScriptSection {
	s.warn = fn
	return s
}

// OpenTag implements Section.
func (s *ScriptSection) OpenTag() string { return scriptKinds[s.kind].tag }

// AllLines implements Section. Script bodies are copied verbatim, so every
// line matters.
func (s *ScriptSection) AllLines() bool { return true }

func (s *ScriptSection) reset() {
	s.cur = &Script{
		Kind:     s.kind,
		Interp:   DefaultInterp,
		InChroot: scriptKinds[s.kind].inChroot,
	}
}

// HandleHeader parses the header options into the accumulation record.
func (s *ScriptSection) HandleHeader(lineno int, args []string) error {
	s.sawHeader()

	op := options.New(s.version).OnWarn(s.warn)
	op.Flag("erroronfail")
	op.Value("interpreter").Default(DefaultInterp)
	op.Value("log", "logfile")
	if scriptKinds[s.kind].noChroot {
		op.Flag("nochroot")
	}

	vals, err := op.Parse(lineno, args)
	if err != nil {
		return err
	}

	s.cur.Interp = vals.String("interpreter")
	s.cur.Lineno = lineno
	s.cur.LogFile = vals.String("log")
	s.cur.ErrorOnFail = vals.Flag("erroronfail")
	if scriptKinds[s.kind].noChroot && vals.Flag("nochroot") {
		s.cur.InChroot = false
	}
	return nil
}

// HandleLine appends the raw line to the body.
func (s *ScriptSection) HandleLine(line string) {
	s.cur.Body = append(s.cur.Body, line)
}

// Finalize emits the accumulated Script and resets the buffer. A body that
// is empty or all whitespace is discarded without producing a record.
func (s *ScriptSection) Finalize() {
	if strings.TrimSpace(strings.Join(s.cur.Body, "")) == "" {
		s.reset()
		return
	}
	if s.sink != nil {
		s.sink(s.cur)
	}
	s.reset()
}
