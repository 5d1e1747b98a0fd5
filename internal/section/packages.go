package section

import (
	"fmt"
	"strings"
	"unicode"

	"kickstart/internal/kserrors"
	"kickstart/internal/options"
	"kickstart/internal/version"
)

// MissingPolicy decides what the installer should do about packages it
// cannot find.
type MissingPolicy int

const (
	MissingPrompt MissingPolicy = iota
	MissingIgnore
)

// Packages is the shared package-selection record a document handler owns.
// The %packages section writes into it directly from its header; the body
// lines become List entries.
type Packages struct {
	Seen          bool
	ExcludeDocs   bool
	AddBase       bool
	HandleMissing MissingPolicy
	Default       bool
	InstLangs     string
	Nocore        bool
	MultiLib      bool
	List          []string
}

// NewPackages returns a record with the defaults applied.
func NewPackages() *Packages {
	return &Packages{AddBase: true}
}

// String renders the record back to a %packages section.
func (p *Packages) String() string {
	var b strings.Builder
	b.WriteString("%packages")
	if p.ExcludeDocs {
		b.WriteString(" --excludedocs")
	}
	if p.HandleMissing == MissingIgnore {
		b.WriteString(" --ignoremissing")
	}
	if !p.AddBase {
		b.WriteString(" --nobase")
	}
	if p.Default {
		b.WriteString(" --default")
	}
	if p.InstLangs != "" {
		fmt.Fprintf(&b, " --instLangs=%s", p.InstLangs)
	}
	if p.MultiLib {
		b.WriteString(" --multilib")
	}
	if p.Nocore {
		b.WriteString(" --nocore")
	}
	b.WriteString("\n")
	for _, name := range p.List {
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("%end\n")
	return b.String()
}

// PackageSection parses the %packages header onto the shared Packages
// record and collects one package name per body line. Unlike the script
// sections it has no accumulation phase of its own: the header commits its
// state immediately and Finalize has nothing left to do.
type PackageSection struct {
	base
	version version.Version
	warn    options.WarnFunc
	pkgs    *Packages
}

// NewPackageSection creates the %packages section writing into pkgs.
func NewPackageSection(v version.Version, pkgs *Packages) *PackageSection {
	return &PackageSection{version: v, pkgs: pkgs}
}

// OnWarn installs the sink for deprecation warnings.
func (s *PackageSection) OnWarn(fn options.WarnFunc) *PackageSection {
	s.warn = fn
	return s
}

// OpenTag implements Section.
func (s *PackageSection) OpenTag() string { return "%packages" }

// AllLines implements Section. Blank and comment lines carry no package
// names, so the driver may drop them.
func (s *PackageSection) AllLines() bool { return false }

// HandleHeader parses the header options and writes the result onto the
// shared record.
func (s *PackageSection) HandleHeader(lineno int, args []string) error {
	s.sawHeader()

	op := options.New(s.version).OnWarn(s.warn)
	op.Flag("excludedocs")
	op.Flag("ignoremissing")
	op.Flag("nobase").Deprecated(version.F18).Removed(version.F22)
	op.Flag("nocore").Introduced(version.F21)
	op.Flag("ignoredeps").Deprecated(version.FC4).Removed(version.F9)
	op.Flag("resolvedeps").Deprecated(version.FC4).Removed(version.F9)
	op.Flag("default").Introduced(version.F7)
	op.Value("instLangs").Introduced(version.F9)
	op.Flag("multilib").Introduced(version.F18)

	vals, err := op.Parse(lineno, args)
	if err != nil {
		return err
	}

	if vals.Flag("default") && vals.Flag("nobase") {
		return kserrors.Errorf(lineno, "--default and --nobase cannot be used together")
	}
	if vals.Flag("default") && vals.Flag("nocore") {
		return kserrors.Errorf(lineno, "--default and --nocore cannot be used together")
	}

	s.pkgs.ExcludeDocs = vals.Flag("excludedocs")
	s.pkgs.AddBase = !vals.Flag("nobase")
	if vals.Flag("ignoremissing") {
		s.pkgs.HandleMissing = MissingIgnore
	} else {
		s.pkgs.HandleMissing = MissingPrompt
	}
	if vals.Flag("default") {
		s.pkgs.Default = true
	}
	// Only an explicit --instLangs may overwrite an earlier value.
	if vals.Seen("instLangs") {
		s.pkgs.InstLangs = vals.String("instLangs")
	}
	s.pkgs.Nocore = vals.Flag("nocore")
	s.pkgs.MultiLib = vals.Flag("multilib")
	s.pkgs.Seen = true
	return nil
}

// HandleLine strips an inline comment, right-trims, and records the rest as
// one package name. Filtering empty entries is the caller's concern.
func (s *PackageSection) HandleLine(line string) {
	name, _, _ := strings.Cut(line, "#")
	name = strings.TrimRightFunc(name, unicode.IsSpace)
	s.pkgs.List = append(s.pkgs.List, name)
}

// Finalize implements Section. The header already committed all state.
func (s *PackageSection) Finalize() {}
