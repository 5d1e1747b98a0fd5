package commands

import (
	"fmt"
	"strings"

	"kickstart/internal/kserrors"
	"kickstart/internal/options"
	"kickstart/internal/version"
)

// PathData is one physical device/rule pair contributed by a single
// multipath directive.
type PathData struct {
	// MpDev is the multipath device name, the trailing path component of
	// the --name the directive was given.
	MpDev  string
	Device string
	Rule   string
	Lineno int
}

// String renders the path's own options; the owning group supplies the
// directive name and --name.
func (d *PathData) String() string {
	return fmt.Sprintf(" --device=%s --rule=\"%s\"", d.Device, d.Rule)
}

// MultipathData is the group of paths sharing one multipath device name.
// Paths is append-only and keeps directive order.
type MultipathData struct {
	Name  string
	Paths []*PathData
}

// String renders the group as one multipath directive line per path.
func (d *MultipathData) String() string {
	var b strings.Builder
	for _, p := range d.Paths {
		fmt.Fprintf(&b, "multipath --name=%s%s\n", d.Name, p)
	}
	return b.String()
}

// mpDev returns the trailing path component of the group's name, the key
// paths are grouped by.
func (d *MultipathData) mpDev() string {
	return lastSegment(d.Name)
}

func lastSegment(name string) string {
	parts := strings.Split(name, "/")
	return parts[len(parts)-1]
}

// Multipath is the live multipath directive. It owns the groups in
// first-seen order and enforces that no physical device is claimed by more
// than one path anywhere in the document.
type Multipath struct {
	version version.Version
	mpaths  []*MultipathData
}

// NewMultipath creates the command for a document of the given version.
func NewMultipath(v version.Version) *Multipath {
	return &Multipath{version: v}
}

// Name implements Command.
func (c *Multipath) Name() string { return "multipath" }

// Parse handles one multipath directive. The new path joins the group whose
// device name matches the trailing component of --name, or a new group is
// created and appended.
//
// The return value is asymmetric, and callers rely on the distinction: when
// a new group is created the group is returned, when the path joined an
// existing group the path record itself is returned. Use DataList to reach
// the owning group after an append.
func (c *Multipath) Parse(lineno int, args []string) (Data, error) {
	op := options.New(c.version)
	op.Value("name").Required()
	op.Value("device").Required()
	op.Value("rule").Required()

	vals, err := op.Parse(lineno, args)
	if err != nil {
		return nil, err
	}

	name := vals.String("name")
	dd := &PathData{
		MpDev:  lastSegment(name),
		Device: vals.String("device"),
		Rule:   vals.String("rule"),
		Lineno: lineno,
	}

	// A physical device may belong to exactly one multipath, so the scan
	// covers every group, not just the one the path would join.
	for _, mpath := range c.mpaths {
		for _, p := range mpath.Paths {
			if p.Device == dd.Device {
				return nil, kserrors.Errorf(lineno, "device '%s' is already used in multipath '%s'", p.Device, p.MpDev)
			}
		}
	}

	for _, mpath := range c.mpaths {
		if mpath.mpDev() == dd.MpDev {
			mpath.Paths = append(mpath.Paths, dd)
			return dd, nil
		}
	}

	mpath := &MultipathData{Name: name, Paths: []*PathData{dd}}
	c.mpaths = append(c.mpaths, mpath)
	return mpath, nil
}

// DataList exposes the live group sequence, in group-creation order. It is
// not a copy.
func (c *Multipath) DataList() []*MultipathData { return c.mpaths }

// String implements Command.
func (c *Multipath) String() string {
	var b strings.Builder
	for _, mpath := range c.mpaths {
		b.WriteString(mpath.String())
	}
	return b.String()
}
