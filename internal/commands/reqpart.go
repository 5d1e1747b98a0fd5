package commands

import (
	"kickstart/internal/options"
	"kickstart/internal/version"
)

// Reqpart is the reqpart directive, available from F23. It asks the
// installer to create the partitions the platform requires; --add-boot
// additionally requests a /boot partition. The directive keeps no list of
// records: each occurrence flips the command's own state, and rendering is
// gated on the directive having been used at all.
type Reqpart struct {
	version version.Version

	Seen    bool
	AddBoot bool
}

// NewReqpart creates the command for a document of the given version.
func NewReqpart(v version.Version) *Reqpart {
	return &Reqpart{version: v}
}

// Name implements Command.
func (c *Reqpart) Name() string { return "reqpart" }

// Parse handles one reqpart directive. It returns the command itself: there
// is no per-occurrence record to hand back.
func (c *Reqpart) Parse(lineno int, args []string) (Data, error) {
	op := options.New(c.version)
	op.Flag("add-boot")

	vals, err := op.Parse(lineno, args)
	if err != nil {
		return nil, err
	}

	c.AddBoot = vals.Flag("add-boot")
	c.Seen = true
	return c, nil
}

// String implements Command. Nothing is rendered until the directive has
// been seen.
func (c *Reqpart) String() string {
	if !c.Seen {
		return ""
	}
	if c.AddBoot {
		return "reqpart --add-boot\n"
	}
	return "reqpart\n"
}
