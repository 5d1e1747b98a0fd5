package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kickstart/internal/kserrors"
	"kickstart/internal/version"
)

func TestMultipathGrouping(t *testing.T) {
	c := NewMultipath(version.FC6)

	first, err := c.Parse(1, []string{"--name=mpatha", "--device=sda", "--rule=failover"})
	require.NoError(t, err)
	second, err := c.Parse(2, []string{"--name=mpatha", "--device=sdb", "--rule=failover"})
	require.NoError(t, err)

	// Asymmetric contract: a new group returns the group, an append
	// returns the path record itself.
	group, ok := first.(*MultipathData)
	require.True(t, ok, "first Parse should return the new group, got %T", first)
	path, ok := second.(*PathData)
	require.True(t, ok, "second Parse should return the appended path, got %T", second)

	require.Len(t, c.DataList(), 1)
	assert.Same(t, group, c.DataList()[0])
	assert.Equal(t, "mpatha", group.Name)
	require.Len(t, group.Paths, 2)
	assert.Same(t, path, group.Paths[1])
	assert.Equal(t, "sdb", path.Device)
	assert.Equal(t, "mpatha", path.MpDev)
	assert.Equal(t, 2, path.Lineno)
}

func TestMultipathDuplicateDevice(t *testing.T) {
	c := NewMultipath(version.FC6)

	_, err := c.Parse(1, []string{"--name=mpatha", "--device=sda", "--rule=a"})
	require.NoError(t, err)
	_, err = c.Parse(2, []string{"--name=mpatha", "--device=sdb", "--rule=b"})
	require.NoError(t, err)

	// Reuse across a different group is the violation being prevented.
	_, err = c.Parse(3, []string{"--name=mpathb", "--device=sda", "--rule=c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'sda'")
	assert.Contains(t, err.Error(), "'mpatha'")
	assert.Equal(t, 3, kserrors.Line(err))

	// The failed directive must leave the model untouched.
	require.Len(t, c.DataList(), 1)
	assert.Len(t, c.DataList()[0].Paths, 2)
}

func TestMultipathDuplicateDeviceSameGroup(t *testing.T) {
	c := NewMultipath(version.FC6)

	_, err := c.Parse(1, []string{"--name=mpatha", "--device=sda", "--rule=a"})
	require.NoError(t, err)
	_, err = c.Parse(2, []string{"--name=mpatha", "--device=sda", "--rule=b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'sda'")
}

func TestMultipathDerivedName(t *testing.T) {
	c := NewMultipath(version.FC6)

	_, err := c.Parse(1, []string{"--name=/dev/mapper/mpatha", "--device=sda", "--rule=a"})
	require.NoError(t, err)
	got, err := c.Parse(2, []string{"--name=mpatha", "--device=sdb", "--rule=b"})
	require.NoError(t, err)

	// Grouping is keyed by the trailing path component, so both land in
	// the group created by the first directive.
	_, ok := got.(*PathData)
	require.True(t, ok, "expected an append into the existing group, got %T", got)
	require.Len(t, c.DataList(), 1)
	group := c.DataList()[0]
	assert.Equal(t, "/dev/mapper/mpatha", group.Name)
	require.Len(t, group.Paths, 2)
	assert.Equal(t, "mpatha", group.Paths[0].MpDev)
	assert.Equal(t, "mpatha", group.Paths[1].MpDev)
}

func TestMultipathMissingOption(t *testing.T) {
	c := NewMultipath(version.FC6)

	_, err := c.Parse(4, []string{"--name=mpatha", "--device=sda"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required option --rule is missing")
	assert.Equal(t, 4, kserrors.Line(err))
	assert.Empty(t, c.DataList())
}

func TestMultipathString(t *testing.T) {
	c := NewMultipath(version.FC6)

	_, err := c.Parse(1, []string{"--name=mpatha", "--device=sda", "--rule=a"})
	require.NoError(t, err)
	_, err = c.Parse(2, []string{"--name=mpatha", "--device=sdb", "--rule=b"})
	require.NoError(t, err)
	_, err = c.Parse(3, []string{"--name=mpathb", "--device=sdc", "--rule=c"})
	require.NoError(t, err)

	want := "multipath --name=mpatha --device=sda --rule=\"a\"\n" +
		"multipath --name=mpatha --device=sdb --rule=\"b\"\n" +
		"multipath --name=mpathb --device=sdc --rule=\"c\"\n"
	assert.Equal(t, want, c.String())
}

func TestDeprecatedCommand(t *testing.T) {
	c := NewDeprecated("multipath", version.F24)

	assert.Equal(t, "multipath", c.Name())
	assert.Empty(t, c.String())

	_, err := c.Parse(6, []string{"--name=mpatha", "--device=sda", "--rule=a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "removed in F24")
	assert.Equal(t, 6, kserrors.Line(err))
}
