package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kickstart/internal/section"
	"kickstart/internal/version"
)

func TestNewRegistersBuiltins(t *testing.T) {
	h := New(version.FC6)

	for _, tag := range []string{"%pre", "%pre-install", "%post", "%traceback", "%packages"} {
		_, ok := h.Section(tag)
		assert.True(t, ok, "section %s not registered", tag)
	}
	_, ok := h.Command("multipath")
	assert.True(t, ok)
	_, ok = h.Command("bogus")
	assert.False(t, ok)
}

func TestVersionedMultipath(t *testing.T) {
	live := New(version.F21)
	c, ok := live.Command("multipath")
	require.True(t, ok)
	_, err := c.Parse(1, []string{"--name=mpatha", "--device=sda", "--rule=a"})
	assert.NoError(t, err)

	removed := New(version.F24)
	c, ok = removed.Command("multipath")
	require.True(t, ok)
	_, err = c.Parse(1, []string{"--name=mpatha", "--device=sda", "--rule=a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "removed in F24")
}

func TestVersionedReqpart(t *testing.T) {
	_, ok := New(version.F21).Command("reqpart")
	assert.False(t, ok, "reqpart must not exist before F23")

	h := New(version.F23)
	c, ok := h.Command("reqpart")
	require.True(t, ok)
	_, err := c.Parse(1, []string{"--add-boot"})
	assert.NoError(t, err)

	// Still live after multipath's removal.
	_, ok = New(version.F24).Command("reqpart")
	assert.True(t, ok)
}

func TestCommandRenderOrder(t *testing.T) {
	h := New(version.F23)

	rp, _ := h.Command("reqpart")
	_, err := rp.Parse(1, nil)
	require.NoError(t, err)
	mp, _ := h.Command("multipath")
	_, err = mp.Parse(2, []string{"--name=mpatha", "--device=sda", "--rule=a"})
	require.NoError(t, err)

	// Registration order, not directive order, decides rendering.
	out := h.String()
	mpIdx := strings.Index(out, "multipath ")
	rpIdx := strings.Index(out, "reqpart")
	require.True(t, mpIdx >= 0 && rpIdx >= 0, "output = %q", out)
	assert.Less(t, mpIdx, rpIdx)
}

func TestRegisterNull(t *testing.T) {
	h := New(version.FC6)
	_, ok := h.Section("%addon")
	require.False(t, ok)

	h.RegisterNull("%addon")
	s, ok := h.Section("%addon")
	require.True(t, ok)
	assert.Equal(t, "%addon", s.OpenTag())
	assert.Contains(t, h.SectionTags(), "%addon")
}

func TestScriptSink(t *testing.T) {
	h := New(version.FC6)
	s, ok := h.Section("%post")
	require.True(t, ok)

	require.NoError(t, s.HandleHeader(1, nil))
	s.HandleLine("echo hi\n")
	s.Finalize()

	require.Len(t, h.Scripts, 1)
	assert.Equal(t, section.Post, h.Scripts[0].Kind)
}

func TestStringOrdering(t *testing.T) {
	h := New(version.F21)

	c, _ := h.Command("multipath")
	_, err := c.Parse(1, []string{"--name=mpatha", "--device=sda", "--rule=a"})
	require.NoError(t, err)

	pkgs, _ := h.Section("%packages")
	require.NoError(t, pkgs.HandleHeader(2, nil))
	pkgs.HandleLine("vim\n")
	pkgs.Finalize()

	post, _ := h.Section("%post")
	require.NoError(t, post.HandleHeader(5, nil))
	post.HandleLine("echo done\n")
	post.Finalize()

	out := h.String()
	mp := strings.Index(out, "multipath ")
	pk := strings.Index(out, "%packages")
	sc := strings.Index(out, "%post")
	require.True(t, mp >= 0 && pk >= 0 && sc >= 0, "output = %q", out)
	assert.Less(t, mp, pk, "directives must precede %%packages")
	assert.Less(t, pk, sc, "%%packages must precede scripts")
}

func TestWarnf(t *testing.T) {
	h := New(version.F18)
	var lines []int
	h.Warnf = func(lineno int, format string, args ...any) {
		lines = append(lines, lineno)
	}

	pkgs, _ := h.Section("%packages")
	require.NoError(t, pkgs.HandleHeader(3, []string{"--nobase"}))
	assert.Equal(t, []int{3}, lines)
}
