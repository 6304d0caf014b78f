package scenes

import (
	"testing"

	"github.com/lgl-dev/lgl/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScene struct {
	name     string
	updates  int
	renders  int
	deleted  bool
	lastDt   float32
	rendUsed renderer.Render
}

func (f *fakeScene) Update(dt float32) {
	f.updates++
	f.lastDt = dt
}

func (f *fakeScene) Render(rend renderer.Render) {
	f.renders++
	f.rendUsed = rend
}

func (f *fakeScene) ImGuiRender() {}

func (f *fakeScene) Delete() {
	f.deleted = true
}

// newFakeMenu registers the passed names and records every scene the factories build
func newFakeMenu(t *testing.T, names ...string) (*Menu, *[]*fakeScene) {

	built := &[]*fakeScene{}
	m := NewMenu()
	for _, n := range names {
		name := n
		require.NoError(t, m.Register(name, func() Scene {
			s := &fakeScene{name: name}
			*built = append(*built, s)
			return s
		}))
	}

	return m, built
}

func TestMenuRegister(t *testing.T) {

	m, _ := newFakeMenu(t, "Clear Color", "2D Texture")
	assert.Equal(t, []string{"Clear Color", "2D Texture"}, m.Names())

	err := m.Register("Clear Color", func() Scene { return &fakeScene{} })
	assert.Error(t, err)
	assert.Len(t, m.Names(), 2)

	assert.Error(t, m.Register("Nil", nil))
}

func TestHarnessStartsAtMenu(t *testing.T) {

	m, built := newFakeMenu(t, "A")
	h := NewHarness(m)

	assert.True(t, h.IsMenuActive())
	assert.Equal(t, "", h.CurrentName())

	// Factories are lazy
	assert.Empty(t, *built)
}

func TestHarnessSelectAndBack(t *testing.T) {

	m, built := newFakeMenu(t, "A", "B")
	h := NewHarness(m)

	require.NoError(t, h.Select("A"))
	require.Len(t, *built, 1)
	assert.False(t, h.IsMenuActive())
	assert.Equal(t, "A", h.CurrentName())

	h.Update(0.5)
	h.Render(nil)
	a := (*built)[0]
	assert.Equal(t, 1, a.updates)
	assert.Equal(t, float32(0.5), a.lastDt)
	assert.Equal(t, 1, a.renders)

	h.Back()
	assert.True(t, a.deleted)
	assert.True(t, h.IsMenuActive())

	// Back on the menu does nothing
	h.Back()
	assert.True(t, h.IsMenuActive())
}

func TestHarnessSelectReplacesActiveScene(t *testing.T) {

	m, built := newFakeMenu(t, "A", "B")
	h := NewHarness(m)

	require.NoError(t, h.Select("A"))
	require.NoError(t, h.Select("B"))

	require.Len(t, *built, 2)
	assert.True(t, (*built)[0].deleted)
	assert.False(t, (*built)[1].deleted)
	assert.Equal(t, "B", h.CurrentName())
	assert.Same(t, (*built)[1], h.Current)
}

func TestHarnessSelectBuildsFreshInstances(t *testing.T) {

	m, built := newFakeMenu(t, "A")
	h := NewHarness(m)

	require.NoError(t, h.Select("A"))
	h.Back()
	require.NoError(t, h.Select("A"))

	require.Len(t, *built, 2)
	assert.NotSame(t, (*built)[0], (*built)[1])
}

func TestHarnessSelectUnknownKeepsScene(t *testing.T) {

	m, built := newFakeMenu(t, "A")
	h := NewHarness(m)

	require.NoError(t, h.Select("A"))
	assert.Error(t, h.Select("Nope"))

	assert.False(t, (*built)[0].deleted)
	assert.Equal(t, "A", h.CurrentName())
}

func TestMenuSelectCallback(t *testing.T) {

	m, built := newFakeMenu(t, "A")
	h := NewHarness(m)

	// What a click on the menu button does
	m.onSelect("A")
	assert.Len(t, *built, 1)
	assert.Equal(t, "A", h.CurrentName())

	// Unknown names are logged, not fatal
	m.onSelect("Nope")
	assert.Equal(t, "A", h.CurrentName())
}

func TestHarnessDelete(t *testing.T) {

	m, built := newFakeMenu(t, "A")
	h := NewHarness(m)

	require.NoError(t, h.Select("A"))
	h.Delete()
	assert.True(t, (*built)[0].deleted)
	assert.True(t, h.IsMenuActive())
}
