// Package scenes is a small harness for switching between demo scenes at runtime.
//
// Scenes are registered on a Menu by display name along with a factory. Picking an entry
// in the menu builds a fresh scene that replaces the active one, and the back button
// deletes it and returns to the menu.
package scenes

import (
	"fmt"

	imgui "github.com/AllenDang/cimgui-go"
	"github.com/lgl-dev/lgl/logging"
	"github.com/lgl-dev/lgl/renderer"
)

type Scene interface {
	Update(dt float32)
	Render(rend renderer.Render)
	ImGuiRender()
	// Delete frees the GPU resources of the scene. The scene is not used after this.
	Delete()
}

// Factory builds a new scene instance. It is called on the render thread.
type Factory func() Scene

type menuEntry struct {
	Name    string
	Factory Factory
}

type Menu struct {
	entries []menuEntry

	// onSelect is called when an entry button is clicked
	onSelect func(name string)
}

var _ Scene = &Menu{}

// Register adds a scene to the menu. Names must be unique within a menu.
func (m *Menu) Register(name string, factory Factory) error {

	if factory == nil {
		return fmt.Errorf("scene '%s' has a nil factory", name)
	}

	if _, ok := m.factory(name); ok {
		return fmt.Errorf("a scene named '%s' is already registered", name)
	}

	m.entries = append(m.entries, menuEntry{Name: name, Factory: factory})
	logging.InfoLog.Debugf("Registered scene '%s'\n", name)
	return nil
}

// Names returns the registered names in registration order
func (m *Menu) Names() []string {

	names := make([]string, len(m.entries))
	for i := 0; i < len(m.entries); i++ {
		names[i] = m.entries[i].Name
	}

	return names
}

func (m *Menu) factory(name string) (Factory, bool) {

	for i := 0; i < len(m.entries); i++ {
		if m.entries[i].Name == name {
			return m.entries[i].Factory, true
		}
	}

	return nil, false
}

func (m *Menu) Update(dt float32) {
}

func (m *Menu) Render(rend renderer.Render) {
}

func (m *Menu) ImGuiRender() {

	for i := 0; i < len(m.entries); i++ {

		name := m.entries[i].Name
		if imgui.Button(name) && m.onSelect != nil {
			m.onSelect(name)
		}
	}
}

func (m *Menu) Delete() {
}

func NewMenu() *Menu {
	return &Menu{
		entries: make([]menuEntry, 0, 4),
	}
}

// Harness owns the menu and the active scene
type Harness struct {
	Menu    *Menu
	Current Scene

	currentName string
}

// Select builds the named scene and makes it the active one, deleting the previous scene.
// On an unknown name the active scene is kept.
func (h *Harness) Select(name string) error {

	factory, ok := h.Menu.factory(name)
	if !ok {
		return fmt.Errorf("no scene named '%s' is registered", name)
	}

	h.deleteCurrent()

	h.Current = factory()
	h.currentName = name
	logging.InfoLog.Infof("Switched to scene '%s'\n", name)
	return nil
}

// Back deletes the active scene and returns to the menu
func (h *Harness) Back() {
	h.deleteCurrent()
	h.Current = h.Menu
	h.currentName = ""
}

func (h *Harness) deleteCurrent() {

	if h.IsMenuActive() {
		return
	}

	h.Current.Delete()
}

func (h *Harness) IsMenuActive() bool {
	return h.Current == Scene(h.Menu)
}

// CurrentName returns the name of the active scene, or an empty string when the menu is active
func (h *Harness) CurrentName() string {
	return h.currentName
}

func (h *Harness) Update(dt float32) {
	h.Current.Update(dt)
}

func (h *Harness) Render(rend renderer.Render) {
	h.Current.Render(rend)
}

// Frame runs one frame of the active scene: update, render and then its UI
func (h *Harness) Frame(dt float32, rend renderer.Render) {
	h.Update(dt)
	h.Render(rend)
	h.ImGuiRender()
}

// ImGuiRender draws the harness window with the back button and the UI of the active scene
func (h *Harness) ImGuiRender() {

	imgui.Begin("Test")

	if !h.IsMenuActive() && imgui.Button("<-") {
		h.Back()
	}

	h.Current.ImGuiRender()
	imgui.End()
}

// Delete deletes the active scene. The harness is back at the menu afterwards.
func (h *Harness) Delete() {
	h.Back()
}

func NewHarness(menu *Menu) *Harness {

	h := &Harness{
		Menu:    menu,
		Current: menu,
	}

	menu.onSelect = func(name string) {
		if err := h.Select(name); err != nil {
			logging.ErrLog.Println("Failed to select scene. Err: ", err)
		}
	}

	return h
}
