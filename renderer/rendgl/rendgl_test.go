package rendgl

import (
	"fmt"
	"testing"

	"github.com/lgl-dev/lgl/buffers"
	"github.com/lgl-dev/lgl/shaders"
	"github.com/stretchr/testify/assert"
)

// recordGL replaces the GL entry points with ones that append what they were called with
func recordGL(t *testing.T) *[]string {

	calls := &[]string{}
	record := func(format string, args ...any) {
		*calls = append(*calls, fmt.Sprintf(format, args...))
	}

	oldShader, oldVao, oldIbo, oldDraw, oldDepth := bindShader, bindVao, bindIbo, drawIndexed, setDepthTest
	t.Cleanup(func() {
		bindShader, bindVao, bindIbo, drawIndexed, setDepthTest = oldShader, oldVao, oldIbo, oldDraw, oldDepth
	})

	bindShader = func(sp *shaders.ShaderProgram) { record("shader %d", sp.Id) }
	bindVao = func(vao *buffers.VertexArray) { record("vao %d", vao.Id) }
	bindIbo = func(ib *buffers.IndexBuffer) { record("ibo %d", ib.Id) }
	drawIndexed = func(count int32) { record("draw %d", count) }
	setDepthTest = func(enabled bool) { record("depth %v", enabled) }

	return calls
}

func TestDrawSkipsRedundantBinds(t *testing.T) {

	calls := recordGL(t)
	r := NewRendGL()

	vao := &buffers.VertexArray{Id: 1}
	ib := &buffers.IndexBuffer{Id: 2, Count: 6}
	sp := &shaders.ShaderProgram{Id: 3}

	r.Draw(vao, ib, sp)
	r.Draw(vao, ib, sp)

	assert.Equal(t, []string{"shader 3", "vao 1", "ibo 2", "draw 6", "draw 6"}, *calls)
}

func TestDrawRebindsIboWhenVaoChanges(t *testing.T) {

	calls := recordGL(t)
	r := NewRendGL()

	ib := &buffers.IndexBuffer{Id: 2, Count: 3}
	sp := &shaders.ShaderProgram{Id: 3}

	r.Draw(&buffers.VertexArray{Id: 1}, ib, sp)
	*calls = (*calls)[:0]

	// Same ibo, but the new vao has its own element array binding
	r.Draw(&buffers.VertexArray{Id: 4}, ib, sp)
	assert.Equal(t, []string{"vao 4", "ibo 2", "draw 3"}, *calls)
	assert.Equal(t, uint32(4), r.BoundVaoId)
	assert.Equal(t, uint32(2), r.BoundIboId)
}

func TestDrawRebindsChangedShader(t *testing.T) {

	calls := recordGL(t)
	r := NewRendGL()

	vao := &buffers.VertexArray{Id: 1}
	ib := &buffers.IndexBuffer{Id: 2, Count: 3}

	r.Draw(vao, ib, &shaders.ShaderProgram{Id: 3})
	*calls = (*calls)[:0]

	r.Draw(vao, ib, &shaders.ShaderProgram{Id: 5})
	assert.Equal(t, []string{"shader 5", "draw 3"}, *calls)
}

func TestFrameEndForgetsBindings(t *testing.T) {

	calls := recordGL(t)
	r := NewRendGL()

	vao := &buffers.VertexArray{Id: 1}
	ib := &buffers.IndexBuffer{Id: 2, Count: 3}
	sp := &shaders.ShaderProgram{Id: 3}

	r.Draw(vao, ib, sp)
	r.FrameEnd()

	assert.Zero(t, r.BoundVaoId)
	assert.Zero(t, r.BoundIboId)
	assert.Zero(t, r.BoundShaderId)

	// Something else may have bound other objects since, so everything is bound again
	*calls = (*calls)[:0]
	r.Draw(vao, ib, sp)
	assert.Equal(t, []string{"shader 3", "vao 1", "ibo 2", "draw 3"}, *calls)
}

func TestSetDepthTest(t *testing.T) {

	calls := recordGL(t)
	r := NewRendGL()

	r.SetDepthTest(false)
	r.SetDepthTest(true)
	assert.Equal(t, []string{"depth false", "depth true"}, *calls)
}
