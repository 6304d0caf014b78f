package buffers

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/glerr"
	"github.com/lgl-dev/lgl/logging"
)

// VertexBuffer owns a single OpenGL array buffer and the layout of the vertices stored in it
type VertexBuffer struct {
	Id     uint32
	Stride int32
	layout Layout
}

func (vb *VertexBuffer) Bind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.Id)
}

func (vb *VertexBuffer) UnBind() {
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (vb *VertexBuffer) SetData(values []float32, usage BufUsage) {

	vb.Bind()

	sizeInBytes := len(values) * 4
	if sizeInBytes == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, gl.Ptr(nil), usage.ToGL())
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), usage.ToGL())
	}

	glerr.Check("glBufferData")
}

// SetDataRaw uploads sizeInBytes bytes starting at data, which must point to vertices
// matching the layout of this buffer
func (vb *VertexBuffer) SetDataRaw(data unsafe.Pointer, sizeInBytes int, usage BufUsage) {
	vb.Bind()
	gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, data, usage.ToGL())
	glerr.Check("glBufferData")
}

func (vb *VertexBuffer) GetLayout() []Element {
	e := make([]Element, len(vb.layout.Elements))
	copy(e, vb.layout.Elements)
	return e
}

func (vb *VertexBuffer) SetLayout(layout ...Element) {
	vb.layout = NewLayout(layout...)
	vb.Stride = vb.layout.Stride
}

func (vb *VertexBuffer) Delete() {
	gl.DeleteBuffers(1, &vb.Id)
	vb.Id = 0
}

func NewVertexBuffer(layout ...Element) VertexBuffer {

	vb := VertexBuffer{}

	gl.GenBuffers(1, &vb.Id)
	if vb.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL buffer")
	}

	vb.SetLayout(layout...)
	return vb
}
