package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/glerr"
	"github.com/lgl-dev/lgl/logging"
)

type VertexArray struct {
	Id          uint32
	Vbos        []VertexBuffer
	IndexBuffer IndexBuffer

	// nextAttrib is the attribute location the next added vertex buffer starts at
	nextAttrib uint32
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.Id)
}

func (va *VertexArray) UnBind() {
	gl.BindVertexArray(0)
}

// AddVertexBuffer binds every element of the buffer's layout to consecutive attribute
// locations, continuing after the attributes of previously added buffers.
// Matrix elements take one location per column.
func (va *VertexArray) AddVertexBuffer(vbo VertexBuffer) {

	// NOTE: VBOs are only bound at 'VertexAttribPointer' (and related) calls

	va.Bind()
	vbo.Bind()

	for i := 0; i < len(vbo.layout.Elements); i++ {

		l := &vbo.layout.Elements[i]
		glType := l.ElementType.GLType()

		for _, slot := range l.AttribSlots() {

			attribIndex := va.nextAttrib
			va.nextAttrib++

			gl.EnableVertexAttribArray(attribIndex)

			// Integer types that are not normalized must go through the I variant or the shader sees garbage
			if !l.Normalized && glType != gl.FLOAT {
				gl.VertexAttribIPointer(attribIndex, slot.CompCount, glType, vbo.Stride, gl.PtrOffset(slot.Offset))
			} else {
				gl.VertexAttribPointerWithOffset(attribIndex, slot.CompCount, glType, l.Normalized, vbo.Stride, uintptr(slot.Offset))
			}

			glerr.Check("glVertexAttribPointer")
		}
	}

	va.Vbos = append(va.Vbos, vbo)
}

func (va *VertexArray) SetIndexBuffer(ib IndexBuffer) {
	va.Bind()
	ib.Bind()
	va.IndexBuffer = ib
}

// Delete deletes the vertex array along with the buffers added to it
func (va *VertexArray) Delete() {

	for i := 0; i < len(va.Vbos); i++ {
		va.Vbos[i].Delete()
	}

	if va.IndexBuffer.Id != 0 {
		va.IndexBuffer.Delete()
	}

	gl.DeleteVertexArrays(1, &va.Id)

	va.Id = 0
	va.Vbos = nil
	va.nextAttrib = 0
}

func NewVertexArray() VertexArray {

	vao := VertexArray{}

	gl.GenVertexArrays(1, &vao.Id)
	if vao.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL vertex array object")
	}

	return vao
}
