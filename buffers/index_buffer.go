package buffers

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/glerr"
	"github.com/lgl-dev/lgl/logging"
)

type IndexBuffer struct {
	Id uint32
	// Count is the number of indices in the index buffer. Updated in IndexBuffer.SetData
	Count int32
}

func (ib *IndexBuffer) Bind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.Id)
}

func (ib *IndexBuffer) UnBind() {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}

// SetData uploads the indices once with static usage. The element array binding
// is stored in the currently bound vertex array, so bind the right one first.
func (ib *IndexBuffer) SetData(values []uint32) {

	ib.Bind()

	sizeInBytes := len(values) * 4
	ib.Count = int32(len(values))

	if sizeInBytes == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, gl.Ptr(nil), BufUsage_Static_Draw.ToGL())
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), BufUsage_Static_Draw.ToGL())
	}

	glerr.Check("glBufferData")
}

// SetDataRaw uploads count indices of indexSize bytes each starting at data
func (ib *IndexBuffer) SetDataRaw(data unsafe.Pointer, count int32, indexSize int, usage BufUsage) {
	ib.Bind()
	ib.Count = count
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, int(count)*indexSize, data, usage.ToGL())
	glerr.Check("glBufferData")
}

func (ib *IndexBuffer) Delete() {
	gl.DeleteBuffers(1, &ib.Id)
	ib.Id = 0
	ib.Count = 0
}

func NewIndexBuffer() IndexBuffer {

	ib := IndexBuffer{}

	gl.GenBuffers(1, &ib.Id)
	if ib.Id == 0 {
		logging.ErrLog.Println("Failed to create OpenGL buffer")
	}

	return ib
}

// NewIndexBufferWithData creates an index buffer and uploads values into it
func NewIndexBufferWithData(values []uint32) IndexBuffer {
	ib := NewIndexBuffer()
	ib.SetData(values)
	return ib
}
