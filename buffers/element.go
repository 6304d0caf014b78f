package buffers

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/assert"
)

// Element is one vertex attribute inside a buffer (e.g. a Vec2 position at an offset of 0 bytes).
//
// The element count and primitive type come from ElementType, and Normalized tells OpenGL to
// map integer data into [0, 1] (or [-1, 1] for signed types) when fetching the attribute.
type Element struct {
	Offset     int
	Normalized bool
	ElementType
}

// ElementType is the type of an element that makes up a buffer (e.g. Vec3)
type ElementType uint8

const (
	DataTypeUnknown ElementType = iota

	DataTypeUint8
	// DataTypeUint8Vec4 is four bytes, usually an RGBA color that is sent normalized
	DataTypeUint8Vec4

	DataTypeUint32
	DataTypeInt32
	DataTypeFloat32

	DataTypeVec2
	DataTypeVec3
	DataTypeVec4

	DataTypeMat2
	DataTypeMat3
	DataTypeMat4
)

func (dt ElementType) GLType() uint32 {

	switch dt {

	case DataTypeUint8:
		fallthrough
	case DataTypeUint8Vec4:
		return gl.UNSIGNED_BYTE

	case DataTypeUint32:
		return gl.UNSIGNED_INT
	case DataTypeInt32:
		return gl.INT

	case DataTypeFloat32:
		fallthrough
	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		fallthrough
	case DataTypeVec4:
		fallthrough
	case DataTypeMat2:
		fallthrough
	case DataTypeMat3:
		fallthrough
	case DataTypeMat4:
		return gl.FLOAT

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompSize returns the size in bytes for one component of the type (e.g. for Vec2 its 4)
func (dt ElementType) CompSize() int32 {

	switch dt {

	case DataTypeUint8:
		fallthrough
	case DataTypeUint8Vec4:
		return 1

	case DataTypeUint32:
		fallthrough
	case DataTypeFloat32:
		fallthrough
	case DataTypeInt32:
		fallthrough
	case DataTypeVec2:
		fallthrough
	case DataTypeVec3:
		fallthrough
	case DataTypeVec4:
		fallthrough
	case DataTypeMat2:
		fallthrough
	case DataTypeMat3:
		fallthrough
	case DataTypeMat4:
		return 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// CompCount returns the number of components in the element (e.g. for Vec2 its 2)
func (dt ElementType) CompCount() int32 {

	switch dt {
	case DataTypeUint8:
		fallthrough
	case DataTypeUint32:
		fallthrough
	case DataTypeFloat32:
		fallthrough
	case DataTypeInt32:
		return 1

	case DataTypeVec2:
		return 2
	case DataTypeVec3:
		return 3
	case DataTypeUint8Vec4:
		fallthrough
	case DataTypeVec4:
		return 4

	case DataTypeMat2:
		return 2 * 2
	case DataTypeMat3:
		return 3 * 3
	case DataTypeMat4:
		return 4 * 4

	default:
		assert.T(false, "Unknown data type passed. DataType '%d'", dt)
		return 0
	}
}

// Size returns the total size in bytes (e.g. for vec3 its 3*4=12 bytes)
func (dt ElementType) Size() int32 {
	return dt.CompCount() * dt.CompSize()
}

func (dt ElementType) String() string {

	switch dt {

	case DataTypeUint8:
		return "uint8"
	case DataTypeUint8Vec4:
		return "Uint8Vec4"
	case DataTypeUint32:
		return "uint32"
	case DataTypeFloat32:
		return "float32"
	case DataTypeInt32:
		return "int32"

	case DataTypeVec2:
		return "Vec2"
	case DataTypeVec3:
		return "Vec3"
	case DataTypeVec4:
		return "Vec4"

	case DataTypeMat2:
		return "Mat2"
	case DataTypeMat3:
		return "Mat3"
	case DataTypeMat4:
		return "Mat4"

	default:
		return "Unknown"
	}
}

// AttribSlot is one vertex attribute pointer of an element
type AttribSlot struct {
	CompCount int32
	Offset    int
}

// AttribSlots returns the attribute pointers needed for the element. OpenGL attributes hold at
// most 4 components, so matrices take one slot per column and every other type takes one slot.
func (e *Element) AttribSlots() []AttribSlot {

	cols := int32(1)
	switch e.ElementType {
	case DataTypeMat2:
		cols = 2
	case DataTypeMat3:
		cols = 3
	case DataTypeMat4:
		cols = 4
	}

	comps := e.ElementType.CompCount() / cols
	colSize := int(comps * e.ElementType.CompSize())

	slots := make([]AttribSlot, cols)
	for c := 0; c < int(cols); c++ {
		slots[c] = AttribSlot{
			CompCount: comps,
			Offset:    e.Offset + c*colSize,
		}
	}

	return slots
}
