package buffers

// Layout is the ordered list of elements that make up one vertex, along with the stride in bytes.
// Elements get bound to consecutive attribute locations in order, with matrices taking one per column.
type Layout struct {
	Elements []Element
	Stride   int32
}

// NewLayout copies the passed elements and computes their offsets and the stride.
// Any offsets already set on the elements are overwritten.
func NewLayout(elements ...Element) Layout {

	l := Layout{
		Elements: make([]Element, len(elements)),
	}
	copy(l.Elements, elements)

	for i := 0; i < len(l.Elements); i++ {
		l.Elements[i].Offset = int(l.Stride)
		l.Stride += l.Elements[i].Size()
	}

	return l
}

// Push appends an element at the end of the layout and returns the updated layout
func (l Layout) Push(dt ElementType, normalized bool) Layout {
	return NewLayout(append(l.Elements, Element{ElementType: dt, Normalized: normalized})...)
}

// VertexCount returns how many whole vertices fit in a buffer of floatCount float32s
func (l *Layout) VertexCount(floatCount int) int32 {

	if l.Stride == 0 {
		return 0
	}

	return int32(floatCount*4) / l.Stride
}
