package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicShader = `#shader vertex
#version 330 core

layout(location = 0) in vec4 position;

void main()
{
    gl_Position = position;
};

#shader fragment
#version 330 core

layout(location = 0) out vec4 color;
uniform vec4 u_Color;

void main()
{
    color = u_Color;
};
`

func TestParseHashMarkers(t *testing.T) {

	s, err := ParseCombinedShader([]byte(basicShader))
	require.NoError(t, err)

	assert.Equal(t, "#version 330 core\n\nlayout(location = 0) in vec4 position;\n\nvoid main()\n{\n    gl_Position = position;\n};\n\n", s.Vertex)
	assert.Contains(t, s.Fragment, "uniform vec4 u_Color;\n")
	assert.NotContains(t, s.Fragment, "#shader")
	assert.Empty(t, s.Geometry)
}

func TestParseSlashMarkers(t *testing.T) {

	src := "//shader:vertex\nvoid main() {}\n//shader:geometry\nvoid main() { EmitVertex(); }\n//shader:fragment\nvoid main() {}\n"

	s, err := ParseCombinedShader([]byte(src))
	require.NoError(t, err)

	assert.Equal(t, "void main() {}\n", s.Vertex)
	assert.Equal(t, "void main() { EmitVertex(); }\n", s.Geometry)
	assert.Equal(t, "void main() {}\n", s.Fragment)
}

func TestParseIgnoresTextBeforeFirstMarker(t *testing.T) {

	src := "// shared header comment\n#shader vertex\nV\n#shader fragment\nF\n"

	s, err := ParseCombinedShader([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "V\n", s.Vertex)
	assert.Equal(t, "F\n", s.Fragment)
}

func TestParseRepeatedSectionAppends(t *testing.T) {

	src := "#shader vertex\nA\n#shader fragment\nF\n#shader vertex\nB\n"

	s, err := ParseCombinedShader([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "A\nB\n", s.Vertex)
}

func TestParseMarkerWithIndentAndCRLF(t *testing.T) {

	src := "  #shader   vertex\r\nV\r\n\t#shader fragment\r\nF\r\n"

	s, err := ParseCombinedShader([]byte(src))
	require.NoError(t, err)
	// Line endings are normalized to '\n'
	assert.Equal(t, "V\n", s.Vertex)
	assert.Equal(t, "F\n", s.Fragment)
}

func TestParseNotAMarker(t *testing.T) {

	// '#shaderX' is plain text, so the fragment section keeps it
	src := "#shader vertex\nV\n#shader fragment\n#shaderX\n"

	s, err := ParseCombinedShader([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "#shaderX\n", s.Fragment)
}

func TestParseErrors(t *testing.T) {

	tests := map[string]string{
		"empty":            "",
		"no markers":       "void main() {}\n",
		"missing fragment": "#shader vertex\nvoid main() {}\n",
		"missing vertex":   "#shader fragment\nvoid main() {}\n",
		"blank vertex":     "#shader vertex\n   \n#shader fragment\nvoid main() {}\n",
		"unknown type":     "#shader vertex\nV\n#shader compute\nC\n#shader fragment\nF\n",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCombinedShader([]byte(src))
			assert.Error(t, err)
		})
	}
}
