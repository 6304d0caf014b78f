package shaders

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Marker prefixes that start a new section in a combined shader file, e.g. '#shader vertex' or '//shader:fragment'
const (
	markerHash  = "#shader"
	markerSlash = "//shader:"
)

// Sources holds the per-stage source code of a combined shader file
type Sources struct {
	Vertex   string
	Fragment string
	// Geometry is optional and empty when the file has no geometry section
	Geometry string
}

func (s *Sources) get(t ShaderType) string {

	switch t {
	case ShaderType_Vertex:
		return s.Vertex
	case ShaderType_Fragment:
		return s.Fragment
	case ShaderType_Geometry:
		return s.Geometry
	default:
		return ""
	}
}

// ParseCombinedShader splits a combined shader file into its stages.
//
// A marker line selects the stage that the following lines belong to, and lines are kept
// verbatim until the next marker. A stage that appears more than once is appended to.
// Lines before the first marker are ignored. Vertex and fragment stages are required.
func ParseCombinedShader(src []byte) (Sources, error) {

	var sections [ShaderType_Geometry + 1]strings.Builder

	currType := ShaderType_Unknown
	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), len(src)+1)

	lineNum := 0
	for scanner.Scan() {

		lineNum++
		line := scanner.Text()

		if typeName, ok := markerTypeName(line); ok {

			currType = shaderTypeFromName(typeName)
			if currType == ShaderType_Unknown {
				return Sources{}, fmt.Errorf("unknown shader type '%s' at line %d. Must be one of 'vertex', 'fragment' or 'geometry'", typeName, lineNum)
			}

			continue
		}

		if currType == ShaderType_Unknown {
			continue
		}

		sections[currType].WriteString(line)
		sections[currType].WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		return Sources{}, fmt.Errorf("failed to read combined shader: %w", err)
	}

	s := Sources{
		Vertex:   sections[ShaderType_Vertex].String(),
		Fragment: sections[ShaderType_Fragment].String(),
		Geometry: sections[ShaderType_Geometry].String(),
	}

	if strings.TrimSpace(s.Vertex) == "" {
		return Sources{}, fmt.Errorf("no valid vertex shader found. Please put '%s vertex' before your vertex shader", markerHash)
	}

	if strings.TrimSpace(s.Fragment) == "" {
		return Sources{}, fmt.Errorf("no valid fragment shader found. Please put '%s fragment' before your fragment shader", markerHash)
	}

	return s, nil
}

func markerTypeName(line string) (string, bool) {

	trimmed := strings.TrimSpace(line)

	if rest, ok := strings.CutPrefix(trimmed, markerSlash); ok {
		return strings.TrimSpace(rest), true
	}

	if rest, ok := strings.CutPrefix(trimmed, markerHash); ok {

		// Avoid treating something like '#shaderFoo' as a marker
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			return "", false
		}

		return strings.TrimSpace(rest), true
	}

	return "", false
}
