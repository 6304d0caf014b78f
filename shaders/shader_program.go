package shaders

import (
	"errors"

	"github.com/bloeys/gglm/gglm"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/lgl-dev/lgl/glerr"
	"github.com/lgl-dev/lgl/logging"
)

type ShaderProgram struct {
	Id           uint32
	VertShaderId uint32
	FragShaderId uint32
	GeomShaderId uint32

	// Path is the file the program was loaded from. Empty for programs built from in-memory source.
	Path string

	unifLocs UniformCache
}

func (sp *ShaderProgram) AttachShader(shader Shader) {

	gl.AttachShader(sp.Id, shader.Id)
	switch shader.Type {
	case ShaderType_Vertex:
		sp.VertShaderId = shader.Id
	case ShaderType_Fragment:
		sp.FragShaderId = shader.Id
	case ShaderType_Geometry:
		sp.GeomShaderId = shader.Id
	default:
		logging.ErrLog.Fatalf("Unknown shader type '%d' for shader id '%d'\n", shader.Type, shader.Id)
	}
}

// Link links the attached shaders and then deletes them, as they are no longer needed
func (sp *ShaderProgram) Link() error {

	if sp.VertShaderId == 0 {
		return errors.New("no vertex shader attached to shader program")
	}

	if sp.FragShaderId == 0 {
		return errors.New("no fragment shader attached to shader program")
	}

	gl.LinkProgram(sp.Id)
	err := getProgramLinkErrors(sp.Id)

	sp.deleteAttachedShaders()
	if err != nil {
		return err
	}

	gl.ValidateProgram(sp.Id)
	return nil
}

func (sp *ShaderProgram) deleteAttachedShaders() {

	if sp.VertShaderId != 0 {
		gl.DeleteShader(sp.VertShaderId)
		sp.VertShaderId = 0
	}

	if sp.FragShaderId != 0 {
		gl.DeleteShader(sp.FragShaderId)
		sp.FragShaderId = 0
	}

	if sp.GeomShaderId != 0 {
		gl.DeleteShader(sp.GeomShaderId)
		sp.GeomShaderId = 0
	}
}

func (sp *ShaderProgram) Bind() {
	gl.UseProgram(sp.Id)
}

func (sp *ShaderProgram) UnBind() {
	gl.UseProgram(0)
}

func (sp *ShaderProgram) Delete() {
	gl.DeleteProgram(sp.Id)
	sp.Id = 0
	sp.unifLocs.Reset()
}

// Reload recompiles the program from its file. On failure the current program is kept as is.
func (sp *ShaderProgram) Reload() error {

	if sp.Path == "" {
		return errors.New("shader program has no path to reload from")
	}

	newProg, err := LoadAndCompileCombinedShader(sp.Path)
	if err != nil {
		return err
	}

	gl.DeleteProgram(sp.Id)
	sp.Id = newProg.Id
	sp.unifLocs.Reset()

	logging.InfoLog.Infof("Reloaded shader '%s' (new program id %d)\n", sp.Path, sp.Id)
	return nil
}

func (sp *ShaderProgram) GetUnifLoc(uniformName string) int32 {
	return sp.unifLocs.Get(sp.Id, uniformName)
}

func (sp *ShaderProgram) SetUnifInt32(uniformName string, val int32) {
	gl.ProgramUniform1i(sp.Id, sp.GetUnifLoc(uniformName), val)
	glerr.Check("glProgramUniform1i " + uniformName)
}

func (sp *ShaderProgram) SetUnifFloat32(uniformName string, val float32) {
	gl.ProgramUniform1f(sp.Id, sp.GetUnifLoc(uniformName), val)
	glerr.Check("glProgramUniform1f " + uniformName)
}

func (sp *ShaderProgram) SetUnif4f(uniformName string, v0, v1, v2, v3 float32) {
	gl.ProgramUniform4f(sp.Id, sp.GetUnifLoc(uniformName), v0, v1, v2, v3)
	glerr.Check("glProgramUniform4f " + uniformName)
}

func (sp *ShaderProgram) SetUnifVec2(uniformName string, vec2 *gglm.Vec2) {
	gl.ProgramUniform2fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec2.Data[0])
	glerr.Check("glProgramUniform2fv " + uniformName)
}

func (sp *ShaderProgram) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {
	gl.ProgramUniform3fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec3.Data[0])
	glerr.Check("glProgramUniform3fv " + uniformName)
}

func (sp *ShaderProgram) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {
	gl.ProgramUniform4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, &vec4.Data[0])
	glerr.Check("glProgramUniform4fv " + uniformName)
}

func (sp *ShaderProgram) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {
	gl.ProgramUniformMatrix4fv(sp.Id, sp.GetUnifLoc(uniformName), 1, false, &mat4.Data[0][0])
	glerr.Check("glProgramUniformMatrix4fv " + uniformName)
}
