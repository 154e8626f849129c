// Package opengl is the OpenGL 4.1 backend: shader program management,
// texture upload, and mesh buffer upload. Everything here must run on the
// main goroutine with a current GLFW context.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"tableau/math"
)

// Init loads the OpenGL function pointers and enables depth testing.
// Must be called once after the window context is made current, before any
// other call into this package.
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

// SetViewport resizes the OpenGL viewport.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color and depth buffers with the given background color.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Program is a linked shader program with a uniform location cache. It
// implements pipeline.ProgramState. Uniform setters require the program to
// be active; callers Use() once per frame before pushing state.
type Program struct {
	id        uint32
	locations map[string]int32
}

// NewSceneProgram compiles and links the built-in scene shaders and seeds
// a neutral material so untagged draws are lit sensibly.
func NewSceneProgram() (*Program, error) {
	p, err := NewProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	p.Use()
	p.SetVec3("material.diffuseColor", math.NewVec3(1, 1, 1))
	p.SetVec3("material.specularColor", math.NewVec3(1, 1, 1))
	p.SetFloat("material.shininess", 32)
	p.SetVec2("UVscale", 1, 1)
	return p, nil
}

// NewProgram compiles and links a program from null-terminated GLSL sources.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	prog, err := newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{
		id:        prog,
		locations: make(map[string]int32),
	}, nil
}

// Use makes this program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete frees the GPU program object.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// location resolves and caches a uniform location. A name the linker
// optimized away resolves to -1, which the gl.Uniform* calls ignore.
func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.locations[name] = loc
	return loc
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.location(name), i)
}

func (p *Program) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

func (p *Program) SetVec2(name string, x, y float32) {
	gl.Uniform2f(p.location(name), x, y)
}

func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.location(name), v.X, v.Y, v.Z)
}

func (p *Program) SetVec4(name string, x, y, z, w float32) {
	gl.Uniform4f(p.location(name), x, y, z, w)
}

func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, (*float32)(unsafe.Pointer(&m[0][0])))
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
