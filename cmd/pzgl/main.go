// Command pzgl displays a single image in a glfw window, deriving the GL
// projection from a viewer.Viewer each frame.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"os"
	"runtime"
	"strings"

	"dasa.cc/pz/viewer"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const title = "pzgl"

var flagMargin = flag.Float64("margin", 1, "breathing room factor when fitting, 1 is an exact fit")

func init() {
	runtime.LockOSThread()
	log.SetPrefix(title + ": ")
}

var state struct {
	view    viewer.Viewer
	content image.Point

	cursor   [2]float32
	dragging bool
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] image\n", title)
		os.Exit(1)
	}

	rgba, err := decode(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	state.content = rgba.Bounds().Size()

	window, terminate := surface()
	defer terminate()

	prog := program(vsrc, fsrc)
	gl.UseProgram(prog)
	uproj := gl.GetUniformLocation(prog, gl.Str("proj\x00"))

	quad(state.content)
	upload(rgba)

	fw, fh := window.GetFramebufferSize()
	state.view = viewer.New(viewer.Pt(float32(fw), float32(fh)))
	refit()

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		state.view = state.view.Resize(viewer.Pt(float32(width), float32(height)))
	})
	window.SetCursorPosCallback(cursorPos)
	window.SetMouseButtonCallback(mouseButton)
	window.SetScrollCallback(scroll)
	window.SetKeyCallback(keyInput)

	gl.ClearColor(0.15, 0.2, 0.22, 1)
	for !window.ShouldClose() {
		gl.Clear(gl.COLOR_BUFFER_BIT)
		m := ortho(state.view)
		gl.UniformMatrix4fv(uproj, 1, false, &m[0])
		gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))
		window.SwapBuffers()
		glfw.WaitEvents()
	}
}

func surface() (window *glfw.Window, terminate func()) {
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(800, 600, title, nil, nil)
	if err != nil {
		panic(err)
	}

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		panic(err)
	}

	width, height := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))

	return window, glfw.Terminate
}

func refit() {
	state.view = state.view.Fit(float32(*flagMargin), viewer.Pt(float32(state.content.X), float32(state.content.Y)))
}

// cursorPt converts window coordinates to framebuffer pixels; the two differ
// on scaled displays.
func cursorPt(w *glfw.Window, x, y float64) [2]float32 {
	ww, wh := w.GetSize()
	fw, fh := w.GetFramebufferSize()
	return [2]float32{float32(x) * float32(fw) / float32(ww), float32(y) * float32(fh) / float32(wh)}
}

func cursorPos(w *glfw.Window, x, y float64) {
	p := cursorPt(w, x, y)
	if state.dragging {
		state.view = state.view.Pan(viewer.Pt(p[0]-state.cursor[0], p[1]-state.cursor[1]))
	}
	state.cursor = p
}

func mouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button == glfw.MouseButtonLeft {
		state.dragging = action == glfw.Press
	}
}

func scroll(_ *glfw.Window, _, yoff float64) {
	ip := state.view.At(viewer.Pt(state.cursor[0], state.cursor[1]))
	if yoff > 0 {
		state.view = state.view.ZoomToward(ip)
	} else if yoff < 0 {
		state.view = state.view.ZoomAwayFrom(ip)
	}
}

func keyInput(w *glfw.Window, k glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Release {
		return
	}
	switch k {
	case glfw.KeyR:
		refit()
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	}
}

// ortho maps the visible image-space window to clip space, y down.
func ortho(v viewer.Viewer) [16]float32 {
	min, max := v.At(viewer.Pt(0, 0)), v.At(v.Size)
	l, r := min[0], max[0]
	t, b := min[1], max[1]
	return [16]float32{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -1, 0,
		-(r + l) / (r - l), -(t + b) / (t - b), 0, 1,
	}
}

// quad uploads a content-sized rectangle in image-space coordinates.
func quad(size image.Point) {
	w, h := float32(size.X), float32(size.Y)
	vertices := []float32{
		0, 0, 0, 0,
		w, 0, 1, 0,
		w, h, 1, 1,
		0, h, 0, 1,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(vertices), gl.Ptr(vertices), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 4*len(indices), gl.Ptr(indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 16, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 16, gl.PtrOffset(8))
}

func upload(rgba *image.RGBA) {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	size := rgba.Bounds().Size()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
}

func decode(name string) (*image.RGBA, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("image.Decode: %s", err)
	}
	if rgba, ok := m.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(m.Bounds())
	draw.Draw(rgba, rgba.Bounds(), m, m.Bounds().Min, draw.Src)
	return rgba, nil
}

func compile(typ uint32, src string) uint32 {
	shd := gl.CreateShader(typ)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shd, 1, csrc, nil)
	free()
	gl.CompileShader(shd)

	var status int32
	gl.GetShaderiv(shd, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shd, gl.INFO_LOG_LENGTH, &n)
		info := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shd, n, nil, gl.Str(info))
		log.Fatalf("CompileShader: %s", info)
	}
	return shd
}

func program(vertex, fragment string) uint32 {
	prog := gl.CreateProgram()
	gl.AttachShader(prog, compile(gl.VERTEX_SHADER, vertex))
	gl.AttachShader(prog, compile(gl.FRAGMENT_SHADER, fragment))
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &n)
		info := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prog, n, nil, gl.Str(info))
		log.Fatalf("LinkProgram: %s", info)
	}
	return prog
}

const (
	vsrc = `#version 410
uniform mat4 proj;
layout(location = 0) in vec2 vertex;
layout(location = 1) in vec2 texcoord;
out vec2 vtexcoord;
void main() {
  gl_Position = proj*vec4(vertex, 0, 1);
  vtexcoord = texcoord;
}`

	fsrc = `#version 410
uniform sampler2D sampler;
in vec2 vtexcoord;
out vec4 fragcolor;
void main() {
  fragcolor = texture(sampler, vtexcoord);
}`
)
