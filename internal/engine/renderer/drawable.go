package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/flightsim/internal/engine/model"
	"github.com/Faultbox/flightsim/internal/logger"
)

// DrawMode selects how a drawable's polygons are rasterized.
type DrawMode int

const (
	// DrawFilled fills each polygon.
	DrawFilled DrawMode = iota
	// DrawOutline traces each polygon's edges.
	DrawOutline
	// DrawLines draws consecutive vertex pairs as line segments.
	DrawLines
)

// Drawable is a mesh uploaded to the GPU, replayed every frame without
// resubmitting vertex data. A drawable built from an empty mesh draws nothing.
type Drawable struct {
	name   string
	vao    uint32
	vbo    uint32
	firsts []int32
	counts []int32
	total  int32
}

// NewDrawable uploads mesh to the GPU.
func NewDrawable(name string, mesh *model.Mesh) *Drawable {
	d := &Drawable{name: name}
	if mesh.Empty() {
		logger.Debug("empty drawable", zap.String("name", name))
		return d
	}

	data := mesh.Interleave()
	d.firsts = mesh.Firsts()
	d.counts = mesh.Counts()
	d.total = int32(mesh.CornerCount())

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(model.FloatsPerVertex * 4)
	attribs := []struct {
		size   int32
		offset int
	}{
		{3, 0},  // position
		{3, 3},  // normal
		{4, 6},  // diffuse
		{4, 10}, // ambient
		{4, 14}, // specular
		{1, 18}, // shininess
	}
	for i, a := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, gl.FLOAT, false, stride, uintptr(a.offset*4))
		gl.EnableVertexAttribArray(uint32(i))
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("drawable uploaded",
		zap.String("name", name),
		zap.Int("polygons", len(d.counts)),
		zap.Int32("vertices", d.total),
		zap.Uint32("vao", d.vao),
	)
	return d
}

// Empty reports whether the drawable has nothing to draw.
func (d *Drawable) Empty() bool {
	return d == nil || d.vao == 0
}

// Draw replays the drawable with the current program and uniforms.
func (d *Drawable) Draw(mode DrawMode) {
	if d.Empty() {
		return
	}

	gl.BindVertexArray(d.vao)
	switch mode {
	case DrawLines:
		gl.DrawArrays(gl.LINES, 0, d.total)
	case DrawOutline:
		gl.MultiDrawArrays(gl.LINE_LOOP, &d.firsts[0], &d.counts[0], int32(len(d.counts)))
	default:
		gl.MultiDrawArrays(gl.TRIANGLE_FAN, &d.firsts[0], &d.counts[0], int32(len(d.counts)))
	}
	gl.BindVertexArray(0)
}

// Close releases the GPU buffers.
func (d *Drawable) Close() {
	if d == nil {
		return
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
}
