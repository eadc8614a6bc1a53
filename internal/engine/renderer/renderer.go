// Package renderer provides OpenGL rendering of the flight scene.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/flightsim/internal/engine/backdrop"
	"github.com/Faultbox/flightsim/internal/engine/model"
	"github.com/Faultbox/flightsim/internal/engine/renderer/shaders"
	"github.com/Faultbox/flightsim/internal/engine/shader"
	"github.com/Faultbox/flightsim/internal/logger"
	"github.com/Faultbox/flightsim/internal/scene"
)

// Uniforms set on the scene program.
const (
	uProjection    = "uProjection"
	uModelView     = "uModelView"
	uNormalMatrix  = "uNormalMatrix"
	uLightPos      = "uLightPos"
	uLightAmbient  = "uLightAmbient"
	uLightDiffuse  = "uLightDiffuse"
	uLightSpecular = "uLightSpecular"
	uGlobalAmbient = "uGlobalAmbient"
	uTwoSided      = "uTwoSided"
	uFogEnabled    = "uFogEnabled"
	uFogColor      = "uFogColor"
	uFogDensity    = "uFogDensity"
)

// sceneUniforms lists every uniform the renderer sets.
var sceneUniforms = []string{
	uProjection, uModelView, uNormalMatrix,
	uLightPos, uLightAmbient, uLightDiffuse, uLightSpecular, uGlobalAmbient, uTwoSided,
	uFogEnabled, uFogColor, uFogDensity,
}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program

	// Models
	plane     *Drawable
	propeller *Drawable

	// Backdrop
	grid   *Drawable
	axes   *Drawable
	marker *Drawable
	sky    *Drawable
	sea    *Drawable

	// Widest axis line the context supports, up to backdrop.AxisLineWidth
	axisWidth float32

	// Per-frame matrices
	projection mgl32.Mat4
	view       mgl32.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Forward-compatible contexts (macOS) reject any width above 1
	var lineRange [2]float32
	var flags int32
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &lineRange[0])
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	forwardCompatible := flags&gl.CONTEXT_FLAG_FORWARD_COMPATIBLE_BIT != 0
	r.axisWidth = clampLineWidth(backdrop.AxisLineWidth, lineRange, forwardCompatible)
	if r.axisWidth < backdrop.AxisLineWidth {
		logger.Info("axis line width limited by driver",
			zap.Float32("requested", backdrop.AxisLineWidth),
			zap.Float32("used", r.axisWidth),
		)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.Compile(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene shader: %w", err)
	}

	r.grid = NewDrawable("grid", backdrop.Grid())
	r.axes = NewDrawable("axes", backdrop.Axes())
	r.marker = NewDrawable("marker", backdrop.Marker())
	r.sky = NewDrawable("sky", backdrop.Sky())
	r.sea = NewDrawable("sea", backdrop.Sea())

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// SetModels uploads the plane and propeller meshes. Empty meshes give
// drawables that render nothing.
func (r *Renderer) SetModels(plane, propeller *model.Mesh) {
	r.plane.Close()
	r.propeller.Close()
	r.plane = NewDrawable("plane", plane)
	r.propeller = NewDrawable("propeller", propeller)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for _, d := range []*Drawable{r.plane, r.propeller, r.grid, r.axes, r.marker, r.sky, r.sea} {
		d.Close()
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Render draws one frame of s. The caller presents it.
func (r *Renderer) Render(s *scene.State) {
	// 1. Clear
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	// 2. Camera
	r.projection = s.ProjectionMatrix()
	r.view = s.ViewMatrix()

	r.program.Use()
	r.program.SetMat4(uProjection, r.projection)

	// 3. Light, in eye space before any model transform
	r.setLight(s)
	r.program.SetBool(uFogEnabled, false)

	// 4. Backdrop, then 5-6. models; all follow the wireframe toggle
	mode := DrawFilled
	if s.Wireframe {
		mode = DrawOutline
	}
	if s.SeaAndSky {
		r.drawSeaAndSky(s, mode)
	} else {
		r.drawReferenceGrid(mode)
	}

	r.setModel(s.PlaneTransform())
	r.plane.Draw(mode)

	for _, m := range s.PropellerTransforms() {
		r.setModel(m)
		r.propeller.Draw(mode)
	}

	gl.UseProgram(0)
}

func (r *Renderer) setLight(s *scene.State) {
	p := r.program
	p.SetVec4(uLightPos, s.Light.EyePosition(r.view))
	p.SetVec3(uLightAmbient, s.Light.Ambient)
	p.SetVec3(uLightDiffuse, s.Light.Diffuse)
	p.SetVec3(uLightSpecular, s.Light.Specular)
	p.SetVec3(uGlobalAmbient, s.LightModel.GlobalAmbient)
	p.SetBool(uTwoSided, s.LightModel.TwoSided)
}

// setModel uploads the model-view and normal matrices for a model transform.
func (r *Renderer) setModel(m mgl32.Mat4) {
	modelView := r.view.Mul4(m)
	normal := modelView.Mat3().Inv().Transpose()
	r.program.SetMat4(uModelView, modelView)
	r.program.SetMat3(uNormalMatrix, normal)
}

func (r *Renderer) drawSeaAndSky(s *scene.State, mode DrawMode) {
	r.setModel(backdrop.EnclosureTransform())
	r.sky.Draw(mode)

	// Fog covers the sea only
	r.program.SetBool(uFogEnabled, true)
	r.program.SetVec3(uFogColor, s.Fog.Color)
	r.program.SetFloat(uFogDensity, s.Fog.Density)
	r.sea.Draw(mode)
	r.program.SetBool(uFogEnabled, false)
}

func (r *Renderer) drawReferenceGrid(mode DrawMode) {
	gl.LineWidth(1)
	r.setModel(mgl32.Ident4())
	r.grid.Draw(mode)

	r.setModel(backdrop.AxesTransform())
	gl.LineWidth(r.axisWidth)
	r.axes.Draw(DrawLines)
	gl.LineWidth(1)
	r.marker.Draw(mode)
}

// clampLineWidth limits width to the [min, max] line width range a context
// reports. Forward-compatible contexts and empty ranges get 1.
func clampLineWidth(width float32, supported [2]float32, forwardCompatible bool) float32 {
	lo, hi := supported[0], supported[1]
	if forwardCompatible || hi < 1 || hi < lo {
		return 1
	}
	if lo < 1 {
		lo = 1
	}
	return mgl32.Clamp(width, lo, hi)
}
