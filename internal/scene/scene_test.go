package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPropellerAnimation(t *testing.T) {
	Convey("Given a fresh propeller animation", t, func() {
		var a Animation
		So(a.Phase(), ShouldEqual, float32(0))

		Convey("One tick moves the phase by one step", func() {
			a.Advance()
			So(a.Phase(), ShouldEqual, float32(PhaseStep))
			So(a.Degrees(), ShouldAlmostEqual, 18, 1e-4)
		})

		Convey("Twenty ticks return the phase to exactly zero", func() {
			for i := 0; i < 20; i++ {
				a.Advance()
			}
			So(a.Phase(), ShouldEqual, float32(0))
		})

		Convey("The phase never decreases except on wraparound", func() {
			prev := a.Phase()
			wraps := 0
			for i := 0; i < 100; i++ {
				a.Advance()
				cur := a.Phase()
				if cur < prev {
					wraps++
					So(cur, ShouldEqual, float32(0))
				}
				So(cur, ShouldBeLessThan, float32(1))
				prev = cur
			}
			So(wraps, ShouldEqual, 5)
		})

	})
}

func TestToggles(t *testing.T) {
	Convey("Given the default scene", t, func() {
		s := New(DefaultConfig())
		So(s.Wireframe, ShouldBeTrue)
		So(s.Fullscreen, ShouldBeFalse)
		So(s.SeaAndSky, ShouldBeFalse)

		Convey("Toggling wireframe twice restores the fill mode", func() {
			So(s.Apply(ActionToggleWireframe), ShouldEqual, EffectNone)
			So(s.Wireframe, ShouldBeFalse)
			s.Apply(ActionToggleWireframe)
			So(s.Wireframe, ShouldBeTrue)
		})

		Convey("Toggling sea and sky twice restores the backdrop", func() {
			So(s.Apply(ActionToggleSeaAndSky), ShouldEqual, EffectNone)
			So(s.SeaAndSky, ShouldBeTrue)
			s.Apply(ActionToggleSeaAndSky)
			So(s.SeaAndSky, ShouldBeFalse)
		})

		Convey("Toggling fullscreen asks for a window mode change each time", func() {
			So(s.Apply(ActionToggleFullscreen), ShouldEqual, EffectWindowMode)
			So(s.Fullscreen, ShouldBeTrue)
			So(s.Apply(ActionToggleFullscreen), ShouldEqual, EffectWindowMode)
			So(s.Fullscreen, ShouldBeFalse)
		})

		Convey("Quit changes nothing but asks to quit", func() {
			So(s.Apply(ActionQuit), ShouldEqual, EffectQuit)
			So(s.Wireframe, ShouldBeTrue)
			So(s.SeaAndSky, ShouldBeFalse)
		})

		Convey("No action leaves the state alone", func() {
			So(s.Apply(ActionNone), ShouldEqual, EffectNone)
			So(s.Wireframe, ShouldBeTrue)
		})
	})
}

func TestKeyBindings(t *testing.T) {
	Convey("Keys map to their actions", t, func() {
		So(ActionForKey('f'), ShouldEqual, ActionToggleFullscreen)
		So(ActionForKey('w'), ShouldEqual, ActionToggleWireframe)
		So(ActionForKey('s'), ShouldEqual, ActionToggleSeaAndSky)
		So(ActionForKey('q'), ShouldEqual, ActionQuit)
	})

	Convey("Only q quits", t, func() {
		for r := rune(0); r < 128; r++ {
			if r == 'q' {
				continue
			}
			So(ActionForKey(r), ShouldNotEqual, ActionQuit)
		}
	})

	Convey("Controls text lists every binding", t, func() {
		text := ControlsText()
		So(text, ShouldStartWith, "Scene Controls")
		for _, b := range Bindings {
			So(text, ShouldContainSubstring, b.Description)
		}
	})
}

func TestResize(t *testing.T) {
	Convey("Given a scene", t, func() {
		s := New(DefaultConfig())

		Convey("The initial projection matches the window", func() {
			p := s.Projection()
			So(p.Aspect, ShouldEqual, float32(1))
			So(p.FovY, ShouldEqual, float32(45))
			So(p.Near, ShouldEqual, float32(0.1))
			So(p.Far, ShouldEqual, float32(40000))
		})

		Convey("Resizing rebuilds the projection regardless of history", func() {
			s.Resize(300, 900)
			s.Resize(1600, 400)
			first := s.ProjectionMatrix()
			s.Resize(1600, 400)
			So(s.ProjectionMatrix(), ShouldResemble, first)

			p := s.Projection()
			So(p.Aspect, ShouldEqual, float32(4))
			So(p.FovY, ShouldEqual, float32(45))
			w, h := s.Viewport()
			So(w, ShouldEqual, 1600)
			So(h, ShouldEqual, 400)
		})
	})
}

func TestTransforms(t *testing.T) {
	Convey("Given the default scene", t, func() {
		s := New(DefaultConfig())

		Convey("The plane origin sits at its world position", func() {
			p := mgl32.TransformCoordinate(mgl32.Vec3{}, s.PlaneTransform())
			So(p.ApproxEqual(mgl32.Vec3{3, 0.5, 3}), ShouldBeTrue)
		})

		Convey("The plane is turned 45 degrees about the vertical", func() {
			m := s.PlaneTransform()
			dir := m.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
			So(dir.Y(), ShouldAlmostEqual, 0, 1e-6)
			So(dir.X(), ShouldAlmostEqual, 0.70710677, 1e-5)
			So(dir.Z(), ShouldAlmostEqual, 0.70710677, 1e-5)
		})

		Convey("Each propeller spins about its own hub", func() {
			hubLocal := mgl32.Vec3{0, -0.15, 0.35}
			before := s.PropellerTransforms()
			for i := 0; i < 7; i++ {
				s.Tick()
			}
			after := s.PropellerTransforms()

			for i := range before {
				want := s.PlanePosition.Add(PropellerOffsets[i])
				So(mgl32.TransformCoordinate(hubLocal, before[i]).ApproxEqualThreshold(want, 1e-5), ShouldBeTrue)
				So(mgl32.TransformCoordinate(hubLocal, after[i]).ApproxEqualThreshold(want, 1e-5), ShouldBeTrue)
			}
		})

		Convey("A full revolution brings the propellers back", func() {
			start := s.PropellerTransforms()
			for i := 0; i < 20; i++ {
				s.Tick()
			}
			So(s.PropellerTransforms(), ShouldResemble, start)
		})
	})
}
