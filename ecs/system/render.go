package system

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pogo/ecs"
	"github.com/milk9111/pogo/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
	hudLineHeight       = 16
)

var (
	colorWorld  = cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
	colorPlayer = cp.FColor{R: 0.3, G: 0.6, B: 1, A: 0.9}
	colorPogo   = cp.FColor{R: 1, G: 0.8, B: 0.2, A: 1}
	colorInert  = cp.FColor{R: 0.6, G: 0.6, B: 0.6, A: 0.6}
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// RenderSystem draws every Chipmunk shape coloured by role, centred on the
// camera, plus a HUD line block. The world is Y-up; the screen is Y-down.
type RenderSystem struct {
	physics *PhysicsSystem
	Debug   bool
	Mode    string
}

func NewRenderSystem(physics *PhysicsSystem) *RenderSystem {
	return &RenderSystem{physics: physics}
}

func (rs *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if rs == nil || w == nil || screen == nil {
		return
	}
	space := rs.physics.Space()
	if space == nil {
		return
	}

	camX, camY, zoom := cameraView(w)
	bounds := screen.Bounds()
	drawer := &shapeDrawer{
		screen:  screen,
		camX:    camX,
		camY:    camY,
		zoom:    zoom,
		centerX: float64(bounds.Dx()) / 2,
		centerY: float64(bounds.Dy()) / 2,
		debug:   rs.Debug,
	}
	cp.DrawSpace(space, drawer)

	rs.drawHUD(w, screen)
}

func (rs *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	lines := []string{fmt.Sprintf("TPS: %.1f  mode: %s", ebiten.ActualTPS(), rs.Mode)}
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("pos: (%.1f, %.1f)  rot: %.2f", t.X, t.Y, t.Rotation))
	}
	if v, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("vel: (%.1f, %.1f)  |v|: %.1f", v.X, v.Y, math.Hypot(v.X, v.Y)))
	}
	if s, ok := ecs.Get(w, player, component.BounceStatsComponent.Kind()); ok {
		lines = append(lines, fmt.Sprintf("bounces: %d  last: %.1f", s.Count, s.LastSpeed))
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, float64(10+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, hudFace, op)
	}
}

func cameraView(w *ecs.World) (float64, float64, float64) {
	camX, camY := 0.0, 0.0
	zoom := 1.0
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return camX, camY, zoom
	}
	if camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	return camX, camY, zoom
}

type shapeDrawer struct {
	screen  *ebiten.Image
	camX    float64
	camY    float64
	zoom    float64
	centerX float64
	centerY float64
	debug   bool
}

func (d *shapeDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, fill)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, fill)
}

func (d *shapeDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *shapeDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
	if radius > 0 {
		d.drawCircle(a, radius, fill)
		d.drawCircle(b, radius, fill)
	}
}

func (d *shapeDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fill)
}

func (d *shapeDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *shapeDrawer) Flags() uint {
	if d.debug {
		return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
	}
	return cp.DRAW_SHAPES
}

func (d *shapeDrawer) OutlineColor() cp.FColor {
	return colorWorld
}

// ShapeColor picks the outline by role: pogo tip, other player shapes,
// inert shapes with no layers, and everything else.
func (d *shapeDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	owner, ok := shape.UserData.(ShapeOwner)
	if !ok {
		return colorWorld
	}
	switch {
	case owner.PogoStick:
		return colorPogo
	case owner.Layers == component.NoCollisionLayers():
		return colorInert
	case owner.Layers.ContainsGroup(component.LayerPlayer):
		return colorPlayer
	default:
		return colorWorld
	}
}

func (d *shapeDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *shapeDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *shapeDrawer) Data() interface{} {
	return nil
}

func (d *shapeDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	x1, y1 := d.toScreen(a)
	x2, y2 := d.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, toNRGBA(c), true)
}

func (d *shapeDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *shapeDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func (d *shapeDrawer) toScreen(v cp.Vector) (float64, float64) {
	return d.centerX + (v.X-d.camX)*d.zoom, d.centerY - (v.Y-d.camY)*d.zoom
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
