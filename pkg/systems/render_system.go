package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/royale/pkg/components"
	"github.com/decker502/royale/pkg/config"
	"github.com/decker502/royale/pkg/ecs"
)

// 弹道线宽度
const tracerWidth = 2.0

// RectCommand 一个纯色矩形的绘制指令
type RectCommand struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA
}

// RenderSystem 绘制竞技场中的实体
//
// 绘制顺序：安全区圆环、武器、战斗单位（含血条）、弹道线。
// 矩形的布局与实际绘制分离，布局部分不依赖图形设备。
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 将所有实体绘制到屏幕
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawZone(screen)

	for _, r := range s.BuildRects() {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), r.Color, false)
	}

	s.drawTracers(screen)
}

// BuildRects 按绘制顺序生成武器与战斗单位的矩形
func (s *RenderSystem) BuildRects() []RectCommand {
	em := s.entityManager
	rects := make([]RectCommand, 0)

	for _, id := range ecs.GetEntitiesWith3[*components.WeaponPickupComponent, *components.PositionComponent, *components.ShapeComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)
		rects = append(rects, RectCommand{X: pos.X, Y: pos.Y, Width: shape.Size, Height: shape.Size, Color: shape.Color})
	}

	for _, id := range ecs.GetEntitiesWith3[*components.CollisionComponent, *components.PositionComponent, *components.ShapeComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		shape, _ := ecs.GetComponent[*components.ShapeComponent](em, id)

		rects = append(rects, RectCommand{X: pos.X, Y: pos.Y, Width: col.Width, Height: col.Height, Color: shape.Color})

		if !shape.ShowHealthBar {
			continue
		}
		health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
		if !ok {
			continue
		}

		// 血条：红色底，绿色按生命比例填充
		barY := pos.Y - config.HealthBarOffsetY
		rects = append(rects, RectCommand{X: pos.X, Y: barY, Width: col.Width, Height: config.HealthBarHeight, Color: config.ColorHealthBack})
		if fill := col.Width * health.Ratio(); fill > 0 {
			rects = append(rects, RectCommand{X: pos.X, Y: barY, Width: fill, Height: config.HealthBarHeight, Color: config.ColorHealthFill})
		}
	}

	return rects
}

func (s *RenderSystem) drawZone(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.ZoneComponent](s.entityManager) {
		zone, _ := ecs.GetComponent[*components.ZoneComponent](s.entityManager, id)
		vector.StrokeCircle(screen, float32(zone.CenterX), float32(zone.CenterY), float32(zone.CurrentRadius),
			config.ZoneRingWidth, config.ColorZoneRing, true)
	}
}

func (s *RenderSystem) drawTracers(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.TracerComponent](s.entityManager) {
		tracer, _ := ecs.GetComponent[*components.TracerComponent](s.entityManager, id)
		vector.StrokeLine(screen, float32(tracer.FromX), float32(tracer.FromY), float32(tracer.ToX), float32(tracer.ToY),
			tracerWidth, tracer.Color, true)
	}
}
