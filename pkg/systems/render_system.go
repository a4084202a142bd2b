package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/decker502/gingerrain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 生命条颜色
var (
	lifeBarHigh = color.RGBA{R: 0x3c, G: 0xc8, B: 0x3c, A: 0xff} // > 60%
	lifeBarMid  = color.RGBA{R: 0xf0, G: 0xc8, B: 0x28, A: 0xff} // > 30%
	lifeBarLow  = color.RGBA{R: 0xdc, G: 0x32, B: 0x28, A: 0xff}
)

// RenderSystem 管理游戏世界实体的渲染
//
// 所有实体以 PositionComponent（包围盒左下角，世界坐标）为锚点，
// 由摄像机翻转到屏幕坐标后绘制。绘制顺序：下落物 → 玩家 → 生命条。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *utils.Camera
	order         []ecs.EntityID // 绘制顺序缓冲（复用，避免每帧分配）
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera *utils.Camera) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
	}
}

// SetCamera 替换摄像机（重新开始时会重建摄像机）
func (s *RenderSystem) SetCamera(camera *utils.Camera) {
	s.camera = camera
}

// Draw 绘制所有拥有位置和精灵组件的实体，以及玩家生命条
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.drawOrder() {
		s.drawEntity(screen, id)
	}

	for _, id := range ecs.GetEntitiesWith3[
		*components.PlayerComponent,
		*components.PositionComponent,
		*components.HealthComponent,
	](s.entityManager) {
		s.drawLifeBar(screen, id)
	}
}

// drawOrder 返回按层级排序的实体（同层按创建顺序）
func (s *RenderSystem) drawOrder() []ecs.EntityID {
	s.order = append(s.order[:0], ecs.GetEntitiesWith2[
		*components.PositionComponent,
		*components.SpriteComponent,
	](s.entityManager)...)

	sort.SliceStable(s.order, func(i, j int) bool {
		si, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.order[i])
		sj, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.order[j])
		return si.Layer < sj.Layer
	})
	return s.order
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if sprite.Image == nil {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	height := float64(sprite.Image.Bounds().Dy())
	sx, sy := s.camera.ProjectRect(pos.X, pos.Y, height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(sprite.Image, op)
}

// drawLifeBar 在玩家头顶绘制生命条，宽度与生命值成比例
func (s *RenderSystem) drawLifeBar(screen *ebiten.Image, id ecs.EntityID) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)

	var width, height float64
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
		width, height = col.Width, col.Height
	}

	rect := LifeBarRect(pos, width, height, health.Ratio())
	if rect.Width <= 0 {
		return
	}

	sx, sy := s.camera.ProjectRect(rect.X, rect.Y, rect.Height)
	vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(rect.Width), float32(rect.Height),
		LifeBarColor(health.Ratio()), false)
}

// LifeBarRect 返回生命条的世界坐标矩形（左下角锚点）
// 生命条位于玩家包围盒上方，满血时与玩家同宽
func LifeBarRect(pos *components.PositionComponent, playerWidth, playerHeight, ratio float64) components.Rect {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return components.Rect{
		X:      pos.X,
		Y:      pos.Y + playerHeight + config.LifeBarOffsetY,
		Width:  playerWidth * ratio,
		Height: config.LifeBarHeight,
	}
}

// LifeBarColor 按生命值占比返回生命条颜色
func LifeBarColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return lifeBarHigh
	case ratio > 0.3:
		return lifeBarMid
	default:
		return lifeBarLow
	}
}
