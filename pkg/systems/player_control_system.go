package systems

import (
	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/decker502/gingerrain/pkg/utils"
)

// PlayerControlSystem 让玩家水平追随指针
//
// 指针按下时开启追随；追随期间玩家以固定速度向指针的世界X坐标移动，
// 越过目标时停在目标上；位置与目标相同时停止追随。
// 每帧最后把玩家限制在 [0, 游戏区域宽度 - 玩家宽度] 内。
type PlayerControlSystem struct {
	em             *ecs.EntityManager
	input          InputSource
	camera         *utils.Camera
	speed          float64
	playfieldWidth float64
}

// NewPlayerControlSystem 创建玩家控制系统
func NewPlayerControlSystem(em *ecs.EntityManager, input InputSource, camera *utils.Camera, speed, playfieldWidth float64) *PlayerControlSystem {
	return &PlayerControlSystem{
		em:             em,
		input:          input,
		camera:         camera,
		speed:          speed,
		playfieldWidth: playfieldWidth,
	}
}

// SetCamera 替换摄像机（重新开始时会重建摄像机）
func (s *PlayerControlSystem) SetCamera(camera *utils.Camera) {
	s.camera = camera
}

// Update 更新玩家位置
func (s *PlayerControlSystem) Update(deltaTime float64) {
	players := ecs.GetEntitiesWith2[*components.PlayerComponent, *components.PositionComponent](s.em)
	if len(players) == 0 {
		return
	}
	id := players[0]
	player, _ := ecs.GetComponent[*components.PlayerComponent](s.em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

	pressed, sx, sy := s.input.PointerState()
	if pressed {
		player.Tracking = true
	}

	if player.Tracking {
		targetX, _ := s.camera.Unproject(sx, sy)
		step := s.speed * deltaTime

		switch {
		case pos.X < targetX:
			pos.X += step
			if pos.X > targetX {
				pos.X = targetX
			}
		case pos.X > targetX:
			pos.X -= step
			if pos.X < targetX {
				pos.X = targetX
			}
		default:
			player.Tracking = false
		}
	}

	width := 0.0
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
		width = col.Width
	}
	if pos.X > s.playfieldWidth-width {
		pos.X = s.playfieldWidth - width
	}
	if pos.X < 0 {
		pos.X = 0
	}
}
