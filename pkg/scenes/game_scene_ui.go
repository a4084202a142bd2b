package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 文字
const (
	RestartText = "Restart"
	PausedText  = "Paused"
)

// 暂停时覆盖在画面上的半透明遮罩
var pauseOverlayColor = color.RGBA{R: 0, G: 0, B: 0, A: 96}

// StatusText 返回状态栏文字
//
//	Running/Paused: "Crashes :  <生命值>"
//	GameOver:       "Game Over ! Your Time: <秒> s"
func (s *GameScene) StatusText() string {
	if s.session.IsGameOver() {
		return fmt.Sprintf("Game Over ! Your Time: %d s", s.session.ElapsedSeconds())
	}
	return fmt.Sprintf("Crashes :  %d", s.PlayerLife())
}

// Draw 绘制游戏场景
// 绘制顺序：背景 → 下落物和玩家 → 生命条 → HUD 文字
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)
	s.renderSystem.Draw(screen)

	if s.session.State() == game.StatePaused {
		s.drawPauseOverlay(screen)
	}

	s.drawText(screen, RestartText, config.RestartTextX, config.RestartTextY)
	s.drawText(screen, s.StatusText(), config.StatusTextX, config.StatusTextY)
}

// drawBackground 以游戏区域左下角为锚点绘制背景
func (s *GameScene) drawBackground(screen *ebiten.Image) {
	if s.background == nil {
		screen.Fill(color.RGBA{R: 40, G: 48, B: 72, A: 255})
		return
	}
	height := float64(s.background.Bounds().Dy())
	sx, sy := s.camera.ProjectRect(0, 0, height)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(s.background, op)
}

func (s *GameScene) drawPauseOverlay(screen *ebiten.Image) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), pauseOverlayColor, false)

	if s.font == nil {
		ebitenutil.DebugPrintAt(screen, PausedText, b.Dx()/2-20, b.Dy()/2)
		return
	}
	width, _ := text.Measure(PausedText, s.font, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-width)/2, float64(b.Dy())/2-s.font.Size/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, PausedText, s.font, op)
}

// drawText 在世界坐标 (x, y) 处绘制文字，y 为文字顶端
func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y float64) {
	sx, sy := s.camera.Project(x, y)

	if s.font == nil {
		// Fallback: 字体加载失败时使用调试文字
		ebitenutil.DebugPrintAt(screen, str, int(sx), int(sy))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(sx, sy)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, str, s.font, op)
}
