package components

import "github.com/hajimehoshi/ebiten/v2"

// 绘制层级，数值大的后绘制
const (
	LayerDrop   = 0
	LayerPlayer = 1
)

// SpriteComponent 存储实体的视觉表现
// 图片以实体包围盒左下角为锚点绘制（渲染时由摄像机翻转Y轴）
// Image 可以为 nil（无头模拟和测试中不加载图片）
type SpriteComponent struct {
	Image *ebiten.Image
	Layer int
}
