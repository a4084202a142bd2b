package components

// CollisionComponent 定义实体的碰撞检测边界框
// 尺寸来自实体图片，边界框以 PositionComponent 为左下角
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Rect 轴对齐矩形（左下角 + 宽高）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Bounds 返回实体在世界坐标中的包围盒
func (c *CollisionComponent) Bounds(pos *PositionComponent) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: c.Width, Height: c.Height}
}

// Overlaps 检查两个矩形是否重叠
// 仅接触边界不算重叠
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains 检查点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}
