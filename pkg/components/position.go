package components

// PositionComponent 存储实体在世界坐标系中的位置
// 世界坐标原点在游戏区域左下角，Y轴向上
// (X, Y) 是实体包围盒的左下角
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体的速度（世界单位/秒）
// 下落物的 VY 为负数（向下）
type VelocityComponent struct {
	VX float64
	VY float64
}
