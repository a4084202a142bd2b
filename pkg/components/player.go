package components

// PlayerComponent 标记实体为玩家（姜饼人）
type PlayerComponent struct {
	// Tracking 是否正在追随指针
	// 指针按下时开启，到达目标位置后关闭
	Tracking bool
}
