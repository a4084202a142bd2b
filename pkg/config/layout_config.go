package config

// 布局配置常量
// 所有坐标使用"世界坐标系"：原点在游戏区域左下角，Y轴向上
// 渲染时由 utils.Camera 转换为屏幕坐标（原点左上角，Y轴向下）
const (
	// GameWindowWidth 是逻辑屏幕宽度（像素），与游戏区域宽度一致
	GameWindowWidth = 800

	// GameWindowHeight 是逻辑屏幕高度（像素），与游戏区域高度一致
	GameWindowHeight = 480

	// DefaultTPS 是默认逻辑帧率（Ebitengine 以固定帧率调用 Update）
	DefaultTPS = 60
)

// HUD 文本位置（世界坐标，文本基线左端）
const (
	// RestartTextX, RestartTextY 是 "Restart" 按钮文字的位置
	RestartTextX = 10.0
	RestartTextY = 300.0

	// StatusTextX, StatusTextY 是生命值/结算文字的位置
	StatusTextX = 25.0
	StatusTextY = 400.0

	// HUDFontSize 是 HUD 字号
	HUDFontSize = 36.0
)

// 生命条配置
const (
	// LifeBarOffsetY 是生命条相对玩家顶部的垂直间距
	LifeBarOffsetY = 6.0

	// LifeBarHeight 是生命条高度
	LifeBarHeight = 8.0
)
