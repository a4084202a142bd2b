// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在游戏区域左下角，Y轴向上（玩法逻辑全部使用世界坐标）
//   - **屏幕坐标**：原点在窗口左上角，Y轴向下（Ebitengine 绘制和指针输入）
//   - **实体锚点**：PositionComponent 表示实体包围盒的左下角
//   - **图片锚点**：左上角（Ebiten 默认行为）
//
// # 核心转换公式
//
//	screenX = worldX
//	screenY = viewportHeight - worldY - height   // 绘制高度为 height 的图片
//	worldY  = viewportHeight - screenY           // 指针反投影
package utils

// Camera 正交摄像机，负责世界坐标与屏幕坐标的转换
// 逻辑屏幕尺寸由 Layout 固定，因此只需要翻转Y轴
type Camera struct {
	ViewportWidth  float64
	ViewportHeight float64
}

// NewCamera 创建覆盖整个游戏区域的摄像机
func NewCamera(viewportWidth, viewportHeight float64) *Camera {
	return &Camera{
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
}

// Project 将世界坐标中的点转换为屏幕坐标
func (c *Camera) Project(worldX, worldY float64) (float64, float64) {
	return worldX, c.ViewportHeight - worldY
}

// ProjectRect 计算左下角锚点、高度为 height 的矩形在屏幕上的左上角
// 用于绘制图片和填充矩形
func (c *Camera) ProjectRect(worldX, worldY, height float64) (float64, float64) {
	return worldX, c.ViewportHeight - worldY - height
}

// Unproject 将屏幕坐标（指针位置）转换为世界坐标
func (c *Camera) Unproject(screenX, screenY int) (float64, float64) {
	return float64(screenX), c.ViewportHeight - float64(screenY)
}
