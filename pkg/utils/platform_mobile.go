//go:build mobile

package utils

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时返回 true
func IsMobile() bool {
	return true
}

// PlatformName 返回当前平台名称（用于启动日志）
func PlatformName() string {
	return "mobile"
}
