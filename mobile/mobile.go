//go:build mobile

// Package mobile 是 ebitenmobile 绑定的入口
//
// 构建 Android .aar 或 iOS .xcframework：
//
//	make build-android
//	make build-ios
//
// 这两个目标会先执行 prepare-mobile，把 assets/ 和 data/ 复制到本目录供 embed.go 嵌入。
package mobile

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/gingerrain/pkg/app"
	"github.com/decker502/gingerrain/pkg/embedded"
)

func init() {
	embedded.Init(assetsFS, dataFS)

	// 移动端没有命令行，日志输出到 logcat/Xcode 控制台
	game, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("[Mobile] Start failed: %v", err)
	}
	mobile.SetGame(game)
}

// Dummy 让 ebitenmobile 能找到一个导出符号
func Dummy() {}
