// gingerrain 是一个下落物躲避街机游戏：姜饼人躲开雨滴，收集糖滴和软糖豆。
//
// Usage:
//
//	gingerrain               - 启动游戏窗口
//	gingerrain simulate      - 无头运行游戏循环并输出统计
//	gingerrain validate      - 检查配置与资源是否一致
//
// Global flags:
//
//	--verbose          - 输出调试日志
//	--seed <value>     - 随机种子（0 = 使用当前时间）
//	--config-dir <dir> - 从磁盘目录读取 gameplay.yaml 等数据文件
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/app"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagVerbose   bool
	flagSeed      int64
	flagConfigDir string

	// Play flags
	flagMute        bool
	flagFullscreen  bool
	flagMusicVolume float64
	flagSoundVolume float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gingerrain",
	Short: "Gingerrain - dodge the rain, catch the sugar",
	Long: `Gingerrain is a small falling-drop arcade game.

Drag or hold the pointer to move the gingerman. Raindrops and large
raindrops cost life, sugar drops and jellybeans restore it.

Controls:
  Mouse/Touch  - Move toward the pointer
  P/Esc        - Pause
  R / Restart  - Restart
  - / =        - Volume down / up
  F11          - Toggle fullscreen`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		app.ConfigureLogging(flagVerbose)
		embedded.Init(assetsFS, dataFS)
		if flagConfigDir != "" {
			if _, err := os.Stat(flagConfigDir); err != nil {
				return fmt.Errorf("config dir: %w", err)
			}
			embedded.OverrideData(configDirFS(flagConfigDir, dataFS))
			log.Infof("[Main] Using data files from %s", flagConfigDir)
		}
		return nil
	},
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory containing gameplay.yaml, droppables.yaml and settings.yaml")

	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music and sound effects")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen mode")
	rootCmd.Flags().Float64Var(&flagMusicVolume, "music-volume", 0.7, "Music volume 0.0-1.0 (overrides settings.yaml)")
	rootCmd.Flags().Float64Var(&flagSoundVolume, "sound-volume", 0.8, "Sound effect volume 0.0-1.0 (overrides settings.yaml)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(validateCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	gameApp, err := app.NewApp(app.Config{
		Verbose:     flagVerbose,
		Seed:        flagSeed,
		Mute:        flagMute,
		Fullscreen:  flagFullscreen,
		MusicVolume: volumeOverride(cmd, "music-volume", flagMusicVolume),
		SoundVolume: volumeOverride(cmd, "sound-volume", flagSoundVolume),
	})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Gingerrain")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.DefaultTPS)

	return ebiten.RunGame(gameApp)
}

// volumeOverride 只有显式给出的音量参数才覆盖 settings.yaml
func volumeOverride(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
