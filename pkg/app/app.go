// Package app 组装游戏：加载配置和资源，创建场景，实现 ebiten.Game
//
// 桌面端（main.go）和移动端（mobile/）都通过 NewApp 启动；
// 无头模拟 Simulate 复用同一套配置加载和场景逻辑。
package app

import (
	"fmt"
	"image/color"
	"io/fs"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/embedded"
	"github.com/decker502/gingerrain/pkg/entities"
	"github.com/decker502/gingerrain/pkg/game"
	"github.com/decker502/gingerrain/pkg/scenes"
	"github.com/decker502/gingerrain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/gofont/goregular"
)

// audioSampleRate 音频上下文采样率，所有音效都重采样到这个频率
const audioSampleRate = 48000

// windowResetDelay 退出全屏后等待窗口管理器的帧数
const windowResetDelay = 3

// Config 启动参数
type Config struct {
	Verbose    bool
	Seed       int64 // 下落物随机种子，0 表示用当前时间
	Mute       bool
	Fullscreen bool

	// 非 nil 时覆盖 settings.yaml 里的音量
	MusicVolume *float64
	SoundVolume *float64
}

// App 实现 ebiten.Game
type App struct {
	scenes *game.SceneManager

	// 退出全屏后还要等待的帧数，0 表示不需要恢复窗口大小
	resizeIn int
}

// NewApp 加载全部资源并进入游戏场景
// 调用前必须先 embedded.Init
func NewApp(cfg Config) (*App, error) {
	ConfigureLogging(cfg.Verbose)
	if !embedded.IsInitialized() {
		return nil, embedded.ErrNotInitialized
	}
	fsys := embedded.FS()

	data, err := LoadGameData(fsys)
	if err != nil {
		return nil, err
	}

	rm, err := newResourceManager(fsys, audio.NewContext(audioSampleRate))
	if err != nil {
		return nil, err
	}
	if err := rm.LoadResourceGroup("init"); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}

	settings := loadSettings(fsys, cfg)
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	sc, err := desktopSceneConfig(data, rm, settings)
	if err != nil {
		return nil, err
	}
	sc.Rand = newRand(cfg.Seed)

	scene, err := scenes.NewGameScene(sc)
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	manager := game.NewSceneManager()
	manager.SwitchTo(scene)
	log.Infof("[App] Started on %s", utils.PlatformName())
	return &App{scenes: manager}, nil
}

// loadSettings 读取 data/settings.yaml 并应用命令行参数
// 文件损坏时继续使用默认设置
func loadSettings(fsys fs.FS, cfg Config) *game.SettingsManager {
	var sm *game.SettingsManager
	if dataFS, err := fs.Sub(fsys, DataDir); err == nil {
		sm, _ = game.NewSettingsManager(dataFS)
	} else {
		sm, _ = game.NewSettingsManager(nil)
	}
	if cfg.Mute {
		sm.Mute()
	}
	if cfg.Fullscreen {
		sm.SetFullscreen(true)
	}
	if cfg.MusicVolume != nil {
		sm.SetMusicVolume(*cfg.MusicVolume)
	}
	if cfg.SoundVolume != nil {
		sm.SetSoundVolume(*cfg.SoundVolume)
	}
	return sm
}

// desktopSceneConfig 准备有窗口和音频时场景需要的全部依赖
func desktopSceneConfig(data *GameData, rm *game.ResourceManager, settings *game.SettingsManager) (scenes.GameSceneConfig, error) {
	catalog, err := entities.NewDropCatalog(data.Droppables, rm)
	if err != nil {
		return scenes.GameSceneConfig{}, fmt.Errorf("下落物目录构建失败: %w", err)
	}

	sounds := game.NewAudioManager(rm, settings)
	sounds.PreloadSounds(catalog.SoundIDs())

	player, err := playerSprite(rm, data.Gameplay.Player.ImageID, false)
	if err != nil {
		return scenes.GameSceneConfig{}, err
	}

	background, err := rm.LoadImageByID(data.Gameplay.BackgroundImageID)
	if err != nil {
		return scenes.GameSceneConfig{}, fmt.Errorf("背景图片加载失败: %w", err)
	}

	font, err := game.NewFontFace(goregular.TTF, config.HUDFontSize)
	if err != nil {
		log.Warnf("[App] HUD font unavailable, using debug text: %v", err)
	}

	return scenes.GameSceneConfig{
		Gameplay:   data.Gameplay,
		Catalog:    catalog,
		Input:      utils.NewEbitenInput(),
		Player:     player,
		Background: background,
		Font:       font,
		Audio:      sounds,
	}, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("[App] RNG seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

// Update 每个 tick 调用一次（DefaultTPS 次/秒）
func (a *App) Update() error {
	a.handleFullscreenToggle()
	a.scenes.Update(1.0 / float64(config.DefaultTPS))
	return nil
}

// handleFullscreenToggle F11 切换全屏
// 退出全屏时窗口管理器需要几帧才能接受新的窗口大小
func (a *App) handleFullscreenToggle() {
	if a.resizeIn > 0 {
		a.resizeIn--
		if a.resizeIn == 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Debugf("[App] Window restored to %dx%d", config.GameWindowWidth, config.GameWindowHeight)
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if !ebiten.IsFullscreen() {
		ebiten.SetFullscreen(true)
		return
	}
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	a.resizeIn = windowResetDelay
}

func (a *App) Draw(screen *ebiten.Image) {
	a.scenes.Draw(screen)
}

// DrawFinalScreen 全屏时两侧留黑边并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{GeoM: geoM, Filter: ebiten.FilterLinear}
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑分辨率固定，缩放由 Ebitengine 处理
func (a *App) Layout(_, _ int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Shutdown 在 ebiten.RunGame 返回后调用，停止背景音乐
func (a *App) Shutdown() {
	a.scenes.Shutdown()
}
