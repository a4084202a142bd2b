package app

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/entities"
	"github.com/decker502/gingerrain/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 数据文件路径（相对于资源文件系统根目录）
const (
	ResourceConfigPath = "assets/config/resources.yaml"
	GameplayConfigPath = "data/gameplay.yaml"
	DroppablesPath     = "data/droppables.yaml"
	DataDir            = "data"
)

// ConfigureLogging 设置全局日志级别
// verbose 时输出调试日志，否则只输出警告和错误
func ConfigureLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.WarnLevel)
}

// GameData 启动时从数据目录加载的配置
type GameData struct {
	Gameplay   *config.GameplayConfig
	Droppables *config.DroppablesConfig
}

// LoadGameData 加载并校验玩法配置和下落物目录
func LoadGameData(fsys fs.FS) (*GameData, error) {
	gameplay, err := config.LoadGameplayConfig(fsys, GameplayConfigPath)
	if err != nil {
		return nil, fmt.Errorf("玩法配置加载失败: %w", err)
	}

	droppables, err := config.LoadDroppablesConfig(fsys, DroppablesPath)
	if err != nil {
		return nil, fmt.Errorf("下落物目录加载失败: %w", err)
	}

	log.Debugf("[Config] Loaded %s and %s (%d droppables)", GameplayConfigPath, DroppablesPath, len(droppables.Droppables))
	return &GameData{Gameplay: gameplay, Droppables: droppables}, nil
}

// newResourceManager 创建资源管理器并加载资源表
// audioContext 为 nil 时只能读取图片
func newResourceManager(fsys fs.FS, audioContext *audio.Context) (*game.ResourceManager, error) {
	rm := game.NewResourceManager(fsys, audioContext)
	if err := rm.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	return rm, nil
}

// playerSprite 读取玩家图片
// headless 时只读取尺寸，不创建 GPU 图片
func playerSprite(rm *game.ResourceManager, imageID string, headless bool) (entities.PlayerSprite, error) {
	if headless {
		w, h, err := rm.ImageSizeByID(imageID)
		if err != nil {
			return entities.PlayerSprite{}, fmt.Errorf("玩家图片读取失败: %w", err)
		}
		return entities.PlayerSprite{Width: float64(w), Height: float64(h)}, nil
	}

	img, err := rm.LoadImageByID(imageID)
	if err != nil {
		return entities.PlayerSprite{}, fmt.Errorf("玩家图片加载失败: %w", err)
	}
	b := img.Bounds()
	return entities.PlayerSprite{Image: img, Width: float64(b.Dx()), Height: float64(b.Dy())}, nil
}
