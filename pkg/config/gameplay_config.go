package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// GameplayConfig 游戏玩法参数配置
// 对应 data/gameplay.yaml
type GameplayConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"` // 游戏区域尺寸

	// FallSpeed 下落速度（世界单位/秒），所有种类共用
	FallSpeed float64 `yaml:"fallSpeed"`

	// SpawnIntervalSeconds 生成间隔（秒）
	// 距离上次生成超过该间隔才会再次生成
	SpawnIntervalSeconds float64 `yaml:"spawnIntervalSeconds"`

	Spawn  SpawnChanceConfig `yaml:"spawn"`  // 生成概率
	Player PlayerConfig      `yaml:"player"` // 玩家参数

	// RestartBounds "Restart" 按钮点击区域（世界坐标）
	RestartBounds RectConfig `yaml:"restartBounds"`

	// MusicID 背景音乐资源ID（循环播放）
	MusicID string `yaml:"musicID"`

	// BackgroundImageID 背景图片资源ID
	BackgroundImageID string `yaml:"backgroundImageID"`
}

// PlayfieldConfig 游戏区域尺寸（世界单位）
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnChanceConfig 生成概率配置
//
// 每项都是一次独立的百分比判定：rand.Intn(100) <= percent
// 因此实际概率略高于字面值（例如 5 表示 6/100）
type SpawnChanceConfig struct {
	SugarPercent          int `yaml:"sugarPercent"`          // 糖滴
	LargeRaindropPercent  int `yaml:"largeRaindropPercent"`  // 大雨滴（糖滴判定失败后）
	JellybeanBonusPercent int `yaml:"jellybeanBonusPercent"` // 大雨滴伴随软糖豆
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	MaxLife int     `yaml:"maxLife"` // 最大生命值（同时是初始生命值）
	Y       float64 `yaml:"y"`       // 固定Y坐标
	Speed   float64 `yaml:"speed"`   // 追随指针的水平速度（世界单位/秒）
	ImageID string  `yaml:"imageID"` // 玩家图片资源ID
}

// RectConfig 轴对齐矩形（左下角 + 宽高）
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Contains 检查点是否在矩形内（含边界）
func (r RectConfig) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// DefaultGameplayConfig 返回默认玩法配置
// 生成间隔沿用原版的 1 毫秒（即几乎每帧生成一次）
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Playfield: PlayfieldConfig{
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		FallSpeed:            200,
		SpawnIntervalSeconds: 0.001,
		Spawn: SpawnChanceConfig{
			SugarPercent:          5,
			LargeRaindropPercent:  1,
			JellybeanBonusPercent: 5,
		},
		Player: PlayerConfig{
			MaxLife: 100,
			Y:       20,
			Speed:   200,
			ImageID: "IMAGE_GINGERMAN",
		},
		RestartBounds:     RectConfig{X: 10, Y: 240, Width: 300, Height: 40},
		MusicID:           "SOUND_CRANKDANCE",
		BackgroundImageID: "IMAGE_BACKGROUND",
	}
}

// LoadGameplayConfig 从文件系统加载玩法配置
// 文件中缺失的字段保留默认值
func LoadGameplayConfig(fsys fs.FS, path string) (*GameplayConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", path, err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 解析 YAML 数据并校验
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置的有效性
func (c *GameplayConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("playfield size must be positive, got %.0fx%.0f", c.Playfield.Width, c.Playfield.Height)
	}
	if c.FallSpeed <= 0 {
		return fmt.Errorf("fallSpeed must be > 0, got %f", c.FallSpeed)
	}
	if c.SpawnIntervalSeconds <= 0 {
		return fmt.Errorf("spawnIntervalSeconds must be > 0, got %f", c.SpawnIntervalSeconds)
	}

	percents := map[string]int{
		"spawn.sugarPercent":          c.Spawn.SugarPercent,
		"spawn.largeRaindropPercent":  c.Spawn.LargeRaindropPercent,
		"spawn.jellybeanBonusPercent": c.Spawn.JellybeanBonusPercent,
	}
	for name, p := range percents {
		if p < -1 || p > 100 {
			return fmt.Errorf("%s must be between -1 and 100, got %d", name, p)
		}
	}

	if c.Player.MaxLife < 1 {
		return fmt.Errorf("player.maxLife must be >= 1, got %d", c.Player.MaxLife)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be > 0, got %f", c.Player.Speed)
	}
	if c.Player.Y < 0 || c.Player.Y >= c.Playfield.Height {
		return fmt.Errorf("player.y must be inside the playfield, got %f", c.Player.Y)
	}
	if c.Player.ImageID == "" {
		return fmt.Errorf("player.imageID cannot be empty")
	}
	if c.RestartBounds.Width <= 0 || c.RestartBounds.Height <= 0 {
		return fmt.Errorf("restartBounds size must be positive")
	}

	return nil
}
