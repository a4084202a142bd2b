package config

import (
	"fmt"
	"io/fs"

	"github.com/decker502/gingerrain/pkg/types"
	"gopkg.in/yaml.v3"
)

// DroppableConfig 单个下落物种类的静态定义
type DroppableConfig struct {
	Kind         types.DropKind `yaml:"kind"`         // 种类
	ImageID      string         `yaml:"imageID"`      // 图片资源ID（尺寸决定碰撞盒）
	SoundID      string         `yaml:"soundID"`      // 碰撞音效资源ID
	LifeModifier int            `yaml:"lifeModifier"` // 碰撞时对玩家生命值的修正（负数为伤害）
}

// DroppablesConfig 下落物目录配置
// 对应 data/droppables.yaml
type DroppablesConfig struct {
	Droppables []DroppableConfig `yaml:"droppables"`
}

// DefaultDroppablesConfig 返回内置的下落物目录
func DefaultDroppablesConfig() *DroppablesConfig {
	return &DroppablesConfig{
		Droppables: []DroppableConfig{
			{Kind: types.DropRaindrop, ImageID: "IMAGE_RAINDROP", SoundID: "SOUND_DROP", LifeModifier: -1},
			{Kind: types.DropLargeRaindrop, ImageID: "IMAGE_RAINDROP_LARGE", SoundID: "SOUND_DROP_LARGE", LifeModifier: -3},
			{Kind: types.DropSugar, ImageID: "IMAGE_SUGARDROP", SoundID: "SOUND_SUGAR", LifeModifier: 1},
			{Kind: types.DropJellybean, ImageID: "IMAGE_JELLYBEAN", SoundID: "SOUND_JELLYBEAN", LifeModifier: 2},
		},
	}
}

// LoadDroppablesConfig 从文件系统加载下落物目录
func LoadDroppablesConfig(fsys fs.FS, path string) (*DroppablesConfig, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read droppables config %s: %w", path, err)
	}
	return ParseDroppablesConfig(data)
}

// ParseDroppablesConfig 解析 YAML 数据并校验
func ParseDroppablesConfig(data []byte) (*DroppablesConfig, error) {
	var cfg DroppablesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse droppables YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid droppables config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证目录完整且无重复
// 每个种类必须恰好定义一次，生成器可能产生任意种类
func (c *DroppablesConfig) Validate() error {
	seen := make(map[types.DropKind]bool, len(c.Droppables))
	for i, d := range c.Droppables {
		if d.Kind == types.DropUnknown {
			return fmt.Errorf("droppables[%d]: kind is required", i)
		}
		if seen[d.Kind] {
			return fmt.Errorf("droppables[%d]: duplicate kind %s", i, d.Kind)
		}
		seen[d.Kind] = true

		if d.ImageID == "" {
			return fmt.Errorf("droppables[%d] (%s): imageID cannot be empty", i, d.Kind)
		}
		if d.SoundID == "" {
			return fmt.Errorf("droppables[%d] (%s): soundID cannot be empty", i, d.Kind)
		}
	}

	for _, k := range types.AllDropKinds() {
		if !seen[k] {
			return fmt.Errorf("missing definition for drop kind %s", k)
		}
	}

	return nil
}

// Get 返回指定种类的定义
func (c *DroppablesConfig) Get(kind types.DropKind) (DroppableConfig, bool) {
	for _, d := range c.Droppables {
		if d.Kind == kind {
			return d, true
		}
	}
	return DroppableConfig{}, false
}
