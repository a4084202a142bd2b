package entities

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownDropKind 目录中没有该种类的定义
var ErrUnknownDropKind = errors.New("unknown drop kind")

// Droppable 一种下落物的共享只读定义
// 同一种类的所有下落物实体共用同一份 Droppable
type Droppable struct {
	Kind          types.DropKind
	Image         *ebiten.Image // 无头模式下为 nil
	Width, Height float64       // 图片尺寸，同时是碰撞盒尺寸
	LifeModifier  int           // 碰撞时对玩家生命值的修正
	SoundID       string        // 碰撞音效资源ID
}

// ImageLoader 按资源ID加载图片（game.ResourceManager 实现）
type ImageLoader interface {
	LoadImageByID(resourceID string) (*ebiten.Image, error)
}

// ImageSizer 按资源ID读取图片尺寸，不创建 GPU 图片（game.ResourceManager 实现）
type ImageSizer interface {
	ImageSizeByID(resourceID string) (int, int, error)
}

// DropCatalog 下落物目录，启动时构建一次，之后只读
type DropCatalog struct {
	entries map[types.DropKind]*Droppable
}

// NewDropCatalog 根据配置加载每个种类的图片并构建目录
func NewDropCatalog(cfg *config.DroppablesConfig, loader ImageLoader) (*DropCatalog, error) {
	return buildCatalog(cfg, func(imageID string) (*ebiten.Image, float64, float64, error) {
		img, err := loader.LoadImageByID(imageID)
		if err != nil {
			return nil, 0, 0, err
		}
		b := img.Bounds()
		return img, float64(b.Dx()), float64(b.Dy()), nil
	})
}

// NewHeadlessDropCatalog 只读取图片尺寸构建目录（Image 为 nil）
// 用于无头模拟和测试
func NewHeadlessDropCatalog(cfg *config.DroppablesConfig, sizer ImageSizer) (*DropCatalog, error) {
	return buildCatalog(cfg, func(imageID string) (*ebiten.Image, float64, float64, error) {
		w, h, err := sizer.ImageSizeByID(imageID)
		if err != nil {
			return nil, 0, 0, err
		}
		return nil, float64(w), float64(h), nil
	})
}

func buildCatalog(cfg *config.DroppablesConfig, resolve func(imageID string) (*ebiten.Image, float64, float64, error)) (*DropCatalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid droppables config: %w", err)
	}

	c := &DropCatalog{entries: make(map[types.DropKind]*Droppable, len(cfg.Droppables))}
	for _, d := range cfg.Droppables {
		img, w, h, err := resolve(d.ImageID)
		if err != nil {
			return nil, fmt.Errorf("failed to load image %s for %s: %w", d.ImageID, d.Kind, err)
		}
		c.entries[d.Kind] = &Droppable{
			Kind:         d.Kind,
			Image:        img,
			Width:        w,
			Height:       h,
			LifeModifier: d.LifeModifier,
			SoundID:      d.SoundID,
		}
		log.Debugf("[DropCatalog] %s: %.0fx%.0f life %+d sound %s", d.Kind, w, h, d.LifeModifier, d.SoundID)
	}
	return c, nil
}

// Get 返回种类定义
func (c *DropCatalog) Get(kind types.DropKind) (*Droppable, error) {
	d, ok := c.entries[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDropKind, kind)
	}
	return d, nil
}

// SoundIDs 返回所有种类的音效ID（按种类顺序），用于预加载
func (c *DropCatalog) SoundIDs() []string {
	ids := make([]string, 0, len(c.entries))
	for _, k := range types.AllDropKinds() {
		if d, ok := c.entries[k]; ok {
			ids = append(ids, d.SoundID)
		}
	}
	return ids
}
