package game

import (
	"path"
	"strings"
)

// ResourceKind 资源的种类，决定默认扩展名和加载方式
type ResourceKind int

const (
	KindImage ResourceKind = iota
	KindSound
)

func (k ResourceKind) String() string {
	if k == KindSound {
		return "sound"
	}
	return "image"
}

// defaultExt 路径没有扩展名时补上的扩展名
func (k ResourceKind) defaultExt() string {
	if k == KindSound {
		return ".au"
	}
	return ".png"
}

// ResourceConfig 对应 assets/config/resources.yaml
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  init:
//	    images:
//	      - id: IMAGE_RAINDROP
//	        path: images/raindrop
//	    sounds:
//	      - id: SOUND_DROP
//	        path: sounds/drop
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup 一起加载的一组资源
type ResourceGroup struct {
	Images []ResourceEntry `yaml:"images"`
	Sounds []ResourceEntry `yaml:"sounds"`
}

// ResourceEntry 资源表中的一项，Path 相对于 base_path
type ResourceEntry struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// Resource 解析后的资源：种类和完整文件路径
type Resource struct {
	ID   string
	Kind ResourceKind
	Path string
}

// index 展开所有分组，得到 ID -> Resource
// 同一ID出现多次时后出现的覆盖前面的
func (c *ResourceConfig) index() map[string]Resource {
	out := make(map[string]Resource)
	add := func(entries []ResourceEntry, kind ResourceKind) {
		for _, e := range entries {
			out[e.ID] = Resource{
				ID:   e.ID,
				Kind: kind,
				Path: withDefaultExt(joinBase(c.BasePath, e.Path), kind.defaultExt()),
			}
		}
	}
	for _, g := range c.Groups {
		add(g.Images, KindImage)
		add(g.Sounds, KindSound)
	}
	return out
}

// IDs 返回分组内的全部ID，图片在前
func (g ResourceGroup) IDs() []string {
	ids := make([]string, 0, len(g.Images)+len(g.Sounds))
	for _, e := range g.Images {
		ids = append(ids, e.ID)
	}
	for _, e := range g.Sounds {
		ids = append(ids, e.ID)
	}
	return ids
}

// joinBase 拼接 fs 路径（fs.FS 只接受不带前导斜杠的路径）
func joinBase(base, rel string) string {
	return path.Join(base, strings.TrimPrefix(rel, "/"))
}

func withDefaultExt(p, ext string) string {
	if path.Ext(p) != "" {
		return p
	}
	return p + ext
}
