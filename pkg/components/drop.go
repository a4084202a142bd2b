package components

import "github.com/decker502/gingerrain/pkg/types"

// DropComponent 标记实体为下落物
// 种类的图片、音效和生命值修正由 entities.DropCatalog 共享提供
type DropComponent struct {
	Kind types.DropKind
}
