//go:build mobile

package mobile

import "embed"

// 由 make prepare-mobile 从仓库根目录复制而来

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/gameplay.yaml data/droppables.yaml data/settings.yaml
var dataFS embed.FS
