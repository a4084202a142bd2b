package main

import "embed"

// go:embed 只能嵌入本包目录下的文件，所以资源声明放在仓库根目录

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/gameplay.yaml data/droppables.yaml data/settings.yaml
var dataFS embed.FS
