package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

const dataPrefix = "data/"

// configDirFS 把磁盘目录叠加在嵌入的数据文件之上
// data/gameplay.yaml 优先读取 dir/gameplay.yaml，不存在时使用嵌入版本
func configDirFS(dir string, fallback fs.FS) fs.FS {
	return overlayFS{disk: os.DirFS(dir), fallback: fallback}
}

type overlayFS struct {
	disk     fs.FS
	fallback fs.FS
}

// Open 实现 fs.FS
func (o overlayFS) Open(name string) (fs.File, error) {
	if rel, ok := strings.CutPrefix(name, dataPrefix); ok {
		f, err := o.disk.Open(rel)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return f, err
		}
	}
	return o.fallback.Open(name)
}
