// Package embedded 把根目录 embed.go 中嵌入的文件以一个 fs.FS 提供出来
//
// go:embed 只能嵌入所在包目录下的文件，所以 embed.FS 声明在 main 包，
// 启动时通过 Init 交给本包。路径按第一段前缀分发：
// "assets/..." 读图片和音效，"data/..." 读玩法配置。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init 之前访问文件
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

const (
	assetsPrefix = "assets"
	dataPrefix   = "data"
)

var mounts map[string]fs.FS

// Init 注册两个文件系统，它们都以仓库根目录为根
func Init(assets, data fs.FS) {
	mounts = map[string]fs.FS{
		assetsPrefix: assets,
		dataPrefix:   data,
	}
}

// OverrideData 替换 data/ 的来源（--config-dir）
func OverrideData(data fs.FS) {
	if mounts != nil {
		mounts[dataPrefix] = data
	}
}

func IsInitialized() bool {
	return mounts != nil
}

// resolve 清理路径并找到负责它的文件系统
func resolve(name string) (fs.FS, string, error) {
	if mounts == nil {
		return nil, "", ErrNotInitialized
	}
	name = strings.TrimPrefix(filepath.ToSlash(name), "./")
	prefix, _, _ := strings.Cut(name, "/")
	fsys, ok := mounts[prefix]
	if !ok || prefix == name {
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", name)
	}
	return fsys, name, nil
}

// Open 打开 assets/ 或 data/ 下的文件
func Open(name string) (fs.File, error) {
	fsys, name, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取 assets/ 或 data/ 下的文件
func ReadFile(name string) ([]byte, error) {
	fsys, name, err := resolve(name)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

func Exists(name string) bool {
	f, err := Open(name)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

// FS 返回按前缀分发的只读文件系统，交给 ResourceManager 和配置加载器
func FS() fs.FS {
	return router{}
}

type router struct{}

func (router) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return Open(name)
}

func (router) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return ReadFile(name)
}
