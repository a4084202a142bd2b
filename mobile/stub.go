//go:build !mobile

// 桌面端构建时 mobile 包只有这个文件，保证 go build ./... 和 go vet ./... 可以通过
package mobile

// Dummy 与 -tags mobile 构建时导出的符号一致
func Dummy() {}
