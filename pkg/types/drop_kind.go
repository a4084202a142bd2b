// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// DropKind 定义下落物的种类
// 种类集合是封闭的，新增种类需要同时更新 AllDropKinds 和 ParseDropKind
type DropKind int

const (
	// DropUnknown 未知种类
	DropUnknown DropKind = iota
	// DropRaindrop 普通雨滴（有害）
	DropRaindrop
	// DropLargeRaindrop 大雨滴（有害，扣血更多）
	DropLargeRaindrop
	// DropSugar 糖滴（有益）
	DropSugar
	// DropJellybean 软糖豆（奖励掉落，伴随大雨滴出现）
	DropJellybean
)

// AllDropKinds 返回全部有效种类，顺序固定
func AllDropKinds() []DropKind {
	return []DropKind{DropRaindrop, DropLargeRaindrop, DropSugar, DropJellybean}
}

// String 返回种类的字符串表示（与配置文件中的键一致）
func (k DropKind) String() string {
	switch k {
	case DropRaindrop:
		return "raindrop"
	case DropLargeRaindrop:
		return "large_raindrop"
	case DropSugar:
		return "sugar"
	case DropJellybean:
		return "jellybean"
	default:
		return "unknown"
	}
}

// ParseDropKind 将配置键解析为 DropKind
func ParseDropKind(s string) (DropKind, error) {
	for _, k := range AllDropKinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return DropUnknown, fmt.Errorf("unknown drop kind: %q", s)
}

// MarshalText 实现 encoding.TextMarshaler，便于 YAML 直接使用种类名
func (k DropKind) MarshalText() ([]byte, error) {
	if k == DropUnknown {
		return nil, fmt.Errorf("cannot marshal unknown drop kind")
	}
	return []byte(k.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (k *DropKind) UnmarshalText(text []byte) error {
	parsed, err := ParseDropKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
