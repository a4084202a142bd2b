package game

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// SettingsFile 数据目录里的可选设置文件
const SettingsFile = "settings.yaml"

// GameSettings 音频和显示设置
// 运行时的修改只保存在内存里
type GameSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"` // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"` // 启动时全屏
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// normalize 把音量限制到 0.0 ~ 1.0
func (s *GameSettings) normalize() {
	s.MusicVolume = clampVolume(s.MusicVolume)
	s.SoundVolume = clampVolume(s.SoundVolume)
}

// SettingsManager 持有当前设置
type SettingsManager struct {
	current *GameSettings
}

// NewSettingsManager 创建设置管理器，并从 fsys 读取 settings.yaml
//
// fsys 为 nil 或文件不存在时使用默认设置。
// 文件无法解析时仍返回可用的管理器（默认设置），同时返回错误。
func NewSettingsManager(fsys fs.FS) (*SettingsManager, error) {
	sm := &SettingsManager{current: DefaultSettings()}
	if fsys == nil {
		return sm, nil
	}
	if err := sm.Load(fsys); err != nil {
		log.Warnf("[SettingsManager] %v, falling back to defaults", err)
		return sm, err
	}
	return sm, nil
}

// Load 读取 settings.yaml，文件里缺失的字段保留默认值
// 出错时当前设置重置为默认值
func (sm *SettingsManager) Load(fsys fs.FS) error {
	sm.current = DefaultSettings()

	raw, err := fs.ReadFile(fsys, SettingsFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("read %s: %w", SettingsFile, err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(raw, loaded); err != nil {
		return fmt.Errorf("parse %s: %w", SettingsFile, err)
	}
	loaded.normalize()
	sm.current = loaded

	log.Debugf("[SettingsManager] music=%.2f(%v) sound=%.2f(%v)",
		loaded.MusicVolume, loaded.MusicEnabled, loaded.SoundVolume, loaded.SoundEnabled)
	return nil
}

// GetSettings 返回当前设置（可直接修改）
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.current
}

func (sm *SettingsManager) SetMusicVolume(v float64) { sm.current.MusicVolume = clampVolume(v) }

func (sm *SettingsManager) SetSoundVolume(v float64) { sm.current.SoundVolume = clampVolume(v) }

func (sm *SettingsManager) SetMusicEnabled(on bool) { sm.current.MusicEnabled = on }

func (sm *SettingsManager) SetSoundEnabled(on bool) { sm.current.SoundEnabled = on }

func (sm *SettingsManager) SetFullscreen(on bool) { sm.current.Fullscreen = on }

// Mute 关闭音乐和音效（--mute）
func (sm *SettingsManager) Mute() {
	sm.SetMusicEnabled(false)
	sm.SetSoundEnabled(false)
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
