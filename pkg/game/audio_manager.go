package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 按资源ID播放音效和背景音乐
//
// 音量与开关来自 SettingsManager（为 nil 时使用 DefaultSettings）。
// 播放器在首次使用时通过 ResourceManager 加载并缓存；
// 加载失败的ID会被记住，之后静默跳过，日志只警告一次。
//
// 同一时间只有一首背景音乐，暂停时保留播放位置。
type AudioManager struct {
	loader   *ResourceManager
	settings *SettingsManager

	sounds  map[string]*audio.Player
	tracks  map[string]*audio.Player
	missing map[string]struct{}

	musicID string
	music   *audio.Player
}

// NewAudioManager 创建音频管理器，rm 和 sm 都可以为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		loader:   rm,
		settings: sm,
		sounds:   make(map[string]*audio.Player),
		tracks:   make(map[string]*audio.Player),
		missing:  make(map[string]struct{}),
	}
}

// mix 返回当前生效的音频设置
func (am *AudioManager) mix() *GameSettings {
	if am.settings == nil {
		return DefaultSettings()
	}
	return am.settings.GetSettings()
}

// PlaySound 从头播放一次音效，返回是否真正播放
func (am *AudioManager) PlaySound(soundID string) bool {
	mix := am.mix()
	if !mix.SoundEnabled {
		return false
	}

	player := am.player(am.sounds, soundID, am.loadSound)
	if player == nil {
		return false
	}
	player.SetVolume(mix.SoundVolume)
	restart(player, soundID)
	return true
}

// PlayMusic 切换到指定背景音乐并循环播放
// 目标音乐已在播放时什么也不做
func (am *AudioManager) PlayMusic(musicID string) bool {
	mix := am.mix()
	if !mix.MusicEnabled {
		return false
	}
	if musicID == am.musicID && am.music != nil && am.music.IsPlaying() {
		return true
	}

	am.StopMusic()
	player := am.player(am.tracks, musicID, am.loadTrack)
	if player == nil {
		return false
	}
	player.SetVolume(mix.MusicVolume)
	restart(player, musicID)

	am.musicID, am.music = musicID, player
	log.Debugf("[AudioManager] Music %s started at volume %.2f", musicID, mix.MusicVolume)
	return true
}

// StopMusic 停止并忘记当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.music == nil {
		return
	}
	am.music.Pause()
	am.musicID, am.music = "", nil
}

// PauseMusic 暂停当前背景音乐
func (am *AudioManager) PauseMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// ResumeMusic 从暂停位置继续播放当前背景音乐
func (am *AudioManager) ResumeMusic() {
	if am.music != nil && am.mix().MusicEnabled {
		am.music.Play()
	}
}

// SetMusicVolume 修改音乐音量并立即作用于已加载的音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	volume = clampVolume(volume)
	if am.settings != nil {
		am.settings.SetMusicVolume(volume)
	}
	for _, p := range am.tracks {
		p.SetVolume(volume)
	}
}

// SetSoundVolume 修改音效音量
func (am *AudioManager) SetSoundVolume(volume float64) {
	volume = clampVolume(volume)
	if am.settings != nil {
		am.settings.SetSoundVolume(volume)
	}
	for _, p := range am.sounds {
		p.SetVolume(volume)
	}
}

func (am *AudioManager) MusicVolume() float64 { return am.mix().MusicVolume }

func (am *AudioManager) SoundVolume() float64 { return am.mix().SoundVolume }

// PreloadSounds 提前加载音效，避免第一次碰撞时卡顿
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	ready := 0
	for _, id := range soundIDs {
		if am.player(am.sounds, id, am.loadSound) != nil {
			ready++
		}
	}
	log.Debugf("[AudioManager] %d/%d sounds ready", ready, len(soundIDs))
}

// player 从缓存取播放器，未命中时用 load 加载
func (am *AudioManager) player(cache map[string]*audio.Player, id string, load func(string) (*audio.Player, error)) *audio.Player {
	if p, ok := cache[id]; ok {
		return p
	}
	if _, bad := am.missing[id]; bad || am.loader == nil {
		return nil
	}

	p, err := load(id)
	if err != nil {
		am.missing[id] = struct{}{}
		log.Warnf("[AudioManager] %s unavailable: %v", id, err)
		return nil
	}
	cache[id] = p
	return p
}

func (am *AudioManager) loadSound(id string) (*audio.Player, error) {
	return am.loader.LoadSoundEffectByID(id)
}

func (am *AudioManager) loadTrack(id string) (*audio.Player, error) {
	return am.loader.LoadMusicByID(id)
}

func restart(p *audio.Player, id string) {
	if err := p.Rewind(); err != nil {
		log.Warnf("[AudioManager] Rewind %s: %v", id, err)
	}
	p.Play()
}
