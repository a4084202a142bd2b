package scenes

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/components"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/decker502/gingerrain/pkg/entities"
	"github.com/decker502/gingerrain/pkg/game"
	"github.com/decker502/gingerrain/pkg/systems"
	"github.com/decker502/gingerrain/pkg/types"
	"github.com/decker502/gingerrain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 暂停键、重新开始键和音量键
var (
	pauseKeys      = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	restartKeys    = []ebiten.Key{ebiten.KeyR}
	volumeDownKeys = []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}
	volumeUpKeys   = []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}
)

// VolumeStep 每次按音量键调整的音量
const VolumeStep = 0.1

// ErrMissingDependency 构造 GameScene 时缺少必需的依赖
var ErrMissingDependency = errors.New("game scene: missing dependency")

// AudioPlayer 场景使用的音频接口
// game.AudioManager 是运行时实现；为 nil 时场景静音运行
type AudioPlayer interface {
	systems.SoundPlayer
	PlayMusic(musicID string) bool
	PauseMusic()
	ResumeMusic()
	StopMusic()
	MusicVolume() float64
	SoundVolume() float64
	SetMusicVolume(volume float64)
	SetSoundVolume(volume float64)
}

// GameSceneConfig 创建 GameScene 所需的依赖
type GameSceneConfig struct {
	Gameplay *config.GameplayConfig // 玩法参数（必需）
	Catalog  *entities.DropCatalog  // 下落物目录（必需）
	Input    systems.InputSource    // 指针和键盘输入（必需）

	Player     entities.PlayerSprite // 玩家图片及尺寸
	Background *ebiten.Image         // 背景图片，可为 nil
	Font       *text.GoTextFace      // HUD 字体，为 nil 时使用调试文字
	Audio      AudioPlayer           // 音效和音乐，可为 nil
	Clock      game.Clock            // 为 nil 时使用系统时钟
	Rand       *rand.Rand            // 为 nil 时以当前时间为种子
}

// GameScene 游戏主场景
//
// 场景持有实体管理器、会话状态机和所有系统。每帧的处理顺序：
// 重新开始输入 → 暂停输入 → （仅 Running）玩家控制 → 生成 →
// 下落与过期 → 碰撞 → 清理已标记的实体。
type GameScene struct {
	cfg        *config.GameplayConfig
	catalog    *entities.DropCatalog
	input      systems.InputSource
	audio      AudioPlayer
	playerArt  entities.PlayerSprite
	background *ebiten.Image
	font       *text.GoTextFace

	entityManager *ecs.EntityManager
	session       *game.Session
	camera        *utils.Camera
	playerID      ecs.EntityID
	restarts      int

	// ECS Systems
	controlSystem   *systems.PlayerControlSystem
	spawnSystem     *systems.DropSpawnSystem
	movementSystem  *systems.DropMovementSystem
	collisionSystem *systems.CollisionSystem
	renderSystem    *systems.RenderSystem
}

// NewGameScene 创建游戏场景并开始第一局
// 会生成开局的第一个下落物，并开始循环播放背景音乐
func NewGameScene(sc GameSceneConfig) (*GameScene, error) {
	if sc.Gameplay == nil || sc.Catalog == nil || sc.Input == nil {
		return nil, ErrMissingDependency
	}
	if sc.Clock == nil {
		sc.Clock = game.SystemClock{}
	}
	if sc.Rand == nil {
		sc.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cfg := sc.Gameplay
	scene := &GameScene{
		cfg:           cfg,
		catalog:       sc.Catalog,
		input:         sc.Input,
		audio:         sc.Audio,
		playerArt:     sc.Player,
		background:    sc.Background,
		font:          sc.Font,
		entityManager: ecs.NewEntityManager(),
		session:       game.NewSession(sc.Clock),
		camera:        utils.NewCamera(cfg.Playfield.Width, cfg.Playfield.Height),
	}

	spawner := systems.NewDropSpawner(sc.Rand, cfg.Spawn, cfg.Playfield.Width)
	scene.controlSystem = systems.NewPlayerControlSystem(scene.entityManager, sc.Input, scene.camera, cfg.Player.Speed, cfg.Playfield.Width)
	scene.spawnSystem = systems.NewDropSpawnSystem(scene.entityManager, spawner, sc.Catalog, cfg)
	scene.movementSystem = systems.NewDropMovementSystem(scene.entityManager)
	scene.collisionSystem = systems.NewCollisionSystem(scene.entityManager, sc.Catalog, scene.soundPlayer())
	scene.collisionSystem.SetOnPlayerDefeated(scene.onPlayerDefeated)
	scene.renderSystem = systems.NewRenderSystem(scene.entityManager, scene.camera)

	scene.startRound()

	if scene.audio != nil && cfg.MusicID != "" {
		scene.audio.PlayMusic(cfg.MusicID)
	}

	log.Infof("[GameScene] Started (playfield %.0fx%.0f, life %d)", cfg.Playfield.Width, cfg.Playfield.Height, cfg.Player.MaxLife)
	return scene, nil
}

// soundPlayer 返回碰撞系统使用的音效播放器
// 避免把 nil 的 AudioPlayer 包装成非 nil 接口
func (s *GameScene) soundPlayer() systems.SoundPlayer {
	if s.audio == nil {
		return nil
	}
	return s.audio
}

// startRound 重建玩家并生成开局的第一个下落物
func (s *GameScene) startRound() {
	s.entityManager.Clear()
	s.playerID = entities.NewPlayerEntity(s.entityManager, s.playerArt, s.cfg)
	s.spawnSystem.Reset()
	s.spawnSystem.SpawnNow()
}

// Update 更新游戏场景
// deltaTime 是距上一帧的时间（秒）
func (s *GameScene) Update(deltaTime float64) {
	if s.restartRequested() {
		s.Restart()
	}

	if s.keyPressed(pauseKeys) {
		s.TogglePause()
	}

	switch {
	case s.keyPressed(volumeDownKeys):
		s.AdjustVolume(-VolumeStep)
	case s.keyPressed(volumeUpKeys):
		s.AdjustVolume(VolumeStep)
	}

	if !s.session.IsRunning() {
		return
	}

	s.controlSystem.Update(deltaTime)      // 1. 玩家追随指针
	s.spawnSystem.Update(deltaTime)        // 2. 定时生成下落物
	s.movementSystem.Update(deltaTime)     // 3. 下落，落出底部的标记删除
	s.collisionSystem.Update(deltaTime)    // 4. 碰撞，生命值耗尽时结束本局
	s.entityManager.RemoveMarkedEntities() // 5. 清理已标记的实体（必须最后）
}

// restartRequested 点击 "Restart" 区域或按下 R
// 任何状态下都有效
func (s *GameScene) restartRequested() bool {
	if s.keyPressed(restartKeys) {
		return true
	}
	pressed, sx, sy := s.input.PointerJustPressed()
	if !pressed {
		return false
	}
	wx, wy := s.camera.Unproject(sx, sy)
	return s.cfg.RestartBounds.Contains(wx, wy)
}

func (s *GameScene) keyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.input.KeyJustPressed(k) {
			return true
		}
	}
	return false
}

// AdjustVolume 同时调整音乐和音效音量，任何状态下都有效
func (s *GameScene) AdjustVolume(delta float64) {
	if s.audio == nil {
		return
	}
	s.audio.SetMusicVolume(s.audio.MusicVolume() + delta)
	s.audio.SetSoundVolume(s.audio.SoundVolume() + delta)
	log.Debugf("[GameScene] Volume music=%.1f sound=%.1f", s.audio.MusicVolume(), s.audio.SoundVolume())
}

// onPlayerDefeated 生命值耗尽时由碰撞系统调用
func (s *GameScene) onPlayerDefeated() {
	if s.session.End() {
		log.Infof("[GameScene] Game over after %d s", s.session.ElapsedSeconds())
	}
}

// TogglePause 切换暂停状态，同时暂停或恢复背景音乐
// GameOver 状态下无效
func (s *GameScene) TogglePause() game.State {
	state := s.session.TogglePause()
	if s.audio != nil {
		switch state {
		case game.StatePaused:
			s.audio.PauseMusic()
		case game.StateRunning:
			s.audio.ResumeMusic()
		}
	}
	return state
}

// Restart 开始新的一局
// 重建摄像机，清空下落物，重置玩家和计时
func (s *GameScene) Restart() {
	wasPaused := s.session.State() == game.StatePaused

	s.camera = utils.NewCamera(s.cfg.Playfield.Width, s.cfg.Playfield.Height)
	s.controlSystem.SetCamera(s.camera)
	s.renderSystem.SetCamera(s.camera)

	s.startRound()
	s.session.Restart()
	s.restarts++

	if wasPaused && s.audio != nil {
		s.audio.ResumeMusic()
	}
	log.Debugf("[GameScene] Restart #%d", s.restarts)
}

// Dispose 停止背景音乐（场景切换或退出时由 SceneManager 调用）
func (s *GameScene) Dispose() {
	if s.audio != nil {
		s.audio.StopMusic()
	}
}

// Session 返回会话状态机
func (s *GameScene) Session() *game.Session {
	return s.session
}

// EntityManager 返回场景的实体管理器
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PlayerLife 返回玩家当前生命值
func (s *GameScene) PlayerLife() int {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, s.playerID)
	if !ok {
		return 0
	}
	return health.CurrentHealth
}

// PlayerPosition 返回玩家位置（世界坐标，左下角）
func (s *GameScene) PlayerPosition() (float64, float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.playerID)
	if !ok {
		return 0, 0
	}
	return pos.X, pos.Y
}

// ActiveDrops 返回当前存在的下落物数量
func (s *GameScene) ActiveDrops() int {
	return len(ecs.GetEntitiesWith1[*components.DropComponent](s.entityManager))
}

// LiveEntities 当前存活的实体数（玩家加雨滴）
func (s *GameScene) LiveEntities() int {
	return s.entityManager.Count()
}

// Stats 本场景累计的统计数据（跨局累计）
type Stats struct {
	Spawned    map[types.DropKind]int
	Collisions map[types.DropKind]int
	Expired    int
	Restarts   int
}

// Stats 返回累计统计
func (s *GameScene) Stats() Stats {
	st := Stats{
		Spawned:    make(map[types.DropKind]int),
		Collisions: make(map[types.DropKind]int),
		Expired:    s.movementSystem.ExpiredCount(),
		Restarts:   s.restarts,
	}
	for _, k := range types.AllDropKinds() {
		st.Spawned[k] = s.spawnSystem.SpawnedCount(k)
		st.Collisions[k] = s.collisionSystem.CollisionCount(k)
	}
	return st
}
