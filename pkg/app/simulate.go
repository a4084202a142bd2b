package app

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/entities"
	"github.com/decker502/gingerrain/pkg/game"
	"github.com/decker502/gingerrain/pkg/scenes"
)

// ErrInvalidFrames 模拟帧数必须为正
var ErrInvalidFrames = errors.New("frames must be > 0")

// simulationEpoch 模拟时钟的起点（固定值保证同一种子结果一致）
var simulationEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// SimulateOptions 无头模拟参数
type SimulateOptions struct {
	Frames            int   // 模拟帧数（每帧 1/DefaultTPS 秒）
	Seed              int64 // 随机种子，0 表示使用当前时间
	Autopilot         bool  // 玩家随机移动；否则站在中间不动
	RestartOnGameOver bool  // 结束后立即开始下一局
}

// SimulationReport 模拟结果
type SimulationReport struct {
	Seed       int64
	Frames     int
	Rounds     []int // 每个已结束回合的存活秒数
	FinalState game.State
	FinalLife  int
	Entities   int // 结束时存活的实体数
	Stats      scenes.Stats
}

// BestRound 返回最长的存活秒数，没有结束的回合时返回 -1
func (r *SimulationReport) BestRound() int {
	best := -1
	for _, s := range r.Rounds {
		if s > best {
			best = s
		}
	}
	return best
}

// Simulate 在没有窗口和音频的情况下运行游戏循环
//
// 使用与游戏相同的配置、资源表和场景逻辑，只读取图片尺寸作为碰撞盒。
// 时钟随帧推进，因此存活时间等于模拟的帧时长。
func Simulate(fsys fs.FS, opts SimulateOptions) (*SimulationReport, error) {
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("simulate: %w, got %d", ErrInvalidFrames, opts.Frames)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	data, err := LoadGameData(fsys)
	if err != nil {
		return nil, err
	}

	resourceManager, err := newResourceManager(fsys, nil)
	if err != nil {
		return nil, err
	}

	catalog, err := entities.NewHeadlessDropCatalog(data.Droppables, resourceManager)
	if err != nil {
		return nil, fmt.Errorf("下落物目录构建失败: %w", err)
	}

	player, err := playerSprite(resourceManager, data.Gameplay.Player.ImageID, true)
	if err != nil {
		return nil, err
	}

	clock := game.NewStepClock(simulationEpoch)
	pilot := NewAutopilot(rand.New(rand.NewSource(seed+1)), opts.Autopilot,
		int(data.Gameplay.Playfield.Width), int(data.Gameplay.Playfield.Height))

	scene, err := scenes.NewGameScene(scenes.GameSceneConfig{
		Gameplay: data.Gameplay,
		Catalog:  catalog,
		Input:    pilot,
		Player:   player,
		Clock:    clock,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}
	defer scene.Dispose()

	log.Debugf("[Simulate] Running %d frames (seed %d, autopilot %v)", opts.Frames, seed, opts.Autopilot)

	report := &SimulationReport{Seed: seed, Frames: opts.Frames}
	frame := time.Second / config.DefaultTPS
	deltaTime := 1.0 / float64(config.DefaultTPS)
	roundOver := false

	for i := 0; i < opts.Frames; i++ {
		clock.Advance(frame)
		pilot.Tick()
		scene.Update(deltaTime)

		switch {
		case scene.Session().IsGameOver() && !roundOver:
			roundOver = true
			report.Rounds = append(report.Rounds, scene.Session().ElapsedSeconds())
			log.Debugf("[Simulate] Round %d over at frame %d (%d s)", len(report.Rounds), i, scene.Session().ElapsedSeconds())
			if opts.RestartOnGameOver {
				pilot.RequestRestart()
			}
		case scene.Session().IsRunning():
			roundOver = false
		}
	}

	report.FinalState = scene.Session().State()
	report.FinalLife = scene.PlayerLife()
	report.Entities = scene.LiveEntities()
	report.Stats = scene.Stats()
	return report, nil
}
