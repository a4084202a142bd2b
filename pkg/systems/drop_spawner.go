package systems

import (
	"math/rand"

	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/types"
)

// SpawnDecision 一次生成的结果
type SpawnDecision struct {
	Primary types.DropKind // 主下落物
	Bonus   bool           // 是否额外生成一颗软糖豆（只随大雨滴出现）
}

// DropSpawner 决定下一次生成的下落物种类和位置
//
// 每次百分比判定都是独立的一次抽取：rng.Intn(100) <= percent
//  1. 糖滴判定成功 -> 糖滴
//  2. 否则大雨滴判定成功 -> 大雨滴，并再做一次软糖豆判定
//  3. 否则 -> 普通雨滴
type DropSpawner struct {
	rng            *rand.Rand
	chances        config.SpawnChanceConfig
	playfieldWidth float64
}

// NewDropSpawner 创建生成器
// rng 由调用方注入，固定种子可以复现整局的生成序列
func NewDropSpawner(rng *rand.Rand, chances config.SpawnChanceConfig, playfieldWidth float64) *DropSpawner {
	return &DropSpawner{
		rng:            rng,
		chances:        chances,
		playfieldWidth: playfieldWidth,
	}
}

// randPercent 百分比判定，每次调用都重新抽取
func (s *DropSpawner) randPercent(percent int) bool {
	return s.rng.Intn(100) <= percent
}

// DecideNextSpawn 决定下一次生成的种类
func (s *DropSpawner) DecideNextSpawn() SpawnDecision {
	if s.randPercent(s.chances.SugarPercent) {
		return SpawnDecision{Primary: types.DropSugar}
	}
	if s.randPercent(s.chances.LargeRaindropPercent) {
		return SpawnDecision{
			Primary: types.DropLargeRaindrop,
			Bonus:   s.randPercent(s.chances.JellybeanBonusPercent),
		}
	}
	return SpawnDecision{Primary: types.DropRaindrop}
}

// PlaceX 返回宽度为 width 的下落物的生成X坐标
// 在 [width, playfieldWidth - width] 内均匀分布
func (s *DropSpawner) PlaceX(width float64) float64 {
	lo, hi := width, s.playfieldWidth-width
	return lo + s.rng.Float64()*(hi-lo)
}
