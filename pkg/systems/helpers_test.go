package systems

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/decker502/gingerrain/pkg/config"
	"github.com/decker502/gingerrain/pkg/ecs"
	"github.com/decker502/gingerrain/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// fakeInput 可编程的 InputSource
type fakeInput struct {
	pressed     bool
	x, y        int
	justPressed bool
	keys        map[ebiten.Key]bool
}

func (f *fakeInput) PointerState() (bool, int, int) { return f.pressed, f.x, f.y }

func (f *fakeInput) PointerJustPressed() (bool, int, int) {
	if f.justPressed {
		return true, f.x, f.y
	}
	return false, 0, 0
}

func (f *fakeInput) KeyJustPressed(key ebiten.Key) bool { return f.keys[key] }

// fakeSounds 记录播放过的音效
type fakeSounds struct {
	played []string
}

func (f *fakeSounds) PlaySound(soundID string) bool {
	f.played = append(f.played, soundID)
	return true
}

// sizes 与内置资源图片一致的尺寸
type sizes map[string][2]int

func (s sizes) ImageSizeByID(id string) (int, int, error) {
	size, ok := s[id]
	if !ok {
		return 0, 0, fmt.Errorf("no image %s", id)
	}
	return size[0], size[1], nil
}

// newTestCatalog 创建无图片的默认下落物目录
func newTestCatalog(t *testing.T) *entities.DropCatalog {
	t.Helper()
	catalog, err := entities.NewHeadlessDropCatalog(config.DefaultDroppablesConfig(), sizes{
		"IMAGE_RAINDROP":       {24, 32},
		"IMAGE_RAINDROP_LARGE": {40, 56},
		"IMAGE_SUGARDROP":      {28, 28},
		"IMAGE_JELLYBEAN":      {32, 24},
	})
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	return catalog
}

// newTestPlayer 创建 64x64 的玩家，返回实体ID
func newTestPlayer(em *ecs.EntityManager, cfg *config.GameplayConfig) ecs.EntityID {
	return entities.NewPlayerEntity(em, entities.PlayerSprite{Width: 64, Height: 64}, cfg)
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
