package game

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// pngBytes encodes a solid w x h PNG image.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	blue := color.RGBA{R: 0, G: 0, B: 255, A: 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, blue)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// auBytes builds a mono μ-law .au clip of n samples at the given rate.
func auBytes(n int, rate uint32) []byte {
	var buf bytes.Buffer
	header := []uint32{0x2e736e64, 24, uint32(n), 1, rate, 1}
	for _, v := range header {
		_ = binary.Write(&buf, binary.BigEndian, v)
	}
	buf.Write(bytes.Repeat([]byte{0xFF}, n))
	return buf.Bytes()
}

const testResourceConfig = `version: "1.0"
base_path: assets
groups:
  init:
    images:
      - id: IMAGE_RAINDROP
        path: images/raindrop
      - id: IMAGE_GINGERMAN
        path: images/gingerman.png
    sounds:
      - id: SOUND_DROP
        path: sounds/drop
  music:
    sounds:
      - id: SOUND_CRANKDANCE
        path: sounds/crankdance.au
  broken:
    images:
      - id: IMAGE_MISSING
        path: images/missing
`

// newTestFS returns a small asset tree with a resource config.
func newTestFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"assets/config/resources.yaml": {Data: []byte(testResourceConfig)},
		"assets/images/raindrop.png":   {Data: pngBytes(t, 24, 32)},
		"assets/images/gingerman.png":  {Data: pngBytes(t, 64, 64)},
		"assets/sounds/drop.au":        {Data: auBytes(2205, 22050)},
		"assets/sounds/crankdance.au":  {Data: auBytes(8000, 8000)},
		"assets/sounds/broken.au":      {Data: []byte("not an au file")},
		"assets/sounds/clip.flac":      {Data: []byte("flac")},
	}
}

func TestResourceManager_Images(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), testAudioContext)
	if !rm.HasAudio() {
		t.Error("Expected HasAudio() with an audio context")
	}

	first, err := rm.LoadImage("assets/images/raindrop.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if again, _ := rm.LoadImage("assets/images/raindrop.png"); again != first {
		t.Error("Expected the cached image on the second load")
	}
	if b := first.Bounds(); b.Dx() != 24 || b.Dy() != 32 {
		t.Errorf("Expected 24x32, got %dx%d", b.Dx(), b.Dy())
	}
	if rm.GetImage("assets/images/raindrop.png") != first {
		t.Error("GetImage did not return the cached image")
	}
	if rm.GetImage("assets/images/gingerman.png") != nil {
		t.Error("GetImage must not load on demand")
	}

	if _, err := rm.LoadImage("assets/images/nope.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestResourceManager_ImageSizeByID(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), nil)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	w, h, err := rm.ImageSizeByID("IMAGE_GINGERMAN")
	if err != nil || w != 64 || h != 64 {
		t.Errorf("Expected 64x64, got %dx%d (%v)", w, h, err)
	}
	if len(rm.images) != 0 {
		t.Error("ImageSizeByID must not create GPU images")
	}
	if _, _, err := rm.ImageSizeByID("IMAGE_UNKNOWN"); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Expected ErrResourceNotFound, got %v", err)
	}
}

// TestLoadResourceConfig tests ID -> path resolution and default extensions.
func TestLoadResourceConfig(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), testAudioContext)

	if _, err := rm.ResolvePath("IMAGE_RAINDROP"); !errors.Is(err, ErrConfigNotLoaded) {
		t.Errorf("Expected ErrConfigNotLoaded before loading config, got %v", err)
	}

	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	if res, err := rm.Lookup("SOUND_DROP"); err != nil || res.Kind != KindSound {
		t.Errorf("Expected SOUND_DROP to be a sound, got %+v (%v)", res, err)
	}

	tests := []struct {
		id   string
		want string
	}{
		{"IMAGE_RAINDROP", "assets/images/raindrop.png"},
		{"IMAGE_GINGERMAN", "assets/images/gingerman.png"},
		{"SOUND_DROP", "assets/sounds/drop.au"},
		{"SOUND_CRANKDANCE", "assets/sounds/crankdance.au"},
	}
	for _, tt := range tests {
		got, err := rm.ResolvePath(tt.id)
		if err != nil {
			t.Errorf("ResolvePath(%s) error: %v", tt.id, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolvePath(%s) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

// TestResourceIDs tests that every declared ID is listed in sorted order.
func TestResourceIDs(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), nil)
	if got := rm.ResourceIDs(); len(got) != 0 {
		t.Errorf("Expected no IDs before loading config, got %v", got)
	}
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	want := []string{"IMAGE_GINGERMAN", "IMAGE_MISSING", "IMAGE_RAINDROP", "SOUND_CRANKDANCE", "SOUND_DROP"}
	got := rm.ResourceIDs()
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ResourceIDs()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

// TestLoadResourceConfig_Errors tests missing and malformed configs.
func TestLoadResourceConfig_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("groups: [unterminated")},
	}
	rm := NewResourceManager(fsys, nil)

	if err := rm.LoadResourceConfig("missing.yaml"); err == nil {
		t.Error("Expected error for missing config")
	}
	if err := rm.LoadResourceConfig("bad.yaml"); err == nil {
		t.Error("Expected error for malformed config")
	}
}

// TestLoadResourceGroup tests batch loading and error propagation.
func TestLoadResourceGroup(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), testAudioContext)
	if err := rm.LoadResourceGroup("init"); !errors.Is(err, ErrConfigNotLoaded) {
		t.Errorf("Expected ErrConfigNotLoaded, got %v", err)
	}

	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	if err := rm.LoadResourceGroup("init"); err != nil {
		t.Fatalf("LoadResourceGroup(init) failed: %v", err)
	}
	if rm.GetImageByID("IMAGE_RAINDROP") == nil {
		t.Error("Expected IMAGE_RAINDROP to be cached after loading group")
	}
	if rm.GetAudioPlayer("assets/sounds/drop.au") == nil {
		t.Error("Expected SOUND_DROP to be cached after loading group")
	}

	if err := rm.LoadResourceGroup("nope"); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("Expected ErrResourceNotFound for unknown group, got %v", err)
	}
	if err := rm.LoadResourceGroup("broken"); err == nil {
		t.Error("Expected error for group with missing image file")
	}
}

// TestLoadResourceGroup_Headless tests that sounds are skipped without an audio context.
func TestLoadResourceGroup_Headless(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), nil)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	if err := rm.LoadResourceGroup("init"); err != nil {
		t.Fatalf("LoadResourceGroup(init) failed headless: %v", err)
	}
	if _, err := rm.LoadSoundEffectByID("SOUND_DROP"); !errors.Is(err, ErrNoAudioContext) {
		t.Errorf("Expected ErrNoAudioContext, got %v", err)
	}
}

// TestDecodePCM_ResamplesAU tests that .au clips are converted to the context rate.
func TestDecodePCM_ResamplesAU(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), testAudioContext)

	pcm, err := rm.decodePCM("assets/sounds/drop.au")
	if err != nil {
		t.Fatalf("decodePCM failed: %v", err)
	}
	if len(pcm) == 0 {
		t.Fatal("Expected decoded PCM data")
	}
	if len(pcm)%4 != 0 {
		t.Errorf("Expected whole 16-bit stereo frames, got %d bytes", len(pcm))
	}

	// 0.1s at 22050 Hz resampled to 48000 Hz stereo 16-bit is about 4800 frames
	frames := len(pcm) / 4
	if frames < 4700 || frames > 4900 {
		t.Errorf("Expected about 4800 frames after resampling, got %d", frames)
	}

	again, _ := rm.decodePCM("assets/sounds/drop.au")
	if &again[0] != &pcm[0] {
		t.Error("Expected decoded PCM to be cached")
	}
}

// TestDecodePCM_Errors tests unsupported and corrupt audio.
func TestDecodePCM_Errors(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), testAudioContext)

	if _, err := rm.decodePCM("assets/sounds/clip.flac"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := rm.decodePCM("assets/sounds/broken.au"); err == nil {
		t.Error("Expected error for corrupt .au file")
	}
	if _, err := rm.decodePCM("assets/sounds/missing.au"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadMusicByID(t *testing.T) {
	rm := NewResourceManager(newTestFS(t), testAudioContext)
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	p1, err := rm.LoadMusicByID("SOUND_CRANKDANCE")
	if err != nil {
		t.Fatalf("LoadMusicByID failed: %v", err)
	}
	p2, _ := rm.LoadMusicByID("SOUND_CRANKDANCE")
	if p1 != p2 {
		t.Error("Expected cached music player")
	}

	effect, err := rm.LoadSoundEffect("assets/sounds/crankdance.au")
	if err != nil {
		t.Fatalf("LoadSoundEffect failed: %v", err)
	}
	if effect == p1 {
		t.Error("Sound effect and looping music must use separate players")
	}
	if len(rm.pcm) != 1 {
		t.Errorf("Expected one decoded clip shared by both players, got %d", len(rm.pcm))
	}
}
