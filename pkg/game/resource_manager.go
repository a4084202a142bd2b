package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"maps"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigNotLoaded   = errors.New("resource config not loaded")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrUnsupportedFormat = errors.New("unsupported resource format")
	ErrNoAudioContext    = errors.New("audio context not available")
)

// ResourceManager 从 fs.FS 读取图片和音频并缓存
//
// 资源通常按ID访问（见 ResourceConfig），也可以直接按路径加载。
// 每个文件只解码一次：图片缓存 GPU 图片，音频缓存重采样后的 PCM，
// 音效和循环音乐各自缓存播放器。
//
// 所有加载都在游戏协程上进行，不是并发安全的。
type ResourceManager struct {
	fsys  fs.FS
	audio *audio.Context // 无头模式下为 nil

	images  map[string]*ebiten.Image
	pcm     map[string][]byte
	effects map[string]*audio.Player
	loops   map[string]*audio.Player

	config    *ResourceConfig
	resources map[string]Resource
}

// NewResourceManager 创建资源管理器，audioContext 为 nil 时只能加载图片
func NewResourceManager(fsys fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fsys:      fsys,
		audio:     audioContext,
		images:    make(map[string]*ebiten.Image),
		pcm:       make(map[string][]byte),
		effects:   make(map[string]*audio.Player),
		loops:     make(map[string]*audio.Player),
		resources: make(map[string]Resource),
	}
}

// HasAudio 是否可以解码音频
func (rm *ResourceManager) HasAudio() bool {
	return rm.audio != nil
}

// LoadResourceConfig 读取资源表，按ID访问前必须调用
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	raw, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("read resource config: %w", err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse resource config %s: %w", configPath, err)
	}

	rm.config = &cfg
	rm.resources = cfg.index()
	log.Debugf("[ResourceManager] %s: %d groups, %d resources", configPath, len(cfg.Groups), len(rm.resources))
	return nil
}

// Lookup 返回ID登记的资源
func (rm *ResourceManager) Lookup(id string) (Resource, error) {
	if rm.config == nil {
		return Resource{}, ErrConfigNotLoaded
	}
	res, ok := rm.resources[id]
	if !ok {
		return Resource{}, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}
	return res, nil
}

// ResolvePath 返回ID对应的文件路径
func (rm *ResourceManager) ResolvePath(id string) (string, error) {
	res, err := rm.Lookup(id)
	return res.Path, err
}

// ResourceIDs 按字母序返回所有已登记的ID
func (rm *ResourceManager) ResourceIDs() []string {
	return slices.Sorted(maps.Keys(rm.resources))
}

// LoadResourceGroup 加载一组资源里的全部图片和音效
// 没有音频上下文时跳过音效，所以无头模式可以加载同样的分组
func (rm *ResourceManager) LoadResourceGroup(name string) error {
	if rm.config == nil {
		return ErrConfigNotLoaded
	}
	group, ok := rm.config.Groups[name]
	if !ok {
		return fmt.Errorf("%w: group %s", ErrResourceNotFound, name)
	}

	skipped := 0
	for _, id := range group.IDs() {
		res, err := rm.Lookup(id)
		if err != nil {
			return err
		}
		switch {
		case res.Kind == KindImage:
			_, err = rm.LoadImage(res.Path)
		case rm.audio == nil:
			skipped++
			continue
		default:
			_, err = rm.LoadSoundEffect(res.Path)
		}
		if err != nil {
			return fmt.Errorf("group %s: %s: %w", name, id, err)
		}
	}

	if skipped > 0 {
		log.Warnf("[ResourceManager] No audio context, %d sounds in group %s not loaded", skipped, name)
	}
	log.Debugf("[ResourceManager] Group %s ready (%d images, %d sounds)", name, len(group.Images), len(group.Sounds)-skipped)
	return nil
}

// LoadImage 解码图片（PNG/JPEG）并缓存
func (rm *ResourceManager) LoadImage(file string) (*ebiten.Image, error) {
	if img, ok := rm.images[file]; ok {
		return img, nil
	}

	f, err := rm.fsys.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", file, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.images[file] = img
	log.Debugf("[ResourceManager] Image %s %dx%d", file, decoded.Bounds().Dx(), decoded.Bounds().Dy())
	return img, nil
}

// GetImage 返回已缓存的图片，未加载时为 nil
func (rm *ResourceManager) GetImage(file string) *ebiten.Image {
	return rm.images[file]
}

// ImageSize 只读取图片头部得到尺寸，不创建 GPU 图片
func (rm *ResourceManager) ImageSize(file string) (int, int, error) {
	f, err := rm.fsys.Open(file)
	if err != nil {
		return 0, 0, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image header %s: %w", file, err)
	}
	return cfg.Width, cfg.Height, nil
}

func (rm *ResourceManager) LoadImageByID(id string) (*ebiten.Image, error) {
	file, err := rm.ResolvePath(id)
	if err != nil {
		return nil, err
	}
	return rm.LoadImage(file)
}

func (rm *ResourceManager) GetImageByID(id string) *ebiten.Image {
	file, err := rm.ResolvePath(id)
	if err != nil {
		return nil
	}
	return rm.GetImage(file)
}

func (rm *ResourceManager) ImageSizeByID(id string) (int, int, error) {
	file, err := rm.ResolvePath(id)
	if err != nil {
		return 0, 0, err
	}
	return rm.ImageSize(file)
}

// decodePCM 把音频文件解码成音频上下文采样率下的立体声 PCM，按路径缓存
// 支持 .au、.wav、.mp3、.ogg
func (rm *ResourceManager) decodePCM(file string) ([]byte, error) {
	if pcm, ok := rm.pcm[file]; ok {
		return pcm, nil
	}
	if rm.audio == nil {
		return nil, fmt.Errorf("%s: %w", file, ErrNoAudioContext)
	}

	codec, err := codecFor(file)
	if err != nil {
		return nil, err
	}
	raw, err := fs.ReadFile(rm.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	src, err := codec(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode audio %s: %w", file, err)
	}

	target := rm.audio.SampleRate()
	pcm, err := io.ReadAll(audio.Resample(src.stream, src.length, src.sampleRate, target))
	if err != nil {
		return nil, fmt.Errorf("resample audio %s: %w", file, err)
	}

	rm.pcm[file] = pcm
	log.Debugf("[ResourceManager] Audio %s %d Hz -> %d Hz (%d bytes)", file, src.sampleRate, target, len(pcm))
	return pcm, nil
}

// LoadSoundEffect 返回单次播放的音效播放器，调用方重播前需要 Rewind
func (rm *ResourceManager) LoadSoundEffect(file string) (*audio.Player, error) {
	if p, ok := rm.effects[file]; ok {
		return p, nil
	}
	pcm, err := rm.decodePCM(file)
	if err != nil {
		return nil, err
	}
	p := rm.audio.NewPlayerFromBytes(pcm)
	rm.effects[file] = p
	return p, nil
}

// LoadMusic 返回无限循环的播放器，用于背景音乐
func (rm *ResourceManager) LoadMusic(file string) (*audio.Player, error) {
	if p, ok := rm.loops[file]; ok {
		return p, nil
	}
	pcm, err := rm.decodePCM(file)
	if err != nil {
		return nil, err
	}
	p, err := rm.audio.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	if err != nil {
		return nil, fmt.Errorf("music player %s: %w", file, err)
	}
	rm.loops[file] = p
	return p, nil
}

// GetAudioPlayer 返回已缓存的音效播放器，未加载时为 nil
func (rm *ResourceManager) GetAudioPlayer(file string) *audio.Player {
	return rm.effects[file]
}

func (rm *ResourceManager) LoadSoundEffectByID(id string) (*audio.Player, error) {
	file, err := rm.ResolvePath(id)
	if err != nil {
		return nil, err
	}
	return rm.LoadSoundEffect(file)
}

func (rm *ResourceManager) LoadMusicByID(id string) (*audio.Player, error) {
	file, err := rm.ResolvePath(id)
	if err != nil {
		return nil, err
	}
	return rm.LoadMusic(file)
}

// NewFontFace 从 TTF/OTF 数据创建从左到右排版的字体
func NewFontFace(ttf []byte, size float64) (*text.GoTextFace, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("font source: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size, Direction: text.DirectionLeftToRight}, nil
}
