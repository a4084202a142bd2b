package game

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	auaudio "github.com/decker502/gingerrain/internal/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// pcmSource 解码器输出：16 位小端立体声，采样率为源文件的采样率
type pcmSource struct {
	stream     io.ReadSeeker
	length     int64
	sampleRate int
}

type audioCodec func(r *bytes.Reader) (pcmSource, error)

// audioCodecs 按扩展名选择解码器
var audioCodecs = map[string]audioCodec{
	".au": func(r *bytes.Reader) (pcmSource, error) {
		d, err := auaudio.DecodeAU(r)
		if err != nil {
			return pcmSource{}, err
		}
		return pcmSource{d, d.Length(), int(d.SampleRate())}, nil
	},
	".wav": func(r *bytes.Reader) (pcmSource, error) {
		d, err := wav.DecodeWithoutResampling(r)
		if err != nil {
			return pcmSource{}, err
		}
		return pcmSource{d, d.Length(), d.SampleRate()}, nil
	},
	".mp3": func(r *bytes.Reader) (pcmSource, error) {
		d, err := mp3.DecodeWithoutResampling(r)
		if err != nil {
			return pcmSource{}, err
		}
		return pcmSource{d, d.Length(), d.SampleRate()}, nil
	},
	".ogg": func(r *bytes.Reader) (pcmSource, error) {
		d, err := vorbis.DecodeWithoutResampling(r)
		if err != nil {
			return pcmSource{}, err
		}
		return pcmSource{d, d.Length(), d.SampleRate()}, nil
	},
}

func codecFor(file string) (audioCodec, error) {
	ext := strings.ToLower(path.Ext(file))
	codec, ok := audioCodecs[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return codec, nil
}
