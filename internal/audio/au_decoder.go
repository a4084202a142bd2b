// Package audio decodes the Sun/NeXT .au clips bundled with the game.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	auMagic      = 0x2e736e64 // ".snd"
	auHeaderSize = 24
	auSizeToEOF  = 0xFFFFFFFF

	auEncodingULaw  = 1 // 8-bit G.711 μ-law
	auEncodingPCM16 = 3 // 16-bit big-endian linear PCM
)

// ErrNotAU 表示输入不是 .au 数据
var ErrNotAU = errors.New("not an .au stream")

// ulawToLinear 是 G.711 μ-law 的解码表
var ulawToLinear = func() (t [256]int16) {
	const bias = 0x84
	for i := range t {
		u := ^byte(i)
		exponent := (u >> 4) & 0x07
		mantissa := int(u & 0x0F)
		v := ((mantissa << 3) + bias) << exponent
		v -= bias
		if u&0x80 != 0 {
			v = -v
		}
		t[i] = int16(v)
	}
	return t
}()

// AUDecoder 是解码后的 PCM 流：16 位小端立体声，采样率与源文件相同
//
// 它满足 audio.Player 需要的 io.ReadSeeker，并提供 Length。
type AUDecoder struct {
	*bytes.Reader
	sampleRate int64
	channels   int
}

// DecodeAU 读取整个 .au 文件并解码为立体声 PCM，单声道会复制到左右声道
// 只支持 μ-law 和 16 位线性 PCM 两种编码
func DecodeAU(r io.Reader) (*AUDecoder, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read .au: %w", err)
	}
	if len(raw) < auHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrNotAU, len(raw))
	}

	field := func(i int) uint32 { return binary.BigEndian.Uint32(raw[i*4:]) }
	if magic := field(0); magic != auMagic {
		return nil, fmt.Errorf("%w: magic 0x%08x", ErrNotAU, magic)
	}
	offset, size, encoding, rate, channels := field(1), field(2), field(3), field(4), field(5)

	switch {
	case channels != 1 && channels != 2:
		return nil, fmt.Errorf(".au: %d channels not supported", channels)
	case rate == 0:
		return nil, errors.New(".au: sample rate is 0")
	case offset < auHeaderSize || int(offset) >= len(raw):
		return nil, fmt.Errorf(".au: data offset %d outside %d-byte file", offset, len(raw))
	}

	payload := raw[offset:]
	if size != auSizeToEOF && int(size) < len(payload) {
		payload = payload[:size]
	}

	samples, err := decodeSamples(encoding, payload)
	if err != nil {
		return nil, err
	}

	return &AUDecoder{
		Reader:     bytes.NewReader(interleave(samples, int(channels))),
		sampleRate: int64(rate),
		channels:   int(channels),
	}, nil
}

func decodeSamples(encoding uint32, payload []byte) ([]int16, error) {
	switch encoding {
	case auEncodingULaw:
		out := make([]int16, len(payload))
		for i, b := range payload {
			out[i] = ulawToLinear[b]
		}
		return out, nil
	case auEncodingPCM16:
		out := make([]int16, len(payload)/2)
		for i := range out {
			out[i] = int16(binary.BigEndian.Uint16(payload[2*i:]))
		}
		return out, nil
	}
	return nil, fmt.Errorf(".au: encoding %d not supported", encoding)
}

// interleave 输出 16 位小端立体声帧
func interleave(samples []int16, channels int) []byte {
	repeat := 3 - channels // 单声道每个采样写两次
	out := make([]byte, 0, len(samples)*2*repeat)
	for _, s := range samples {
		for range repeat {
			out = binary.LittleEndian.AppendUint16(out, uint16(s))
		}
	}
	return out
}

// Length 返回解码后 PCM 的总字节数
func (d *AUDecoder) Length() int64 { return d.Size() }

// SampleRate 源文件采样率（Hz），播放前需要重采样到音频上下文的采样率
func (d *AUDecoder) SampleRate() int64 { return d.sampleRate }

// Channels 源文件的声道数，解码结果总是立体声
func (d *AUDecoder) Channels() int { return d.channels }
