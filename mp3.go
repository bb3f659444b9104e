package morse

import (
	"io"

	"github.com/hajimehoshi/go-mp3"
	"github.com/pkg/errors"
)

type mp3Input struct {
	decoder *mp3.Decoder
}

func newMP3Input(r io.ReadSeeker) (inputDecoder, error) {
	decoder, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, errors.Wrap(err, "new mp3 decoder failed")
	}

	return &mp3Input{decoder: decoder}, nil
}

// SampleRate ...
func (mi mp3Input) SampleRate() int {
	return mi.decoder.SampleRate()
}

// PCMBuffer reads the full stream. go-mp3 always emits interleaved stereo
// 16-bit little-endian frames; the left channel is kept.
func (mi mp3Input) PCMBuffer() ([]int, error) {
	raw, err := io.ReadAll(mi.decoder)
	if err != nil {
		return nil, errors.Wrap(err, "read mp3 failed")
	}

	samples := make([]int, 0, len(raw)/4)
	for i := 0; i+3 < len(raw); i += 4 {
		samples = append(samples, int(int16(raw[i])|int16(raw[i+1])<<8))
	}

	return samples, nil
}
