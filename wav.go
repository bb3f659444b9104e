package morse

import (
	"io"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

type wavInput struct {
	decoder *wav.Decoder
}

func newWavInput(r io.ReadSeeker) (inputDecoder, error) {
	decoder := wav.NewDecoder(r)
	if !decoder.IsValidFile() {
		return nil, errors.Errorf("invalid wav file")
	}

	return &wavInput{decoder: decoder}, nil
}

// SampleRate ...
func (wi wavInput) SampleRate() int {
	return int(wi.decoder.SampleRate)
}

// PCMBuffer reads the full stream. Multi-channel files are folded to mono
// by keeping the first channel.
func (wi wavInput) PCMBuffer() ([]int, error) {
	buf, err := wi.decoder.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "read wav pcm buffer failed")
	}

	channels := int(wi.decoder.NumChans)
	if channels <= 1 {
		return buf.Data, nil
	}

	mono := make([]int, 0, len(buf.Data)/channels)
	for i := 0; i < len(buf.Data); i += channels {
		mono = append(mono, buf.Data[i])
	}

	return mono, nil
}
