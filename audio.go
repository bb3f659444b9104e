package morse

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

func init() {
	registerInputDecoder(AudioTypeMp3, newMP3Input)
	registerInputDecoder(AudioTypeWav, newWavInput)
}

// AudioType names a supported audio container.
type AudioType string

// Supported containers.
const (
	AudioTypeWav AudioType = "wav"
	AudioTypeMp3 AudioType = "mp3"
)

// ParseAudioType validates a format name from config or the command line.
func ParseAudioType(s string) (AudioType, error) {
	switch t := AudioType(strings.ToLower(s)); t {
	case AudioTypeWav, AudioTypeMp3:
		return t, nil
	}
	return "", errors.Errorf("unsupported audio format %q (supported: wav, mp3)", s)
}

// inputDecoder reads a whole audio stream as mono integer samples.
type inputDecoder interface {
	PCMBuffer() ([]int, error)
	SampleRate() int
}

type inputDecoderGenerator func(r io.ReadSeeker) (inputDecoder, error)

var inputDecoders map[AudioType]inputDecoderGenerator

func registerInputDecoder(a AudioType, g inputDecoderGenerator) {
	if inputDecoders == nil {
		inputDecoders = make(map[AudioType]inputDecoderGenerator)
	}

	inputDecoders[a] = g
}
