package morse

import (
	"math"

	"github.com/go-audio/audio"
)

const (
	sampleRate = 44100
	bitDepth   = 16
	// amplitude scales the sine wave to half of full scale.
	amplitude = 0.5
	// leadMs of silence frames the transmission on both sides.
	leadMs = 3000
)

// Synthesizer renders Morse strings into mono 16-bit PCM at 44100 Hz.
type Synthesizer struct {
	freq   float64
	unitMs int
}

// NewSynthesizer returns a synthesizer producing tones at freq Hz with a
// dot duration of unitMs milliseconds.
func NewSynthesizer(freq float64, unitMs int) *Synthesizer {
	return &Synthesizer{freq: freq, unitMs: unitMs}
}

// Synthesize converts a Morse string into an audio buffer. A dot is one
// unit of tone, a dash three; each is followed by one unit of silence. A
// space adds two more units of silence (three-unit letter gap total), a
// slash six more (seven-unit word gap total). The buffer always starts and
// ends with 3000 ms of silence, so an empty string yields 6000 ms.
func (s *Synthesizer) Synthesize(morse string) *audio.IntBuffer {
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: bitDepth,
	}

	appendSilence(buf, leadMs)
	for _, symbol := range morse {
		switch symbol {
		case '.':
			s.appendTone(buf, s.unitMs)
			appendSilence(buf, s.unitMs)
		case '-':
			s.appendTone(buf, 3*s.unitMs)
			appendSilence(buf, s.unitMs)
		case ' ':
			appendSilence(buf, 2*s.unitMs)
		case '/':
			appendSilence(buf, 6*s.unitMs)
		}
	}
	appendSilence(buf, leadMs)

	return buf
}

func (s *Synthesizer) appendTone(buf *audio.IntBuffer, ms int) {
	n := sampleRate * ms / 1000
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		v := math.Sin(2*math.Pi*s.freq*t) * amplitude
		// Quantize to signed 16-bit before the sample enters the buffer.
		// A raw float sample is not PCM.
		buf.Data = append(buf.Data, int(v*32767))
	}
}

func appendSilence(buf *audio.IntBuffer, ms int) {
	n := sampleRate * ms / 1000
	buf.Data = append(buf.Data, make([]int, n)...)
}
