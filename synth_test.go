package morse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func durationMs(n int) int {
	return n * 1000 / sampleRate
}

func TestSynthesize_EmptyStringIsFramingSilenceOnly(t *testing.T) {
	buf := NewSynthesizer(750, 100).Synthesize("")

	assert.Equal(t, 6000, durationMs(len(buf.Data)))
	for _, s := range buf.Data {
		require.Zero(t, s)
	}
}

func TestSynthesize_BufferFormat(t *testing.T) {
	buf := NewSynthesizer(750, 100).Synthesize(".")

	assert.Equal(t, 1, buf.Format.NumChannels)
	assert.Equal(t, 44100, buf.Format.SampleRate)
	assert.Equal(t, 16, buf.SourceBitDepth)
}

func TestSynthesize_SymbolDurations(t *testing.T) {
	unit := 100
	tests := []struct {
		name   string
		morse  string
		wantMs int
	}{
		// every duration includes the 6000 ms lead-in/out framing
		{name: "dot", morse: ".", wantMs: 6000 + 2*unit},
		{name: "dash", morse: "-", wantMs: 6000 + 4*unit},
		{name: "letter gap", morse: ". .", wantMs: 6000 + 2*unit + 2*unit + 2*unit},
		{name: "word gap", morse: "/", wantMs: 6000 + 6*unit},
		{name: "sos", morse: "... --- ...", wantMs: 8800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewSynthesizer(750, unit).Synthesize(tt.morse)
			assert.Equal(t, tt.wantMs, durationMs(len(buf.Data)))
		})
	}
}

func TestSynthesize_UnitDurationScales(t *testing.T) {
	buf := NewSynthesizer(750, 50).Synthesize("-")

	assert.Equal(t, 6200, durationMs(len(buf.Data)))
}

func TestSynthesize_QuantizedAmplitude(t *testing.T) {
	buf := NewSynthesizer(750, 100).Synthesize(".")

	var peak int
	for _, s := range buf.Data {
		if s > peak {
			peak = s
		}
		// half of full scale, never beyond int16 range
		require.LessOrEqual(t, s, 16384)
		require.GreaterOrEqual(t, s, -16384)
	}

	// the tone must actually carry signal, not rounded-to-zero floats
	assert.Greater(t, peak, 16000)
}

func TestSynthesize_LeadInAndOutAreSilent(t *testing.T) {
	buf := NewSynthesizer(750, 100).Synthesize("-")

	lead := sampleRate * 3 // 3000 ms
	for i := 0; i < lead; i++ {
		require.Zero(t, buf.Data[i], "lead-in sample %d", i)
	}
	for i := len(buf.Data) - lead; i < len(buf.Data); i++ {
		require.Zero(t, buf.Data[i], "lead-out sample %d", i)
	}
}
