package morse

import (
	"io"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const (
	// smoothingWindowMs sets the Hann window used to smooth the power
	// envelope.
	smoothingWindowMs = 10
	// thresholdRatio marks a sample as tone when its envelope exceeds
	// this fraction of the peak.
	thresholdRatio = 0.5
	// singleClusterDotCeilingMs separates dots from dashes when every
	// tone in the signal has the same length. The boundary sits between
	// a dot and a dash at common keying speeds.
	singleClusterDotCeilingMs = 150
)

// Decoder recovers a Morse transmission from an audio stream.
type Decoder struct {
	in inputDecoder
}

// NewDecoder wraps r with the input decoder registered for typ.
func NewDecoder(r io.ReadSeeker, typ AudioType) (*Decoder, error) {
	gen, ok := inputDecoders[typ]
	if !ok {
		return nil, errors.Errorf("unsupported audio type: %s", typ)
	}

	in, err := gen(r)
	if err != nil {
		return nil, err
	}

	return &Decoder{in: in}, nil
}

// PCM reads the whole stream into an analyzable buffer.
func (d Decoder) PCM() (*PCMBuffer, error) {
	samples, err := d.in.PCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "parse audio pcm buffer failed")
	}

	return &PCMBuffer{
		samples:    samples,
		sampleRate: d.in.SampleRate(),
	}, nil
}

// PCMBuffer holds decoded samples plus the tone and silence run lengths
// derived from them.
type PCMBuffer struct {
	samples    []int
	sampleRate int
	once       sync.Once
	toneRuns   []int
	gapRuns    []int
}

// MorseString reconstructs the Morse transmission: letters joined by
// single spaces, words separated by a / token.
func (b *PCMBuffer) MorseString() (string, error) {
	b.analyze()

	symbols, dotSamples, err := classifyTones(b.toneRuns, b.sampleRate)
	if err != nil {
		return "", err
	}
	if len(symbols) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString(symbols[0])
	for i := 1; i < len(symbols); i++ {
		if i-1 < len(b.gapRuns) {
			switch classifyGap(b.gapRuns[i-1], dotSamples) {
			case gapLetter:
				sb.WriteString(" ")
			case gapWord:
				sb.WriteString(" / ")
			}
		}
		sb.WriteString(symbols[i])
	}

	return sb.String(), nil
}

// Text reconstructs the transmitted text.
func (b *PCMBuffer) Text() (string, error) {
	m, err := b.MorseString()
	if err != nil {
		return "", err
	}

	return MorseEncoder{}.Decode(m), nil
}

func (b *PCMBuffer) analyze() {
	b.once.Do(func() {
		envelope := smoothedPower(b.samples, b.sampleRate)
		binary := thresholded(envelope)
		rising, falling := findEdges(binary)
		b.toneRuns, b.gapRuns = runLengths(rising, falling, len(binary))
	})
}

// classifyTones clusters tone run lengths into dots and dashes. It also
// returns the estimated dot duration in samples, which the gap classifier
// uses as its timing unit.
func classifyTones(toneRuns []int, sampleRate int) ([]string, float64, error) {
	if len(toneRuns) == 0 {
		return nil, 0, nil
	}

	data := make([]float64, len(toneRuns))
	var mean float64
	for i, r := range toneRuns {
		data[i] = float64(r)
		mean += float64(r)
	}
	mean /= float64(len(data))

	k := 2
	if len(toneRuns) < 2 {
		k = 1
	}
	centers, labels := kMeans(data, k)
	if len(centers) == 0 {
		return nil, 0, errors.New("tone clustering failed")
	}

	sorted := append([]float64(nil), centers...)
	sort.Float64s(sorted)

	// A spread under 1.5x means every tone is effectively the same
	// length; decide dot versus dash from the absolute duration.
	if k == 1 || sorted[1] < sorted[0]*1.5 {
		ceiling := float64(sampleRate) * singleClusterDotCeilingMs / 1000
		symbol, dot := "-", mean/3
		if mean < ceiling {
			symbol, dot = ".", mean
		}
		out := make([]string, len(toneRuns))
		for i := range out {
			out[i] = symbol
		}
		return out, dot, nil
	}

	dotCenter := sorted[0]
	out := make([]string, len(toneRuns))
	for i, label := range labels {
		if centers[label] == dotCenter {
			out[i] = "."
		} else {
			out[i] = "-"
		}
	}

	return out, dotCenter, nil
}

type gapClass int

const (
	gapIntra gapClass = iota
	gapLetter
	gapWord
)

// classifyGap buckets a silence run by its length in dot units: one unit
// separates symbols, three separate letters, seven separate words.
func classifyGap(run int, dotSamples float64) gapClass {
	if dotSamples <= 0 {
		return gapIntra
	}

	units := float64(run) / dotSamples
	switch {
	case units < 2:
		return gapIntra
	case units < 5:
		return gapLetter
	default:
		return gapWord
	}
}

// smoothedPower convolves the squared signal with a normalized Hann
// window, yielding a power envelope.
func smoothedPower(samples []int, sampleRate int) []float64 {
	windowSize := sampleRate * smoothingWindowMs / 1000
	if windowSize < 2 {
		windowSize = 2
	}

	window := make([]float64, windowSize)
	var sum float64
	for i := range window {
		window[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(windowSize-1))
		sum += window[i]
	}
	for i := range window {
		window[i] /= sum
	}

	squared := make([]float64, len(samples))
	for i, s := range samples {
		squared[i] = float64(s) * float64(s)
	}

	return convolve(squared, window)
}

// convolve computes the valid-mode convolution of a with kernel v. The
// result shrinks by len(v)-1.
func convolve(a, v []float64) []float64 {
	n, m := len(a), len(v)
	if n < m {
		return nil
	}

	result := make([]float64, n-m+1)
	for i := range result {
		var sum float64
		for j := 0; j < m; j++ {
			sum += a[i+j] * v[j]
		}
		result[i] = sum
	}

	return result
}

// thresholded binarizes the envelope against a fraction of its peak.
func thresholded(envelope []float64) []int {
	var peak float64
	for _, v := range envelope {
		if v > peak {
			peak = v
		}
	}
	threshold := thresholdRatio * peak

	binary := make([]int, len(envelope))
	for i, v := range envelope {
		if v > threshold {
			binary[i] = 1
		}
	}

	return binary
}

// findEdges locates rising and falling transitions in a binary signal.
func findEdges(binary []int) (rising, falling []int) {
	if len(binary) == 0 {
		return
	}

	prev := binary[0]
	for i := 1; i < len(binary); i++ {
		current := binary[i]
		if prev == 0 && current == 1 {
			rising = append(rising, i)
		} else if prev == 1 && current == 0 {
			falling = append(falling, i)
		}
		prev = current
	}

	return
}

// runLengths pairs edges into tone and gap durations. A signal that
// starts or ends mid-tone gets a synthetic edge at the boundary. Leading
// and trailing silence contributes no gap run.
func runLengths(rising, falling []int, total int) (toneRuns, gapRuns []int) {
	if len(rising) == 0 && len(falling) == 0 {
		return
	}

	if len(falling) > 0 && (len(rising) == 0 || falling[0] < rising[0]) {
		rising = append([]int{0}, rising...)
	}
	if len(rising) > 0 && (len(falling) == 0 || rising[len(rising)-1] > falling[len(falling)-1]) {
		falling = append(falling, total-1)
	}

	for i := 0; i < len(rising) && i < len(falling); i++ {
		toneRuns = append(toneRuns, falling[i]-rising[i])
	}
	for i := 0; i+1 < len(rising) && i < len(falling); i++ {
		gapRuns = append(gapRuns, rising[i+1]-falling[i])
	}

	return
}
