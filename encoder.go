package morse

import "strings"

// Encoder is one stage of a message transform. Encode and Decode must be
// inverses for every value the stage actually receives; the Morse stage is
// lossy for characters outside the code table.
type Encoder interface {
	Encode(data string) string
	Decode(data string) string
}

// MorseEncoder converts text to Morse code and back.
type MorseEncoder struct{}

// Encode translates text into Morse code, one space between letters.
// Characters without a code table entry are dropped.
func (MorseEncoder) Encode(text string) string {
	codes := make([]string, 0, len(text))
	for _, r := range strings.ToUpper(text) {
		if code, ok := codeTable[r]; ok {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, " ")
}

// Decode translates a Morse string back to text. Tokens without a code
// table entry are dropped, so a round trip through Encode and Decode loses
// any character the table does not cover.
func (MorseEncoder) Decode(morse string) string {
	var text strings.Builder
	for _, token := range strings.Fields(morse) {
		text.WriteString(morseMap[token])
	}
	return text.String()
}

// SubstitutionCipher swaps every dot with a dash and vice versa, leaving
// separators untouched. The transform is its own inverse. The key is
// stored for future keyed variants; only the swap is implemented.
type SubstitutionCipher struct {
	key string
}

// NewSubstitutionCipher returns a cipher labeled with key.
func NewSubstitutionCipher(key string) *SubstitutionCipher {
	return &SubstitutionCipher{key: key}
}

// Encode applies the dot/dash swap.
func (c *SubstitutionCipher) Encode(morse string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.':
			return '-'
		case '-':
			return '.'
		}
		return r
	}, morse)
}

// Decode is the same swap; the cipher is symmetric.
func (c *SubstitutionCipher) Decode(morse string) string {
	return c.Encode(morse)
}

// Pipeline applies encoder stages in order: Encode folds forward through
// the stages, Decode folds backward. The stage list is fixed at
// construction.
type Pipeline struct {
	stages []Encoder
}

// NewPipeline builds a pipeline over the given stages.
func NewPipeline(stages ...Encoder) *Pipeline {
	return &Pipeline{stages: append([]Encoder(nil), stages...)}
}

// Encode runs data through every stage, first to last.
func (p *Pipeline) Encode(data string) string {
	for _, s := range p.stages {
		data = s.Encode(data)
	}
	return data
}

// Decode runs data through every stage's inverse, last to first.
func (p *Pipeline) Decode(data string) string {
	for i := len(p.stages) - 1; i >= 0; i-- {
		data = p.stages[i].Decode(data)
	}
	return data
}
