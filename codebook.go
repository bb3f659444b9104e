package morse

// codeTable maps characters to their Morse representation. Space maps to
// the word separator token so word boundaries survive encoding.
var codeTable = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..", '0': "-----", '1': ".----", '2': "..---", '3': "...--",
	'4': "....-", '5': ".....", '6': "-....", '7': "--...", '8': "---..",
	'9': "----.", ' ': "/",
}

// morseMap is the inverse of codeTable, keyed by Morse code.
var morseMap = make(map[string]string, len(codeTable))

func init() {
	for r, code := range codeTable {
		morseMap[code] = string(r)
	}
}
