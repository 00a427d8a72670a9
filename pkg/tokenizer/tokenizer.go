// Package tokenizer turns raw file bytes into sentence-bounded token
// sequences. Normalization is ASCII-only: digits and punctuation become a
// sentence-delimiting sentinel, letters fold to lowercase, and everything
// else passes through untouched.
package tokenizer

// Sentinel is the reserved byte that stands in for every ASCII digit and
// punctuation character after normalization. It never occurs in normal
// text, so a run of bytes between sentinels is exactly one sentence.
const Sentinel byte = 0x01

var normTable = buildNormTable()

func buildNormTable() (t [256]byte) {
	for i := range t {
		b := byte(i)
		switch {
		case b == '\n' || b == '\t':
			t[i] = ' '
		case b >= '0' && b <= '9':
			t[i] = Sentinel
		case isPunct(b):
			t[i] = Sentinel
		case b >= 'A' && b <= 'Z':
			t[i] = b + ('a' - 'A')
		default:
			t[i] = b
		}
	}
	return t
}

// isPunct reports whether b is an ASCII punctuation character, matching the
// four printable ranges around the digits and letters.
func isPunct(b byte) bool {
	return (b >= '!' && b <= '/') ||
		(b >= ':' && b <= '@') ||
		(b >= '[' && b <= '`') ||
		(b >= '{' && b <= '~')
}

// Normalize applies the byte-to-byte normalization map once over the whole
// buffer and returns the result as a new slice. It is idempotent:
// normalizing already-normalized text changes nothing.
func Normalize(raw []byte) []byte {
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = normTable[b]
	}
	return out
}

// Scanner iterates over the sentences of a buffer, lazily splitting each
// into tokens. A sentence is the maximal run of bytes between sentinels; a
// buffer without any sentinel is a single sentence. Sentences that contain
// no tokens are skipped.
type Scanner struct {
	data   []byte
	pos    int
	tokens []string
}

// NewScanner normalizes raw and returns a Scanner positioned before the
// first sentence.
func NewScanner(raw []byte) *Scanner {
	return &Scanner{data: Normalize(raw)}
}

// Scan advances to the next sentence with at least one token. It returns
// false once the buffer is exhausted.
func (s *Scanner) Scan() bool {
	for s.pos < len(s.data) {
		end := s.pos
		for end < len(s.data) && s.data[end] != Sentinel {
			end++
		}
		sentence := s.data[s.pos:end]

		// step over the sentinel, if any
		if end < len(s.data) {
			s.pos = end + 1
		} else {
			s.pos = end
		}

		if toks := splitTokens(sentence); len(toks) > 0 {
			s.tokens = toks
			return true
		}
	}
	s.tokens = nil
	return false
}

// Tokens returns the tokens of the current sentence. The result is only
// valid until the next call to Scan.
func (s *Scanner) Tokens() []string {
	return s.tokens
}

// Reset rewinds the scanner so the same buffer can be walked again.
func (s *Scanner) Reset() {
	s.pos = 0
	s.tokens = nil
}

// splitTokens breaks a sentence into maximal runs of alphanumeric bytes.
// Anything else, primarily the spaces introduced by normalization, acts as
// a separator, so empty leading or trailing fragments never survive.
func splitTokens(sentence []byte) []string {
	var toks []string
	i := 0
	for i < len(sentence) {
		for i < len(sentence) && !isTokenByte(sentence[i]) {
			i++
		}
		start := i
		for i < len(sentence) && isTokenByte(sentence[i]) {
			i++
		}
		if i > start {
			toks = append(toks, string(sentence[start:i]))
		}
	}
	return toks
}

func isTokenByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
