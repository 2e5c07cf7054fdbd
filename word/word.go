// Package word defines the atoms of a learning alphabet: Letter, a
// small tagged value with value equality, and Word, an immutable finite
// sequence of letters.
//
// Letters carry one of three payload domains — string, byte-string, or
// integer — instead of arbitrary untyped values, so that equality and
// hashing are always well defined. Words support concatenation,
// prefix/suffix extraction, and a canonical Key suitable for map keys.
// Keys use per-letter length framing rather than separator joins, so
// alphabets whose rendering contains a separator cannot collide.
//
// The zero Letter is the empty letter: the identity of concatenation.
// It is an internal convenience and must never appear in an alphabet.
package word

import (
	"strconv"
	"strings"
)

// Kind discriminates the payload domain of a Letter.
type Kind uint8

const (
	// KindEmpty marks the distinguished empty letter (the zero Letter).
	KindEmpty Kind = iota

	// KindString marks a letter carrying a string payload.
	KindString

	// KindBytes marks a letter carrying a byte-string payload.
	KindBytes

	// KindInt marks a letter carrying a signed integer payload.
	KindInt
)

// Letter is an opaque alphabet symbol with value equality.
//
// Letter is comparable: two letters are equal iff their kind and
// payload are equal, so letters may key maps directly.
type Letter struct {
	kind Kind
	str  string // payload for KindString and KindBytes
	num  int64  // payload for KindInt
}

// String returns a letter with a string payload.
func String(s string) Letter { return Letter{kind: KindString, str: s} }

// Bytes returns a letter with a byte-string payload. The bytes are
// copied; later mutation of b does not affect the letter.
func Bytes(b []byte) Letter { return Letter{kind: KindBytes, str: string(b)} }

// Int returns a letter with an integer payload.
func Int(n int64) Letter { return Letter{kind: KindInt, num: n} }

// Empty returns the distinguished empty letter.
func Empty() Letter { return Letter{} }

// Kind reports the payload domain of l.
func (l Letter) Kind() Kind { return l.kind }

// IsEmpty reports whether l is the empty letter.
func (l Letter) IsEmpty() bool { return l.kind == KindEmpty }

// Equal reports value equality of two letters.
func (l Letter) Equal(o Letter) bool { return l == o }

// Key returns the canonical hashable form of l: a kind tag followed by
// the length-framed payload. Keys of distinct letters never collide.
func (l Letter) Key() string {
	var p string
	switch l.kind {
	case KindInt:
		p = strconv.FormatInt(l.num, 10)
	default:
		p = l.str
	}
	var b strings.Builder
	b.Grow(len(p) + 8)
	b.WriteByte('0' + byte(l.kind))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(len(p)))
	b.WriteByte(':')
	b.WriteString(p)
	return b.String()
}

// String renders l for humans and for wire/DOT labels:
// the raw payload for strings, hex for byte-strings, decimal for
// integers, and "ε" for the empty letter.
func (l Letter) String() string {
	switch l.kind {
	case KindString:
		return l.str
	case KindBytes:
		const hexdigits = "0123456789abcdef"
		var b strings.Builder
		b.Grow(2 * len(l.str))
		for i := 0; i < len(l.str); i++ {
			b.WriteByte(hexdigits[l.str[i]>>4])
			b.WriteByte(hexdigits[l.str[i]&0x0f])
		}
		return b.String()
	case KindInt:
		return strconv.FormatInt(l.num, 10)
	default:
		return "ε"
	}
}

// Word is an immutable finite sequence of letters. The zero Word is the
// empty word ε, the identity of concatenation.
type Word struct {
	letters []Letter
}

// New builds a word from the given letters. Empty letters are dropped,
// keeping ε the identity of concatenation. The input slice is copied.
func New(letters ...Letter) Word {
	out := make([]Letter, 0, len(letters))
	for _, l := range letters {
		if l.IsEmpty() {
			continue
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return Word{}
	}
	return Word{letters: out}
}

// Epsilon returns the empty word.
func Epsilon() Word { return Word{} }

// Len returns the number of letters in w.
func (w Word) Len() int { return len(w.letters) }

// At returns the i-th letter of w. The index must be in [0, Len).
func (w Word) At(i int) Letter { return w.letters[i] }

// Letters returns a copy of the letters of w.
func (w Word) Letters() []Letter {
	out := make([]Letter, len(w.letters))
	copy(out, w.letters)
	return out
}

// Append returns a new word equal to w followed by l. Appending the
// empty letter returns w unchanged.
func (w Word) Append(l Letter) Word {
	if l.IsEmpty() {
		return w
	}
	out := make([]Letter, len(w.letters)+1)
	copy(out, w.letters)
	out[len(w.letters)] = l
	return Word{letters: out}
}

// Concat returns the concatenation w·o.
func (w Word) Concat(o Word) Word {
	if o.Len() == 0 {
		return w
	}
	if w.Len() == 0 {
		return o
	}
	out := make([]Letter, 0, len(w.letters)+len(o.letters))
	out = append(out, w.letters...)
	out = append(out, o.letters...)
	return Word{letters: out}
}

// Prefix returns the first n letters of w; n is clamped to [0, Len].
func (w Word) Prefix(n int) Word {
	n = clamp(n, len(w.letters))
	if n == 0 {
		return Word{}
	}
	return Word{letters: w.letters[:n:n]}
}

// Suffix returns the last n letters of w; n is clamped to [0, Len].
func (w Word) Suffix(n int) Word {
	n = clamp(n, len(w.letters))
	if n == 0 {
		return Word{}
	}
	return Word{letters: w.letters[len(w.letters)-n:]}
}

// Prefixes returns every prefix of w in increasing length order,
// from ε up to w itself (Len+1 words).
func (w Word) Prefixes() []Word {
	out := make([]Word, 0, len(w.letters)+1)
	for n := 0; n <= len(w.letters); n++ {
		out = append(out, w.Prefix(n))
	}
	return out
}

// Equal reports value equality of two words.
func (w Word) Equal(o Word) bool {
	if len(w.letters) != len(o.letters) {
		return false
	}
	for i := range w.letters {
		if w.letters[i] != o.letters[i] {
			return false
		}
	}
	return true
}

// Key returns the canonical hashable form of w: the concatenation of
// its letters' keys. The per-letter framing makes the encoding a prefix
// code, so distinct words never share a key.
func (w Word) Key() string {
	var b strings.Builder
	for _, l := range w.letters {
		b.WriteString(l.Key())
	}
	return b.String()
}

// String renders w as its letters joined by "·", or "ε" when empty.
func (w Word) String() string {
	if len(w.letters) == 0 {
		return "ε"
	}
	parts := make([]string, len(w.letters))
	for i, l := range w.letters {
		parts[i] = l.String()
	}
	return strings.Join(parts, "·")
}

// clamp bounds n into [0, max].
func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
