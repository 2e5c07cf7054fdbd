package word_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/lstar/word"
)

// TestLetter_Equality verifies value equality across the three payload
// domains and the empty letter.
func TestLetter_Equality(t *testing.T) {
	if !word.String("a").Equal(word.String("a")) {
		t.Error("equal string letters must compare equal")
	}
	if word.String("a").Equal(word.String("b")) {
		t.Error("distinct string letters must not compare equal")
	}
	if word.String("1").Equal(word.Int(1)) {
		t.Error("letters of different kinds must not compare equal")
	}
	if word.Bytes([]byte{0x01}).Equal(word.Int(1)) {
		t.Error("bytes and int letters must not compare equal")
	}
	if !word.Empty().Equal(word.Letter{}) {
		t.Error("the zero Letter must be the empty letter")
	}
}

// TestLetter_KeyCollisions checks that canonical keys separate letters
// whose renderings would collide under naive joins.
func TestLetter_KeyCollisions(t *testing.T) {
	pairs := [][2]word.Letter{
		{word.String("1"), word.Int(1)},
		{word.String("ab"), word.Bytes([]byte("ab"))},
		{word.String(""), word.Empty()},
		{word.String("a:b"), word.String("a")},
	}
	for _, p := range pairs {
		if p[0].Key() == p[1].Key() {
			t.Errorf("Key collision between %v and %v", p[0], p[1])
		}
	}
}

// TestLetter_BytesCopied ensures the byte payload is detached from the
// caller's slice.
func TestLetter_BytesCopied(t *testing.T) {
	buf := []byte("abc")
	l := word.Bytes(buf)
	buf[0] = 'z'
	if !l.Equal(word.Bytes([]byte("abc"))) {
		t.Error("Bytes letter must copy its payload")
	}
}

// TestWord_ConcatIdentity verifies ε is the identity of concatenation
// and that empty letters vanish on construction.
func TestWord_ConcatIdentity(t *testing.T) {
	w := word.New(word.String("a"), word.String("b"))
	if !w.Concat(word.Epsilon()).Equal(w) {
		t.Error("w·ε must equal w")
	}
	if !word.Epsilon().Concat(w).Equal(w) {
		t.Error("ε·w must equal w")
	}
	withEmpty := word.New(word.String("a"), word.Empty(), word.String("b"))
	if !withEmpty.Equal(w) {
		t.Errorf("empty letters must be dropped: got %v", withEmpty)
	}
	if got := w.Append(word.Empty()); !got.Equal(w) {
		t.Errorf("appending the empty letter must be a no-op, got %v", got)
	}
}

// TestWord_PrefixSuffix exercises extraction with clamped bounds.
func TestWord_PrefixSuffix(t *testing.T) {
	a, b, c := word.String("a"), word.String("b"), word.String("c")
	w := word.New(a, b, c)

	if got := w.Prefix(2); !got.Equal(word.New(a, b)) {
		t.Errorf("Prefix(2) = %v; want a·b", got)
	}
	if got := w.Suffix(2); !got.Equal(word.New(b, c)) {
		t.Errorf("Suffix(2) = %v; want b·c", got)
	}
	if got := w.Suffix(0); got.Len() != 0 {
		t.Errorf("Suffix(0) = %v; want ε", got)
	}
	if got := w.Prefix(99); !got.Equal(w) {
		t.Errorf("Prefix beyond length must clamp, got %v", got)
	}
	if got := w.Suffix(-1); got.Len() != 0 {
		t.Errorf("negative Suffix must clamp to ε, got %v", got)
	}
}

// TestWord_Prefixes verifies the full prefix chain in increasing order.
func TestWord_Prefixes(t *testing.T) {
	a, b := word.String("a"), word.String("b")
	w := word.New(a, b)
	got := w.Prefixes()
	want := []word.Word{word.Epsilon(), word.New(a), word.New(a, b)}
	if len(got) != len(want) {
		t.Fatalf("Prefixes len = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("Prefixes[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestWord_KeyUnambiguous checks the prefix-code property: different
// letter splits of the same rendered text produce different keys.
func TestWord_KeyUnambiguous(t *testing.T) {
	w1 := word.New(word.String("ab"), word.String("c"))
	w2 := word.New(word.String("a"), word.String("bc"))
	if w1.Key() == w2.Key() {
		t.Error("words with different letter boundaries must not share keys")
	}
	if word.Epsilon().Key() != "" {
		t.Errorf("ε key = %q; want empty", word.Epsilon().Key())
	}
}

// TestWord_Immutability ensures Append and Letters do not alias the
// receiver's storage.
func TestWord_Immutability(t *testing.T) {
	base := word.New(word.String("a"))
	w1 := base.Append(word.String("b"))
	w2 := base.Append(word.String("c"))
	if !w1.Equal(word.New(word.String("a"), word.String("b"))) {
		t.Errorf("w1 = %v; want a·b", w1)
	}
	if !w2.Equal(word.New(word.String("a"), word.String("c"))) {
		t.Errorf("w2 = %v; want a·c", w2)
	}
	ls := base.Letters()
	ls[0] = word.String("z")
	if !base.Equal(word.New(word.String("a"))) {
		t.Error("Letters must return a copy")
	}
}

// TestWord_String covers rendering of all kinds.
func TestWord_String(t *testing.T) {
	w := word.New(word.String("go"), word.Int(-7), word.Bytes([]byte{0xde, 0xad}))
	if got, want := w.String(), "go·-7·dead"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if got := word.Epsilon().String(); got != "ε" {
		t.Errorf("ε String() = %q", got)
	}
}

// TestWord_LettersRoundTrip ensures At/Letters agree.
func TestWord_LettersRoundTrip(t *testing.T) {
	in := []word.Letter{word.String("x"), word.Int(3)}
	w := word.New(in...)
	if w.Len() != 2 {
		t.Fatalf("Len = %d; want 2", w.Len())
	}
	for i := range in {
		if w.At(i) != in[i] {
			t.Errorf("At(%d) = %v; want %v", i, w.At(i), in[i])
		}
	}
	if !reflect.DeepEqual(w.Letters(), in) {
		t.Errorf("Letters() = %v; want %v", w.Letters(), in)
	}
}
