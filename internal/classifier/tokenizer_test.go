package classifier

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// testVocab writes a small vocabulary where the line number is the token ID.
func testVocab(t *testing.T) string {
	t.Helper()
	lines := "[PAD]\n[UNK]\n[CLS]\n[SEP]\nhello\nworld\nfeel\n##ing\n!\n"
	p := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(p, []byte(lines), 0o644); err != nil {
		t.Fatalf("write vocab: %v", err)
	}
	return p
}

func newTestTokenizer(t *testing.T, maxLen int) *tokenizer {
	t.Helper()
	tok, err := newTokenizer(testVocab(t), maxLen)
	if err != nil {
		t.Fatalf("new tokenizer: %v", err)
	}
	return tok
}

func TestVocabSpecialTokens(t *testing.T) {
	v, err := loadVocab(testVocab(t))
	if err != nil {
		t.Fatalf("load vocab: %v", err)
	}
	if v.padID != 0 || v.unkID != 1 || v.clsID != 2 || v.sepID != 3 {
		t.Fatalf("unexpected special IDs: pad=%d unk=%d cls=%d sep=%d", v.padID, v.unkID, v.clsID, v.sepID)
	}
	if v.size() != 9 {
		t.Fatalf("expected 9 tokens, got %d", v.size())
	}
	if got := v.lookup("not-in-vocab"); got != v.unkID {
		t.Fatalf("expected [UNK] for unknown token, got %d", got)
	}
}

func TestVocabMissingSpecial(t *testing.T) {
	p := filepath.Join(t.TempDir(), "vocab.txt")
	if err := os.WriteFile(p, []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatalf("write vocab: %v", err)
	}
	if _, err := loadVocab(p); err == nil {
		t.Fatalf("expected error for vocab without special tokens")
	}
}

var encodeTests = []struct {
	name string
	text string
	ids  []int64
}{
	{name: "simple", text: "Hello world", ids: []int64{2, 4, 5, 3}},
	{name: "wordpiece split", text: "feeling", ids: []int64{2, 6, 7, 3}},
	{name: "unknown token", text: "xyzzy", ids: []int64{2, 1, 3}},
	{name: "punctuation split", text: "hello!", ids: []int64{2, 4, 8, 3}},
	{name: "empty string", text: "", ids: []int64{2, 3}},
	{name: "whitespace collapsed", text: "  hello \t world  ", ids: []int64{2, 4, 5, 3}},
}

func TestEncode(t *testing.T) {
	tok := newTestTokenizer(t, 128)
	for _, tc := range encodeTests {
		t.Run(tc.name, func(t *testing.T) {
			enc := tok.encode(tc.text)
			if !reflect.DeepEqual(enc.inputIDs, tc.ids) {
				t.Fatalf("ids = %v, want %v", enc.inputIDs, tc.ids)
			}
			if enc.seqLen != int64(len(tc.ids)) {
				t.Fatalf("seqLen = %d, want %d", enc.seqLen, len(tc.ids))
			}
			for i, m := range enc.attentionMask {
				if m != 1 {
					t.Fatalf("mask[%d] = %d, want 1 (no padding expected)", i, m)
				}
			}
		})
	}
}

func TestEncodeTruncatesLongInput(t *testing.T) {
	tok := newTestTokenizer(t, 5)
	enc := tok.encode("hello world feeling")
	// [CLS] hello world feel [SEP] — "##ing" truncated away.
	want := []int64{2, 4, 5, 6, 3}
	if !reflect.DeepEqual(enc.inputIDs, want) {
		t.Fatalf("ids = %v, want %v", enc.inputIDs, want)
	}
}

func TestStripAccents(t *testing.T) {
	if got := stripAccents("café résumé"); got != "cafe resume" {
		t.Fatalf("stripAccents = %q", got)
	}
}

func TestCleanTextDropsControls(t *testing.T) {
	if got := cleanText("a\x00b\tc"); got != "ab c" {
		t.Fatalf("cleanText = %q", got)
	}
}
