package classifier

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// encoded holds the model input for a single text: [CLS] tokens... [SEP],
// truncated to the tokenizer's maximum sequence length. No padding is applied
// since classification requests are scored one at a time.
type encoded struct {
	inputIDs      []int64
	attentionMask []int64
	tokenTypeIDs  []int64
	seqLen        int64
}

// tokenizer performs BERT-style WordPiece tokenization.
type tokenizer struct {
	vocab  *vocab
	maxLen int
}

// newTokenizer creates a tokenizer from a vocab.txt file. maxLen bounds the
// encoded sequence length including the [CLS] and [SEP] markers.
func newTokenizer(vocabPath string, maxLen int) (*tokenizer, error) {
	v, err := loadVocab(vocabPath)
	if err != nil {
		return nil, err
	}
	return &tokenizer{vocab: v, maxLen: maxLen}, nil
}

// encode converts text into model input IDs. Inputs longer than the maximum
// sequence length are truncated, never rejected.
func (t *tokenizer) encode(text string) encoded {
	tokens := t.wordpiece(t.basicTokenize(text))

	// Truncate to fit [CLS] + tokens + [SEP] within maxLen.
	if limit := t.maxLen - 2; len(tokens) > limit {
		tokens = tokens[:limit]
	}

	n := len(tokens) + 2
	ids := make([]int64, n)
	mask := make([]int64, n)
	typeIDs := make([]int64, n) // all zeros

	ids[0] = t.vocab.clsID
	mask[0] = 1
	for i, tok := range tokens {
		ids[i+1] = t.vocab.lookup(tok)
		mask[i+1] = 1
	}
	ids[n-1] = t.vocab.sepID
	mask[n-1] = 1

	return encoded{
		inputIDs:      ids,
		attentionMask: mask,
		tokenTypeIDs:  typeIDs,
		seqLen:        int64(n),
	}
}

// basicTokenize applies BERT's BasicTokenizer: clean, lowercase, strip
// accents, split on whitespace and punctuation, handle CJK characters.
func (t *tokenizer) basicTokenize(text string) []string {
	text = cleanText(text)
	text = tokenizeChineseChars(text)
	text = strings.ToLower(text)
	text = stripAccents(text)

	// Split on whitespace, then split each token on punctuation.
	var tokens []string
	for _, word := range strings.Fields(text) {
		tokens = append(tokens, splitOnPunctuation(word)...)
	}
	return tokens
}

// wordpiece applies the WordPiece algorithm to a list of basic tokens.
func (t *tokenizer) wordpiece(tokens []string) []string {
	var result []string
	for _, token := range tokens {
		if len(token) == 0 {
			continue
		}
		result = append(result, t.wordpieceToken(token)...)
	}
	return result
}

// wordpieceToken decomposes a single basic token into WordPiece subwords.
func (t *tokenizer) wordpieceToken(token string) []string {
	runes := []rune(token)
	if len(runes) > 200 {
		return []string{"[UNK]"}
	}

	var subTokens []string
	start := 0
	for start < len(runes) {
		end := len(runes)
		found := false
		for end > start {
			sub := string(runes[start:end])
			if start > 0 {
				sub = "##" + sub
			}
			if t.vocab.contains(sub) {
				subTokens = append(subTokens, sub)
				found = true
				break
			}
			end--
		}
		if !found {
			return []string{"[UNK]"}
		}
		start = end
	}
	return subTokens
}

// cleanText removes control characters and replaces whitespace with spaces.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == 0 || r == 0xFFFD || isControl(r) {
			continue
		}
		if isWhitespace(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// tokenizeChineseChars adds spaces around CJK Unified Ideographs so they
// become individual tokens.
func tokenizeChineseChars(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	for _, r := range text {
		if isChineseChar(r) {
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitOnPunctuation splits a word at each punctuation character, keeping
// the punctuation as separate tokens.
func splitOnPunctuation(word string) []string {
	var tokens []string
	var current strings.Builder
	for _, r := range word {
		if isPunctuation(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			tokens = append(tokens, string(r))
		} else {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// Character classification helpers matching BERT's reference implementation.

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

func isPunctuation(r rune) bool {
	// BERT treats anything in ASCII range 33-47, 58-64, 91-96, 123-126 as
	// punctuation, plus Unicode punctuation categories.
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}

func isChineseChar(r rune) bool {
	// CJK Unified Ideographs and extension ranges.
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x20000 && r <= 0x2A6DF) ||
		(r >= 0x2A700 && r <= 0x2B73F) ||
		(r >= 0x2B740 && r <= 0x2B81F) ||
		(r >= 0x2B820 && r <= 0x2CEAF) ||
		(r >= 0xF900 && r <= 0xFAFF) ||
		(r >= 0x2F800 && r <= 0x2FA1F)
}
