package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"tickermatch/internal/entity"
)

// tokenSplitPattern matches non-alphanumeric character runs.
var tokenSplitPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Normalizer tokenizes entity names with a fixed rule set. It is
// immutable after construction and safe for concurrent use.
type Normalizer struct {
	minTokenLength int
	commonTokens   map[string]struct{}
}

// New creates a Normalizer. Tokens shorter than minTokenLength (in runes)
// and tokens present in commonTokens are dropped. The commonTokens map is
// copied; keys are expected to be lowercase.
func New(minTokenLength int, commonTokens map[string]struct{}) *Normalizer {
	if minTokenLength < 1 {
		minTokenLength = 1
	}
	copied := make(map[string]struct{}, len(commonTokens))
	for token := range commonTokens {
		copied[strings.ToLower(token)] = struct{}{}
	}
	return &Normalizer{
		minTokenLength: minTokenLength,
		commonTokens:   copied,
	}
}

// Sponsor normalizes a sponsor record. The sponsor's ID is its raw name.
func (n *Normalizer) Sponsor(rec entity.SponsorRecord) entity.Entity {
	return entity.Entity{
		ID:      rec.Name,
		RawName: rec.Name,
		Tokens:  n.Tokens(rec.Name),
	}
}

// Ticker normalizes a ticker record. The ticker's ID is its symbol; tokens
// are derived from the listed company name.
func (n *Normalizer) Ticker(rec entity.TickerRecord) entity.Entity {
	return entity.Entity{
		ID:      rec.Symbol,
		RawName: rec.Name,
		Tokens:  n.Tokens(rec.Name),
	}
}

// Tokens extracts the significant tokens from text, sorted ascending and
// deduplicated.
func (n *Normalizer) Tokens(text string) []string {
	lowered := strings.ToLower(foldDiacritics(text))
	raw := tokenSplitPattern.Split(lowered, -1)

	seen := make(map[string]struct{}, len(raw))
	for _, token := range raw {
		if token == "" {
			continue
		}
		if utf8.RuneCountInString(token) < n.minTokenLength {
			continue
		}
		if _, common := n.commonTokens[token]; common {
			continue
		}
		seen[token] = struct{}{}
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// foldDiacritics strips combining marks so "Léo Pharma" and "Leo Pharma"
// tokenize identically.
func foldDiacritics(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}
