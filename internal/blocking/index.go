package blocking

import (
	"sort"

	"tickermatch/internal/entity"
)

// Index is an inverted token→ticker-ID index. It is built once per run and
// never mutated afterwards.
type Index struct {
	buckets     map[string][]string
	tickerCount int
}

// BuildIndex inverts each ticker's token set into token→ticker-ID buckets.
// Bucket contents are sorted so lookups are deterministic regardless of
// input ordering. Tickers without tokens contribute nothing.
func BuildIndex(tickers []entity.Entity) *Index {
	buckets := make(map[string][]string)
	for _, ticker := range tickers {
		for _, token := range ticker.Tokens {
			buckets[token] = append(buckets[token], ticker.ID)
		}
	}
	for token, ids := range buckets {
		sort.Strings(ids)
		buckets[token] = dedupSorted(ids)
	}
	return &Index{buckets: buckets, tickerCount: len(tickers)}
}

// Lookup returns the ticker IDs indexed under token. The returned slice is
// shared and must not be modified.
func (idx *Index) Lookup(token string) []string {
	return idx.buckets[token]
}

// TokenCount returns the number of distinct indexed tokens.
func (idx *Index) TokenCount() int {
	return len(idx.buckets)
}

// TickerCount returns the number of tickers the index was built from.
func (idx *Index) TickerCount() int {
	return idx.tickerCount
}

func dedupSorted(ids []string) []string {
	out := ids[:0]
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			continue
		}
		out = append(out, id)
	}
	return out
}
