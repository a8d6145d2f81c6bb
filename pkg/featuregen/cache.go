/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cache.go
Description: Caching feature generator. Memoizes the nested generator's
features per position while the same token slice is being decoded, so beam
decoders revisiting positions don't recompute expensive features.
*/

package featuregen

// CachedFeatureGenerator wraps one nested generator and caches its features
// by position for the token slice currently being decoded. The cache is
// invalidated whenever a different token slice arrives and whenever adaptive
// state changes. Not safe for concurrent use.
type CachedFeatureGenerator struct {
	inner FeatureGenerator

	lastTokens []string
	cache      map[int][]string

	hits   int64
	misses int64
}

// NewCachedFeatureGenerator creates a cache around the nested generator.
func NewCachedFeatureGenerator(inner FeatureGenerator) *CachedFeatureGenerator {
	return &CachedFeatureGenerator{
		inner: inner,
		cache: make(map[int][]string),
	}
}

// sameTokens reports whether the slice is the one the cache was filled for.
// Identity of the backing array is what matters, not content equality: the
// decoders reuse one slice per sentence.
func (g *CachedFeatureGenerator) sameTokens(tokens []string) bool {
	if len(tokens) == 0 || len(g.lastTokens) != len(tokens) {
		return false
	}
	return &g.lastTokens[0] == &tokens[0]
}

// AppendFeatures returns cached features for the position, computing and
// caching them on first sight.
func (g *CachedFeatureGenerator) AppendFeatures(features []string, tokens []string, index int, previousOutcomes []string) []string {
	if !g.sameTokens(tokens) {
		g.lastTokens = tokens
		g.cache = make(map[int][]string)
	}

	if cached, ok := g.cache[index]; ok {
		g.hits++
		return append(features, cached...)
	}

	g.misses++
	computed := g.inner.AppendFeatures(nil, tokens, index, previousOutcomes)
	g.cache[index] = computed
	return append(features, computed...)
}

// CacheHits returns how many lookups were served from the cache.
func (g *CachedFeatureGenerator) CacheHits() int64 {
	return g.hits
}

// CacheMisses returns how many lookups had to compute features.
func (g *CachedFeatureGenerator) CacheMisses() int64 {
	return g.misses
}

// UpdateAdaptiveData forwards to the nested generator and drops the cache:
// adaptive updates can change what the inner generator would emit.
func (g *CachedFeatureGenerator) UpdateAdaptiveData(tokens []string, outcomes []string) {
	if adaptive, ok := g.inner.(AdaptiveFeatureGenerator); ok {
		adaptive.UpdateAdaptiveData(tokens, outcomes)
	}
	g.lastTokens = nil
	g.cache = make(map[int][]string)
}

// ClearAdaptiveData forwards to the nested generator and drops the cache.
func (g *CachedFeatureGenerator) ClearAdaptiveData() error {
	g.lastTokens = nil
	g.cache = make(map[int][]string)
	if adaptive, ok := g.inner.(AdaptiveFeatureGenerator); ok {
		return adaptive.ClearAdaptiveData()
	}
	return nil
}
