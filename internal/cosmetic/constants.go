package cosmetic

import "time"

// Template cache sizing. Catalogue reads dominate; mints always bypass
// the cache.
const (
	TemplateCacheSize = 256
	TemplateCacheTTL  = 30 * time.Second
)

// enhanceChances is the base success probability of raising an instance
// from level index to index+1. Luck adds on top.
var enhanceChances = [...]float64{0.90, 0.75, 0.55, 0.35, 0.20}

// enhanceCostsMC is the MC charged per attempt at each current level.
// The attempt cost is spent whether or not the roll succeeds.
var enhanceCostsMC = [...]int64{50, 100, 200, 400, 800}
