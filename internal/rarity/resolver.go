package rarity

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"otg-stream-overlay/internal/domain"
)

const redisCacheTTL = 24 * time.Hour

// MetadataFetcher retrieves and parses a token metadata document into its
// attribute list.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, url string) ([]domain.TokenAttribute, error)
}

// RedisClient is the subset of redis used as an optional second-level cache.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// Resolver resolves the rarity tier of an NFT from its metadata document,
// memoized per token for the life of the process. Failures are cached as
// "no rarity" rather than retried: a rare transient miss is cheaper than
// refetching the same document every poll. An optional redis client carries
// the cache across restarts; rarity traits are immutable, so the entries
// only expire to bound the keyspace.
type Resolver struct {
	mu      sync.Mutex
	tracer  trace.Tracer
	fetcher MetadataFetcher
	redis   RedisClient
	cache   map[string]*domain.RarityInfo
}

func NewResolver(tracer trace.Tracer, fetcher MetadataFetcher, redisClient RedisClient) *Resolver {
	return &Resolver{
		tracer:  tracer,
		fetcher: fetcher,
		redis:   redisClient,
		cache:   make(map[string]*domain.RarityInfo),
	}
}

// Resolve returns the rarity of the NFT, or nil when it has none. Tokens
// without a usable cache key are uncacheable and resolve to nil without any
// fetch.
func (r *Resolver) Resolve(ctx context.Context, nft domain.NFT) *domain.RarityInfo {
	ctx, span := r.tracer.Start(ctx, "rarity.resolve")
	defer span.End()

	key := cacheKey(nft)
	if key == "" {
		return nil
	}
	span.SetAttributes(attribute.String("rarity.key", key))

	r.mu.Lock()
	cached, hit := r.cache[key]
	r.mu.Unlock()
	if hit {
		return cached
	}

	if r.redis != nil {
		if info, hit := r.getRedisCache(ctx, key); hit {
			r.store(ctx, key, info, false)
			return info
		}
	}

	info := r.resolveUncached(ctx, nft)
	r.store(ctx, key, info, true)
	return info
}

// Size reports how many keys are memoized in-process.
func (r *Resolver) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func (r *Resolver) resolveUncached(ctx context.Context, nft domain.NFT) *domain.RarityInfo {
	if nft.MetadataURL == "" {
		return nil
	}

	attrs, err := r.fetcher.FetchMetadata(ctx, nft.MetadataURL)
	if err != nil {
		log.Printf("rarity metadata fetch failed for %s: %v", nft.MetadataURL, err)
		return nil
	}

	label := findRarityLabel(attrs)
	if label == "" {
		return nil
	}
	return &domain.RarityInfo{Label: label, Tier: Classify(label)}
}

func (r *Resolver) store(ctx context.Context, key string, info *domain.RarityInfo, writeThrough bool) {
	r.mu.Lock()
	r.cache[key] = info
	r.mu.Unlock()

	if writeThrough && r.redis != nil {
		if err := r.setRedisCache(ctx, key, info); err != nil {
			log.Printf("rarity redis cache write error: %v", err)
		}
	}
}

// redisEntry makes the negative result ("no rarity") representable in redis.
type redisEntry struct {
	Info *domain.RarityInfo `json:"info"`
}

func (r *Resolver) setRedisCache(ctx context.Context, key string, info *domain.RarityInfo) error {
	data, err := json.Marshal(redisEntry{Info: info})
	if err != nil {
		return err
	}
	return r.redis.Set(ctx, "rarity:"+key, data, redisCacheTTL).Err()
}

func (r *Resolver) getRedisCache(ctx context.Context, key string) (*domain.RarityInfo, bool) {
	data, err := r.redis.Get(ctx, "rarity:"+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("rarity redis cache read error: %v", err)
		return nil, false
	}
	var entry redisEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return entry.Info, true
}

// cacheKey prefers the metadata URL, falls back to collection:identifier,
// and returns "" for tokens that cannot be cached at all.
func cacheKey(nft domain.NFT) string {
	if nft.MetadataURL != "" {
		return nft.MetadataURL
	}
	if nft.Collection != "" && nft.Identifier != "" {
		return nft.Collection + ":" + nft.Identifier
	}
	return ""
}

// findRarityLabel returns the value of the first attribute (in document
// order) whose name mentions rarity, tier, grade, or quality.
func findRarityLabel(attrs []domain.TokenAttribute) string {
	for _, attr := range attrs {
		name := strings.ToLower(attr.Name)
		if strings.Contains(name, "rarity") ||
			strings.Contains(name, "tier") ||
			strings.Contains(name, "grade") ||
			strings.Contains(name, "quality") {
			value := strings.TrimSpace(attr.Value)
			if value == "" {
				value = strings.TrimSpace(attr.Name)
			}
			if value == "" {
				continue
			}
			return value
		}
	}
	return ""
}

// Classify normalizes a rarity label onto one of the display tiers by
// case-insensitive substring match. The checks run in the fixed order
// common (when not containing "uncommon"), uncommon, epic, rare, with a
// later match overriding an earlier one: "Uncommon Epic" lands on epic
// because epic is checked after uncommon, not because of any semantic
// ranking. Multi-word labels classify counter-intuitively on purpose; the
// CSS classes downstream depend on this exact ordering.
func Classify(label string) domain.RarityTier {
	lower := strings.ToLower(label)

	tier := domain.TierOther
	if strings.Contains(lower, "common") && !strings.Contains(lower, "uncommon") {
		tier = domain.TierCommon
	}
	if strings.Contains(lower, "uncommon") {
		tier = domain.TierUncommon
	}
	if strings.Contains(lower, "epic") {
		tier = domain.TierEpic
	}
	if strings.Contains(lower, "rare") {
		tier = domain.TierRare
	}
	return tier
}
