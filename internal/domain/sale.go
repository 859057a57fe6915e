package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NFT identifies the token attached to a sale event.
type NFT struct {
	Name        string `json:"name"`
	Identifier  string `json:"identifier"`
	Contract    string `json:"contract"`
	Collection  string `json:"collection"`
	ImageURL    string `json:"image_url"`
	MetadataURL string `json:"metadata_url"`
}

// Payment is the raw token amount paid for a sale. QuantityRaw is the
// upstream integer string (e.g. "2000000000000000000"), scaled by Decimals.
type Payment struct {
	QuantityRaw string `json:"quantity"`
	Decimals    int    `json:"decimals"`
	Symbol      string `json:"symbol"`
}

// Amount returns the human-scale payment amount (quantity / 10^decimals).
// Raw ERC-20 quantities overflow a float64 mantissa, so the division happens
// in decimal arithmetic. The second return is false for missing, non-numeric,
// or zero quantities, which are excluded from price comparisons.
func (p Payment) Amount() (decimal.Decimal, bool) {
	if p.QuantityRaw == "" {
		return decimal.Decimal{}, false
	}
	qty, err := decimal.NewFromString(p.QuantityRaw)
	if err != nil || qty.IsZero() {
		return decimal.Decimal{}, false
	}
	return qty.Shift(int32(-p.Decimals)), true
}

// SaleEvent is one marketplace sale, canonicalized from whichever upstream
// shape it arrived in. Timestamp is zero when the upstream value was missing
// or unparseable.
type SaleEvent struct {
	ID           string    `json:"id"`
	EventType    string    `json:"event_type"`
	NFT          NFT       `json:"nft"`
	Payment      Payment   `json:"payment"`
	Seller       string    `json:"seller"`
	Buyer        string    `json:"buyer"`
	Timestamp    time.Time `json:"timestamp"`
	TimestampRaw string    `json:"-"`
}

// DedupKey derives a stable identity for the event, used for first-seen
// animation bookkeeping. Empty parts are dropped before joining.
func (e SaleEvent) DedupKey() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{e.ID, e.NFT.Contract, e.NFT.Identifier, e.TimestampRaw} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "|")
}

// TokenAttribute is one trait from a token metadata document, already
// normalized from whichever of the upstream shapes it arrived in.
type TokenAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RarityTier is the normalized rarity class of an NFT.
type RarityTier string

const (
	TierCommon   RarityTier = "common"
	TierUncommon RarityTier = "uncommon"
	TierRare     RarityTier = "rare"
	TierEpic     RarityTier = "epic"
	TierOther    RarityTier = "other"
)

// RarityInfo is the resolved rarity of an NFT: the raw trait value plus its
// normalized tier.
type RarityInfo struct {
	Label string     `json:"label"`
	Tier  RarityTier `json:"tier"`
}

// AllTimeHigh is the statically configured record sale shown next to the
// session high. It is display configuration, never derived from live data.
type AllTimeHigh struct {
	Amount    float64 `json:"amount"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Timestamp int64   `json:"timestamp,omitempty"`
	ThumbURL  string  `json:"thumb_url,omitempty"`
}

// Configured reports whether the all-time-high card has enough data to show.
func (a AllTimeHigh) Configured() bool {
	return a.Amount > 0 && a.Symbol != "" && a.Name != ""
}
