package view

// Metrics is the overlay view for the price panel. All numbers arrive
// pre-formatted; SVG fields carry complete markup ready to inject into an
// OBS browser source. Empty strings mean "no data" for that slot.
type Metrics struct {
	Asset     string `json:"asset"`
	HasData   bool   `json:"hasData"`
	Price     string `json:"price"`
	PriceFlip bool   `json:"priceFlip"`
	MarketCap string `json:"marketCap"`
	Volume24h string `json:"volume24h"`

	Change1H  string `json:"change1h"`
	Change4H  string `json:"change4h"`
	Change24H string `json:"change24h"`
	Change7D  string `json:"change7d"`
	Trend     string `json:"trend"`

	High24h string `json:"high24h"`
	Low24h  string `json:"low24h"`

	SparkLive string `json:"sparkLive"`
	Spark24h  string `json:"spark24h"`

	UpdatedAt string `json:"updatedAt"`
	Date      string `json:"date"`
	Error     string `json:"error,omitempty"`
}

// FeedItem is one sale in the marketplace feed.
type FeedItem struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
	Price      string `json:"price"`
	Rarity     string `json:"rarity,omitempty"`
	RarityTier string `json:"rarityTier,omitempty"`
	Direction  string `json:"direction"`
	Time       string `json:"time"`

	Animating         bool  `json:"animating"`
	AnimationRemainMS int64 `json:"animationRemainMs"`
}

// HighCard is a highlighted sale (session high or configured all-time
// high). A nil card renders the overlay's em-dash placeholder.
type HighCard struct {
	Label    string `json:"label"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	ThumbURL string `json:"thumbUrl,omitempty"`
	Time     string `json:"time,omitempty"`
}

// Sales is the overlay view for the marketplace panel.
type Sales struct {
	Collection  string     `json:"collection"`
	Items       []FeedItem `json:"items"`
	SessionHigh *HighCard  `json:"sessionHigh"`
	AllTimeHigh *HighCard  `json:"allTimeHigh"`
	Placeholder string     `json:"placeholder,omitempty"`
	Error       string     `json:"error,omitempty"`
}
