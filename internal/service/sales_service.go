package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"

	"otg-stream-overlay/internal/domain"
	"otg-stream-overlay/internal/sales"
	"otg-stream-overlay/internal/view"
)

const (
	sessionWindow    = 24 * time.Hour
	emptyPlaceholder = "No recent sales"
)

// SalesProvider fetches recent sale events for a collection.
type SalesProvider interface {
	FetchCollectionSales(ctx context.Context, collection string, limit int) ([]domain.SaleEvent, error)
}

// RarityResolver resolves an NFT's rarity, nil when it has none.
type RarityResolver interface {
	Resolve(ctx context.Context, nft domain.NFT) *domain.RarityInfo
}

// SalesService owns the marketplace panel: it polls sale events, resolves
// rarities, tracks first-seen animation windows, computes the session high,
// and publishes the feed view. Same generation-stamped publishing as the
// metrics side.
type SalesService struct {
	tracer     trace.Tracer
	provider   SalesProvider
	resolver   RarityResolver
	tracker    *sales.AnimationTracker
	collection string
	maxItems   int
	ath        domain.AllTimeHigh

	now func() time.Time

	mu         sync.Mutex
	generation uint64
	current    view.Sales
}

func NewSalesService(
	tracer trace.Tracer,
	provider SalesProvider,
	resolver RarityResolver,
	collection string,
	maxItems int,
	animationWindow time.Duration,
	ath domain.AllTimeHigh,
) *SalesService {
	if maxItems <= 0 {
		maxItems = 10
	}
	return &SalesService{
		tracer:     tracer,
		provider:   provider,
		resolver:   resolver,
		tracker:    sales.NewAnimationTracker(animationWindow),
		collection: collection,
		maxItems:   maxItems,
		ath:        ath,
		now:        time.Now,
		current: view.Sales{
			Collection:  collection,
			Placeholder: emptyPlaceholder,
		},
	}
}

// Refresh runs one poll cycle. A provider failure (including a missing API
// key) publishes an error banner and keeps the previous feed.
func (s *SalesService) Refresh(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "sales-service.refresh")
	defer span.End()

	gen := s.nextGeneration()

	events, err := s.provider.FetchCollectionSales(ctx, s.collection, s.maxItems)
	if err != nil {
		s.publishError(gen, fmt.Sprintf("sales feed unavailable (%s)", s.collection))
		return fmt.Errorf("refresh sales for %s: %w", s.collection, err)
	}

	v := s.buildView(ctx, events, s.now())
	if !s.publish(gen, v) {
		log.Printf("sales refresh for %s superseded, result discarded", s.collection)
	}
	return nil
}

// View returns the latest published view.
func (s *SalesService) View() view.Sales {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *SalesService) buildView(ctx context.Context, events []domain.SaleEvent, now time.Time) view.Sales {
	v := view.Sales{Collection: s.collection}

	limit := len(events)
	if limit > s.maxItems {
		limit = s.maxItems
	}
	v.Items = make([]view.FeedItem, 0, limit)
	for _, ev := range events[:limit] {
		v.Items = append(v.Items, s.buildItem(ctx, ev, now))
	}
	if len(v.Items) == 0 {
		v.Placeholder = emptyPlaceholder
	}

	if high := sales.SessionHigh(events, now, sessionWindow); high != nil {
		v.SessionHigh = s.highCard("SESSION HIGH", *high)
	}
	v.AllTimeHigh = s.allTimeHighCard()

	return v
}

func (s *SalesService) buildItem(ctx context.Context, ev domain.SaleEvent, now time.Time) view.FeedItem {
	item := view.FeedItem{
		Key:       ev.DedupKey(),
		Name:      view.Sanitize(ev.NFT.Name),
		ImageURL:  view.Sanitize(ev.NFT.ImageURL),
		Direction: direction(ev.Seller, ev.Buyer),
		Time:      view.FormatTime(ev.Timestamp),
	}

	if amount, ok := ev.Payment.Amount(); ok {
		item.Price = view.Sanitize(view.FormatAmount(amount, ev.Payment.Symbol))
	}

	if info := s.resolver.Resolve(ctx, ev.NFT); info != nil {
		item.Rarity = view.Sanitize(info.Label)
		item.RarityTier = string(info.Tier)
	}

	end, animating := s.tracker.Observe(item.Key, now)
	item.Animating = animating
	if animating {
		item.AnimationRemainMS = end.Sub(now).Milliseconds()
	}

	return item
}

func (s *SalesService) highCard(label string, ev domain.SaleEvent) *view.HighCard {
	card := &view.HighCard{
		Label:    label,
		Name:     view.Sanitize(ev.NFT.Name),
		ThumbURL: view.Sanitize(ev.NFT.ImageURL),
		Time:     view.FormatTime(ev.Timestamp),
	}
	if amount, ok := ev.Payment.Amount(); ok {
		card.Price = view.Sanitize(view.FormatAmount(amount, ev.Payment.Symbol))
	}
	return card
}

// allTimeHighCard renders the statically configured record sale; nil when
// the config is incomplete, which the overlay shows as a dash.
func (s *SalesService) allTimeHighCard() *view.HighCard {
	if !s.ath.Configured() {
		return nil
	}
	card := &view.HighCard{
		Label:    "ALL-TIME HIGH",
		Name:     view.Sanitize(s.ath.Name),
		Price:    view.Sanitize(view.FormatAmount(decimal.NewFromFloat(s.ath.Amount), s.ath.Symbol)),
		ThumbURL: view.Sanitize(s.ath.ThumbURL),
	}
	if s.ath.Timestamp > 0 {
		card.Time = view.FormatTime(time.Unix(s.ath.Timestamp, 0).UTC())
	}
	return card
}

func direction(seller, buyer string) string {
	from := view.FormatAddress(seller)
	to := view.FormatAddress(buyer)
	switch {
	case from == "" && to == "":
		return ""
	case from == "":
		return "→ " + to
	case to == "":
		return from + " →"
	default:
		return from + " → " + to
	}
}

func (s *SalesService) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

func (s *SalesService) publish(gen uint64, v view.Sales) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	s.current = v
	return true
}

func (s *SalesService) publishError(gen uint64, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}
	s.current.Error = msg
}
