package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"otg-stream-overlay/internal/domain"
)

const openseaBaseURL = "https://api.opensea.io/api/v2"

// ErrMissingAPIKey marks requests that cannot be made because no OpenSea key
// is configured. The sales pipeline fails closed on this, it does not
// silently degrade to keyless requests.
var ErrMissingAPIKey = errors.New("opensea API key not configured")

// OpenSeaProvider fetches collection sale events from the OpenSea events
// API and canonicalizes the several shapes they arrive in into SaleEvent.
type OpenSeaProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *Limiter
}

func NewOpenSeaProvider(tracer trace.Tracer, apiKey string) *OpenSeaProvider {
	return &OpenSeaProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: openseaBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
		limiter: NewLimiter(4, 500*time.Millisecond),
	}
}

// FetchCollectionSales returns the most recent sale events for a collection,
// newest first as delivered upstream. Limit is clamped to the API maximum
// of 50.
func (p *OpenSeaProvider) FetchCollectionSales(ctx context.Context, collection string, limit int) ([]domain.SaleEvent, error) {
	ctx, span := p.tracer.Start(ctx, "opensea.fetch-collection-sales")
	defer span.End()
	span.SetAttributes(attribute.String("collection", collection))

	if p.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	limit = clampLimit(limit)

	endpoint := fmt.Sprintf("%s/events/collection/%s?event_type=sale&limit=%d",
		p.baseURL, url.PathEscape(collection), limit)

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("opensea API error %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	events, err := parseSaleEvents(body)
	if err != nil {
		return nil, fmt.Errorf("parse sale events for %s: %w", collection, err)
	}
	return events, nil
}

// Passthrough performs an events request with the client's query parameters
// forwarded as-is and returns the upstream response verbatim. Fails closed
// without a key.
func (p *OpenSeaProvider) Passthrough(ctx context.Context, collection string, query url.Values) (*Upstream, error) {
	ctx, span := p.tracer.Start(ctx, "opensea.passthrough")
	defer span.End()

	if p.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/events/collection/%s", p.baseURL, url.PathEscape(collection))
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Upstream{
		Status:      resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func (p *OpenSeaProvider) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", p.apiKey)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > 50 {
		return 50
	}
	return limit
}

// flexString decodes a JSON value that may arrive as a string or a number.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// rawNFT tolerates both the "nft" and the legacy "asset" field spellings.
type rawNFT struct {
	Name                 string     `json:"name"`
	Identifier           flexString `json:"identifier"`
	TokenID              flexString `json:"token_id"`
	Contract             string     `json:"contract"`
	ContractAddress      string     `json:"contract_address"`
	AssetContractAddress string     `json:"asset_contract_address"`
	Collection           string     `json:"collection"`
	DisplayImageURL      string     `json:"display_image_url"`
	ImageURL             string     `json:"image_url"`
	MetadataURL          string     `json:"metadata_url"`
}

type rawSaleEvent struct {
	ID              flexString `json:"id"`
	EventID         flexString `json:"event_id"`
	OrderHash       string     `json:"order_hash"`
	TransactionHash string     `json:"transaction_hash"`
	TxHash          string     `json:"tx_hash"`
	EventType       string     `json:"event_type"`
	NFT             *rawNFT    `json:"nft"`
	Asset           *rawNFT    `json:"asset"`
	Payment         struct {
		Quantity flexString `json:"quantity"`
		Decimals *int       `json:"decimals"`
		Symbol   string     `json:"symbol"`
	} `json:"payment"`
	Seller         string     `json:"seller"`
	Buyer          string     `json:"buyer"`
	EventTimestamp flexString `json:"event_timestamp"`
	ClosingDate    flexString `json:"closing_date"`
	CreatedDate    flexString `json:"created_date"`
	OccurredAt     flexString `json:"occurred_at"`
}

// parseSaleEvents canonicalizes the upstream payload. Events live under
// "asset_events" or "events" depending on API vintage; individual events are
// normalized field by field so the rest of the system only ever sees
// SaleEvent.
func parseSaleEvents(body []byte) ([]domain.SaleEvent, error) {
	var envelope struct {
		AssetEvents []rawSaleEvent `json:"asset_events"`
		Events      []rawSaleEvent `json:"events"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	raw := envelope.AssetEvents
	if raw == nil {
		raw = envelope.Events
	}

	events := make([]domain.SaleEvent, 0, len(raw))
	for _, ev := range raw {
		events = append(events, canonicalize(ev))
	}
	return events, nil
}

func canonicalize(ev rawSaleEvent) domain.SaleEvent {
	nft := ev.NFT
	if nft == nil {
		nft = ev.Asset
	}
	if nft == nil {
		nft = &rawNFT{}
	}

	decimals := 18
	if ev.Payment.Decimals != nil {
		decimals = *ev.Payment.Decimals
	}

	tsRaw := firstNonEmpty(
		string(ev.EventTimestamp),
		string(ev.ClosingDate),
		string(ev.CreatedDate),
		string(ev.OccurredAt),
	)

	eventType := ev.EventType
	if eventType == "" {
		eventType = "sale"
	}

	return domain.SaleEvent{
		ID: firstNonEmpty(string(ev.ID), string(ev.EventID), ev.OrderHash,
			ev.TransactionHash, ev.TxHash),
		EventType: eventType,
		NFT: domain.NFT{
			Name:        nft.Name,
			Identifier:  firstNonEmpty(string(nft.Identifier), string(nft.TokenID)),
			Contract:    firstNonEmpty(nft.Contract, nft.ContractAddress, nft.AssetContractAddress),
			Collection:  nft.Collection,
			ImageURL:    firstNonEmpty(nft.DisplayImageURL, nft.ImageURL),
			MetadataURL: nft.MetadataURL,
		},
		Payment: domain.Payment{
			QuantityRaw: string(ev.Payment.Quantity),
			Decimals:    decimals,
			Symbol:      ev.Payment.Symbol,
		},
		Seller:       ev.Seller,
		Buyer:        ev.Buyer,
		Timestamp:    parseTimestamp(tsRaw),
		TimestampRaw: tsRaw,
	}
}

// parseTimestamp accepts unix seconds (as a bare number) or an RFC3339-ish
// string. Anything else yields the zero time; the window filter drops such
// events rather than guessing.
func parseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Unix(int64(f), 0).UTC()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
