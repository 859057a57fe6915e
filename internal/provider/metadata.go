package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"otg-stream-overlay/internal/domain"
)

// MetadataProvider fetches token metadata documents and extracts their
// attribute lists. Documents in the wild keep attributes under "attributes",
// "traits", or "properties.attributes"; all three are handled here so
// callers never see the variance.
type MetadataProvider struct {
	client *http.Client
	tracer trace.Tracer
}

func NewMetadataProvider(tracer trace.Tracer) *MetadataProvider {
	return &MetadataProvider{
		client: &http.Client{Timeout: 15 * time.Second},
		tracer: tracer,
	}
}

// FetchMetadata retrieves the document at url and returns its attributes in
// document order. Any non-200 status is an error.
func (p *MetadataProvider) FetchMetadata(ctx context.Context, url string) ([]domain.TokenAttribute, error) {
	ctx, span := p.tracer.Start(ctx, "metadata.fetch")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return ParseAttributes(body)
}

type rawAttribute struct {
	TraitType string     `json:"trait_type"`
	Type      string     `json:"type"`
	Name      string     `json:"name"`
	Value     flexString `json:"value"`
}

// ParseAttributes extracts the attribute list from a metadata document,
// trying the known shapes in order.
func ParseAttributes(body []byte) ([]domain.TokenAttribute, error) {
	var doc struct {
		Attributes []rawAttribute `json:"attributes"`
		Traits     []rawAttribute `json:"traits"`
		Properties struct {
			Attributes []rawAttribute `json:"attributes"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}

	raw := doc.Attributes
	if len(raw) == 0 {
		raw = doc.Traits
	}
	if len(raw) == 0 {
		raw = doc.Properties.Attributes
	}

	attrs := make([]domain.TokenAttribute, 0, len(raw))
	for _, a := range raw {
		attrs = append(attrs, domain.TokenAttribute{
			Name:  firstNonEmpty(a.TraitType, a.Type, a.Name),
			Value: string(a.Value),
		})
	}
	return attrs, nil
}
