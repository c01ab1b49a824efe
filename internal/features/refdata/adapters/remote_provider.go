package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"waste-movements/internal/core/httpclient"
	"waste-movements/internal/features/refdata/domain"
)

// RemoteProvider fetches the regulatory lists from a configured reference
// data API instead of the in-memory seed. Responses are JSON arrays matching
// the domain shapes.
type RemoteProvider struct {
	baseURL string
	client  *http.Client
}

// NewRemoteProvider creates a RemoteProvider for the given base URL.
func NewRemoteProvider(baseURL string) *RemoteProvider {
	return &RemoteProvider{
		baseURL: baseURL,
		client:  httpclient.NewClient(10 * time.Second),
	}
}

// Countries fetches the country list.
func (p *RemoteProvider) Countries(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	if err := p.fetch(ctx, "/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// WasteCodes fetches the waste-code lists.
func (p *RemoteProvider) WasteCodes(ctx context.Context) ([]domain.WasteCodeGroup, error) {
	var groups []domain.WasteCodeGroup
	if err := p.fetch(ctx, "/waste-codes", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// EWCCodes fetches the European Waste Catalogue list.
func (p *RemoteProvider) EWCCodes(ctx context.Context) ([]domain.EWCCode, error) {
	var codes []domain.EWCCode
	if err := p.fetch(ctx, "/ewc-codes", &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// Pops fetches the persistent-organic-pollutant list.
func (p *RemoteProvider) Pops(ctx context.Context) ([]domain.Pop, error) {
	var pops []domain.Pop
	if err := p.fetch(ctx, "/pops", &pops); err != nil {
		return nil, err
	}
	return pops, nil
}

func (p *RemoteProvider) fetch(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build reference data request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("reference data request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("reference data source returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode reference data response: %w", err)
	}
	return nil
}
