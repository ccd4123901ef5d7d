// Package catalog is an explicit two-source data provider for the home
// surface: primary is the live backend, secondary the built-in fixtures.
// Fallback policy: transport errors and 5xx responses switch to fixtures
// (through a circuit breaker, so a dead backend stops being polled); 4xx
// responses are surfaced to the caller, and a successful empty result is
// returned as-is, never treated as a failure.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
	"storefront-bff/internal/resilience"
)

type Provider struct {
	api     *backend.Client
	breaker *resilience.CircuitBreaker
}

func NewProvider(api *backend.Client) *Provider {
	return &Provider{
		api:     api,
		breaker: resilience.NewCircuitBreaker(3, 10*time.Second),
	}
}

// HomeData is the aggregate behind the storefront's landing surface.
type HomeData struct {
	Categories   []models.Category `json:"categories"`
	Featured     []models.Product  `json:"featured"`
	FromFixtures bool              `json:"fromFixtures"`
}

func fixtures() *HomeData {
	return &HomeData{
		Categories:   fixtureCategories(),
		Featured:     fixtureFeatured(),
		FromFixtures: true,
	}
}

// Home fetches categories and featured products concurrently. Reads retry;
// an error that matches the fallback policy yields fixtures, anything else
// is returned to the caller.
func (p *Provider) Home(ctx context.Context) (*HomeData, error) {
	if !p.breaker.Allow() {
		slog.Warn("Catalog circuit open, serving fixtures")
		return fixtures(), nil
	}

	var (
		wg         sync.WaitGroup
		categories []models.Category
		featured   []models.Product
		catErr     error
		featErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		catErr = resilience.Retry(ctx, 3, 500*time.Millisecond, func() error {
			var err error
			categories, err = p.api.GetCategories(ctx)
			return err
		})
	}()
	go func() {
		defer wg.Done()
		featErr = resilience.Retry(ctx, 3, 500*time.Millisecond, func() error {
			var err error
			featured, err = p.api.GetFeaturedProducts(ctx)
			return err
		})
	}()
	wg.Wait()

	err := errors.Join(catErr, featErr)
	p.breaker.Record(err)
	if err == nil {
		return &HomeData{Categories: categories, Featured: featured}, nil
	}

	if triggersFallback(catErr) || triggersFallback(featErr) {
		slog.Warn("Catalog fetch failed, serving fixtures", "error", err)
		return fixtures(), nil
	}
	return nil, err
}

// triggersFallback separates "service down" from "request wrong": transport
// failures and 5xx fall back, 4xx surface.
func triggersFallback(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}
