package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"

	"github.com/mkvy/moviestore/movie/pkg/gateway"
)

// Resolver looks up the addresses of a service. discovery.Registry
// implementations satisfy it.
type Resolver interface {
	ServiceAddresses(ctx context.Context, serviceName string) ([]string, error)
}

// Gateway defines an HTTP gateway for the movie store rating endpoints.
type Gateway struct {
	resolver    Resolver
	serviceName string
	client      *http.Client
}

// New creates a new HTTP gateway resolving serviceName through resolver.
func New(resolver Resolver, serviceName string) *Gateway {
	return &Gateway{resolver: resolver, serviceName: serviceName, client: http.DefaultClient}
}

// PutRating submits a rating for the movie with the given id.
func (g *Gateway) PutRating(ctx context.Context, movieID string, value float64) error {
	target, err := g.ratingURL(ctx, movieID)
	if err != nil {
		return err
	}
	body, err := json.Marshal(map[string]float64{"rating": value})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return gateway.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest:
		return gateway.ErrInvalidRating
	case resp.StatusCode/100 != 2:
		return fmt.Errorf("non-2xx response: %v", resp.Status)
	}
	return nil
}

// GetAverageRating returns the average rating of a movie as rendered by the
// service. The boolean is false when the movie has no ratings yet.
func (g *Gateway) GetAverageRating(ctx context.Context, movieID string) (string, bool, error) {
	target, err := g.ratingURL(ctx, movieID)
	if err != nil {
		return "", false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", false, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", false, gateway.ErrNotFound
	case resp.StatusCode == http.StatusNoContent:
		return "", false, nil
	case resp.StatusCode/100 != 2:
		return "", false, fmt.Errorf("non-2xx response: %v", resp.Status)
	}
	var v struct {
		AverageRating string `json:"averageRating"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return "", false, err
	}
	return v.AverageRating, true, nil
}

// ratingURL picks a random service instance.
func (g *Gateway) ratingURL(ctx context.Context, movieID string) (string, error) {
	addrs, err := g.resolver.ServiceAddresses(ctx, g.serviceName)
	if err != nil {
		return "", err
	}
	return "http://" + addrs[rand.Intn(len(addrs))] + "/movies/" + url.PathEscape(movieID) + "/rating", nil
}
