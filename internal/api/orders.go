package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"tableside/internal/client"
	"tableside/internal/domain"
)

type Orders struct {
	c *client.Client
}

func NewOrders(c *client.Client) *Orders {
	return &Orders{c: c}
}

// Submit places the given items as a new order and returns the created order.
func (a *Orders) Submit(ctx context.Context, items []domain.CartItem, tableID string, totalAmount float64) (*domain.Order, error) {
	data, err := a.c.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/orders",
		Body: map[string]any{
			"items":       items,
			"tableId":     tableID,
			"totalAmount": totalAmount,
		},
	})
	if err != nil {
		return nil, err
	}

	var order domain.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// List fetches orders for the admin back office. Filters pass through
// untouched (paging, status, date range are the backend's business).
func (a *Orders) List(ctx context.Context, filters url.Values) ([]domain.Order, error) {
	data, err := a.c.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/orders",
		Query:  filters,
	})
	if err != nil {
		return nil, err
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (a *Orders) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := a.c.Do(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/orders/" + id + "/status",
		Query:  url.Values{"status": {status}},
	})
	return err
}
