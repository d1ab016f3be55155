package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"tableside/internal/client"
	"tableside/internal/domain"
)

type Reservations struct {
	c *client.Client
}

func NewReservations(c *client.Client) *Reservations {
	return &Reservations{c: c}
}

func (a *Reservations) Create(ctx context.Context, reservation domain.Reservation) error {
	_, err := a.c.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/reservations",
		Body:   reservation,
	})
	return err
}

func (a *Reservations) List(ctx context.Context, filters url.Values) ([]domain.Reservation, error) {
	data, err := a.c.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/reservations/admin",
		Query:  filters,
	})
	if err != nil {
		return nil, err
	}

	var reservations []domain.Reservation
	if err := json.Unmarshal(data, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (a *Reservations) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := a.c.Do(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/reservations/" + id + "/status",
		Query:  url.Values{"status": {status}},
	})
	return err
}

// OccupiedTables returns the table ids currently held by a reservation.
func (a *Reservations) OccupiedTables(ctx context.Context) ([]string, error) {
	data, err := a.c.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/reservations/occupied",
	})
	if err != nil {
		return nil, err
	}

	var tables []string
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}
