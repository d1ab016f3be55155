package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"tableside/internal/client"
	"tableside/internal/domain"
)

type Products struct {
	c *client.Client
}

func NewProducts(c *client.Client) *Products {
	return &Products{c: c}
}

func (a *Products) List(ctx context.Context, filters url.Values) ([]domain.Product, error) {
	data, err := a.c.Do(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/products",
		Query:  filters,
	})
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (a *Products) ToggleRecommend(ctx context.Context, id string, recommended bool) error {
	_, err := a.c.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/products/recommend",
		Body: map[string]any{
			"id":            id,
			"isRecommended": recommended,
		},
	})
	return err
}

func (a *Products) Add(ctx context.Context, product domain.Product) error {
	_, err := a.c.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/products",
		Body:   product,
	})
	return err
}

func (a *Products) Update(ctx context.Context, product domain.Product) error {
	_, err := a.c.Do(ctx, client.Request{
		Method: http.MethodPut,
		Path:   "/products",
		Body:   product,
	})
	return err
}

func (a *Products) Delete(ctx context.Context, id string) error {
	_, err := a.c.Do(ctx, client.Request{
		Method: http.MethodDelete,
		Path:   "/products/" + id,
	})
	return err
}

// UploadImage sends the image as multipart form data and returns the URL the
// backend stored it under.
func (a *Products) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Content-Type", writer.FormDataContentType())

	data, err := a.c.Do(ctx, client.Request{
		Method:  http.MethodPost,
		Path:    "/common/upload",
		RawBody: &buf,
		Headers: headers,
	})
	if err != nil {
		return "", err
	}

	var imageURL string
	if err := json.Unmarshal(data, &imageURL); err != nil {
		return "", err
	}
	return imageURL, nil
}
