package client

// http_client.go = talks to a running catalog API for the catalogctl application.

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mangacatalog/internal/microservices/http-api/apperr"
	"mangacatalog/internal/microservices/http-api/dto"
)

// HTTPClient calls the catalog endpoints.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// APIError is a non-2xx answer decoded from the {error, msg} body.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Msg, e.Status)
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *HTTPClient) GetAllManga(ctx context.Context) ([]dto.MangaResponse, error) {
	var result []dto.MangaResponse
	if err := c.do(ctx, http.MethodGet, "/mangas", http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetMangaByID(ctx context.Context, id int64) (*dto.MangaResponse, error) {
	var result dto.MangaResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/mangas/%d", id), http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) DeleteManga(ctx context.Context, id int64) (*dto.MangaSummary, error) {
	var result dto.MangaSummary
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/mangas/%d", id), http.StatusOK, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetCountries(ctx context.Context) ([]dto.LookupResponse, error) {
	var result []dto.LookupResponse
	if err := c.do(ctx, http.MethodGet, "/paises", http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetTypes(ctx context.Context) ([]dto.LookupResponse, error) {
	var result []dto.LookupResponse
	if err := c.do(ctx, http.MethodGet, "/tipos", http.StatusOK, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, want int, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	if resp.StatusCode != want {
		var body apperr.Body
		// a body that is not {error, msg} still yields the status
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &APIError{Status: resp.StatusCode, Msg: body.Msg}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
