package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Dosada05/chess-tournaments/models"
)

const tournamentsPath = "/api/tournaments"

// ErrLoadFailed - сервер ответил не-2xx статусом или прислал неразборчивое тело.
var ErrLoadFailed = errors.New("failed to load tournaments")

// Client reads the tournament listing endpoint. One call, no retries:
// retrying is the viewer's decision.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tournamentsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// дочитываем тело, чтобы соединение можно было переиспользовать
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, fmt.Errorf("%w: %s", ErrLoadFailed, resp.Status)
	}

	tournaments, err := models.DecodeTournaments(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	return tournaments, nil
}
