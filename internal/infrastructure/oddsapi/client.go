package oddsapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"valuebets/internal/domain"
	"valuebets/internal/domain/entity"
	"valuebets/pkg/errcodes"
	"valuebets/pkg/httpx"
	"valuebets/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	oddsPath        = "/v4/sports/upcoming/odds/"
	errorBodyMaxLen = 200
)

type Options struct {
	BaseURL   string
	APIKey    string
	Regions   string
	Markets   string
	LogMaxLen int
}

// Client ходит в The Odds API за ближайшими событиями всех видов спорта.
type Client struct {
	httpClient *http.Client
	opts       Options
}

func NewClient(opts Options) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				httpx.NewAPIKeyRoundTripper(http.DefaultTransport, "apiKey", opts.APIKey),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(opts.LogMaxLen),
			),
		},
		opts: opts,
	}
}

// FetchOdds таймаут задаёт вызывающий через ctx.
func (c *Client) FetchOdds(ctx context.Context) ([]entity.RawEvent, error) {
	q := url.Values{}
	q.Set("regions", c.opts.Regions)
	q.Set("markets", c.opts.Markets)
	q.Set("oddsFormat", "decimal")

	endpoint := strings.TrimRight(c.opts.BaseURL, "/") + oddsPath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.SourceUnavailable, "odds request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyMaxLen)) //nolint:errcheck
		return nil, domain.NewError(
			errcodes.SourceUnavailable,
			fmt.Sprintf("odds api status %d: %s", resp.StatusCode, body),
		)
	}

	var items []jsoniter.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, domain.WrapError(err, errcodes.SourceUnavailable, "odds payload decode")
	}

	return decodeEvents(ctx, items), nil
}

// decodeEvents битое событие пропускается, остальные идут дальше.
func decodeEvents(ctx context.Context, items []jsoniter.RawMessage) []entity.RawEvent {
	events := make([]entity.RawEvent, 0, len(items))

	for i, item := range items {
		var ev entity.RawEvent
		if err := json.Unmarshal(item, &ev); err != nil {
			logger(ctx).Warn("skipping malformed odds event", slog.Int("index", i), logx.Error(err))
			continue
		}

		events = append(events, ev)
	}

	return events
}
