package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/central-university-dev/go-waste-bot/internal/common/httputil"
	"github.com/central-university-dev/go-waste-bot/internal/common/metrics"
	"github.com/central-university-dev/go-waste-bot/internal/config"
	customerrors "github.com/central-university-dev/go-waste-bot/internal/domain/errors"
)

const queryDateLayout = "02.01.2006"

// FeedClient загружает iCal-календарь вывоза для участка.
type FeedClient struct {
	client  *resty.Client
	baseURL string
	logger  *slog.Logger
}

func NewFeedClient(baseURL string, cfg *config.Config, logger *slog.Logger) *FeedClient {
	client := httputil.CreateResilientHTTPClient(cfg, logger, "waste_feed")

	return &FeedClient{
		client:  client,
		baseURL: baseURL,
		logger:  logger,
	}
}

// FetchCalendar запрашивает календарь участка за период [from, to].
// Возвращает сырой документ; корректность проверяется вызывающим.
func (c *FeedClient) FetchCalendar(ctx context.Context, locationCode string, from, to time.Time) (string, error) {
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"STANDORT":  locationCode,
			"DATUM_VON": from.Format(queryDateLayout),
			"DATUM_BIS": to.Format(queryDateLayout),
		}).
		Get(c.baseURL)
	if err != nil {
		metrics.RecordFeedFetch("error", time.Since(start))
		return "", err
	}

	if !resp.IsSuccess() {
		metrics.RecordFeedFetch("error", time.Since(start))
		return "", &customerrors.ErrFeedStatus{LocationCode: locationCode, StatusCode: resp.StatusCode()}
	}

	metrics.RecordFeedFetch("success", time.Since(start))

	return resp.String(), nil
}
