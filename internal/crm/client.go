// Package crm fetches deals, activities, notes, users and pipelines from the
// Pipedrive v1 REST API.
package crm

import (
	"context"
	"crmdigest/internal/analytics"
	"crmdigest/internal/models"
	"crmdigest/internal/providers"
	"crmdigest/internal/statistic/interfaces"
	"crmdigest/internal/structures"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	ResourceDeals      = "deals"
	ResourceActivities = "activities"
	ResourceNotes      = "notes"
	ResourceUsers      = "users"
	ResourcePipelines  = "pipelines"

	maxResponseSize = 64 << 20
)

type ClientInterface interface {
	FetchDeals(ctx context.Context) ([]models.Deal, error)
	FetchActivities(ctx context.Context, w analytics.Window) ([]models.Activity, error)
	FetchNotes(ctx context.Context, w analytics.Window) ([]models.Note, error)
	FetchUsers(ctx context.Context) ([]models.User, error)
	FetchPipelines(ctx context.Context) ([]models.Pipeline, error)
	Ping(ctx context.Context) (*models.User, error)
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

type Client struct {
	baseUrl    string
	token      string
	conf       structures.CrmConfig
	http       *http.Client
	limiter    *rate.Limiter
	logger     providers.Logger
	cache      providers.CacheProviderInterface
	compressor interfaces.CompressorInterface
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, logger providers.Logger, cache providers.CacheProviderInterface, compressor interfaces.CompressorInterface, metrics providers.MetricsProviderInterface) ClientInterface {
	limit := rate.Inf
	if conf.Crm.RequestInterval > 0 {
		limit = rate.Every(conf.Crm.RequestInterval)
	}
	return &Client{
		baseUrl:    strings.TrimRight(conf.Crm.BaseUrl, "/"),
		token:      conf.Crm.ApiToken,
		conf:       conf.Crm,
		http:       &http.Client{Timeout: conf.Crm.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
		cache:      cache,
		compressor: compressor,
		metrics:    metrics,
	}
}

func (c *Client) FetchDeals(ctx context.Context) ([]models.Deal, error) {
	q := url.Values{}
	q.Set("status", "all_not_deleted")
	q.Set("limit", strconv.Itoa(c.conf.PageLimit))
	return fetchList[models.Deal](ctx, c, ResourceDeals, "/deals", q)
}

func (c *Client) FetchActivities(ctx context.Context, w analytics.Window) ([]models.Activity, error) {
	q := url.Values{}
	q.Set("user_id", "0")
	q.Set("start_date", w.StartDate())
	q.Set("end_date", w.EndDate())
	q.Set("limit", strconv.Itoa(c.conf.PageLimit))
	return fetchList[models.Activity](ctx, c, ResourceActivities, "/activities", q)
}

func (c *Client) FetchNotes(ctx context.Context, w analytics.Window) ([]models.Note, error) {
	q := url.Values{}
	q.Set("start_date", w.StartDate())
	q.Set("end_date", w.EndDate())
	q.Set("limit", strconv.Itoa(c.conf.NoteLimit))
	return fetchList[models.Note](ctx, c, ResourceNotes, "/notes", q)
}

func (c *Client) FetchUsers(ctx context.Context) ([]models.User, error) {
	return cachedList[models.User](ctx, c, ResourceUsers, "/users")
}

func (c *Client) FetchPipelines(ctx context.Context) ([]models.Pipeline, error) {
	return cachedList[models.Pipeline](ctx, c, ResourcePipelines, "/pipelines")
}

// Ping checks the token by fetching the user it belongs to.
func (c *Client) Ping(ctx context.Context) (*models.User, error) {
	var env envelope[*models.User]
	if err := c.get(ctx, "/users/me", nil, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: empty /users/me response", models.ErrCrmResponse)
	}
	return env.Data, nil
}

func fetchList[T any](ctx context.Context, c *Client, resource, path string, q url.Values) ([]T, error) {
	start := time.Now()
	var env envelope[[]T]
	err := c.get(ctx, path, q, &env)
	c.metrics.ObserveCrmFetch(resource, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", resource, err)
	}
	if env.Data == nil {
		env.Data = make([]T, 0)
	}
	c.logger.Debugf(providers.TypeCrm, "Fetched %d %s", len(env.Data), resource)
	return env.Data, nil
}

// cachedList serves reference data from the cache when possible. Entries are
// zstd-compressed JSON; an unreadable entry is treated as a miss.
func cachedList[T any](ctx context.Context, c *Client, resource, path string) ([]T, error) {
	key := "crm:" + resource
	if raw, ok := c.cache.Get(key); ok {
		var items []T
		data, err := c.compressor.Decompress(raw)
		if err == nil {
			err = json.Unmarshal(data, &items)
		}
		if err == nil {
			return items, nil
		}
		c.logger.Warnf(providers.TypeCrm, "Dropping unreadable cached %s: %s", resource, err)
		c.cache.Del(key)
	}

	items, err := fetchList[T](ctx, c, resource, path, nil)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if packed, err := c.compressor.Compress(data); err == nil {
			c.cache.Set(key, packed)
		}
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out interface{ ok() (bool, string) }) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if q == nil {
		q = url.Values{}
	}
	q.Set("api_token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// *url.Error carries the full URL, token included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return fmt.Errorf("GET %s: %w", path, uerr.Err)
		}
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: GET %s: HTTP %d", models.ErrCrmResponse, path, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode %s: %s", models.ErrCrmResponse, path, err)
	}
	if success, msg := out.ok(); !success {
		if msg == "" {
			msg = "unsuccessful response"
		}
		return fmt.Errorf("%w: GET %s: %s", models.ErrCrmResponse, path, msg)
	}
	return nil
}

func (e *envelope[T]) ok() (bool, string) {
	return e.Success, e.Error
}
