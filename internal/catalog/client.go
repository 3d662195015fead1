package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/collection"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/cuihairu/playshelf/internal/ports"
)

const (
	tracerName = "github.com/cuihairu/playshelf/internal/catalog"

	gamesPath      = "/games"
	gamesCountPath = "/games/count"
	platformsPath  = "/platforms"

	maxSharedRetries = 3

	headerClientID      = "Client-ID"
	headerAuthorization = "Authorization"
	bearerPrefix        = "Bearer "
)

// StatusError is returned for any non-200 answer from the remote catalog.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s: unexpected status %d", e.Op, e.Code)
}

// Client is the adapter in front of the remote text-query catalog.
//
// All remote calls, token exchanges included, draw one permit from a shared
// token bucket. Results are cached per operation and normalized arguments;
// failed or cancelled calls are logged and degrade to empty results and are
// never cached. Cached values are shared, callers must not mutate them.
type Client struct {
	conf    Config
	limiter *rate.Limiter
	cache   *collection.Cache
	session *session
	tracer  trace.Tracer
	now     func() time.Time
}

var (
	_ ports.GameCatalog     = (*Client)(nil)
	_ ports.PlatformCatalog = (*Client)(nil)
)

func NewClient(c Config) (*Client, error) {
	c = c.withDefaults()
	cache, err := collection.NewCache(c.CacheTTL, collection.WithLimit(c.CacheLimit), collection.WithName("catalog"))
	if err != nil {
		return nil, fmt.Errorf("catalog cache: %w", err)
	}
	cl := &Client{
		conf:    c,
		limiter: rate.NewLimiter(rate.Limit(c.RateLimit), c.Burst),
		cache:   cache,
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
	cl.session = newSession(func() time.Time { return cl.now() }, cl.exchange)
	return cl, nil
}

// FindByID returns the game, or false when it is absent or the catalog could not answer.
func (c *Client) FindByID(ctx context.Context, id int64) (ports.Game, bool) {
	l := c.Lookup(ctx, id)
	return l.Game, l.Status == ports.LookupFound
}

// Lookup is FindByID with the reason for a miss preserved.
func (c *Client) Lookup(ctx context.Context, id int64) ports.GameLookup {
	const op = "findById"
	l, err := cached(ctx, c, op, cacheKey(op, strconv.FormatInt(id, 10)), func() (ports.GameLookup, error) {
		var rs []gameResponse
		if err := c.post(ctx, op, gamesPath, findByIDQuery(id), &rs); err != nil {
			return ports.GameLookup{}, err
		}
		if len(rs) == 0 {
			return ports.GameLookup{Status: ports.LookupAbsent}, nil
		}
		return ports.GameLookup{Game: toGame(rs[0]), Status: ports.LookupFound}, nil
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("catalog: fetch game %d: %v", id, err)
		return ports.GameLookup{Status: ports.LookupUnavailable}
	}
	return l
}

func (c *Client) FindMultipleByIDs(ctx context.Context, ids []int64) []ports.Game {
	const op = "findMultipleByIds"
	if len(ids) == 0 {
		return []ports.Game{}
	}
	norm := normalizeIDs(ids)
	keyParts := make([]string, 0, len(norm))
	for _, id := range norm {
		keyParts = append(keyParts, strconv.FormatInt(id, 10))
	}
	games, err := cached(ctx, c, op, cacheKey(op, keyParts...), func() ([]ports.Game, error) {
		var rs []gameResponse
		if err := c.post(ctx, op, gamesPath, findMultipleQuery(norm), &rs); err != nil {
			return nil, err
		}
		return toGames(rs), nil
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("catalog: fetch games %v: %v", norm, err)
		return []ports.Game{}
	}
	return games
}

func (c *Client) SearchByName(ctx context.Context, name string) []ports.Game {
	const op = "searchByName"
	text := strings.TrimSpace(name)
	games, err := cached(ctx, c, op, cacheKey(op, strings.ToLower(text)), func() ([]ports.Game, error) {
		var rs []gameResponse
		if err := c.post(ctx, op, gamesPath, searchQuery(text), &rs); err != nil {
			return nil, err
		}
		return toGames(rs), nil
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("catalog: search %q: %v", text, err)
		return []ports.Game{}
	}
	return games
}

// FilterGames counts matches first and only fetches the page when the count is
// non-zero. The two calls are independent, so the total may be stale relative
// to the page under concurrent catalog changes.
func (c *Client) FilterGames(ctx context.Context, q ports.FilterQuery) ports.Page[ports.Game] {
	const op = "filterGames"
	limit := defaultPageLimit
	if q.Limit != nil && *q.Limit > 0 {
		limit = *q.Limit
	}
	offset := 0
	if q.Offset != nil && *q.Offset > 0 {
		offset = *q.Offset
	}
	empty := ports.Page[ports.Game]{Content: []ports.Game{}, PageNumber: offset / limit, PageSize: limit}

	key := cacheKey(op, q.Filter, q.Sort, strconv.Itoa(limit), strconv.Itoa(offset))
	page, err := cached(ctx, c, op, key, func() (ports.Page[ports.Game], error) {
		var cnt countResponse
		if err := c.post(ctx, "countGames", gamesCountPath, countQuery(q.Filter), &cnt); err != nil {
			return empty, err
		}
		if cnt.Count == 0 {
			return empty, nil
		}
		var rs []gameResponse
		if err := c.post(ctx, op, gamesPath, pageQuery(q.Filter, q.Sort, limit, offset), &rs); err != nil {
			return empty, err
		}
		return ports.Page[ports.Game]{
			Content:       toGames(rs),
			TotalElements: cnt.Count,
			PageNumber:    offset / limit,
			PageSize:      limit,
		}, nil
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("catalog: filter %q sort %q: %v", q.Filter, q.Sort, err)
		return empty
	}
	return page
}

func (c *Client) ListPlatforms(ctx context.Context) []ports.Platform {
	const op = "listPlatforms"
	platforms, err := cached(ctx, c, op, cacheKey(op), func() ([]ports.Platform, error) {
		var rs []platformResponse
		if err := c.post(ctx, op, platformsPath, platformsQuery, &rs); err != nil {
			return nil, err
		}
		out := make([]ports.Platform, 0, len(rs))
		for _, r := range rs {
			out = append(out, toPlatform(r))
		}
		return out, nil
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("catalog: list platforms: %v", err)
		return []ports.Platform{}
	}
	return platforms
}

// cached shares one fetch per key among concurrent callers. The fetch runs
// under the context of whichever caller started it, so a caller whose own
// context is still live retries when that shared fetch was cancelled.
func cached[T any](ctx context.Context, c *Client, op, key string, fetch func() (T, error)) (T, error) {
	var (
		zero T
		v    any
		err  error
	)
	for attempt := 0; attempt < maxSharedRetries; attempt++ {
		missed := false
		v, err = c.cache.Take(key, func() (any, error) {
			missed = true
			return fetch()
		})
		if missed {
			cacheLookups.Inc(op, "miss")
		} else {
			cacheLookups.Inc(op, "hit")
		}
		if err == nil || missed || ctx.Err() != nil || !isCancellation(err) {
			break
		}
		logx.WithContext(ctx).Infof("catalog: shared %s fetch was cancelled by another caller, retrying", op)
	}
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("catalog cache: unexpected %T for %s", v, key)
	}
	return out, nil
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// wait takes one permit from the shared bucket, blocking until one frees up.
func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		if ctx.Err() == nil {
			// Wait gives up early when the deadline falls before the next permit.
			return fmt.Errorf("rate limit wait: %w: %v", context.DeadlineExceeded, err)
		}
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, op, path, body string, out any) error {
	return c.observe(ctx, op, path, func(ctx context.Context) error {
		tok, err := c.session.token(ctx)
		if err != nil {
			return fmt.Errorf("credential: %w", err)
		}
		if err := c.wait(ctx); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(ctx, c.conf.RequestTimeout)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.conf.BaseURL+path, strings.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set(headerClientID, c.conf.ClientID)
		req.Header.Set(headerAuthorization, bearerPrefix+tok)
		req.Header.Set("Content-Type", "text/plain")

		resp, err := httpc.DoRequest(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusUnauthorized {
			c.session.invalidate(tok)
		}
		if resp.StatusCode != http.StatusOK {
			return &StatusError{Op: op, Code: resp.StatusCode}
		}
		return json.NewDecoder(resp.Body).Decode(out)
	})
}

// exchange performs the client-credential grant against the auth endpoint.
func (c *Client) exchange(ctx context.Context) (credential, error) {
	var cred credential
	err := c.observe(ctx, "token", c.conf.AuthURL, func(ctx context.Context) error {
		if err := c.wait(ctx); err != nil {
			return err
		}
		form := url.Values{
			"client_id":     {c.conf.ClientID},
			"client_secret": {c.conf.ClientSecret},
			"grant_type":    {"client_credentials"},
		}

		ctx, cancel := context.WithTimeout(ctx, c.conf.RequestTimeout)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.conf.AuthURL, strings.NewReader(form.Encode()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := httpc.DoRequest(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return &StatusError{Op: "token", Code: resp.StatusCode}
		}
		var ar authResponse
		if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil {
			return err
		}
		if ar.AccessToken == "" {
			return errors.New("catalog: empty access token")
		}
		cred = credential{token: ar.AccessToken, expiry: c.now().Add(time.Duration(ar.ExpiresIn) * time.Second)}
		return nil
	})
	if err != nil {
		return credential{}, err
	}
	logx.WithContext(ctx).Infof("catalog: access token refreshed, expires at %s", cred.expiry.Format(time.RFC3339))
	return cred, nil
}

func (c *Client) observe(ctx context.Context, op, target string, fn func(ctx context.Context) error) error {
	ctx, span := c.tracer.Start(ctx, "catalog."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("catalog.target", target)))
	defer span.End()

	err := fn(ctx)
	result := "ok"
	if err != nil {
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	remoteRequests.Inc(op, result)
	return err
}
