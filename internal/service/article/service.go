// Package article proxies the external knowledge-base API: id validation,
// country to imp_group mapping, upstream call with Basic auth, and response
// caching.
package article

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	gocache "github.com/patrickmn/go-cache"

	"github.com/helpcentre-io/helpcentre-api/internal/model"
	"github.com/helpcentre-io/helpcentre-api/pkg/errors"
	"github.com/helpcentre-io/helpcentre-api/pkg/metrics"
)

// Config holds the upstream knowledge-base settings. Each field is settable
// through its SEARCH_API_* environment variable.
type Config struct {
	URL         string `mapstructure:"url"`
	AuthToken   string `mapstructure:"auth_token"`
	CompanyCode string `mapstructure:"company_code"`
}

var (
	articleIDPattern = regexp.MustCompile(`^\d{15}$`)

	// impGroups maps supported storefront countries to the upstream content
	// group identifier.
	impGroups = map[string]string{
		"gb": "uk",
		"ie": "ireland",
		"us": "us",
		"ca": "canada",
	}
)

const (
	upstreamTimeout = 10 * time.Second
	cacheTTL        = 5 * time.Minute
)

type ArticleServicer interface {
	Fetch(ctx context.Context, id, country string) (map[string]interface{}, error)
	Health() model.ArticleHealth
}

type Service struct {
	cfg     Config
	client  *http.Client
	cache   *gocache.Cache
	metrics *metrics.Metrics
}

func NewService(cfg Config, m *metrics.Metrics) *Service {
	r := retryablehttp.NewClient()
	r.RetryMax = 2
	r.HTTPClient.Timeout = upstreamTimeout
	r.Logger = nil

	return &Service{
		cfg:     cfg,
		client:  r.StandardClient(),
		cache:   gocache.New(cacheTTL, 10*time.Minute),
		metrics: m,
	}
}

// Fetch retrieves one knowledge-base article, appending _metadata to the
// upstream document. The upstream status code is passed through on non-2xx.
func (s *Service) Fetch(ctx context.Context, id, country string) (map[string]interface{}, error) {
	if !articleIDPattern.MatchString(id) {
		return nil, errors.BadRequest("article id must be a 15-digit number", nil)
	}
	group, ok := impGroups[strings.ToLower(country)]
	if !ok {
		return nil, errors.BadRequest(fmt.Sprintf("unsupported country %q", country), nil)
	}
	if s.cfg.URL == "" || s.cfg.AuthToken == "" {
		return nil, errors.Internal("Article service not configured", nil)
	}

	cacheKey := country + ":" + id
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached.(map[string]interface{}), nil
	}

	start := time.Now()
	body, err := s.fetchUpstream(ctx, id, group)
	elapsed := time.Since(start)
	s.metrics.ArticleLatency.Observe(elapsed.Seconds())
	if err != nil {
		return nil, err
	}

	body["_metadata"] = model.ArticleMetadata{
		FetchedAt:     time.Now().UTC(),
		ExecutionTime: elapsed.Round(time.Millisecond).String(),
		Country:       strings.ToLower(country),
	}

	s.cache.SetDefault(cacheKey, body)
	return body, nil
}

func (s *Service) fetchUpstream(ctx context.Context, id, group string) (map[string]interface{}, error) {
	endpoint := strings.Replace(s.cfg.URL, "/search", "/solution/"+id, 1)
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, errors.Internal("Article service not configured", err)
	}
	q := u.Query()
	q.Set("imp_group", group)
	if s.cfg.CompanyCode != "" {
		q.Set("companycode", s.cfg.CompanyCode)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Internal("failed to build upstream request", err)
	}
	req.Header.Set("Authorization", "Basic "+s.cfg.AuthToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.metrics.ArticleFetches.WithLabelValues("error").Inc()
		return nil, errors.Internal("article service unreachable", err)
	}
	defer resp.Body.Close()

	s.metrics.ArticleFetches.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Internal("failed to read upstream response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn().Int("status", resp.StatusCode).Str("article_id", id).Msg("upstream article fetch failed")
		return nil, errors.Upstream(resp.StatusCode, string(raw))
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, errors.Internal("invalid upstream response", err)
	}
	return body, nil
}

// Health reports configuration presence. The upstream URL path is masked so
// the endpoint cannot leak tenant identifiers.
func (s *Service) Health() model.ArticleHealth {
	h := model.ArticleHealth{
		Configured:  s.cfg.URL != "" && s.cfg.AuthToken != "",
		HasAuth:     s.cfg.AuthToken != "",
		CompanyCode: s.cfg.CompanyCode != "",
	}
	if s.cfg.URL != "" {
		h.UpstreamURL = maskURL(s.cfg.URL)
	}
	return h
}

func maskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "***"
	}
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := range segments {
		if segments[i] != "" {
			segments[i] = "***"
		}
	}
	u.Path = "/" + strings.Join(segments, "/")
	u.RawQuery = ""
	return u.String()
}
