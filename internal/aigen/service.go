package aigen

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/eduforge-ai/eduforge-go/internal/outline"
	"github.com/eduforge-ai/eduforge-go/internal/outline/gen"
)

// Outcome tells the caller where a generated tree came from, so the UI can
// phrase its messaging: the service, the local cache, or the deterministic
// fallback (with the reason for falling back). Every outcome comes with a
// usable tree.
type Outcome string

const (
	OutcomeService              Outcome = "service"
	OutcomeCached               Outcome = "cached"
	OutcomeFallbackOffline      Outcome = "fallback-offline"
	OutcomeFallbackRateLimited  Outcome = "fallback-rate-limited"
	OutcomeFallbackServiceError Outcome = "fallback-service-error"
	OutcomeFallbackMalformed    Outcome = "fallback-malformed"
)

// Fallback reports whether the tree came from the deterministic generator.
func (o Outcome) Fallback() bool {
	return o != OutcomeService && o != OutcomeCached
}

// cacheEntry is one cached parsed response.
type cacheEntry struct {
	nodes []*outline.Node
	at    time.Time
}

// Service orchestrates outline generation: prompt construction, rate-limited
// service calls, response caching, lenient parsing, and fallback to the
// deterministic generator. The clock is injected so rate-limit and TTL
// behavior is testable without real time.
type Service struct {
	client  Client
	limiter *rate.Limiter
	logger  *slog.Logger
	clock   func() time.Time
	ttl     time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// Option configures a Service.
type Option func(*Service)

// WithRateLimit replaces the default limiter (one request per 2s, burst 1).
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(s *Service) { s.limiter = rate.NewLimiter(limit, burst) }
}

// WithClock injects the time source used for rate limiting and cache TTL.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) { s.clock = clock }
}

// WithCacheTTL replaces the default 10-minute response cache lifetime.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// NewService wraps client. A nil client is allowed and makes every call use
// the deterministic fallback (offline mode).
func NewService(client Client, opts ...Option) *Service {
	s := &Service{
		client:  client,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
		logger:  slog.Default(),
		clock:   time.Now,
		ttl:     10 * time.Minute,
		cache:   make(map[string]cacheEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateOutline produces a node forest for the configuration. It never
// fails: when the service is unavailable, rate limited, or returns something
// unparseable, the deterministic generator supplies an equivalent-shaped
// tree and the outcome records why.
func (s *Service) GenerateOutline(ctx context.Context, cfg gen.Config, params gen.Params) ([]*outline.Node, Outcome) {
	if s.client == nil {
		return gen.Generate(cfg, params), OutcomeFallbackOffline
	}

	prompt := BuildPrompt(cfg, params)
	if nodes, ok := s.cached(prompt); ok {
		s.logger.Debug("serving outline from response cache")
		return nodes, OutcomeCached
	}

	if !s.limiter.AllowN(s.clock(), 1) {
		s.logger.Warn("generation rate limited; using deterministic fallback")
		return gen.Generate(cfg, params), OutcomeFallbackRateLimited
	}

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		if isRateLimitErr(err) {
			s.logger.Warn("service rate limited the request; using deterministic fallback", "error", err)
			return gen.Generate(cfg, params), OutcomeFallbackRateLimited
		}
		s.logger.Warn("generation service failed; using deterministic fallback", "error", err)
		return gen.Generate(cfg, params), OutcomeFallbackServiceError
	}

	nodes, err := ParseNodes(raw)
	if err != nil {
		s.logger.Warn("generation response unparseable; using deterministic fallback", "error", err)
		return gen.Generate(cfg, params), OutcomeFallbackMalformed
	}

	s.store(prompt, nodes)
	return nodes, OutcomeService
}

// cached returns a deep copy of a fresh cache entry for the prompt.
func (s *Service) cached(prompt string) ([]*outline.Node, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.cache[prompt]
	if !ok || s.clock().Sub(entry.at) > s.ttl {
		return nil, false
	}
	return outline.CloneNodes(entry.nodes), true
}

// store caches the parsed nodes under the prompt, copying so later caller
// edits cannot corrupt the cache. Expired entries are swept on each insert,
// keeping the map bounded in long-lived processes.
func (s *Service) store(prompt string, nodes []*outline.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock()
	for key, entry := range s.cache {
		if now.Sub(entry.at) > s.ttl {
			delete(s.cache, key)
		}
	}
	s.cache[prompt] = cacheEntry{nodes: outline.CloneNodes(nodes), at: now}
}

// isRateLimitErr recognizes an HTTP 429 from the OpenAI API.
func isRateLimitErr(err error) bool {
	var apiErr *openai.APIError
	return errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429
}
