package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"viralclip-ads/internal/core/domain"
	"viralclip-ads/internal/core/port"
)

type adSource int

const (
	sourceGenerated adSource = iota
	sourceFallback
)

func (s adSource) String() string {
	if s == sourceFallback {
		return "fallback"
	}
	return "generated"
}

// refreshResult is the outcome of a regeneration attempt. ad is always
// usable; err explains why the fallback was chosen.
type refreshResult struct {
	ad     domain.AdContent
	source adSource
	err    error
}

// AdUseCase serves the daily ad. It orchestrates the store, the generator
// and the affiliate resolver to implement the port.AdUseCase interface.
type AdUseCase struct {
	store     port.AdStore
	generator port.AdGenerator
	affiliate port.AffiliateResolver
	clock     port.Clock
	logger    *slog.Logger

	// key is the store key the ad is persisted under.
	key   string
	newID func() string
}

// Option customises an AdUseCase.
type Option func(*AdUseCase)

// WithClock overrides the time source used for expiry.
func WithClock(c port.Clock) Option {
	return func(u *AdUseCase) { u.clock = c }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *AdUseCase) { u.logger = l }
}

// WithStorageKey overrides domain.AdStorageKey.
func WithStorageKey(key string) Option {
	return func(u *AdUseCase) {
		if key != "" {
			u.key = key
		}
	}
}

// WithIDGenerator overrides how generated ads are identified.
func WithIDGenerator(fn func() string) Option {
	return func(u *AdUseCase) { u.newID = fn }
}

// NewAdUseCase creates a new usecase backed by the given store, generator
// and affiliate resolver.
func NewAdUseCase(store port.AdStore, generator port.AdGenerator, affiliate port.AffiliateResolver, opts ...Option) *AdUseCase {
	u := &AdUseCase{
		store:     store,
		generator: generator,
		affiliate: affiliate,
		clock:     port.SystemClock{},
		logger:    slog.Default(),
		key:       domain.AdStorageKey,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetCurrentAd returns the stored ad while it is fresh, otherwise it
// generates, persists and returns a new one. Generation failures produce
// the fallback ad, which is persisted the same way. It never fails.
//
// Cancellation of ctx is ignored: a caller that goes away mid-generation
// must not leave a fallback ad cached for a whole TTL. Context values are
// still passed through.
func (u *AdUseCase) GetCurrentAd(ctx context.Context) domain.AdContent {
	ctx = context.WithoutCancel(ctx)
	now := u.clock.Now()

	if ad, ok := u.cached(ctx, now); ok {
		u.logger.Debug("serving cached ad", slog.String("sponsor", ad.SponsorName))
		return ad
	}

	u.logger.Info("generating fresh ad campaign")
	res := u.refresh(ctx, now)
	if res.err != nil {
		u.logger.Error("failed to generate ad, serving fallback", slog.Any("error", res.err))
	}

	if err := u.persist(ctx, res.ad); err != nil {
		u.logger.Error("failed to persist ad", slog.String("source", res.source.String()), slog.Any("error", err))
	}
	return res.ad
}

// cached returns the stored ad when one exists, decodes cleanly and is
// still fresh. Anything else is a miss.
func (u *AdUseCase) cached(ctx context.Context, now time.Time) (domain.AdContent, bool) {
	raw, found, err := u.store.Get(ctx, u.key)
	if err != nil {
		u.logger.Warn("failed to read cached ad", slog.Any("error", err))
		return domain.AdContent{}, false
	}
	if !found {
		return domain.AdContent{}, false
	}
	ad, err := decodeAd(raw)
	if err != nil {
		u.logger.Warn("failed to parse stored ad", slog.Any("error", err))
		return domain.AdContent{}, false
	}
	if !ad.Fresh(now) {
		u.logger.Debug("cached ad expired", slog.String("sponsor", ad.SponsorName), slog.Duration("age", ad.Age(now)))
		return domain.AdContent{}, false
	}
	return ad, true
}

// refresh asks the generator for a new creative. Every failure, including
// a panicking generator, yields the fallback ad stamped with now.
func (u *AdUseCase) refresh(ctx context.Context, now time.Time) (res refreshResult) {
	defer func() {
		if r := recover(); r != nil {
			res = fallbackResult(now, fmt.Errorf("ad generator panicked: %v", r))
		}
	}()

	gen, err := u.generator.Generate(ctx)
	if err != nil {
		return fallbackResult(now, fmt.Errorf("generate ad: %w", err))
	}
	if err = gen.Validate(); err != nil {
		return fallbackResult(now, fmt.Errorf("generated ad: %w", err))
	}

	ad := domain.AdContent{
		ID:             u.newID(),
		SponsorName:    gen.SponsorName,
		SponsorTagline: gen.SponsorTagline,
		Description:    gen.Description,
		CTAText:        gen.CTAText,
		AffiliateLink:  u.affiliate.Resolve(gen.SponsorName),
		ThemeColor:     gen.ThemeColor,
		GeneratedAt:    now.UTC(),
	}
	if err = ad.Validate(); err != nil {
		return fallbackResult(now, err)
	}
	return refreshResult{ad: ad, source: sourceGenerated}
}

func fallbackResult(now time.Time, err error) refreshResult {
	return refreshResult{ad: domain.FallbackAd(now), source: sourceFallback, err: err}
}

// persist overwrites the stored ad.
func (u *AdUseCase) persist(ctx context.Context, ad domain.AdContent) error {
	data, err := json.Marshal(ad)
	if err != nil {
		return err
	}
	return u.store.Set(ctx, u.key, string(data))
}

func decodeAd(raw string) (domain.AdContent, error) {
	var ad domain.AdContent
	if err := json.Unmarshal([]byte(raw), &ad); err != nil {
		return domain.AdContent{}, err
	}
	if err := ad.Validate(); err != nil {
		return domain.AdContent{}, err
	}
	return ad, nil
}
