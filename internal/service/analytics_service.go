package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/merrickdc/cms_api/internal/cache"
	"github.com/merrickdc/cms_api/internal/models"
	"github.com/merrickdc/cms_api/internal/repository"
)

const (
	dashboardCacheKey = "analytics:dashboard"
	dashboardCacheTTL = 30 * time.Second
	recentContactsN   = 5
)

// Dashboard aggregates the counts shown on the admin landing page plus the
// most recent contact submissions.
type Dashboard struct {
	TotalContacts     int                         `json:"totalContacts"`
	NewContacts       int                         `json:"newContacts"`
	TotalTestimonials int                         `json:"totalTestimonials"`
	TotalBlogPosts    int                         `json:"totalBlogPosts"`
	TotalSubscribers  int                         `json:"totalSubscribers"`
	RecentContacts    []*models.ContactSubmission `json:"recentContacts"`
}

// AnalyticsService computes the admin dashboard aggregate, cache-aside in
// Redis when a client is configured. Cache failures fall through to the
// database; the dashboard must never be unavailable because the cache is.
type AnalyticsService struct {
	contactRepo     *repository.ContactRepository
	testimonialRepo *repository.TestimonialRepository
	blogRepo        *repository.BlogRepository
	newsletterRepo  *repository.NewsletterRepository
	redis           *cache.RedisClient
}

// NewAnalyticsService constructs an AnalyticsService. redis may be nil, in
// which case caching is disabled.
func NewAnalyticsService(
	contactRepo *repository.ContactRepository,
	testimonialRepo *repository.TestimonialRepository,
	blogRepo *repository.BlogRepository,
	newsletterRepo *repository.NewsletterRepository,
	redis *cache.RedisClient,
) *AnalyticsService {
	return &AnalyticsService{
		contactRepo:     contactRepo,
		testimonialRepo: testimonialRepo,
		blogRepo:        blogRepo,
		newsletterRepo:  newsletterRepo,
		redis:           redis,
	}
}

// GetDashboard returns the current aggregate.
func (s *AnalyticsService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, dashboardCacheKey); err == nil {
			var d Dashboard
			if err := json.Unmarshal([]byte(raw), &d); err == nil {
				return &d, nil
			}
		}
	}

	d, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(d); err == nil {
			if err := s.redis.Set(ctx, dashboardCacheKey, string(raw), dashboardCacheTTL); err != nil {
				log.Debug().Err(err).Msg("Dashboard cache write failed")
			}
		}
	}

	return d, nil
}

func (s *AnalyticsService) compute(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}

	var err error
	if d.TotalContacts, err = s.contactRepo.Count(ctx); err != nil {
		return nil, err
	}
	if d.NewContacts, err = s.contactRepo.CountByStatus(ctx, models.ContactStatusNew); err != nil {
		return nil, err
	}
	if d.TotalTestimonials, err = s.testimonialRepo.Count(ctx); err != nil {
		return nil, err
	}
	if d.TotalBlogPosts, err = s.blogRepo.Count(ctx); err != nil {
		return nil, err
	}
	if d.TotalSubscribers, err = s.newsletterRepo.Count(ctx); err != nil {
		return nil, err
	}
	if d.RecentContacts, err = s.contactRepo.Recent(ctx, recentContactsN); err != nil {
		return nil, err
	}
	if d.RecentContacts == nil {
		d.RecentContacts = []*models.ContactSubmission{}
	}
	return d, nil
}
