package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/eedept/dms-api/internal/models"
	appErrors "github.com/eedept/dms-api/pkg/errors"
)

type announcementRepository interface {
	Create(ctx context.Context, ann *models.Announcement) (string, error)
	List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error)
}

type listCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CreateAnnouncementRequest is the payload of POST /announcements.
// Level/section references are stored without an existence check.
type CreateAnnouncementRequest struct {
	Title     string          `json:"title" validate:"required"`
	Body      string          `json:"body" validate:"required"`
	AuthorID  *string         `json:"author_id"`
	Audience  models.Audience `json:"audience" validate:"omitempty,oneof=all admins teachers students level section"`
	LevelID   *string         `json:"level_id"`
	SectionID *string         `json:"section_id"`
	Pinned    bool            `json:"pinned"`
}

// AnnouncementService manages announcements, with an optional Redis-backed
// cache on the read path.
type AnnouncementService struct {
	repo      announcementRepository
	cache     listCache
	metrics   *MetricsService
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService creates an instance of AnnouncementService. A nil
// cache disables caching.
func NewAnnouncementService(repo announcementRepository, cache listCache, metrics *MetricsService, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AnnouncementService{repo: repo, cache: cache, metrics: metrics, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

// Create stores an announcement and invalidates cached listings.
func (s *AnnouncementService) Create(ctx context.Context, req CreateAnnouncementRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}

	audience := req.Audience
	if audience == "" {
		audience = models.AudienceAll
	}

	ann := &models.Announcement{
		Title:     req.Title,
		Body:      req.Body,
		AuthorID:  req.AuthorID,
		Audience:  audience,
		LevelID:   req.LevelID,
		SectionID: req.SectionID,
		Pinned:    req.Pinned,
	}

	id, err := s.repo.Create(ctx, ann)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create announcement")
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "announcements:*"); err != nil {
			s.logger.Warn("failed to invalidate announcement cache", zap.Error(err))
		}
	}

	return id, nil
}

// List returns announcements matching the filter, serving from the cache
// when a fresh entry exists for the same filter combination.
func (s *AnnouncementService) List(ctx context.Context, filter models.AnnouncementFilter) ([]models.Announcement, error) {
	key := fmt.Sprintf("announcements:%s:%s:%s", filter.Audience, filter.LevelID, filter.SectionID)

	if s.cache != nil {
		start := time.Now()
		var cached []models.Announcement
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.metrics.RecordCacheOperation(true, time.Since(start))
			return cached, nil
		}
		s.metrics.RecordCacheOperation(false, time.Since(start))
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("announcement cache lookup failed", zap.Error(err))
		}
	}

	anns, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list announcements")
	}

	if s.cache != nil {
		start := time.Now()
		if err := s.cache.Set(ctx, key, anns, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache announcements", zap.Error(err))
		}
		s.metrics.ObserveCacheWrite(time.Since(start))
	}

	return anns, nil
}
