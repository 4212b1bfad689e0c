package usecase

import (
	"context"
	"log"
	"time"

	"talent-bridge/internal/domain/candidate"
	"talent-bridge/internal/filter"
	"talent-bridge/internal/repository"
	"talent-bridge/internal/stats"
)

const (
	statsCacheKey = "stats:overview"
	statsCacheTTL = 60 * time.Second
)

// StatsOverview is the dashboard's aggregate panel: distribution
// buckets over the active (non-rejected) pool plus submission recency.
type StatsOverview struct {
	Total        int            `json:"total"`
	ByGender     []stats.Bucket `json:"by_gender"`
	ByStatus     []stats.Bucket `json:"by_status"`
	ByDepartment []stats.Bucket `json:"by_department"`
	RecentCount  int            `json:"recent_count"`
	Recency      []stats.Bucket `json:"recency"`
}

type StatsUsecase interface {
	Overview(ctx context.Context) (StatsOverview, error)
}

// OverviewCache is the short-TTL cache in front of the aggregation.
type OverviewCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Stats struct {
	repo   repository.CandidateRepository
	cache  OverviewCache
	logger *log.Logger

	now func() time.Time
}

func NewStatsUsecase(repo repository.CandidateRepository, c OverviewCache, logger *log.Logger) *Stats {
	return &Stats{repo: repo, cache: c, logger: logger, now: time.Now}
}

// Overview serves from cache when fresh; a cold or unavailable cache
// recomputes from the full candidate set.
func (u *Stats) Overview(ctx context.Context) (StatsOverview, error) {
	var cached StatsOverview
	if u.cache != nil {
		if hit, err := u.cache.GetJSON(ctx, statsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return StatsOverview{}, ErrInternal
	}
	active := filter.Candidates(candidate.NormalizeAll(items), filter.CandidateFilter{})

	now := u.now()
	overview := StatsOverview{
		Total:        len(active),
		ByGender:     stats.CountBy(active, stats.ByGender),
		ByStatus:     stats.CountBy(active, stats.ByStatus),
		ByDepartment: stats.CountBy(active, stats.ByDepartment),
		RecentCount:  len(stats.Window(active, now, 30)),
		Recency:      stats.RecencyHistogram(active, now),
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, statsCacheKey, overview, statsCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("STATS cache write failed | error=%v", err)
		}
	}
	return overview, nil
}
