package service

import (
	"context"
	"fmt"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/repository"
	"skillstack_backend/pkg/tracing"
	"time"

	"github.com/shopspring/decimal"
)

type StatsService struct {
	SkillRepo *repository.SkillRepository
	Cache     StatsCache
	TTL       time.Duration
}

func NewStatsService(skillRepo *repository.SkillRepository, cache StatsCache, ttl time.Duration) *StatsService {
	if cache == nil {
		cache = noopStatsCache{}
	}
	return &StatsService{
		SkillRepo: skillRepo,
		Cache:     cache,
		TTL:       ttl,
	}
}

// GetStats 仪表盘统计，优先读缓存
func (s *StatsService) GetStats(ctx context.Context) (*model.SkillStats, error) {
	ctx, span := tracing.Tracer.Start(ctx, "StatsService.GetStats")
	defer span.End()

	stats, gen, ok := s.Cache.Get(ctx)
	if ok {
		return stats, nil
	}

	stats, err := s.compute(ctx)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	if s.TTL > 0 {
		s.Cache.Set(ctx, gen, stats, s.TTL)
	}
	return stats, nil
}

func (s *StatsService) compute(ctx context.Context) (*model.SkillStats, error) {
	repo := s.SkillRepo.WithContext(ctx)

	total, err := repo.Count()
	if err != nil {
		return nil, fmt.Errorf("count skills: %w", err)
	}

	statusCounts, err := groupCounts(repo, "status")
	if err != nil {
		return nil, err
	}
	platformCounts, err := groupCounts(repo, "platform")
	if err != nil {
		return nil, err
	}
	resourceCounts, err := groupCounts(repo, "resource_type")
	if err != nil {
		return nil, err
	}

	totalHours, err := repo.SumHours()
	if err != nil {
		return nil, fmt.Errorf("sum hours: %w", err)
	}

	stats := &model.SkillStats{
		TotalSkills:           total,
		NotStartedSkills:      statusCounts[string(model.StatusNotStarted)],
		InProgressSkills:      statusCounts[string(model.StatusInProgress)],
		CompletedSkills:       statusCounts[string(model.StatusCompleted)],
		PausedSkills:          statusCounts[string(model.StatusPaused)],
		TotalHours:            totalHours.Round(2).InexactFloat64(),
		PlatformBreakdown:     make(map[model.Platform]int64),
		ResourceTypeBreakdown: make(map[model.ResourceType]int64),
		StatusBreakdown:       make(map[model.SkillStatus]int64),
	}

	if total > 0 {
		count := decimal.NewFromInt(total)
		stats.CompletionRate = decimal.NewFromInt(stats.CompletedSkills).
			Div(count).
			Mul(decimal.NewFromInt(100)).
			Round(2).
			InexactFloat64()
		stats.AvgHoursPerSkill = totalHours.Div(count).Round(2).InexactFloat64()
	}

	for _, st := range model.SkillStatuses {
		if n := statusCounts[string(st)]; n > 0 {
			stats.StatusBreakdown[st] = n
		}
	}

	var bestPlatform int64
	for _, p := range model.Platforms {
		n := platformCounts[string(p)]
		if n == 0 {
			continue
		}
		stats.PlatformBreakdown[p] = n
		// 数量相同时保留声明顺序靠前的
		if n > bestPlatform {
			p := p
			stats.MostUsedPlatform = &p
			bestPlatform = n
		}
	}

	var bestResource int64
	for _, rt := range model.ResourceTypes {
		n := resourceCounts[string(rt)]
		if n == 0 {
			continue
		}
		stats.ResourceTypeBreakdown[rt] = n
		if n > bestResource {
			rt := rt
			stats.MostUsedResourceType = &rt
			bestResource = n
		}
	}

	return stats, nil
}

func groupCounts(repo *repository.SkillRepository, column string) (map[string]int64, error) {
	rows, err := repo.CountGroupBy(column)
	if err != nil {
		return nil, fmt.Errorf("count skills by %s: %w", column, err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Value] = row.Count
	}
	return counts, nil
}
