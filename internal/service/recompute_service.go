package service

import (
	"context"
	"errors"
	"fmt"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/repository"
	"skillstack_backend/internal/util"
	"skillstack_backend/pkg/logger"
	"skillstack_backend/pkg/monitoring"
	"skillstack_backend/pkg/tracing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecomputeService 维护技能的派生字段（hours_spent、status）。
// 所有修改技能或其学习记录的路径都经过 withSkill：先拿进程内技能锁，
// 再在事务中 SELECT ... FOR UPDATE 锁定技能行，保证同一技能的重算串行。
type RecomputeService struct {
	DB    *gorm.DB
	Cache StatsCache
	locks *skillLocks
}

func NewRecomputeService(db *gorm.DB, cache StatsCache) *RecomputeService {
	if cache == nil {
		cache = noopStatsCache{}
	}
	return &RecomputeService{
		DB:    db,
		Cache: cache,
		locks: newSkillLocks(),
	}
}

// ConsistencyReport 一致性检查结果
type ConsistencyReport struct {
	SkillID        uint              `json:"skill_id"`
	HoursSpent     string            `json:"hours_spent"`
	ActivityHours  string            `json:"activity_hours"`
	ActivityCount  int               `json:"activity_count"`
	Status         model.SkillStatus `json:"status"`
	ExpectedStatus model.SkillStatus `json:"expected_status"`
	Consistent     bool              `json:"consistent"`
}

// withSkill 在技能锁与行锁保护下执行 fn，fn 内只能使用 tx
func (s *RecomputeService) withSkill(ctx context.Context, skillID uint, fn func(tx *gorm.DB, skill *model.Skill) error) error {
	unlock := s.locks.Lock(skillID)
	defer unlock()

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		skill, err := repository.NewSkillRepository(tx).FindByIDForUpdate(skillID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrSkillNotFound
			}
			return fmt.Errorf("lock skill %d: %w", skillID, err)
		}
		return fn(tx, skill)
	})
}

// invalidateStats 在事务提交后调用
func (s *RecomputeService) invalidateStats(ctx context.Context) {
	s.Cache.Invalidate(ctx)
}

// recomputeTx 从全部学习记录重新推导技能的时长与状态，写回 skill。
// 结果与库中一致时不写库，重复调用没有副作用。
func (s *RecomputeService) recomputeTx(tx *gorm.DB, skill *model.Skill) (bool, error) {
	activities, err := repository.NewActivityRepository(tx).FindBySkillID(skill.ID)
	if err != nil {
		monitoring.RecomputeCounter.WithLabelValues("error").Inc()
		return false, fmt.Errorf("load activities of skill %d: %w", skill.ID, err)
	}

	total := sumHours(activities)
	status := model.ResolveStatus(total, skill.EstimatedHours, skill.Status)

	if total.Equal(skill.HoursSpent) && status == skill.Status {
		monitoring.RecomputeCounter.WithLabelValues("unchanged").Inc()
		return false, nil
	}

	if err := repository.NewSkillRepository(tx).UpdateDerived(skill.ID, total, status); err != nil {
		monitoring.RecomputeCounter.WithLabelValues("error").Inc()
		return false, fmt.Errorf("update derived fields of skill %d: %w", skill.ID, err)
	}

	if status != skill.Status {
		monitoring.StatusTransitionCounter.WithLabelValues(string(skill.Status), string(status)).Inc()
		logger.Log.Debug("Skill status changed",
			zap.Uint("skill_id", skill.ID),
			zap.String("from", string(skill.Status)),
			zap.String("to", string(status)),
			zap.String("hours_spent", total.StringFixed(2)),
		)
	}
	monitoring.RecomputeCounter.WithLabelValues("changed").Inc()

	skill.HoursSpent = total
	skill.Status = status
	return true, nil
}

func sumHours(activities []model.LearningActivity) decimal.Decimal {
	total := decimal.Zero
	for _, a := range activities {
		total = total.Add(a.HoursSpent)
	}
	return total.Round(2)
}

// Recompute 重新计算单个技能的派生字段
func (s *RecomputeService) Recompute(ctx context.Context, skillID uint) (*model.Skill, error) {
	ctx, span := tracing.Tracer.Start(ctx, "RecomputeService.Recompute")
	defer span.End()
	span.SetAttributes(tracing.SkillAttr(skillID))

	var result *model.Skill
	var changed bool
	err := s.withSkill(ctx, skillID, func(tx *gorm.DB, skill *model.Skill) error {
		var err error
		if changed, err = s.recomputeTx(tx, skill); err != nil {
			return err
		}
		result = skill
		return nil
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	if changed {
		s.invalidateStats(ctx)
	}
	return result, nil
}

// RecomputeAll 逐个重算全部技能，返回发生变化的技能数
func (s *RecomputeService) RecomputeAll(ctx context.Context) (int, error) {
	ids, err := repository.NewSkillRepository(s.DB.WithContext(ctx)).FindAllIDs()
	if err != nil {
		return 0, fmt.Errorf("list skills: %w", err)
	}

	changedCount := 0
	for _, id := range ids {
		var changed bool
		err := s.withSkill(ctx, id, func(tx *gorm.DB, skill *model.Skill) error {
			var err error
			changed, err = s.recomputeTx(tx, skill)
			return err
		})
		if errors.Is(err, util.ErrSkillNotFound) {
			// 遍历期间被删除
			continue
		}
		if err != nil {
			return changedCount, err
		}
		if changed {
			changedCount++
		}
	}

	if changedCount > 0 {
		s.invalidateStats(ctx)
	}
	logger.Log.Info("Recomputed all skills", zap.Int("skills", len(ids)), zap.Int("changed", changedCount))
	return changedCount, nil
}

// CheckConsistency 对比库中的派生字段与学习记录，不一致时返回 ConsistencyError
func (s *RecomputeService) CheckConsistency(ctx context.Context, skillID uint) (*ConsistencyReport, error) {
	ctx, span := tracing.Tracer.Start(ctx, "RecomputeService.CheckConsistency")
	defer span.End()
	span.SetAttributes(tracing.SkillAttr(skillID))

	var report ConsistencyReport
	err := s.withSkill(ctx, skillID, func(tx *gorm.DB, skill *model.Skill) error {
		activities, err := repository.NewActivityRepository(tx).FindBySkillID(skill.ID)
		if err != nil {
			return fmt.Errorf("load activities of skill %d: %w", skill.ID, err)
		}

		actual := sumHours(activities)
		expected := model.ResolveStatus(actual, skill.EstimatedHours, skill.Status)
		report = ConsistencyReport{
			SkillID:        skill.ID,
			HoursSpent:     skill.HoursSpent.StringFixed(2),
			ActivityHours:  actual.StringFixed(2),
			ActivityCount:  len(activities),
			Status:         skill.Status,
			ExpectedStatus: expected,
			Consistent:     actual.Equal(skill.HoursSpent) && expected == skill.Status,
		}
		if report.Consistent {
			return nil
		}

		reason := "hours_spent does not match the activity log"
		if actual.Equal(skill.HoursSpent) {
			reason = fmt.Sprintf("status %s should be %s", skill.Status, expected)
		}
		return &util.ConsistencyError{
			SkillID: skill.ID,
			Stored:  skill.HoursSpent,
			Actual:  actual,
			Reason:  reason,
		}
	})

	if err == nil {
		return &report, nil
	}
	tracing.RecordError(span, err)

	var cerr *util.ConsistencyError
	if !errors.As(err, &cerr) {
		return nil, err
	}
	monitoring.ConsistencyFaultCounter.Inc()
	logger.Log.Error("Skill consistency fault",
		zap.Uint("skill_id", cerr.SkillID),
		zap.String("stored", cerr.Stored.StringFixed(2)),
		zap.String("actual", cerr.Actual.StringFixed(2)),
		zap.String("reason", cerr.Reason),
	)
	return &report, err
}
