package service

import (
	"context"
	"errors"
	"fmt"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/repository"
	"skillstack_backend/internal/util"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ActivityService 学习记录的唯一写入口，每次写入后在同一事务内重算所属技能
type ActivityService struct {
	ActivityRepo *repository.ActivityRepository
	SkillRepo    *repository.SkillRepository
	Recompute    *RecomputeService
}

func NewActivityService(activityRepo *repository.ActivityRepository, skillRepo *repository.SkillRepository, recompute *RecomputeService) *ActivityService {
	return &ActivityService{
		ActivityRepo: activityRepo,
		SkillRepo:    skillRepo,
		Recompute:    recompute,
	}
}

type ActivityRequest struct {
	SkillID    *uint            `json:"skill"`
	Date       *string          `json:"date"`
	HoursSpent *decimal.Decimal `json:"hours_spent"`
	Notes      *string          `json:"notes"`
}

type activityFields struct {
	SkillID uint   `json:"skill" validate:"required"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes   string `json:"notes"`
}

func (f *activityFields) apply(req ActivityRequest) map[string]interface{} {
	changes := make(map[string]interface{})
	if req.SkillID != nil {
		f.SkillID = *req.SkillID
	}
	if req.Date != nil {
		f.Date = strings.TrimSpace(*req.Date)
		changes["date"] = f.Date
	}
	if req.HoursSpent != nil {
		changes["hours_spent"] = *req.HoursSpent
	}
	if req.Notes != nil {
		f.Notes = *req.Notes
		changes["notes"] = f.Notes
	}
	return changes
}

// parseDate 按本地时区解析日期，与数据库连接的 loc=Local 保持一致
func parseDate(s string) time.Time {
	d, _ := time.ParseInLocation(util.DateFormat, s, time.Local)
	return d
}

func (s *ActivityService) Create(ctx context.Context, req ActivityRequest) (*model.LearningActivity, error) {
	fields := activityFields{}
	fields.apply(req)

	verr := validateStruct(fields)
	if req.HoursSpent == nil {
		verr.Add("hours_spent", "This field is required.")
	} else {
		validateActivityHours(verr, *req.HoursSpent)
	}
	if verr.HasErrors() {
		return nil, verr
	}

	activity := &model.LearningActivity{
		SkillID:    fields.SkillID,
		Date:       parseDate(fields.Date),
		HoursSpent: req.HoursSpent.Round(2),
		Notes:      fields.Notes,
	}

	err := s.Recompute.withSkill(ctx, fields.SkillID, func(tx *gorm.DB, skill *model.Skill) error {
		if err := repository.NewActivityRepository(tx).Create(activity); err != nil {
			return fmt.Errorf("create activity: %w", err)
		}
		_, err := s.Recompute.recomputeTx(tx, skill)
		return err
	})
	if errors.Is(err, util.ErrSkillNotFound) {
		return nil, util.NewValidationError("skill", fmt.Sprintf("Invalid pk %q - object does not exist.", fmt.Sprint(fields.SkillID)))
	}
	if err != nil {
		return nil, err
	}
	s.Recompute.invalidateStats(ctx)

	return s.Get(ctx, activity.ID)
}

// Update 不允许把学习记录移到其他技能
func (s *ActivityService) Update(ctx context.Context, id uint, req ActivityRequest, partial bool) (*model.LearningActivity, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := &util.ValidationError{}
	if !partial {
		if req.SkillID == nil {
			verr.Add("skill", "This field is required.")
		}
		if req.Date == nil {
			verr.Add("date", "This field is required.")
		}
		if req.HoursSpent == nil {
			verr.Add("hours_spent", "This field is required.")
		}
	}
	if req.SkillID != nil && *req.SkillID != current.SkillID {
		verr.Add("skill", "Learning activities cannot be moved to another skill.")
	}

	fields := activityFields{
		SkillID: current.SkillID,
		Date:    current.Date.Format(util.DateFormat),
		Notes:   current.Notes,
	}
	changes := fields.apply(req)
	for field, msg := range validateStruct(fields).Fields {
		verr.Add(field, msg)
	}
	if req.HoursSpent != nil {
		validateActivityHours(verr, *req.HoursSpent)
		changes["hours_spent"] = req.HoursSpent.Round(2)
	}
	if verr.HasErrors() {
		return nil, verr
	}
	if req.Date != nil {
		changes["date"] = parseDate(fields.Date)
	}

	err = s.mutate(ctx, current, func(tx *gorm.DB, activity *model.LearningActivity) error {
		if err := repository.NewActivityRepository(tx).UpdateFields(activity.ID, changes); err != nil {
			return fmt.Errorf("update activity %d: %w", activity.ID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *ActivityService) Delete(ctx context.Context, id uint) error {
	current, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	return s.mutate(ctx, current, func(tx *gorm.DB, activity *model.LearningActivity) error {
		if err := repository.NewActivityRepository(tx).Delete(activity.ID); err != nil {
			return fmt.Errorf("delete activity %d: %w", activity.ID, err)
		}
		return nil
	})
}

// mutate 锁定所属技能后重新读取学习记录，执行 fn 并重算技能
func (s *ActivityService) mutate(ctx context.Context, current *model.LearningActivity, fn func(tx *gorm.DB, activity *model.LearningActivity) error) error {
	err := s.Recompute.withSkill(ctx, current.SkillID, func(tx *gorm.DB, skill *model.Skill) error {
		activity, err := repository.NewActivityRepository(tx).FindByID(current.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrActivityNotFound
			}
			return fmt.Errorf("find activity %d: %w", current.ID, err)
		}

		if err := fn(tx, activity); err != nil {
			return err
		}
		_, err = s.Recompute.recomputeTx(tx, skill)
		return err
	})

	if errors.Is(err, util.ErrSkillNotFound) {
		// 技能已删除：学习记录若仍存在说明级联删除失效
		if _, ferr := s.ActivityRepo.WithContext(ctx).FindByID(current.ID); ferr == nil {
			return &util.ConsistencyError{
				SkillID: current.SkillID,
				Stored:  decimal.Zero,
				Actual:  current.HoursSpent,
				Reason:  fmt.Sprintf("learning activity %d references a missing skill", current.ID),
			}
		}
		return util.ErrActivityNotFound
	}
	if err != nil {
		return err
	}

	s.Recompute.invalidateStats(ctx)
	return nil
}

func (s *ActivityService) Get(ctx context.Context, id uint) (*model.LearningActivity, error) {
	activity, err := s.ActivityRepo.WithContext(ctx).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity %d: %w", id, err)
	}
	return activity, nil
}

// ActivityQuery skill 为空时返回全部学习记录
type ActivityQuery struct {
	Skill string `form:"skill"`
}

func (s *ActivityService) List(ctx context.Context, q ActivityQuery) ([]model.LearningActivity, error) {
	filter := model.ActivityFilter{}

	if raw := strings.TrimSpace(q.Skill); raw != "" {
		skillID, ok := util.ParseID(raw)
		if !ok {
			return nil, util.NewValidationError("skill", "Select a valid choice. That choice is not one of the available choices.")
		}
		if _, err := s.SkillRepo.WithContext(ctx).FindByID(skillID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, util.NewValidationError("skill", "Select a valid choice. That choice is not one of the available choices.")
			}
			return nil, fmt.Errorf("find skill %d: %w", skillID, err)
		}
		filter.SkillID = skillID
	}

	activities, err := s.ActivityRepo.WithContext(ctx).List(filter)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}
