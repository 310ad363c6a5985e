package service

import (
	"context"
	"errors"
	"fmt"
	"skillstack_backend/internal/model"
	"skillstack_backend/internal/repository"
	"skillstack_backend/internal/util"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SkillService struct {
	SkillRepo    *repository.SkillRepository
	ActivityRepo *repository.ActivityRepository
	Recompute    *RecomputeService
}

func NewSkillService(skillRepo *repository.SkillRepository, activityRepo *repository.ActivityRepository, recompute *RecomputeService) *SkillService {
	return &SkillService{
		SkillRepo:    skillRepo,
		ActivityRepo: activityRepo,
		Recompute:    recompute,
	}
}

// SkillRequest 创建/更新技能的请求体，nil 表示未提供该字段。
// hours_spent 为派生字段，不接受客户端写入。
type SkillRequest struct {
	Name           *string             `json:"name"`
	Description    *string             `json:"description"`
	ResourceType   *model.ResourceType `json:"resource_type"`
	Platform       *model.Platform     `json:"platform"`
	ResourceURL    *string             `json:"resource_url"`
	Difficulty     *model.Difficulty   `json:"difficulty"`
	EstimatedHours *int                `json:"estimated_hours"`
	Status         *model.SkillStatus  `json:"status"`
	Notes          *string             `json:"notes"`
	Tags           *string             `json:"tags"`
}

// SkillQuery 列表查询参数，原样来自 query string
type SkillQuery struct {
	Status       string `form:"status"`
	Platform     string `form:"platform"`
	ResourceType string `form:"resource_type"`
	Search       string `form:"search"`
}

// skillFields 合并后的完整字段，用于校验
type skillFields struct {
	Name           string             `json:"name" validate:"required,max=255"`
	Description    string             `json:"description"`
	ResourceType   model.ResourceType `json:"resource_type" validate:"required,resource_type"`
	Platform       model.Platform     `json:"platform" validate:"required,platform"`
	ResourceURL    string             `json:"resource_url" validate:"omitempty,max=200,http_url"`
	Difficulty     model.Difficulty   `json:"difficulty" validate:"difficulty"`
	EstimatedHours int                `json:"estimated_hours" validate:"gte=0"`
	Status         model.SkillStatus  `json:"status" validate:"skill_status"`
	Notes          string             `json:"notes"`
	Tags           string             `json:"tags" validate:"max=255"`
}

func skillFieldsOf(s *model.Skill) skillFields {
	return skillFields{
		Name:           s.Name,
		Description:    s.Description,
		ResourceType:   s.ResourceType,
		Platform:       s.Platform,
		ResourceURL:    s.ResourceURL,
		Difficulty:     s.Difficulty,
		EstimatedHours: s.EstimatedHours,
		Status:         s.Status,
		Notes:          s.Notes,
		Tags:           s.Tags,
	}
}

// apply 把请求中提供的字段覆盖到 f，返回需要落库的列
func (f *skillFields) apply(req SkillRequest) map[string]interface{} {
	changes := make(map[string]interface{})
	if req.Name != nil {
		f.Name = strings.TrimSpace(*req.Name)
		changes["name"] = f.Name
	}
	if req.Description != nil {
		f.Description = *req.Description
		changes["description"] = f.Description
	}
	if req.ResourceType != nil {
		f.ResourceType = *req.ResourceType
		changes["resource_type"] = f.ResourceType
	}
	if req.Platform != nil {
		f.Platform = *req.Platform
		changes["platform"] = f.Platform
	}
	if req.ResourceURL != nil {
		f.ResourceURL = strings.TrimSpace(*req.ResourceURL)
		changes["resource_url"] = f.ResourceURL
	}
	if req.Difficulty != nil {
		f.Difficulty = *req.Difficulty
		changes["difficulty"] = f.Difficulty
	}
	if req.EstimatedHours != nil {
		f.EstimatedHours = *req.EstimatedHours
		changes["estimated_hours"] = f.EstimatedHours
	}
	if req.Status != nil {
		f.Status = *req.Status
		changes["status"] = f.Status
	}
	if req.Notes != nil {
		f.Notes = *req.Notes
		changes["notes"] = f.Notes
	}
	if req.Tags != nil {
		f.Tags = *req.Tags
		changes["tags"] = f.Tags
	}
	return changes
}

func (f skillFields) copyTo(s *model.Skill) {
	s.Name = f.Name
	s.Description = f.Description
	s.ResourceType = f.ResourceType
	s.Platform = f.Platform
	s.ResourceURL = f.ResourceURL
	s.Difficulty = f.Difficulty
	s.EstimatedHours = f.EstimatedHours
	s.Status = f.Status
	s.Notes = f.Notes
	s.Tags = f.Tags
}

// Create 新技能的学习时长为 0、状态为 not_started，忽略请求中的 status
func (s *SkillService) Create(ctx context.Context, req SkillRequest) (*model.SkillDetail, error) {
	fields := skillFields{
		Difficulty: model.DifficultyBeginner,
		Status:     model.StatusNotStarted,
	}
	req.Status = nil
	fields.apply(req)

	if verr := validateStruct(fields); verr.HasErrors() {
		return nil, verr
	}

	skill := &model.Skill{HoursSpent: decimal.Zero}
	fields.copyTo(skill)
	if err := s.SkillRepo.WithContext(ctx).Create(skill); err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	s.Recompute.invalidateStats(ctx)

	detail := model.NewSkillDetail(skill, nil)
	return &detail, nil
}

// Update 部分更新（partial=false 时要求提供全部必填字段），随后在同一事务内重算派生字段。
// status 可由用户直接设置，但仍会被重算规则修正。
func (s *SkillService) Update(ctx context.Context, id uint, req SkillRequest, partial bool) (*model.SkillDetail, error) {
	if !partial {
		verr := &util.ValidationError{}
		if req.Name == nil {
			verr.Add("name", "This field is required.")
		}
		if req.ResourceType == nil {
			verr.Add("resource_type", "This field is required.")
		}
		if req.Platform == nil {
			verr.Add("platform", "This field is required.")
		}
		if verr.HasErrors() {
			return nil, verr
		}
	}

	err := s.Recompute.withSkill(ctx, id, func(tx *gorm.DB, skill *model.Skill) error {
		fields := skillFieldsOf(skill)
		changes := fields.apply(req)
		if verr := validateStruct(fields); verr.HasErrors() {
			return verr
		}

		if err := repository.NewSkillRepository(tx).UpdateFields(skill.ID, changes); err != nil {
			return fmt.Errorf("update skill %d: %w", skill.ID, err)
		}
		fields.copyTo(skill)

		_, err := s.Recompute.recomputeTx(tx, skill)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.Recompute.invalidateStats(ctx)

	return s.Get(ctx, id)
}

// Delete 删除技能及其全部学习记录，不触发重算
func (s *SkillService) Delete(ctx context.Context, id uint) error {
	err := s.Recompute.withSkill(ctx, id, func(tx *gorm.DB, skill *model.Skill) error {
		if err := repository.NewSkillRepository(tx).Delete(skill.ID); err != nil {
			return fmt.Errorf("delete skill %d: %w", skill.ID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.Recompute.invalidateStats(ctx)
	return nil
}

func (s *SkillService) Get(ctx context.Context, id uint) (*model.SkillDetail, error) {
	skill, err := s.SkillRepo.WithContext(ctx).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill %d: %w", id, err)
	}

	activities, err := s.ActivityRepo.WithContext(ctx).FindBySkillID(id)
	if err != nil {
		return nil, fmt.Errorf("list activities of skill %d: %w", id, err)
	}

	detail := model.NewSkillDetail(skill, activities)
	return &detail, nil
}

func (s *SkillService) List(ctx context.Context, q SkillQuery) ([]model.SkillListItem, error) {
	filter, err := q.toFilter()
	if err != nil {
		return nil, err
	}

	skills, err := s.SkillRepo.WithContext(ctx).List(filter)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	items := make([]model.SkillListItem, 0, len(skills))
	for i := range skills {
		items = append(items, model.NewSkillListItem(&skills[i]))
	}
	return items, nil
}

// toFilter 枚举类筛选值不合法时返回 ValidationError
func (q SkillQuery) toFilter() (model.SkillFilter, error) {
	filter := model.SkillFilter{
		Status:       model.SkillStatus(strings.TrimSpace(q.Status)),
		Platform:     model.Platform(strings.TrimSpace(q.Platform)),
		ResourceType: model.ResourceType(strings.TrimSpace(q.ResourceType)),
		Search:       strings.TrimSpace(q.Search),
	}

	verr := &util.ValidationError{}
	if filter.Status != "" && !filter.Status.Valid() {
		verr.Add("status", invalidChoice(string(filter.Status)))
	}
	if filter.Platform != "" && !filter.Platform.Valid() {
		verr.Add("platform", invalidChoice(string(filter.Platform)))
	}
	if filter.ResourceType != "" && !filter.ResourceType.Valid() {
		verr.Add("resource_type", invalidChoice(string(filter.ResourceType)))
	}
	return filter, verr.OrNil()
}

func invalidChoice(value string) string {
	return fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", value)
}
