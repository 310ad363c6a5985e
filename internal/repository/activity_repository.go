package repository

import (
	"context"
	"skillstack_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// WithContext 返回绑定请求上下文的仓储副本
func (r *ActivityRepository) WithContext(ctx context.Context) *ActivityRepository {
	return &ActivityRepository{DB: r.DB.WithContext(ctx)}
}

func (r *ActivityRepository) Create(activity *model.LearningActivity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) FindByID(id uint) (*model.LearningActivity, error) {
	var activity model.LearningActivity
	err := r.DB.First(&activity, id).Error
	return &activity, err
}

func (r *ActivityRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	delete(fields, "skill_id")
	return r.DB.Model(&model.LearningActivity{}).Where("id = ?", id).Updates(fields).Error
}

func (r *ActivityRepository) Delete(id uint) error {
	res := r.DB.Delete(&model.LearningActivity{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List 学习记录按日期倒序，同一天按 ID 倒序
func (r *ActivityRepository) List(filter model.ActivityFilter) ([]model.LearningActivity, error) {
	var activities []model.LearningActivity
	query := r.DB.Model(&model.LearningActivity{})
	if filter.SkillID != 0 {
		query = query.Where("skill_id = ?", filter.SkillID)
	}
	err := query.Order("date DESC").Order("id DESC").Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) FindBySkillID(skillID uint) ([]model.LearningActivity, error) {
	return r.List(model.ActivityFilter{SkillID: skillID})
}
