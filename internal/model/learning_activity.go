package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LearningActivity 一次学习记录，归属于单个技能
type LearningActivity struct {
	BaseModel
	SkillID    uint            `gorm:"not null;index" json:"skill"`
	Skill      *Skill          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Date       time.Time       `gorm:"type:date;not null;index" json:"date"`
	HoursSpent decimal.Decimal `gorm:"type:decimal(4,2);not null" json:"hours_spent"`
	Notes      string          `gorm:"type:text" json:"notes"`
}

func (LearningActivity) TableName() string {
	return "learning_activities"
}

// ActivityFilter 学习记录列表筛选，SkillID 为 0 时返回全部
type ActivityFilter struct {
	SkillID uint
}
