package util

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrSkillNotFound    = fmt.Errorf("skill %w", ErrNotFound)
	ErrActivityNotFound = fmt.Errorf("learning activity %w", ErrNotFound)
)

// ValidationError 字段约束校验失败，Fields 为 字段名 -> 错误描述
// 出现该错误时不会发生任何写入
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, message)
	return e
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil 没有字段错误时返回 nil，便于直接 return
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ConsistencyError 派生数据与学习记录不一致，属于程序或集成错误，不可由用户修复
type ConsistencyError struct {
	SkillID uint
	Stored  decimal.Decimal
	Actual  decimal.Decimal
	Reason  string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("skill %d is inconsistent: %s (stored=%s actual=%s)",
		e.SkillID, e.Reason, e.Stored.StringFixed(2), e.Actual.StringFixed(2))
}
