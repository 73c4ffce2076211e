package service

import (
	"errors"

	"gorm.io/gorm"
)

// ErrOrderTargetMissing aborts a batch reorder when one of the ids matches
// no row; the surrounding transaction rolls every update back.
var ErrOrderTargetMissing = errors.New("order update target not found")

// OrderUpdate is one {id, order} pair of a batch reorder.
type OrderUpdate struct {
	ID    uint `json:"id" binding:"required"`
	Order int  `json:"order"`
}

func applyOrder[T any](tx *gorm.DB, updates []OrderUpdate) error {
	for _, u := range updates {
		res := tx.Model(new(T)).Where("id = ?", u.ID).Update("sort_order", u.Order)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderTargetMissing
		}
	}
	return nil
}
