package repository

import (
	"context"

	"anoa.com/ramadhanpitstop/internal/model"
	"gorm.io/gorm"
)

type GroupRepository interface {
	// Regenerate mengganti seluruh kelompok lama dengan batch baru dalam satu
	// transaksi. memberIDs[i] berisi id peserta untuk groups[i].
	Regenerate(ctx context.Context, groups []*model.Group, memberIDs [][]uint) error
	ClearAll(ctx context.Context) error
	FindAllWithMembers(ctx context.Context) ([]model.Group, error)
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Regenerate(ctx context.Context, groups []*model.Group, memberIDs [][]uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := clearGroups(tx); err != nil {
			return err
		}

		for i, group := range groups {
			if err := tx.Create(group).Error; err != nil {
				return err
			}

			if len(memberIDs[i]) == 0 {
				continue
			}
			if err := tx.Model(&model.Participant{}).
				Where("id IN ?", memberIDs[i]).
				Update("group_id", group.ID).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *groupRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(clearGroups)
}

// clearGroups mengosongkan group_id semua peserta dulu, baru menghapus baris
// kelompok, supaya tidak pernah ada referensi menggantung.
func clearGroups(tx *gorm.DB) error {
	if err := tx.Model(&model.Participant{}).
		Where("group_id IS NOT NULL").
		Update("group_id", nil).Error; err != nil {
		return err
	}

	return tx.Where("id IS NOT NULL").Delete(&model.Group{}).Error
}

func (r *groupRepository) FindAllWithMembers(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	if err := r.db.WithContext(ctx).
		Preload("Members").
		Order("group_number ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}
