package repository

import (
	"context"
	"time"

	"anoa.com/ramadhanpitstop/internal/model"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	Save(ctx context.Context, schedule *model.Schedule) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Schedule, error)
	FindAll(ctx context.Context) ([]model.Schedule, error)
	FindActiveAt(ctx context.Context, now time.Time) (*model.Schedule, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) Save(ctx context.Context, schedule *model.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Schedule{}, id).Error
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uint) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, err
	}

	return &schedule, nil
}

func (r *scheduleRepository) FindAll(ctx context.Context) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	return schedules, nil
}

func (r *scheduleRepository) FindActiveAt(ctx context.Context, now time.Time) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("start_time <= ?", now).
		Where("end_time >= ?", now).
		First(&schedule).Error; err != nil {
		return nil, err
	}

	return &schedule, nil
}
