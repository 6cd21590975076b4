package service

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/model"
	"anoa.com/ramadhanpitstop/internal/repository"
	"anoa.com/ramadhanpitstop/pkg/apperror"
	"gorm.io/gorm"
)

type ScheduleService interface {
	// Status melaporkan apakah pendaftaran sedang dibuka. Kegagalan storage
	// dianggap "ditutup", bukan error: peserta melihat status tutup yang
	// jelas, bukan crash.
	Status(ctx context.Context) dto.ScheduleStatusResponse
	IsRegistrationOpen(ctx context.Context) bool

	Create(ctx context.Context, input dto.ScheduleRequest) (*model.Schedule, error)
	Update(ctx context.Context, id uint, input dto.ScheduleRequest) (*model.Schedule, error)
	SetActive(ctx context.Context, id uint, active bool) (*model.Schedule, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]model.Schedule, error)
}

type scheduleService struct {
	repo repository.ScheduleRepository
	now  func() time.Time
}

func NewScheduleService(repo repository.ScheduleRepository) ScheduleService {
	return &scheduleService{
		repo: repo,
		now:  time.Now,
	}
}

// Status dievaluasi segar setiap panggilan. Admin bisa membuka/menutup jadwal
// kapan saja; status basi tidak bisa diterima, jadi tidak ada cache.
func (s *scheduleService) Status(ctx context.Context) dto.ScheduleStatusResponse {
	schedule, err := s.repo.FindActiveAt(ctx, s.now())
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// Fail closed: storage bermasalah berarti pendaftaran ditutup.
			log.Printf("schedule status lookup failed: %v", err)
		}
		return dto.ScheduleStatusResponse{IsOpen: false}
	}

	return dto.ScheduleStatusResponse{IsOpen: true, Schedule: schedule}
}

func (s *scheduleService) IsRegistrationOpen(ctx context.Context) bool {
	return s.Status(ctx).IsOpen
}

func (s *scheduleService) Create(ctx context.Context, input dto.ScheduleRequest) (*model.Schedule, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, apperror.New(http.StatusBadRequest, "Waktu selesai harus setelah waktu mulai", apperror.ErrInvalidInput)
	}

	schedule := &model.Schedule{
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Active:    input.Active,
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *scheduleService) Update(ctx context.Context, id uint, input dto.ScheduleRequest) (*model.Schedule, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, apperror.New(http.StatusBadRequest, "Waktu selesai harus setelah waktu mulai", apperror.ErrInvalidInput)
	}

	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "Jadwal tidak ditemukan", apperror.ErrNotFound)
		}
		return nil, err
	}

	schedule.StartTime = input.StartTime
	schedule.EndTime = input.EndTime
	schedule.Active = input.Active
	if err := s.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *scheduleService) SetActive(ctx context.Context, id uint, active bool) (*model.Schedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "Jadwal tidak ditemukan", apperror.ErrNotFound)
		}
		return nil, err
	}

	schedule.Active = active
	if err := s.repo.Save(ctx, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *scheduleService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *scheduleService) List(ctx context.Context) ([]model.Schedule, error) {
	return s.repo.FindAll(ctx)
}
