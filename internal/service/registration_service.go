package service

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/model"
	"anoa.com/ramadhanpitstop/internal/repository"
	"anoa.com/ramadhanpitstop/pkg/apperror"
	"anoa.com/ramadhanpitstop/pkg/moderation"
	"gorm.io/gorm"
)

var npkPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)

type RegistrationService interface {
	Register(ctx context.Context, input dto.RegisterRequest) (uint, error)
}

type registrationService struct {
	participants repository.ParticipantRepository
	schedules    ScheduleService
	gate         *moderation.Gate
}

func NewRegistrationService(participants repository.ParticipantRepository, schedules ScheduleService, gate *moderation.Gate) RegistrationService {
	return &registrationService{
		participants: participants,
		schedules:    schedules,
		gate:         gate,
	}
}

// Register memproses satu pendaftaran: gerbang jadwal, validasi input, cek
// duplikat NPK, lalu satu transaksi berisi baris peserta + komentar anonim
// yang tidak saling terhubung.
func (s *registrationService) Register(ctx context.Context, input dto.RegisterRequest) (uint, error) {
	// Gerbang jadwal ditegakkan di dalam service, bukan hanya di pemanggil.
	if !s.schedules.IsRegistrationOpen(ctx) {
		return 0, apperror.New(http.StatusForbidden, "Pendaftaran sedang ditutup. Pantau terus jadwal pembukaannya!", apperror.ErrRegistrationClosed)
	}

	if err := s.validateInput(input); err != nil {
		return 0, err
	}

	if _, err := s.participants.FindByNPK(ctx, input.NPK); err == nil {
		return 0, duplicateNPKError()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	participant := &model.Participant{
		Name:       input.Name,
		NPK:        input.NPK,
		Section:    input.Section,
		Attendance: input.Attendance,
	}
	// Komentar disimpan apa adanya; escaping dilakukan saat render.
	comment := &model.Comment{Content: input.Comment}

	if err := s.participants.CreateWithComment(ctx, participant, comment); err != nil {
		// Balapan antara pre-check dan insert: perlakukan sama dengan
		// penolakan duplikat biasa.
		if repository.IsUniqueViolation(err) {
			return 0, duplicateNPKError()
		}
		return 0, err
	}

	return participant.ID, nil
}

func (s *registrationService) validateInput(input dto.RegisterRequest) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.NPK) == "" ||
		strings.TrimSpace(input.Section) == "" ||
		strings.TrimSpace(input.Attendance) == "" ||
		strings.TrimSpace(input.Comment) == "" {
		return apperror.New(http.StatusBadRequest, "Semua field harus diisi!", apperror.ErrInvalidInput)
	}

	if !npkPattern.MatchString(input.NPK) {
		return apperror.New(http.StatusBadRequest, "NPK harus berisi huruf/angka saja, maksimal 8 karakter!", apperror.ErrInvalidInput)
	}

	if res := s.gate.Validate(input.Name); !res.Valid {
		return apperror.New(http.StatusBadRequest, "Nama: "+res.Message, apperror.ErrInvalidInput)
	}
	if res := s.gate.Validate(input.Comment); !res.Valid {
		return apperror.New(http.StatusBadRequest, "Komentar: "+res.Message, apperror.ErrInvalidInput)
	}

	return nil
}

func duplicateNPKError() error {
	return apperror.New(http.StatusConflict, "NPK sudah terdaftar! Gunakan NPK yang berbeda.", apperror.ErrConflict)
}
