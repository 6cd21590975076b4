package service

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"anoa.com/ramadhanpitstop/internal/dto"
	"anoa.com/ramadhanpitstop/internal/model"
	"anoa.com/ramadhanpitstop/internal/repository"
	"anoa.com/ramadhanpitstop/pkg/apperror"
	"anoa.com/ramadhanpitstop/pkg/moderation"
	"gorm.io/gorm"
)

type ParticipantService interface {
	SetCheckedIn(ctx context.Context, id uint, checkedIn bool) (*model.Participant, error)
	CreateWalkIn(ctx context.Context, input dto.WalkInRequest) (*model.Participant, error)
	ListAll(ctx context.Context) ([]model.Participant, error)
	ListPublic(ctx context.Context) ([]dto.ParticipantPublic, error)
	CleanDuplicates(ctx context.Context) (int, error)
}

type participantService struct {
	repo repository.ParticipantRepository
	gate *moderation.Gate
	hub  *LiveHub
}

func NewParticipantService(repo repository.ParticipantRepository, gate *moderation.Gate, hub *LiveHub) ParticipantService {
	return &participantService{
		repo: repo,
		gate: gate,
		hub:  hub,
	}
}

// SetCheckedIn membalik status kehadiran. Idempoten: menulis nilai yang sama
// dua kali tidak mengubah apa-apa.
func (s *participantService) SetCheckedIn(ctx context.Context, id uint, checkedIn bool) (*model.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "Peserta tidak ditemukan", apperror.ErrNotFound)
		}
		return nil, err
	}

	participant.IsCheckedIn = checkedIn
	if err := s.repo.Save(ctx, participant); err != nil {
		return nil, err
	}

	s.broadcast("check_in", participant)
	return participant, nil
}

// CreateWalkIn mendaftarkan peserta dadakan, langsung check-in. Beda dengan
// pendaftaran biasa: NPK yang sudah ada tidak ditolak, melainkan baris lama
// ditandai ulang hadir.
func (s *participantService) CreateWalkIn(ctx context.Context, input dto.WalkInRequest) (*model.Participant, error) {
	if res := s.gate.Validate(input.Name); !res.Valid {
		return nil, apperror.New(http.StatusBadRequest, "Nama: "+res.Message, apperror.ErrInvalidInput)
	}

	existing, err := s.repo.FindByNPK(ctx, input.NPK)
	if err == nil {
		existing.Attendance = model.AttendanceHadir
		existing.IsCheckedIn = true
		if err := s.repo.Save(ctx, existing); err != nil {
			return nil, err
		}

		s.broadcast("walk_in", existing)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participant := &model.Participant{
		Name:        input.Name,
		NPK:         input.NPK,
		Section:     input.Section,
		Attendance:  model.AttendanceHadir,
		IsCheckedIn: true,
	}
	if err := s.repo.Create(ctx, participant); err != nil {
		return nil, err
	}

	s.broadcast("walk_in", participant)
	return participant, nil
}

func (s *participantService) ListAll(ctx context.Context) ([]model.Participant, error) {
	return s.repo.FindAll(ctx)
}

func (s *participantService) ListPublic(ctx context.Context) ([]dto.ParticipantPublic, error) {
	participants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	public := make([]dto.ParticipantPublic, 0, len(participants))
	for _, p := range participants {
		public = append(public, dto.ParticipantPublic{
			ID:         p.ID,
			Name:       moderation.Escape(p.Name),
			NPK:        p.NPK,
			Section:    p.Section,
			Attendance: p.Attendance,
			CreatedAt:  p.CreatedAt,
		})
	}

	return public, nil
}

// CleanDuplicates adalah operasi perawatan: sisakan baris tertua per NPK,
// hapus sisanya. Satu-satunya jalur penghapusan peserta.
func (s *participantService) CleanDuplicates(ctx context.Context) (int, error) {
	participants, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].CreatedAt.Before(participants[j].CreatedAt)
	})

	seen := make(map[string]bool)
	var duplicates []uint
	for _, p := range participants {
		if seen[p.NPK] {
			duplicates = append(duplicates, p.ID)
			continue
		}
		seen[p.NPK] = true
	}

	if len(duplicates) == 0 {
		return 0, nil
	}

	if err := s.repo.DeleteByIDs(ctx, duplicates); err != nil {
		return 0, err
	}

	return len(duplicates), nil
}

func (s *participantService) broadcast(eventType string, participant *model.Participant) {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(LiveEvent{Type: eventType, Participant: participant})
}
