package service

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"anoa.com/ramadhanpitstop/internal/model"
	"anoa.com/ramadhanpitstop/internal/repository"
	"anoa.com/ramadhanpitstop/pkg/apperror"
	"gorm.io/gorm"
)

type GroupService interface {
	// Generate membuang seluruh pembagian lama dan membuat pembagian baru
	// yang acak tapi merata antar-section, dalam satu transaksi.
	Generate(ctx context.Context, groupCount int) (int, error)
	DeleteAll(ctx context.Context) error
	Assign(ctx context.Context, participantID uint, groupID *uint) error
	List(ctx context.Context) ([]model.Group, error)
}

type groupService struct {
	groups       repository.GroupRepository
	participants repository.ParticipantRepository
	rng          *rand.Rand
}

func NewGroupService(groups repository.GroupRepository, participants repository.ParticipantRepository) GroupService {
	return &groupService{
		groups:       groups,
		participants: participants,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Tidak ada proteksi terhadap dua Generate yang berjalan bersamaan; operator
// tunggal diasumsikan tidak memicu generate dari dua sesi sekaligus.
func (s *groupService) Generate(ctx context.Context, groupCount int) (int, error) {
	if groupCount < 1 {
		return 0, apperror.New(http.StatusBadRequest, "Jumlah kelompok harus minimal 1", apperror.ErrInvalidInput)
	}

	checkedIn, err := s.participants.FindCheckedIn(ctx)
	if err != nil {
		return 0, err
	}
	if len(checkedIn) == 0 {
		return 0, apperror.New(http.StatusBadRequest, "Belum ada peserta yang hadir untuk dibagi kelompok", apperror.ErrInvalidInput)
	}

	ordered := balancedOrder(checkedIn, s.rng)

	groups := make([]*model.Group, groupCount)
	memberIDs := make([][]uint, groupCount)
	for i := 0; i < groupCount; i++ {
		name, color := themeFor(i + 1)
		groups[i] = &model.Group{
			GroupNumber: i + 1,
			GroupName:   name,
			Color:       color,
		}
	}

	// Peserta ke-i masuk kelompok i mod k: ukuran kelompok selisihnya paling
	// banyak satu, dan selang-seling section dari balancedOrder ikut tersebar.
	for i, p := range ordered {
		idx := i % groupCount
		memberIDs[idx] = append(memberIDs[idx], p.ID)
	}

	if err := s.groups.Regenerate(ctx, groups, memberIDs); err != nil {
		return 0, err
	}

	return groupCount, nil
}

func (s *groupService) DeleteAll(ctx context.Context) error {
	return s.groups.ClearAll(ctx)
}

// Assign adalah koreksi manual oleh admin; sengaja melewati pemerataan.
func (s *groupService) Assign(ctx context.Context, participantID uint, groupID *uint) error {
	err := s.participants.AssignGroup(ctx, participantID, groupID)
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.New(http.StatusNotFound, "Peserta tidak ditemukan", apperror.ErrNotFound)
	}
	if repository.IsForeignKeyViolation(err) {
		return apperror.New(http.StatusConflict, "Kelompok tujuan sudah tidak ada", apperror.ErrConflict)
	}

	return err
}

func (s *groupService) List(ctx context.Context) ([]model.Group, error) {
	return s.groups.FindAllWithMembers(ctx)
}
