package repository

import (
	"context"
	"errors"

	"anoa.com/ramadhanpitstop/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant *model.Participant) error
	CreateWithComment(ctx context.Context, participant *model.Participant, comment *model.Comment) error
	FindByID(ctx context.Context, id uint) (*model.Participant, error)
	FindByNPK(ctx context.Context, npk string) (*model.Participant, error)
	FindAll(ctx context.Context) ([]model.Participant, error)
	FindCheckedIn(ctx context.Context) ([]model.Participant, error)
	Save(ctx context.Context, participant *model.Participant) error
	AssignGroup(ctx context.Context, id uint, groupID *uint) error
	DeleteByIDs(ctx context.Context, ids []uint) error
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(ctx context.Context, participant *model.Participant) error {
	return r.db.WithContext(ctx).Create(participant).Error
}

// CreateWithComment menyimpan pendaftaran dan komentar anonimnya dalam satu
// transaksi: dua-duanya masuk atau tidak sama sekali.
func (r *participantRepository) CreateWithComment(ctx context.Context, participant *model.Participant, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(participant).Error; err != nil {
			return err
		}

		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		return nil
	})
}

func (r *participantRepository) FindByID(ctx context.Context, id uint) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.WithContext(ctx).First(&participant, id).Error; err != nil {
		return nil, err
	}

	return &participant, nil
}

func (r *participantRepository) FindByNPK(ctx context.Context, npk string) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.WithContext(ctx).Where("npk = ?", npk).First(&participant).Error; err != nil {
		return nil, err
	}

	return &participant, nil
}

func (r *participantRepository) FindAll(ctx context.Context) ([]model.Participant, error) {
	var participants []model.Participant
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&participants).Error; err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *participantRepository) FindCheckedIn(ctx context.Context) ([]model.Participant, error) {
	var participants []model.Participant
	if err := r.db.WithContext(ctx).
		Where("is_checked_in = ?", true).
		Find(&participants).Error; err != nil {
		return nil, err
	}

	return participants, nil
}

func (r *participantRepository) Save(ctx context.Context, participant *model.Participant) error {
	return r.db.WithContext(ctx).Save(participant).Error
}

func (r *participantRepository) AssignGroup(ctx context.Context, id uint, groupID *uint) error {
	result := r.db.WithContext(ctx).
		Model(&model.Participant{}).
		Where("id = ?", id).
		Update("group_id", groupID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *participantRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&model.Participant{}, ids).Error
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (race antara pre-check dan insert).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolation reports whether err is a Postgres foreign-key
// violation (mis. assign ke kelompok yang sudah dihapus).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
