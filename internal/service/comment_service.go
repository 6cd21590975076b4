package service

import (
	"context"
	"math/rand"
	"time"

	"anoa.com/ramadhanpitstop/internal/model"
	"anoa.com/ramadhanpitstop/internal/repository"
	"anoa.com/ramadhanpitstop/pkg/moderation"
)

type CommentService interface {
	// Shuffled mengembalikan semua komentar anonim dalam urutan acak,
	// kontennya sudah di-escape untuk render.
	Shuffled(ctx context.Context) ([]model.Comment, error)
}

type commentService struct {
	repo repository.CommentRepository
	rng  *rand.Rand
}

func NewCommentService(repo repository.CommentRepository) CommentService {
	return &commentService{
		repo: repo,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *commentService) Shuffled(ctx context.Context) ([]model.Comment, error) {
	comments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.rng.Shuffle(len(comments), func(i, j int) {
		comments[i], comments[j] = comments[j], comments[i]
	})

	// Escape saat keluar, bukan saat simpan.
	for i := range comments {
		comments[i].Content = moderation.Escape(comments[i].Content)
	}

	return comments, nil
}
