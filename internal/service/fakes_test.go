package service

import (
	"context"
	"sort"
	"time"

	"anoa.com/ramadhanpitstop/internal/model"
	"gorm.io/gorm"
)

// Fake repository in-memory untuk menguji service tanpa database.

type fakeParticipantRepo struct {
	participants map[uint]*model.Participant
	comments     []*model.Comment
	nextID       uint

	createWithCommentErr error
}

func newFakeParticipantRepo() *fakeParticipantRepo {
	return &fakeParticipantRepo{participants: make(map[uint]*model.Participant)}
}

func (f *fakeParticipantRepo) add(p model.Participant) *model.Participant {
	f.nextID++
	p.ID = f.nextID
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	stored := p
	f.participants[p.ID] = &stored
	return &stored
}

func (f *fakeParticipantRepo) Create(ctx context.Context, participant *model.Participant) error {
	created := f.add(*participant)
	*participant = *created
	return nil
}

func (f *fakeParticipantRepo) CreateWithComment(ctx context.Context, participant *model.Participant, comment *model.Comment) error {
	if f.createWithCommentErr != nil {
		return f.createWithCommentErr
	}
	created := f.add(*participant)
	*participant = *created
	f.comments = append(f.comments, comment)
	return nil
}

func (f *fakeParticipantRepo) FindByID(ctx context.Context, id uint) (*model.Participant, error) {
	p, ok := f.participants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeParticipantRepo) FindByNPK(ctx context.Context, npk string) (*model.Participant, error) {
	for _, p := range f.participants {
		if p.NPK == npk {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeParticipantRepo) FindAll(ctx context.Context) ([]model.Participant, error) {
	out := f.all()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeParticipantRepo) FindCheckedIn(ctx context.Context) ([]model.Participant, error) {
	var out []model.Participant
	for _, p := range f.all() {
		if p.IsCheckedIn {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeParticipantRepo) Save(ctx context.Context, participant *model.Participant) error {
	stored := *participant
	f.participants[participant.ID] = &stored
	return nil
}

func (f *fakeParticipantRepo) AssignGroup(ctx context.Context, id uint, groupID *uint) error {
	p, ok := f.participants[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.GroupID = groupID
	return nil
}

func (f *fakeParticipantRepo) DeleteByIDs(ctx context.Context, ids []uint) error {
	for _, id := range ids {
		delete(f.participants, id)
	}
	return nil
}

func (f *fakeParticipantRepo) all() []model.Participant {
	out := make([]model.Participant, 0, len(f.participants))
	ids := make([]uint, 0, len(f.participants))
	for id := range f.participants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		out = append(out, *f.participants[id])
	}
	return out
}

type fakeGroupRepo struct {
	groups       []*model.Group
	nextID       uint
	participants *fakeParticipantRepo

	regenerateErr error
}

func newFakeGroupRepo(participants *fakeParticipantRepo) *fakeGroupRepo {
	return &fakeGroupRepo{participants: participants}
}

func (f *fakeGroupRepo) Regenerate(ctx context.Context, groups []*model.Group, memberIDs [][]uint) error {
	if f.regenerateErr != nil {
		return f.regenerateErr
	}

	f.clear()
	for i, group := range groups {
		f.nextID++
		group.ID = f.nextID
		f.groups = append(f.groups, group)

		for _, id := range memberIDs[i] {
			gid := group.ID
			f.participants.participants[id].GroupID = &gid
		}
	}
	return nil
}

func (f *fakeGroupRepo) ClearAll(ctx context.Context) error {
	f.clear()
	return nil
}

func (f *fakeGroupRepo) clear() {
	for _, p := range f.participants.participants {
		p.GroupID = nil
	}
	f.groups = nil
}

func (f *fakeGroupRepo) FindAllWithMembers(ctx context.Context) ([]model.Group, error) {
	out := make([]model.Group, 0, len(f.groups))
	for _, g := range f.groups {
		group := *g
		for _, p := range f.participants.all() {
			if p.GroupID != nil && *p.GroupID == g.ID {
				group.Members = append(group.Members, p)
			}
		}
		out = append(out, group)
	}
	return out, nil
}

type fakeScheduleRepo struct {
	schedules []model.Schedule
	nextID    uint
	findErr   error
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *model.Schedule) error {
	f.nextID++
	schedule.ID = f.nextID
	f.schedules = append(f.schedules, *schedule)
	return nil
}

func (f *fakeScheduleRepo) Save(ctx context.Context, schedule *model.Schedule) error {
	for i := range f.schedules {
		if f.schedules[i].ID == schedule.ID {
			f.schedules[i] = *schedule
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id uint) error {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeScheduleRepo) FindByID(ctx context.Context, id uint) (*model.Schedule, error) {
	for i := range f.schedules {
		if f.schedules[i].ID == id {
			copied := f.schedules[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeScheduleRepo) FindAll(ctx context.Context) ([]model.Schedule, error) {
	out := make([]model.Schedule, len(f.schedules))
	copy(out, f.schedules)
	return out, nil
}

func (f *fakeScheduleRepo) FindActiveAt(ctx context.Context, now time.Time) (*model.Schedule, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.schedules {
		s := f.schedules[i]
		if s.Active && !now.Before(s.StartTime) && !now.After(s.EndTime) {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeUserRepo struct {
	user *model.User
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.user == nil || f.user.Username != username {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *f.user
	return &copied, nil
}

type fakeCommentRepo struct {
	comments []model.Comment
}

func (f *fakeCommentRepo) FindAll(ctx context.Context) ([]model.Comment, error) {
	out := make([]model.Comment, len(f.comments))
	copy(out, f.comments)
	return out, nil
}
