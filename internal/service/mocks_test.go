package service

import (
	"context"
	"fmt"

	"jogging_tracker/internal/model"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users  map[int]*model.User
	nextID int
	err    error // when set, every call fails with it
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*model.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindAllRegular(_ context.Context) ([]model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.User
	for id := 1; id < f.nextID; id++ {
		if u, ok := f.users[id]; ok && u.Role == model.RoleRegular {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) FindRegularByID(_ context.Context, id int) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok || u.Role != model.RoleRegular {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[user.ID]; !ok {
		return fmt.Errorf("user not found for update")
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[id]; !ok {
		return fmt.Errorf("user not found for deletion")
	}
	delete(f.users, id)
	return nil
}

// fakeJoggingRepo is an in-memory JoggingRepository for service tests
type fakeJoggingRepo struct {
	jogs   map[int64]*model.JoggingRecord
	nextID int64
	report []model.WeeklyReportRow
	err    error
}

func newFakeJoggingRepo() *fakeJoggingRepo {
	return &fakeJoggingRepo{jogs: make(map[int64]*model.JoggingRecord), nextID: 1}
}

func (f *fakeJoggingRepo) Create(_ context.Context, jog *model.JoggingRecord) error {
	if f.err != nil {
		return f.err
	}
	jog.ID = f.nextID
	f.nextID++
	stored := *jog
	f.jogs[jog.ID] = &stored
	return nil
}

func (f *fakeJoggingRepo) FindByID(_ context.Context, id int64) (*model.JoggingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	j, ok := f.jogs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (f *fakeJoggingRepo) FindByUser(_ context.Context, userID int, _ model.JoggingFilters) ([]model.JoggingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.JoggingRecord
	for id := int64(1); id < f.nextID; id++ {
		if j, ok := f.jogs[id]; ok && j.UserID == userID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJoggingRepo) FindAll(_ context.Context, _ model.JoggingFilters) ([]model.JoggingRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.JoggingRecord
	for id := int64(1); id < f.nextID; id++ {
		if j, ok := f.jogs[id]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (f *fakeJoggingRepo) Update(_ context.Context, jog *model.JoggingRecord) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.jogs[jog.ID]; !ok {
		return fmt.Errorf("jogging record not found for update")
	}
	stored := *jog
	f.jogs[jog.ID] = &stored
	return nil
}

func (f *fakeJoggingRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.jogs[id]; !ok {
		return fmt.Errorf("jogging record not found for deletion")
	}
	delete(f.jogs, id)
	return nil
}

func (f *fakeJoggingRepo) WeeklyReport(_ context.Context, _ int) ([]model.WeeklyReportRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}
