package service

import (
	"context"
	"errors"

	"fitbuddy/server/internal/domain"
	"fitbuddy/server/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mimic the store's decode behavior by
// handing out copies, so aliasing bugs in the services can't hide.

type fakePlanRepo struct {
	plans []domain.PlanTemplate
}

func (r *fakePlanRepo) List(_ context.Context) ([]domain.PlanTemplate, error) {
	out := make([]domain.PlanTemplate, len(r.plans))
	for i, p := range r.plans {
		out[i] = clonePlan(p)
	}
	return out, nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.PlanTemplate, error) {
	for _, p := range r.plans {
		if p.ID == id {
			cloned := clonePlan(p)
			return &cloned, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakePlanRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.plans)), nil
}

func (r *fakePlanRepo) InsertMany(_ context.Context, plans []domain.PlanTemplate) error {
	for _, p := range plans {
		if p.ID == primitive.NilObjectID {
			p.ID = primitive.NewObjectID()
		}
		r.plans = append(r.plans, clonePlan(p))
	}
	return nil
}

type fakeUserRepo struct {
	users       []domain.User
	getByIDsLog [][]primitive.ObjectID
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, errors.New("user with this email already exists")
		}
	}
	user.ID = primitive.NewObjectID()
	r.users = append(r.users, *user)
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.User, error) {
	r.getByIDsLog = append(r.getByIDsLog, ids)
	var users []domain.User
	for _, u := range r.users {
		for _, id := range ids {
			if u.ID == id {
				users = append(users, u)
				break
			}
		}
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (r *fakeUserRepo) SetAvatarKey(_ context.Context, id primitive.ObjectID, key string) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].AvatarKey = key
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeWorkoutRepo struct {
	workouts []domain.UserWorkout // collection order
}

func (r *fakeWorkoutRepo) Create(_ context.Context, workout *domain.UserWorkout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	r.workouts = append(r.workouts, cloneWorkout(*workout))
	return workout.ID, nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.UserWorkout, error) {
	for _, w := range r.workouts {
		if w.ID == id {
			cloned := cloneWorkout(w)
			return &cloned, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeWorkoutRepo) GetByUserID(_ context.Context, userID string) ([]domain.UserWorkout, error) {
	out := []domain.UserWorkout{}
	for _, w := range r.workouts {
		if w.UserID == userID {
			out = append(out, cloneWorkout(w))
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) GetByPlanID(_ context.Context, planID string) ([]domain.UserWorkout, error) {
	out := []domain.UserWorkout{}
	for _, w := range r.workouts {
		if w.PlanID == planID && planID != "" {
			out = append(out, cloneWorkout(w))
		}
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, w := range r.workouts {
		if w.ID == id {
			r.workouts = append(r.workouts[:i], r.workouts[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeWorkoutRepo) SetDayCompletion(_ context.Context, id primitive.ObjectID, dayID string, current, next bool) error {
	for i := range r.workouts {
		if r.workouts[i].ID != id {
			continue
		}
		for j := range r.workouts[i].Schedule {
			d := &r.workouts[i].Schedule[j]
			if d.DayID == dayID && d.Completed == current {
				d.Completed = next
				return nil
			}
		}
		return repository.ErrConflict
	}
	return repository.ErrNotFound
}

func clonePlan(p domain.PlanTemplate) domain.PlanTemplate {
	p.Schedule = cloneDays(p.Schedule)
	return p
}

func cloneWorkout(w domain.UserWorkout) domain.UserWorkout {
	w.Schedule = cloneDays(w.Schedule)
	return w
}

func cloneDays(days []domain.ScheduleDay) []domain.ScheduleDay {
	cloned := make([]domain.ScheduleDay, len(days))
	copy(cloned, days)
	for i := range cloned {
		exercises := make([]domain.ExerciseSpec, len(days[i].Exercises))
		copy(exercises, days[i].Exercises)
		cloned[i].Exercises = exercises
	}
	return cloned
}
