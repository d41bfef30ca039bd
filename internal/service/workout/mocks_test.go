package workout

import (
	"context"
	"time"

	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

var (
	_ exerciseResolver = &exerciseResolverMock{}
	_ workoutRepo      = &workoutRepoMock{}
	_ txManager        = &txManagerMock{}
)

type exerciseResolverMock struct {
	ResolveFunc func(ctx context.Context, name string, category, imageURI *string) (int64, error)

	resolveCalls []string
}

func (mock *exerciseResolverMock) Resolve(ctx context.Context, name string, category, imageURI *string) (int64, error) {
	if mock.ResolveFunc == nil {
		panic("exerciseResolverMock.ResolveFunc: method is nil but exerciseResolver.Resolve was just called")
	}
	mock.resolveCalls = append(mock.resolveCalls, name)
	return mock.ResolveFunc(ctx, name, category, imageURI)
}

func (mock *exerciseResolverMock) ResolveCalls() []string {
	return mock.resolveCalls
}

type workoutRepoMock struct {
	InsertFunc     func(ctx context.Context, name string, category domain.WorkoutCategory, now time.Time) (int64, error)
	UpdateMetaFunc func(ctx context.Context, id int64, name string, category domain.WorkoutCategory, now time.Time) error
	InsertSetsFunc func(ctx context.Context, workoutID, exerciseID int64, sets []domain.Set) error
	DeleteSetsFunc func(ctx context.Context, workoutID int64) error
	DeleteFunc     func(ctx context.Context, id int64) error
	CountFunc      func(ctx context.Context) (int, error)
	GetAllFunc     func(ctx context.Context) ([]domain.Workout, error)
	GetByIDFunc    func(ctx context.Context, id int64) (*domain.Workout, error)

	insertSetsCalls [][]domain.Set
	deleteCalls     []int64
	deleteSetsCalls []int64
}

func (mock *workoutRepoMock) Insert(ctx context.Context, name string, category domain.WorkoutCategory, now time.Time) (int64, error) {
	if mock.InsertFunc == nil {
		panic("workoutRepoMock.InsertFunc: method is nil but workoutRepo.Insert was just called")
	}
	return mock.InsertFunc(ctx, name, category, now)
}

func (mock *workoutRepoMock) UpdateMeta(ctx context.Context, id int64, name string, category domain.WorkoutCategory, now time.Time) error {
	if mock.UpdateMetaFunc == nil {
		panic("workoutRepoMock.UpdateMetaFunc: method is nil but workoutRepo.UpdateMeta was just called")
	}
	return mock.UpdateMetaFunc(ctx, id, name, category, now)
}

func (mock *workoutRepoMock) InsertSets(ctx context.Context, workoutID, exerciseID int64, sets []domain.Set) error {
	if mock.InsertSetsFunc == nil {
		panic("workoutRepoMock.InsertSetsFunc: method is nil but workoutRepo.InsertSets was just called")
	}
	mock.insertSetsCalls = append(mock.insertSetsCalls, sets)
	return mock.InsertSetsFunc(ctx, workoutID, exerciseID, sets)
}

func (mock *workoutRepoMock) InsertSetsCalls() [][]domain.Set {
	return mock.insertSetsCalls
}

func (mock *workoutRepoMock) DeleteSets(ctx context.Context, workoutID int64) error {
	if mock.DeleteSetsFunc == nil {
		panic("workoutRepoMock.DeleteSetsFunc: method is nil but workoutRepo.DeleteSets was just called")
	}
	mock.deleteSetsCalls = append(mock.deleteSetsCalls, workoutID)
	return mock.DeleteSetsFunc(ctx, workoutID)
}

func (mock *workoutRepoMock) DeleteSetsCalls() []int64 {
	return mock.deleteSetsCalls
}

func (mock *workoutRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("workoutRepoMock.DeleteFunc: method is nil but workoutRepo.Delete was just called")
	}
	mock.deleteCalls = append(mock.deleteCalls, id)
	return mock.DeleteFunc(ctx, id)
}

func (mock *workoutRepoMock) DeleteCalls() []int64 {
	return mock.deleteCalls
}

func (mock *workoutRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("workoutRepoMock.CountFunc: method is nil but workoutRepo.Count was just called")
	}
	return mock.CountFunc(ctx)
}

func (mock *workoutRepoMock) GetAll(ctx context.Context) ([]domain.Workout, error) {
	if mock.GetAllFunc == nil {
		panic("workoutRepoMock.GetAllFunc: method is nil but workoutRepo.GetAll was just called")
	}
	return mock.GetAllFunc(ctx)
}

func (mock *workoutRepoMock) GetByID(ctx context.Context, id int64) (*domain.Workout, error) {
	if mock.GetByIDFunc == nil {
		panic("workoutRepoMock.GetByIDFunc: method is nil but workoutRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

// txManagerMock runs the transactional closure directly on the caller's
// context.
type txManagerMock struct {
	runCalls int
	failWith error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.runCalls++
	if mock.failWith != nil {
		return mock.failWith
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() int {
	return mock.runCalls
}
