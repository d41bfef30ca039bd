package session

import (
	"context"
	"time"

	"github.com/heartmarshall/mytreino-backend/internal/domain"
)

var (
	_ historyAppender = &historyAppenderMock{}
	_ workoutWriter   = &workoutWriterMock{}
	_ txManager       = &txManagerMock{}
)

type appendCall struct {
	Workout     *domain.Workout
	CompletedAt time.Time
	Duration    *int
}

type historyAppenderMock struct {
	AppendFunc func(ctx context.Context, workout *domain.Workout, completedAt time.Time, duration *int) error

	appendCalls []appendCall
}

func (mock *historyAppenderMock) Append(ctx context.Context, workout *domain.Workout, completedAt time.Time, duration *int) error {
	if mock.AppendFunc == nil {
		panic("historyAppenderMock.AppendFunc: method is nil but historyAppender.Append was just called")
	}
	mock.appendCalls = append(mock.appendCalls, appendCall{Workout: workout, CompletedAt: completedAt, Duration: duration})
	return mock.AppendFunc(ctx, workout, completedAt, duration)
}

func (mock *historyAppenderMock) AppendCalls() []appendCall {
	return mock.appendCalls
}

type workoutWriterMock struct {
	UpdateMetaFunc func(ctx context.Context, id int64, name string, category domain.WorkoutCategory, now time.Time) error
	DeleteSetsFunc func(ctx context.Context, workoutID int64) error
	InsertSetsFunc func(ctx context.Context, workoutID, exerciseID int64, sets []domain.Set) error

	updateMetaCalls []int64
	deleteSetsCalls []int64
	insertSetsCalls [][]domain.Set
}

func (mock *workoutWriterMock) UpdateMeta(ctx context.Context, id int64, name string, category domain.WorkoutCategory, now time.Time) error {
	if mock.UpdateMetaFunc == nil {
		panic("workoutWriterMock.UpdateMetaFunc: method is nil but workoutWriter.UpdateMeta was just called")
	}
	mock.updateMetaCalls = append(mock.updateMetaCalls, id)
	return mock.UpdateMetaFunc(ctx, id, name, category, now)
}

func (mock *workoutWriterMock) UpdateMetaCalls() []int64 {
	return mock.updateMetaCalls
}

func (mock *workoutWriterMock) DeleteSets(ctx context.Context, workoutID int64) error {
	if mock.DeleteSetsFunc == nil {
		panic("workoutWriterMock.DeleteSetsFunc: method is nil but workoutWriter.DeleteSets was just called")
	}
	mock.deleteSetsCalls = append(mock.deleteSetsCalls, workoutID)
	return mock.DeleteSetsFunc(ctx, workoutID)
}

func (mock *workoutWriterMock) DeleteSetsCalls() []int64 {
	return mock.deleteSetsCalls
}

func (mock *workoutWriterMock) InsertSets(ctx context.Context, workoutID, exerciseID int64, sets []domain.Set) error {
	if mock.InsertSetsFunc == nil {
		panic("workoutWriterMock.InsertSetsFunc: method is nil but workoutWriter.InsertSets was just called")
	}
	mock.insertSetsCalls = append(mock.insertSetsCalls, sets)
	return mock.InsertSetsFunc(ctx, workoutID, exerciseID, sets)
}

func (mock *workoutWriterMock) InsertSetsCalls() [][]domain.Set {
	return mock.insertSetsCalls
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
