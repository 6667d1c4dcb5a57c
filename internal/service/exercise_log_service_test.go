package service

import (
	"context"
	"testing"
	"time"

	"workout-go/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func TestRecordIsAppendOnly(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	user := createTestUser(t, s, "lifter")

	workouts, err := s.workouts.GetWorkouts(ctx, user.ID)
	require.NoError(t, err)
	exerciseID := workouts[0].Exercises[1].ID

	clock := time.Date(2026, 5, 4, 7, 0, 0, 0, time.UTC)
	s.logs.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for n := 1; n <= 7; n++ {
		_, err := s.logs.Record(ctx, user.ID, &dto.CreateExerciseLogRequest{
			ExerciseID:    exerciseID,
			Weight:        strPtr("50"),
			CompletedSets: n % 4,
		})
		require.NoError(t, err)

		recent, err := s.logs.Recent(ctx, user.ID, exerciseID)
		require.NoError(t, err)
		want := n
		if want > RecentLogLimit {
			want = RecentLogLimit
		}
		require.Len(t, recent, want)
		for i := 1; i < len(recent); i++ {
			assert.True(t, recent[i-1].Date.After(recent[i].Date))
		}
		assert.Equal(t, n%4, recent[0].CompletedSets)
	}
}

func TestRecordRequiresOwnedExercise(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "owner")
	other := createTestUser(t, s, "other")

	workouts, err := s.workouts.GetWorkouts(ctx, owner.ID)
	require.NoError(t, err)

	_, err = s.logs.Record(ctx, other.ID, &dto.CreateExerciseLogRequest{ExerciseID: workouts[0].Exercises[0].ID})
	assert.ErrorIs(t, err, ErrNotFound)

	log, err := s.logs.Record(ctx, owner.ID, &dto.CreateExerciseLogRequest{ExerciseID: workouts[0].Exercises[0].ID})
	require.NoError(t, err)
	assert.Nil(t, log.Weight)
	assert.Zero(t, log.CompletedSets)

	recent, err := s.logs.Recent(ctx, other.ID, workouts[0].Exercises[0].ID)
	require.NoError(t, err)
	assert.Empty(t, recent)
}
