package models

import (
	"testing"

	"workout-go/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"./db/app.db", "./db/app.db?_foreign_keys=on"},
		{"file:x?mode=memory", "file:x?mode=memory&_foreign_keys=on"},
		{"file:x?_foreign_keys=on", "file:x?_foreign_keys=on"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.path))
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestCascadeDelete(t *testing.T) {
	db, err := Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   "file:models_cascade?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, AutoMigrate(db))

	user := &User{Username: "cascade", PasswordHash: "x", Name: "Cascade"}
	require.NoError(t, db.Create(user).Error)
	assert.NotEmpty(t, user.ID)

	workout := &Workout{UserID: user.ID, DayName: "Monday"}
	require.NoError(t, db.Create(workout).Error)
	exercise := &Exercise{WorkoutID: workout.ID, ExerciseName: "Squat", Reps: "5", Sets: "5", Rest: "120"}
	require.NoError(t, db.Create(exercise).Error)
	require.NoError(t, db.Create(&ExerciseLog{UserID: user.ID, ExerciseID: exercise.ID, CompletedSets: 2}).Error)

	require.NoError(t, db.Delete(&User{}, "id = ?", user.ID).Error)

	var count int64
	db.Model(&Workout{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&Exercise{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&ExerciseLog{}).Count(&count)
	assert.Zero(t, count)
}
