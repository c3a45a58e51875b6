//go:build integration_test || all_tests

package internal_test

import (
	"context"
	"net/http"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/traininglog/internal/traininglog/exercises"
	"github.com/2beens/traininglog/internal/traininglog/muscles"
	"github.com/2beens/traininglog/internal/traininglog/trainees"
	"github.com/2beens/traininglog/internal/traininglog/trainings"
)

type envelope[T any] struct {
	Result string            `json:"result"`
	Data   T                 `json:"data"`
	Errors map[string]string `json:"errors"`
}

func (s *IntegrationTestSuite) createMuscle(ctx context.Context, token, name string) muscles.Muscle {
	var res envelope[muscles.Muscle]
	status := s.do(ctx, token, "POST", "/muscles", muscles.Input{Name: name}, &res)
	require.Equal(s.T(), http.StatusCreated, status)
	require.Equal(s.T(), "success", res.Result)
	return res.Data
}

func (s *IntegrationTestSuite) createExercise(ctx context.Context, token, name string, targets ...string) exercises.WithTargets {
	var res envelope[exercises.WithTargets]
	status := s.do(ctx, token, "POST", "/exercises", exercises.Input{Name: name, Targets: targets}, &res)
	require.Equal(s.T(), http.StatusCreated, status)
	require.Equal(s.T(), "success", res.Result)
	return res.Data
}

func (s *IntegrationTestSuite) TestUnauthenticated() {
	ctx := context.Background()
	for _, path := range []string{"/me", "/muscles", "/exercises", "/trainings"} {
		assert.Equal(s.T(), http.StatusUnauthorized, s.do(ctx, "", "GET", path, nil, nil), path)
		assert.Equal(s.T(), http.StatusUnauthorized, s.do(ctx, "forged-token", "GET", path, nil, nil), path)
	}
}

func (s *IntegrationTestSuite) TestMe() {
	ctx := context.Background()
	token, trainee := s.loginAs(ctx)

	var me trainees.Trainee
	require.Equal(s.T(), http.StatusOK, s.do(ctx, token, "GET", "/me", nil, &me))
	assert.Equal(s.T(), trainee.ID, me.ID)
	assert.Equal(s.T(), trainee.Name, me.Name)
}

func (s *IntegrationTestSuite) TestMuscles() {
	t := s.T()
	ctx := context.Background()
	token, trainee := s.loginAs(ctx)

	chest := s.createMuscle(ctx, token, "大胸筋")
	assert.Equal(t, trainee.ID, chest.TraineeID)
	back := s.createMuscle(ctx, token, "広背筋")

	// same name for the same trainee is rejected
	var dup envelope[muscles.Muscle]
	assert.Equal(t, http.StatusConflict, s.do(ctx, token, "POST", "/muscles", muscles.Input{Name: "大胸筋"}, &dup))
	assert.Equal(t, "failure", dup.Result)

	var invalid envelope[muscles.Muscle]
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, token, "POST", "/muscles", muscles.Input{Name: "  "}, &invalid))
	assert.Contains(t, invalid.Errors, "name")

	var updated envelope[muscles.Muscle]
	require.Equal(t, http.StatusOK, s.do(ctx, token, "PUT", "/muscles/"+back.ID, muscles.Input{Name: "背中"}, &updated))
	assert.Equal(t, "背中", updated.Data.Name)

	var list []muscles.Muscle
	require.Equal(t, http.StatusOK, s.do(ctx, token, "GET", "/muscles", nil, &list))
	require.Len(t, list, 2)
	// newest first
	assert.Equal(t, back.ID, list[0].ID)
	assert.Equal(t, chest.ID, list[1].ID)

	var deleted envelope[muscles.Deleted]
	require.Equal(t, http.StatusOK, s.do(ctx, token, "DELETE", "/muscles/"+chest.ID, nil, &deleted))
	assert.Equal(t, muscles.Deleted{ID: chest.ID, Name: "大胸筋"}, deleted.Data)

	assert.Equal(t, http.StatusNotFound, s.do(ctx, token, "DELETE", "/muscles/"+chest.ID, nil, nil))
}

func (s *IntegrationTestSuite) TestTraineeIsolation() {
	t := s.T()
	ctx := context.Background()
	ownerToken, _ := s.loginAs(ctx)
	otherToken, _ := s.loginAs(ctx)

	m := s.createMuscle(ctx, ownerToken, "三角筋")
	ex := s.createExercise(ctx, ownerToken, "ショルダープレス", m.ID)

	var list []muscles.Muscle
	require.Equal(t, http.StatusOK, s.do(ctx, otherToken, "GET", "/muscles", nil, &list))
	assert.Empty(t, list)

	assert.Equal(t, http.StatusNotFound, s.do(ctx, otherToken, "PUT", "/muscles/"+m.ID, muscles.Input{Name: "x"}, nil))
	assert.Equal(t, http.StatusNotFound, s.do(ctx, otherToken, "DELETE", "/muscles/"+m.ID, nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(ctx, otherToken, "DELETE", "/exercises/"+ex.ID, nil, nil))

	// another trainee's muscle cannot be targeted
	var res envelope[exercises.WithTargets]
	status := s.do(ctx, otherToken, "POST", "/exercises", exercises.Input{Name: "盗用", Targets: []string{m.ID}}, &res)
	assert.NotEqual(t, http.StatusCreated, status)
	assert.Equal(t, "failure", res.Result)

	// another trainee's exercise cannot be logged
	var tr envelope[trainings.Training]
	status = s.do(ctx, otherToken, "POST", "/trainings", trainings.NewTraining{
		Date:     time.Now().UTC(),
		Sessions: []trainings.NewSession{{ExerciseID: ex.ID, Sets: []trainings.NewSet{{Weight: 20, Repetition: 5}}}},
	}, &tr)
	assert.NotEqual(t, http.StatusCreated, status)
	assert.Equal(t, "failure", tr.Result)
}

func (s *IntegrationTestSuite) TestExercisesWithTargets() {
	t := s.T()
	ctx := context.Background()
	token, _ := s.loginAs(ctx)

	chest := s.createMuscle(ctx, token, "大胸筋")
	triceps := s.createMuscle(ctx, token, "上腕三頭筋")

	bench := s.createExercise(ctx, token, "ベンチプレス", chest.ID, triceps.ID)
	require.Len(t, bench.Targets, 2)
	dips := s.createExercise(ctx, token, "ディップス", triceps.ID)

	// an exercise needs at least one target
	var noTargets envelope[exercises.WithTargets]
	assert.Equal(t, http.StatusBadRequest, s.do(ctx, token, "POST", "/exercises", exercises.Input{Name: "プランク"}, &noTargets))
	assert.Contains(t, noTargets.Errors, "targets")

	var withTargets []exercises.WithTargets
	require.Equal(t, http.StatusOK, s.do(ctx, token, "GET", "/exercises?targets=true", nil, &withTargets))
	require.Len(t, withTargets, 2)
	assert.Equal(t, dips.ID, withTargets[0].ID)
	require.Len(t, withTargets[0].Targets, 1)
	assert.Equal(t, triceps.ID, withTargets[0].Targets[0].ID)
	assert.Equal(t, bench.ID, withTargets[1].ID)
	assert.Len(t, withTargets[1].Targets, 2)

	var updated envelope[exercises.WithTargets]
	require.Equal(t, http.StatusOK, s.do(ctx, token, "PUT", "/exercises/"+bench.ID,
		exercises.Input{Name: "ベンチプレス", Targets: []string{chest.ID}}, &updated))
	require.Len(t, updated.Data.Targets, 1)
	assert.Equal(t, chest.ID, updated.Data.Targets[0].ID)

	// deleting a muscle drops its mappings, the exercise stays
	require.Equal(t, http.StatusOK, s.do(ctx, token, "DELETE", "/muscles/"+chest.ID, nil, nil))
	var mappings int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM exercise_muscle_mappings WHERE exercise_id = $1`, bench.ID,
	).Scan(&mappings))
	assert.Zero(t, mappings)

	var plain []exercises.Exercise
	require.Equal(t, http.StatusOK, s.do(ctx, token, "GET", "/exercises", nil, &plain))
	assert.Len(t, plain, 2)
}

func (s *IntegrationTestSuite) TestTrainings() {
	t := s.T()
	ctx := context.Background()
	token, _ := s.loginAs(ctx)

	legs := s.createMuscle(ctx, token, "大腿四頭筋")
	chest := s.createMuscle(ctx, token, "大胸筋")
	squat := s.createExercise(ctx, token, "スクワット", legs.ID)
	bench := s.createExercise(ctx, token, "ベンチプレス", chest.ID)

	rpe := 8
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	var created envelope[trainings.Training]
	require.Equal(t, http.StatusCreated, s.do(ctx, token, "POST", "/trainings", trainings.NewTraining{
		Date: date,
		Sessions: []trainings.NewSession{
			{ExerciseID: squat.ID, Memo: "深く", Sets: []trainings.NewSet{
				{Weight: 100, Repetition: 5, RPE: &rpe},
				{Weight: 110, Repetition: 3},
			}},
			{ExerciseID: bench.ID, Sets: []trainings.NewSet{
				{Weight: 80, Repetition: 10},
			}},
		},
	}, &created))
	training := created.Data
	require.Len(t, training.Sessions, 2)
	assert.Equal(t, "スクワット", training.Sessions[0].Exercise.Name)
	require.Len(t, training.Sessions[0].Sets, 2)
	assert.InDelta(t, 116.67, training.Sessions[0].Sets[0].EstimatedMaximumWeight, 0.01)
	assert.Equal(t, &rpe, training.Sessions[0].Sets[0].RPE)
	assert.Nil(t, training.Sessions[0].Sets[1].RPE)

	var invalid envelope[trainings.Training]
	require.Equal(t, http.StatusBadRequest, s.do(ctx, token, "POST", "/trainings", trainings.NewTraining{
		Date:     date,
		Sessions: []trainings.NewSession{{ExerciseID: squat.ID, Sets: []trainings.NewSet{{Weight: -1, Repetition: 5}}}},
	}, &invalid))
	assert.Contains(t, invalid.Errors, "sessions[0].sets[0].weight")

	var list []trainings.Training
	require.Equal(t, http.StatusOK, s.do(ctx, token, "GET", "/trainings", nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, training.ID, list[0].ID)
	require.Len(t, list[0].Sessions, 2)
	assert.Equal(t, 0, list[0].Sessions[0].Order)
	assert.Equal(t, 1, list[0].Sessions[1].Order)

	var records []trainings.PersonalRecord
	require.Equal(t, http.StatusOK, s.do(ctx, token, "GET", "/trainings/records", nil, &records))
	require.Len(t, records, 2)

	var deleted envelope[trainings.Deleted]
	require.Equal(t, http.StatusOK, s.do(ctx, token, "DELETE", "/trainings/"+training.ID, nil, &deleted))
	assert.Equal(t, training.ID, deleted.Data.ID)

	var sets int
	require.NoError(t, s.DB.QueryRowContext(ctx, `
		SELECT count(*) FROM training_sets s
		JOIN training_records r ON r.id = s.record_id
		WHERE r.training_id = $1`, training.ID,
	).Scan(&sets))
	assert.Zero(t, sets)

	require.Equal(t, http.StatusOK, s.do(ctx, token, "GET", "/trainings", nil, &list))
	assert.Empty(t, list)
}
