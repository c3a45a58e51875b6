package exercises

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/traininglog/internal/auth"
	"github.com/2beens/traininglog/internal/telemetry/tracing"
	"github.com/2beens/traininglog/internal/traininglog/result"
	"github.com/2beens/traininglog/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=exercises_test

type exercisesService interface {
	CreateExercise(ctx context.Context, traineeID string, in Input) result.Result[WithTargets]
	UpdateExercise(ctx context.Context, traineeID, id string, in Input) result.Result[WithTargets]
	DeleteExercise(ctx context.Context, traineeID, id string) result.Result[Deleted]
	GetExercisesByTraineeID(ctx context.Context, traineeID string) ([]Exercise, error)
	GetExercisesWithTargetsByTraineeID(ctx context.Context, traineeID string) ([]WithTargets, error)
}

type Handler struct {
	service exercisesService
}

func NewHandler(service exercisesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", h.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/exercises/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/exercises/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
}

// HandleList lists exercises; with ?targets=true each one carries its target muscles.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var (
		exercises any
		err       error
	)
	if r.URL.Query().Get("targets") == "true" {
		exercises, err = h.service.GetExercisesWithTargetsByTraineeID(ctx, user.ID)
	} else {
		exercises, err = h.service.GetExercisesByTraineeID(ctx, user.ID)
	}
	if err != nil {
		log.Errorf("list exercises for [%s]: %s", user.ID, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise payload", http.StatusBadRequest)
		return
	}

	res := h.service.CreateExercise(ctx, user.ID, in)
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("update exercise, unmarshal json params: %s", err)
		http.Error(w, "invalid exercise payload", http.StatusBadRequest)
		return
	}

	res := h.service.UpdateExercise(ctx, user.ID, mux.Vars(r)["id"], in)
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	res := h.service.DeleteExercise(ctx, user.ID, mux.Vars(r)["id"])
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}
