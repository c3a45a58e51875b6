package muscles

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=muscles_test

type musclesService interface {
	CreateMuscle(ctx context.Context, traineeID string, in Input) result.Result[Muscle]
	UpdateMuscle(ctx context.Context, traineeID, id string, in Input) result.Result[Muscle]
	DeleteMuscle(ctx context.Context, traineeID, id string) result.Result[Deleted]
	GetMusclesByTraineeID(ctx context.Context, traineeID string) ([]Muscle, error)
}

type Handler struct {
	service musclesService
}

func NewHandler(service musclesService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/muscles", h.HandleList).Methods("GET", "OPTIONS").Name("list-muscles")
	r.HandleFunc("/muscles", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-muscle")
	r.HandleFunc("/muscles/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-muscle")
	r.HandleFunc("/muscles/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-muscle")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.list")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	muscles, err := h.service.GetMusclesByTraineeID(ctx, user.ID)
	if err != nil {
		log.Errorf("list muscles for [%s]: %s", user.ID, err)
		http.Error(w, "failed to list muscles", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, muscles, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.new")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("new muscle, unmarshal json params: %s", err)
		http.Error(w, "invalid muscle payload", http.StatusBadRequest)
		return
	}

	res := h.service.CreateMuscle(ctx, user.ID, in)
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.update")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("update muscle, unmarshal json params: %s", err)
		http.Error(w, "invalid muscle payload", http.StatusBadRequest)
		return
	}

	res := h.service.UpdateMuscle(ctx, user.ID, mux.Vars(r)["id"], in)
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.muscles.delete")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	res := h.service.DeleteMuscle(ctx, user.ID, mux.Vars(r)["id"])
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}
