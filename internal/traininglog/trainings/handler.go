package trainings

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

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=trainings_test

type trainingsService interface {
	CreateTraining(ctx context.Context, traineeID string, in NewTraining) result.Result[Training]
	UpdateTraining(ctx context.Context, traineeID, id string, in NewTraining) result.Result[Training]
	DeleteTraining(ctx context.Context, traineeID, id string) result.Result[Deleted]
	GetTrainingsByTraineeID(ctx context.Context, traineeID string) ([]Training, error)
	GetPersonalRecords(ctx context.Context, traineeID string) ([]PersonalRecord, error)
}

type Handler struct {
	service trainingsService
}

func NewHandler(service trainingsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/trainings", h.HandleList).Methods("GET", "OPTIONS").Name("list-trainings")
	r.HandleFunc("/trainings", h.HandleCreate).Methods("POST", "OPTIONS").Name("new-training")
	r.HandleFunc("/trainings/records", h.HandlePersonalRecords).Methods("GET", "OPTIONS").Name("personal-records")
	r.HandleFunc("/trainings/{id}", h.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-training")
	r.HandleFunc("/trainings/{id}", h.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-training")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.list")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	trainings, err := h.service.GetTrainingsByTraineeID(ctx, user.ID)
	if err != nil {
		log.Errorf("list trainings for [%s]: %s", user.ID, err)
		http.Error(w, "failed to list trainings", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, trainings, http.StatusOK)
}

func (h *Handler) HandlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.records")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	records, err := h.service.GetPersonalRecords(ctx, user.ID)
	if err != nil {
		log.Errorf("personal records for [%s]: %s", user.ID, err)
		http.Error(w, "failed to get personal records", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.new")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var in NewTraining
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("new training, unmarshal json params: %s", err)
		http.Error(w, "invalid training payload", http.StatusBadRequest)
		return
	}

	res := h.service.CreateTraining(ctx, user.ID, in)
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusCreated)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.update")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	var in NewTraining
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("update training, unmarshal json params: %s", err)
		http.Error(w, "invalid training payload", http.StatusBadRequest)
		return
	}

	res := h.service.UpdateTraining(ctx, user.ID, mux.Vars(r)["id"], in)
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainings.delete")
	defer span.End()

	user, ok := auth.RequireUser(w, r)
	if !ok {
		return
	}

	res := h.service.DeleteTraining(ctx, user.ID, mux.Vars(r)["id"])
	if !res.OK() {
		result.WriteFailure(w, res.Err())
		return
	}

	pkg.WriteJSON(w, res, http.StatusOK)
}
