// Package httpapi exposes the registration, booking, and query surface over
// HTTP. Handlers translate JSON requests to ledger calls and ledger errors
// to status codes; all domain rules live in the ledger.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PranjalBasak/446-Project-1/internal/ledger"
)

// callerIdentityHeader carries the caller's identity, supplied by the
// fronting identity source. The service trusts it verbatim.
const callerIdentityHeader = "X-Caller-Identity"

// Handler holds the HTTP handlers for the training registry API.
type Handler struct {
	ledger *ledger.Ledger
	logger *zap.Logger
}

// NewHandler creates a Handler backed by the given ledger.
//
// Precondition: l and logger must be non-nil.
func NewHandler(l *ledger.Ledger, logger *zap.Logger) *Handler {
	return &Handler{ledger: l, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

type registeredResponse struct {
	ID uint64 `json:"id"`
}

type registerAdminRequest struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Age  uint   `json:"age"`
}

type registerTrainerRequest struct {
	ID     uint64 `json:"id"`
	Name   string `json:"name"`
	Age    uint   `json:"age"`
	Gender string `json:"gender"`
}

type registerParticipantRequest struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	Age              uint   `json:"age"`
	Gender           string `json:"gender"`
	District         string `json:"district"`
	TrainingInterest int    `json:"training_interest"`
	HasCompleted     bool   `json:"has_completed"`
}

type updateParticipantRequest struct {
	TrainingInterest int  `json:"training_interest"`
	HasCompleted     bool `json:"has_completed"`
}

type bookingRequest struct {
	TrainerID     uint64 `json:"trainer_id"`
	ParticipantID uint64 `json:"participant_id"`
	SlotIndex     int    `json:"slot_index"`
}

type participantResponse struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	Age              uint   `json:"age"`
	Gender           string `json:"gender"`
	District         string `json:"district"`
	TrainingInterest int    `json:"training_interest"`
	HasCompleted     bool   `json:"has_completed"`
	Balance          int64  `json:"balance"`
}

type adminBalancesResponse struct {
	AdminIDs []uint64 `json:"admin_ids"`
	Balances []int64  `json:"balances"`
}

type scheduleResponse struct {
	FreeSlots  []int    `json:"free_slots"`
	TimeRanges []string `json:"time_ranges"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// callerIdentity extracts and parses the identity header. It writes a 401
// response and returns false when the header is missing or malformed.
func callerIdentity(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.Header.Get(callerIdentityHeader)
	if raw == "" {
		writeError(w, http.StatusUnauthorized, "missing "+callerIdentityHeader+" header")
		return uuid.Nil, false
	}
	identity, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "malformed caller identity")
		return uuid.Nil, false
	}
	return identity, true
}

// statusForError maps ledger failure classes to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInvalidArgument),
		errors.Is(err, ledger.ErrInvalidInterest),
		errors.Is(err, ledger.ErrInvalidSlot):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrDuplicateID),
		errors.Is(err, ledger.ErrDuplicateIdentity),
		errors.Is(err, ledger.ErrAlreadyBooked),
		errors.Is(err, ledger.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return http.StatusPaymentRequired
	case errors.Is(err, ledger.ErrNoAdminsAvailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeLedgerError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("unclassified ledger error", zap.Error(err))
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}

// RegisterAdmin handles POST /admins.
func (h *Handler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	var req registerAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.ledger.RegisterAdmin(identity, req.ID, req.Name, req.Age)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registeredResponse{ID: id})
}

// RegisterTrainer handles POST /trainers.
func (h *Handler) RegisterTrainer(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	var req registerTrainerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.ledger.RegisterTrainer(identity, req.ID, req.Name, req.Age, req.Gender)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registeredResponse{ID: id})
}

// RegisterParticipant handles POST /participants.
func (h *Handler) RegisterParticipant(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	var req registerParticipantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	id, err := h.ledger.RegisterParticipant(identity, req.ID, req.Name, req.Age,
		req.Gender, req.District, ledger.TrainingInterest(req.TrainingInterest), req.HasCompleted)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registeredResponse{ID: id})
}

// UpdateParticipant handles PATCH /participants/{id}. Admin-gated.
func (h *Handler) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	participantID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "participant id must be a positive integer")
		return
	}
	var req updateParticipantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.ledger.UpdateParticipant(identity, participantID,
		ledger.TrainingInterest(req.TrainingInterest), req.HasCompleted); err != nil {
		h.writeLedgerError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BookSlot handles POST /bookings.
func (h *Handler) BookSlot(w http.ResponseWriter, r *http.Request) {
	identity, ok := callerIdentity(w, r)
	if !ok {
		return
	}
	var req bookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := h.ledger.BookSlot(identity, req.TrainerID, req.ParticipantID, req.SlotIndex); err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"slot_time": ledger.SlotTimeRange(req.SlotIndex),
	})
}

// AdminBalances handles GET /admins/balances.
func (h *Handler) AdminBalances(w http.ResponseWriter, r *http.Request) {
	ids, balances := h.ledger.AdminBalances()
	if ids == nil {
		ids = []uint64{}
	}
	if balances == nil {
		balances = []int64{}
	}
	writeJSON(w, http.StatusOK, adminBalancesResponse{AdminIDs: ids, Balances: balances})
}

// Participant handles GET /participants/{id}.
func (h *Handler) Participant(w http.ResponseWriter, r *http.Request) {
	participantID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "participant id must be a positive integer")
		return
	}

	p, err := h.ledger.Participant(participantID)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, participantResponse{
		ID:               p.ID,
		Name:             p.Name,
		Age:              p.Age,
		Gender:           p.Gender,
		District:         p.District,
		TrainingInterest: int(p.Interest),
		HasCompleted:     p.HasCompleted,
		Balance:          p.Balance,
	})
}

// TrainerSchedule handles GET /trainers/{id}/schedule.
func (h *Handler) TrainerSchedule(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "trainer id must be a positive integer")
		return
	}

	indices, ranges, err := h.ledger.TrainerSchedule(trainerID)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scheduleResponse{FreeSlots: indices, TimeRanges: ranges})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
