package subscription

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type SubscriptionDTO struct {
	Id           string    `json:"id,omitempty"`
	ServiceName  string    `json:"serviceName"`
	Amount       float64   `json:"amount"`
	BillingCycle string    `json:"billingCycle"`
	NextDueDate  time.Time `json:"nextDueDate"`
	Category     string    `json:"category"`
}

type ProjectionDTO struct {
	Subscription      SubscriptionDTO `json:"subscription"`
	MonthlyEquivalent float64         `json:"monthlyEquivalent"`
	DaysUntilDue      int             `json:"daysUntilDue"`
	Urgent            bool            `json:"urgent"`
}

type OverviewDTO struct {
	TotalMonthlyCost float64        `json:"totalMonthlyCost"`
	TotalYearlyCost  float64        `json:"totalYearlyCost"`
	ServiceCount     int            `json:"serviceCount"`
	NextPayment      *ProjectionDTO `json:"nextPayment,omitempty"`
}

type SubscriptionHandler struct {
	subscriptionService SubscriptionService
}

func NewSubscriptionHandler(subscriptionService SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService}
}

func (handler *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new subscription")
	w.Header().Set("Content-Type", "application/json")

	var subDTO SubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&subDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sub := DTOToSubscription(subDTO)

	created, err := handler.subscriptionService.Create(r.Context(), sub)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SubscriptionToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SubscriptionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	subs, err := handler.subscriptionService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	subsDTO := make([]SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		subsDTO = append(subsDTO, SubscriptionToDTO(sub))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(subsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SubscriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	subscriptionId := vars["id"]

	var subDTO SubscriptionDTO
	if err := json.NewDecoder(r.Body).Decode(&subDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if subDTO.Id == "" || subDTO.Id != subscriptionId {
		http.Error(w, "Invalid subscription id in request body", http.StatusBadRequest)
		return
	}

	sub := DTOToSubscription(subDTO)
	ok, err := handler.subscriptionService.Update(r.Context(), sub)
	if err != nil {
		if isValidationError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Subscription not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(subDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	subscriptionId := vars["id"]

	ok, err := handler.subscriptionService.Delete(r.Context(), subscriptionId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Subscription not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *SubscriptionHandler) GetProjections(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	projections, err := handler.subscriptionService.Projections(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	projectionsDTO := make([]ProjectionDTO, 0, len(projections))
	for _, projection := range projections {
		projectionsDTO = append(projectionsDTO, ProjectionToDTO(projection))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(projectionsDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SubscriptionHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	overview, err := handler.subscriptionService.Overview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(OverviewToDTO(overview)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrMissingServiceName) ||
		errors.Is(err, ErrMissingDueDate) ||
		errors.Is(err, ErrUnknownBillingCycle)
}

func SubscriptionToDTO(sub Subscription) SubscriptionDTO {
	return SubscriptionDTO{
		Id:           sub.Id,
		ServiceName:  sub.ServiceName,
		Amount:       sub.Amount.Round(2).InexactFloat64(),
		BillingCycle: string(sub.Cycle),
		NextDueDate:  sub.NextDueDate,
		Category:     sub.Category,
	}
}

func OverviewToDTO(overview Overview) OverviewDTO {
	overviewDTO := OverviewDTO{
		TotalMonthlyCost: overview.TotalMonthlyCost.Round(2).InexactFloat64(),
		TotalYearlyCost:  overview.TotalYearlyCost.Round(2).InexactFloat64(),
		ServiceCount:     overview.ServiceCount,
	}
	if overview.NextPayment != nil {
		nextPayment := ProjectionToDTO(*overview.NextPayment)
		overviewDTO.NextPayment = &nextPayment
	}
	return overviewDTO
}

func ProjectionToDTO(projection Projection) ProjectionDTO {
	return ProjectionDTO{
		Subscription:      SubscriptionToDTO(projection.Subscription),
		MonthlyEquivalent: projection.MonthlyEquivalent.Round(2).InexactFloat64(),
		DaysUntilDue:      projection.DaysUntilDue,
		Urgent:            projection.Urgent,
	}
}

func DTOToSubscription(subDTO SubscriptionDTO) Subscription {
	return Subscription{
		Id:          subDTO.Id,
		ServiceName: subDTO.ServiceName,
		Amount:      decimal.NewFromFloat(subDTO.Amount),
		Cycle:       BillingCycle(subDTO.BillingCycle),
		NextDueDate: subDTO.NextDueDate,
		Category:    subDTO.Category,
	}
}
