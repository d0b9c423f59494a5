package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type PerformanceHandler interface {
	CreateReview(w http.ResponseWriter, r *http.Request)
	ListReviews(w http.ResponseWriter, r *http.Request)
	LatestReview(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &performanceHandlerImpl{
		performanceService: performanceService,
	}
}

func (h *performanceHandlerImpl) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req performance.CreateReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.performanceService.CreateReview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created successfully", review)
}

func (h *performanceHandlerImpl) ListReviews(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	employeeID, err := targetEmployee(claims, r.URL.Query().Get("employee_id"))
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	reviews, err := h.performanceService.ListReviews(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// LatestReview answers with null data when the employee has no review.
func (h *performanceHandlerImpl) LatestReview(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	employeeID, err := targetEmployee(claims, r.URL.Query().Get("employee_id"))
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	review, err := h.performanceService.LatestReview(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, review)
}
