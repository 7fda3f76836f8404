package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	request "repair_visits/internal/adapter/http/dto/request"
	response "repair_visits/internal/adapter/http/dto/response"
	"repair_visits/internal/usecase"
	"repair_visits/internal/usecase/interfaces"
	"repair_visits/pkg"
)

var (
	errInvalidRequest     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidVisitUpdate = pkg.NewDomainErrorSimple("INVALID_VISIT_UPDATE", "Invalid visit update", http.StatusBadRequest)
)

type VisitHandler struct {
	query    usecase.IVisitQueryUseCase
	update   usecase.IVisitUpdateUseCase
	validate *validator.Validate
}

func NewVisitHandler(query usecase.IVisitQueryUseCase, update usecase.IVisitUpdateUseCase) *VisitHandler {
	return &VisitHandler{query: query, update: update, validate: validator.New()}
}

// ListVisits godoc
// @Summary      List visits
// @Description  Filters, searches, sorts and paginates the visits of every order
// @Tags         visits
// @Produce      json
// @Param        id           query  string    false  "Visit id, bypasses every other filter"
// @Param        statuses     query  []string  false  "Statuses (repeated or comma separated)"
// @Param        status       query  string    false  "Single status"
// @Param        technicians  query  []string  false  "Technician ids (repeated or comma separated)"
// @Param        technician   query  string    false  "Single technician id"
// @Param        type         query  []string  false  "Visit types"
// @Param        priority     query  []string  false  "Priorities"
// @Param        dateFrom     query  string    false  "Earliest date (YYYY-MM-DD)"
// @Param        dateTo       query  string    false  "Latest date (YYYY-MM-DD)"
// @Param        today        query  bool      false  "Only visits dated today"
// @Param        costMin      query  number    false  "Minimum total cost"
// @Param        costMax      query  number    false  "Maximum total cost"
// @Param        hasParts     query  bool      false  "Only visits with parts"
// @Param        hasPhotos    query  bool      false  "Only visits with photos"
// @Param        urgentOnly   query  bool      false  "Only urgent visits"
// @Param        search       query  string    false  "Fuzzy search text"
// @Param        sort         query  string    false  "Sort key"  Enums(date, client, technician, status, type, cost, waitTime, priority)
// @Param        order        query  string    false  "Sort direction"  Enums(asc, desc)
// @Param        page         query  int       false  "Page, from 1"
// @Param        limit        query  int       false  "Page size"
// @Param        stats        query  bool      false  "Include aggregate statistics"
// @Success      200  {object}  response.VisitListResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /visits [get]
func (h *VisitHandler) ListVisits(c *gin.Context) {
	var req request.VisitQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	q := req.ToQuery()
	res, err := h.query.Query(c.Request.Context(), q)
	if err != nil {
		respondError(c, mapVisitError(err), err)
		return
	}

	c.JSON(http.StatusOK, response.FromResult(res, q))
}

// GetStats godoc
// @Summary      Visit statistics
// @Description  Aggregates over every visit, ignoring filters
// @Tags         visits
// @Produce      json
// @Success      200  {object}  response.StatsResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /visits/stats [get]
func (h *VisitHandler) GetStats(c *gin.Context) {
	st, err := h.query.Stats(c.Request.Context())
	if err != nil {
		respondError(c, mapVisitError(err), err)
		return
	}

	c.JSON(http.StatusOK, response.StatsResponse{Data: st})
}

// GetVisit godoc
// @Summary      Get a visit
// @Tags         visits
// @Produce      json
// @Param        id   path      string  true  "Visit id"
// @Success      200  {object}  response.VisitResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /visits/{id} [get]
func (h *VisitHandler) GetVisit(c *gin.Context) {
	rec, err := h.query.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapVisitError(err), err)
		return
	}

	c.JSON(http.StatusOK, response.VisitResponse{Data: rec})
}

// UpdateVisit godoc
// @Summary      Update a visit
// @Description  Merges changes into the stored visit and emits an audit event
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Visit id"
// @Param        payload  body      request.VisitUpdateRequest  true  "Changes"
// @Success      200  {object}  response.UpdatedVisitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /visits/{id} [patch]
func (h *VisitHandler) UpdateVisit(c *gin.Context) {
	var payload request.VisitUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	if err := payload.Validate(h.validate); err != nil {
		c.JSON(errInvalidVisitUpdate.HTTPStatus, errInvalidVisitUpdate.ToHTTPError())
		return
	}

	visit, err := h.update.UpdateVisit(c.Request.Context(), usecase.UpdateVisitCommand{
		VisitID:   c.Param("id"),
		Changes:   payload.Changes,
		ActorID:   payload.ActorID,
		ActorName: payload.ActorName,
		Reason:    payload.Reason,
	})
	if err != nil {
		respondError(c, mapUpdateError(err), err)
		return
	}

	c.JSON(http.StatusOK, response.UpdatedVisitResponse{Data: visit})
}

func respondError(c *gin.Context, appErr *pkg.AppError, err error) {
	if usecase.IsRetryable(err) {
		c.Header("Retry-After", "1")
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapVisitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVisitID), errors.Is(err, usecase.ErrInvalidUpdate):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitNotFound):
		return pkg.NewDomainError("VISIT_NOT_FOUND", "Visit not found", err, http.StatusNotFound)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainError("VISIT_CONFLICT", "Visit was changed by another request", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStorageFailure):
		return pkg.NewDomainError("STORAGE_FAILURE", "Could not load data", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}

// mapUpdateError differs from mapVisitError only in the storage message.
func mapUpdateError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrStorageFailure) && !errors.Is(err, interfaces.ErrVersionConflict) {
		return pkg.NewDomainError("STORAGE_FAILURE", "Could not save data", err, http.StatusServiceUnavailable)
	}
	return mapVisitError(err)
}
