package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/guttosm/mateprofit/internal/domain/dto"
	"github.com/guttosm/mateprofit/internal/ledger"
	"github.com/guttosm/mateprofit/internal/middleware"
	"github.com/guttosm/mateprofit/internal/service"
)

const (
	maxBodyBytes     = 10 << 20
	defaultRunsLimit = 20
	maxRunsLimit     = 100
)

// Handler provides HTTP handlers for profit calculation and the run journal.
//
// Responsibilities:
//   - Decode and validate request input
//   - Delegate to the profit service
//   - Translate results and errors into DTOs and status codes
type Handler struct {
	svc service.ProfitService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.ProfitService) *Handler {
	return &Handler{svc: svc}
}

// CalculateProfit handles POST /api/v1/profit.
//
// The body is the same JSON array accepted by the trade file. The calculation
// is journaled and its run id returned.
//
// CalculateProfit godoc
// @Summary      Calculate profit
// @Description  Folds a list of matecoin trades into earned money and coin balance using exact decimal arithmetic
// @Tags         profit
// @Accept       json
// @Produce      json
// @Param        trades  body      []models.Trade        true  "Trade records"
// @Success      200     {object}  dto.ProfitResponse    "Success"
// @Failure      400     {object}  dto.ErrorResponse     "Bad Request"
// @Failure      413     {object}  dto.ErrorResponse     "Payload Too Large"
// @Failure      500     {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/profit [post]
func (h *Handler) CalculateProfit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			middleware.AbortWithError(c, http.StatusRequestEntityTooLarge, "request body too large", err)
			return
		}
		middleware.AbortWithError(c, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	trades, err := ledger.DecodeTrades(body)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid trade list", err)
		return
	}

	run, err := h.svc.Calculate(c.Request.Context(), service.SourceAPI, trades)
	switch {
	case errors.Is(err, ledger.ErrParse):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid trade list", err)
		return
	case err != nil:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to calculate profit", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewProfitResponse(*run))
}

// GetRun handles GET /api/v1/runs/:id.
//
// GetRun godoc
// @Summary      Get a journaled run
// @Tags         runs
// @Produce      json
// @Param        id   path      string             true  "Run id (UUID)"
// @Success      200  {object}  dto.RunResponse    "Success"
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      503  {object}  dto.ErrorResponse  "Journal Disabled"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/runs/{id} [get]
func (h *Handler) GetRun(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid run id", err)
		return
	}

	run, err := h.svc.GetRun(c.Request.Context(), id)
	if err != nil {
		h.abortJournalError(c, err, "failed to fetch run")
		return
	}

	c.JSON(http.StatusOK, dto.NewRunResponse(*run))
}

// ListRuns handles GET /api/v1/runs.
//
// ListRuns godoc
// @Summary      List recent runs
// @Tags         runs
// @Produce      json
// @Param        limit  query     int                  false  "Max runs to return (1-100)" default(20)
// @Success      200    {object}  dto.RunListResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse    "Bad Request"
// @Failure      503    {object}  dto.ErrorResponse    "Journal Disabled"
// @Failure      500    {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/runs [get]
func (h *Handler) ListRuns(c *gin.Context) {
	limit := defaultRunsLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			middleware.AbortWithError(c, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := h.svc.ListRuns(c.Request.Context(), limit)
	if err != nil {
		h.abortJournalError(c, err, "failed to list runs")
		return
	}

	c.JSON(http.StatusOK, dto.NewRunListResponse(runs))
}

func (h *Handler) abortJournalError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrRunNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "run not found", nil)
	case errors.Is(err, service.ErrJournalDisabled):
		middleware.AbortWithError(c, http.StatusServiceUnavailable, "run journal disabled", nil)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, message, err)
	}
}
