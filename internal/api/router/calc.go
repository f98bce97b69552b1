package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/in2post/internal/api/dto"
	"github.com/DjordjeVuckovic/in2post/internal/apperr"
	"github.com/DjordjeVuckovic/in2post/internal/calc"
	"github.com/DjordjeVuckovic/in2post/internal/domain"
	"github.com/DjordjeVuckovic/in2post/internal/storage"
	"github.com/DjordjeVuckovic/in2post/internal/token"
	"github.com/DjordjeVuckovic/in2post/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalcRouter struct {
	e       *echo.Echo
	calc    *calc.Calculator
	history storage.History
}

func NewCalcRouter(e *echo.Echo, c *calc.Calculator, history storage.History) *CalcRouter {
	return &CalcRouter{
		e:       e,
		calc:    c,
		history: history,
	}
}

func (r *CalcRouter) Bind() {
	g := r.e.Group("/v1")
	g.POST("/convert", r.convertHandler)
	g.POST("/evaluate", r.evaluateHandler)
	g.POST("/calculations", r.createCalculationHandler)
	g.GET("/calculations", r.listCalculationsHandler)
	g.GET("/calculations/:id", r.getCalculationHandler)
}

// convertHandler godoc
// @Summary Convert an infix expression to postfix
// @Tags calc
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Infix expression"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /v1/convert [post]
func (r *CalcRouter) convertHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	conv, err := r.calc.Convert(req.Expression)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.ConvertResponse{
		Expression: req.Expression,
		Postfix:    conv.PostfixString(),
		Tokens:     token.Values(conv.Postfix),
	})
}

// evaluateHandler godoc
// @Summary Evaluate a postfix expression
// @Tags calc
// @Accept json
// @Produce json
// @Param request body dto.PostfixRequest true "Postfix expression"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /v1/evaluate [post]
func (r *CalcRouter) evaluateHandler(c echo.Context) error {
	var req dto.PostfixRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	res, err := r.calc.Evaluate(req.Postfix)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.EvaluateResponse{
		Postfix: res.Postfix,
		Result:  res.Value,
	})
}

// createCalculationHandler godoc
// @Summary Convert and evaluate an infix expression and keep it in history
// @Tags calculations
// @Accept json
// @Produce json
// @Param request body dto.ExpressionRequest true "Infix expression"
// @Success 201 {object} dto.CalculationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /v1/calculations [post]
func (r *CalcRouter) createCalculationHandler(c echo.Context) error {
	var req dto.ExpressionRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	res, err := r.calc.Calculate(req.Expression)
	if err != nil {
		return err
	}

	calculation := domain.Calculation{
		ID:         uuid.New(),
		Expression: res.Expression,
		Postfix:    res.Postfix,
		Result:     res.Value,
	}
	id, err := r.history.Save(c.Request().Context(), calculation)
	if err != nil {
		return err
	}

	saved, err := r.history.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.NewCalculationResponse(*saved))
}

// listCalculationsHandler godoc
// @Summary List calculation history, newest first
// @Tags calculations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} pagination.OffsetResult[dto.CalculationResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/calculations [get]
func (r *CalcRouter) listCalculationsHandler(c echo.Context) error {
	var req pagination.OffsetRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}
	if err := req.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	items, total, err := r.history.List(c.Request().Context(), req.Page, req.Size)
	if err != nil {
		return err
	}

	resp := make([]dto.CalculationResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.NewCalculationResponse(item))
	}

	return c.JSON(http.StatusOK, pagination.NewOffsetResult(resp, total, req.Page, req.Size))
}

// getCalculationHandler godoc
// @Summary Get one calculation
// @Tags calculations
// @Produce json
// @Param id path string true "Calculation ID"
// @Success 200 {object} dto.CalculationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/calculations/{id} [get]
func (r *CalcRouter) getCalculationHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid calculation id", err)
	}

	calculation, err := r.history.Get(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.NewCalculationResponse(*calculation))
}
