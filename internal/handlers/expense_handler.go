package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/GCF14/JJ-Apartments-Property-Management-System/internal/errors"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/export"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/models"
	"github.com/GCF14/JJ-Apartments-Property-Management-System/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
// Reason and amount rules are enforced by the service so clients receive
// INVALID_REASON and INVALID_AMOUNT rather than a generic binding error.
type CreateExpenseRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"100.00"`
	Reason string           `json:"reason" example:"Utilities"`
	Date   string           `json:"date" binding:"required,datetime=2006-01-02" example:"2024-01-01"`
}

// SummaryQuery holds the optional filters of the summary endpoint.
type SummaryQuery struct {
	From   string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To     string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Reason string `form:"reason" binding:"omitempty,expense_reason"`
}

// ExpenseResponse represents an expense in the response.
type ExpenseResponse struct {
	ID     uint                 `json:"id"`
	Amount decimal.Decimal      `json:"amount" swaggertype:"string"`
	Reason models.ExpenseReason `json:"reason"`
	Date   string               `json:"date"`
}

// RowsAffectedResponse reports how many rows a mutation touched.
type RowsAffectedResponse struct {
	RowsAffected int64 `json:"rows_affected"`
}

func toExpenseResponse(e models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:     e.ID,
		Amount: e.Amount,
		Reason: e.Reason,
		Date:   e.Date.Format(dateLayout),
	}
}

// ListExpenses handles listing every expense.
// @Summary     List expenses
// @Description Get every expense ordered by id
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]ExpenseResponse "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		resp = append(resp, toExpenseResponse(e))
	}

	c.JSON(http.StatusOK, gin.H{"expenses": resp})
}

// CreateExpense handles recording a new expense.
// @Summary     Record an expense
// @Description Record an expense with a positive amount and one of the accepted reasons
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} RowsAffectedResponse "Expense recorded"
// @Failure     400 {object} ErrorResponse "Invalid reason, amount or input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must use the YYYY-MM-DD format"))
		return
	}

	expense := &models.Expense{
		Amount: *req.Amount,
		Reason: models.ExpenseReason(req.Reason),
		Date:   date,
	}

	rows, err := h.expenseService.AddExpense(c.Request.Context(), expense)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(getUserID(c), services.AuditActionCreateExpense, services.AuditResourceExpense, expense.ID, c.ClientIP(),
		map[string]any{"amount": expense.Amount.String(), "reason": expense.Reason, "date": req.Date})

	c.JSON(http.StatusCreated, RowsAffectedResponse{RowsAffected: rows})
}

// DeleteExpense handles deleting an expense.
// @Summary     Delete an expense
// @Description Delete an expense by ID. Deleting a missing ID reports zero rows affected.
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} RowsAffectedResponse "Rows deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.expenseService.DeleteExpense(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if rows > 0 {
		h.auditService.Log(getUserID(c), services.AuditActionDeleteExpense, services.AuditResourceExpense, id, c.ClientIP(), nil)
	}

	c.JSON(http.StatusOK, RowsAffectedResponse{RowsAffected: rows})
}

// GetReasons lists the accepted expense reasons.
// @Summary     List expense reasons
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string][]string "Reasons"
// @Router      /expenses/reasons [get]
func (h *ExpenseHandler) GetReasons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reasons": h.expenseService.Reasons()})
}

// GetSummary handles totalling expenses per reason.
// @Summary     Summarise expenses
// @Description Totals and counts per reason over an optional inclusive date range
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       from   query string false "First date (YYYY-MM-DD)"
// @Param       to     query string false "Last date (YYYY-MM-DD)"
// @Param       reason query string false "Restrict to one reason"
// @Success     200 {object} services.ExpenseSummary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/summary [get]
func (h *ExpenseHandler) GetSummary(c *gin.Context) {
	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.SummaryFilter
	var err error
	if filter.From, err = parseDate(q.From); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.To, err = parseDate(q.To); err != nil {
		respondWithError(c, err)
		return
	}
	if q.Reason != "" {
		reason := models.ExpenseReason(q.Reason)
		filter.Reason = &reason
	}

	summary, err := h.expenseService.SummarizeExpenses(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportExpenses streams every expense as a spreadsheet.
// @Summary     Export expenses
// @Description Download every expense as an xlsx workbook
// @Tags        expenses
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Success     200 {file} file "Workbook"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/export [get]
func (h *ExpenseHandler) ExportExpenses(c *gin.Context) {
	expenses, err := h.expenseService.ListExpenses(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteExpensesXLSX(&buf, expenses); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
