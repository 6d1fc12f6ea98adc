package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/application/usecase/ledger"
	"github.com/team-dashboard/backend/internal/application/usecase/project"
	domainerror "github.com/team-dashboard/backend/internal/domain/error"
	"github.com/team-dashboard/backend/internal/domain/valueobject"
	"github.com/team-dashboard/backend/internal/integration/entrypoint/dto"
)

// LedgerController handles balance ledger endpoints: income distribution,
// expenses, withdrawals, balances, history and the audit log.
type LedgerController struct {
	recordIncomeUseCase  *ledger.RecordIncomeUseCase
	recordExpenseUseCase *ledger.RecordExpenseUseCase
	withdrawUseCase      *ledger.WithdrawUseCase
	deleteIncomeUseCase  *ledger.DeleteIncomeUseCase
	getBalanceUseCase    *ledger.GetBalanceUseCase
	listBalancesUseCase  *ledger.ListBalancesUseCase
	listHistoryUseCase   *ledger.ListHistoryUseCase
	listAuditLogUseCase  *ledger.ListAuditLogUseCase
	listExpensesUseCase  *ledger.ListExpensesUseCase
	listIncomeUseCase    *ledger.ListIncomeUseCase
	fundsOverviewUseCase *ledger.FundsOverviewUseCase
	getProjectUseCase    *project.GetProjectUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	recordIncomeUseCase *ledger.RecordIncomeUseCase,
	recordExpenseUseCase *ledger.RecordExpenseUseCase,
	withdrawUseCase *ledger.WithdrawUseCase,
	deleteIncomeUseCase *ledger.DeleteIncomeUseCase,
	getBalanceUseCase *ledger.GetBalanceUseCase,
	listBalancesUseCase *ledger.ListBalancesUseCase,
	listHistoryUseCase *ledger.ListHistoryUseCase,
	listAuditLogUseCase *ledger.ListAuditLogUseCase,
	listExpensesUseCase *ledger.ListExpensesUseCase,
	listIncomeUseCase *ledger.ListIncomeUseCase,
	fundsOverviewUseCase *ledger.FundsOverviewUseCase,
	getProjectUseCase *project.GetProjectUseCase,
) *LedgerController {
	return &LedgerController{
		recordIncomeUseCase:  recordIncomeUseCase,
		recordExpenseUseCase: recordExpenseUseCase,
		withdrawUseCase:      withdrawUseCase,
		deleteIncomeUseCase:  deleteIncomeUseCase,
		getBalanceUseCase:    getBalanceUseCase,
		listBalancesUseCase:  listBalancesUseCase,
		listHistoryUseCase:   listHistoryUseCase,
		listAuditLogUseCase:  listAuditLogUseCase,
		listExpensesUseCase:  listExpensesUseCase,
		listIncomeUseCase:    listIncomeUseCase,
		fundsOverviewUseCase: fundsOverviewUseCase,
		getProjectUseCase:    getProjectUseCase,
	}
}

// RecordIncome handles POST /ledger/income requests.
func (c *LedgerController) RecordIncome(ctx *gin.Context) {
	var req dto.RecordIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	input := ledger.RecordIncomeInput{
		GrossAmount: req.Amount,
		SourceLabel: req.SourceLabel,
		Note:        req.Note,
		Date:        date,
	}
	if req.ProjectID != nil {
		projectID, err := uuid.Parse(*req.ProjectID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid project ID",
			})
			return
		}
		linked, err := c.getProjectUseCase.Execute(ctx.Request.Context(), projectID)
		if err != nil {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "Linked project not found",
				Code:  string(domainerror.ErrCodeProjectNotFound),
			})
			return
		}
		input.ProjectID = &projectID
		input.ProjectName = linked.Name
	}

	output, err := c.recordIncomeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecordIncomeResponse(output))
}

// RecordExpense handles POST /ledger/expenses requests.
func (c *LedgerController) RecordExpense(ctx *gin.Context) {
	var req dto.RecordExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.recordExpenseUseCase.Execute(ctx.Request.Context(), ledger.RecordExpenseInput{
		Amount: req.Amount,
		Label:  req.Label,
		Note:   req.Note,
		Date:   date,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"id": output.ExpenseID.String()})
}

// Withdraw handles POST /ledger/balances/:key/withdraw requests.
func (c *LedgerController) Withdraw(ctx *gin.Context) {
	var req dto.WithdrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	err := c.withdrawUseCase.Execute(ctx.Request.Context(), ledger.WithdrawInput{
		TargetKey: ctx.Param("key"),
		Amount:    req.Amount,
		Note:      req.Note,
	})
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Withdrawal completed"})
}

// DeleteIncome handles DELETE /ledger/income/:id requests.
func (c *LedgerController) DeleteIncome(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income transaction ID",
		})
		return
	}

	if err := c.deleteIncomeUseCase.Execute(ctx.Request.Context(), id); err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Income transaction deleted"})
}

// GetBalance handles GET /ledger/balances/:key requests.
func (c *LedgerController) GetBalance(ctx *gin.Context) {
	output, err := c.getBalanceUseCase.Execute(ctx.Request.Context(), ctx.Param("key"))
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	history := make([]dto.HistoryEntryResponse, len(output.History))
	for i, entry := range output.History {
		history[i] = dto.ToHistoryEntryResponse(entry)
	}

	ctx.JSON(http.StatusOK, dto.BalanceDetailResponse{
		Balance: dto.ToBalanceResponse(output.Balance),
		History: history,
	})
}

// ListBalances handles GET /ledger/balances requests.
func (c *LedgerController) ListBalances(ctx *gin.Context) {
	balances, err := c.listBalancesUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	responses := make([]dto.BalanceResponse, len(balances))
	for i, balance := range balances {
		responses[i] = dto.ToBalanceResponse(balance)
	}

	ctx.JSON(http.StatusOK, gin.H{"balances": responses})
}

// ListHistory handles GET /ledger/balances/:key/history requests.
func (c *LedgerController) ListHistory(ctx *gin.Context) {
	entries, err := c.listHistoryUseCase.Execute(ctx.Request.Context(), ctx.Param("key"), parseLimit(ctx))
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	responses := make([]dto.HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.ToHistoryEntryResponse(entry)
	}

	ctx.JSON(http.StatusOK, gin.H{"history": responses})
}

// ListAuditLog handles GET /ledger/audit-log requests.
func (c *LedgerController) ListAuditLog(ctx *gin.Context) {
	entries, err := c.listAuditLogUseCase.Execute(ctx.Request.Context(), parseLimit(ctx))
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	responses := make([]dto.AuditLogEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = dto.ToAuditLogEntryResponse(entry)
	}

	ctx.JSON(http.StatusOK, gin.H{"audit_log": responses})
}

// ListExpenses handles GET /ledger/expenses requests.
func (c *LedgerController) ListExpenses(ctx *gin.Context) {
	expenses, err := c.listExpensesUseCase.Execute(ctx.Request.Context(), parseLimit(ctx))
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	responses := make([]dto.ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = dto.ToExpenseResponse(expense)
	}

	ctx.JSON(http.StatusOK, gin.H{"expenses": responses})
}

// ListIncome handles GET /ledger/income requests.
func (c *LedgerController) ListIncome(ctx *gin.Context) {
	incomes, err := c.listIncomeUseCase.Execute(ctx.Request.Context(), parseLimit(ctx))
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	responses := make([]dto.IncomeResponse, len(incomes))
	for i, income := range incomes {
		responses[i] = dto.ToIncomeResponse(income)
	}

	ctx.JSON(http.StatusOK, gin.H{"income": responses})
}

// FundsOverview handles GET /ledger/overview requests.
func (c *LedgerController) FundsOverview(ctx *gin.Context) {
	output, err := c.fundsOverviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFundsOverviewResponse(output))
}

// parseLimit reads the optional limit query parameter; zero lets the use
// case apply its configured default.
func parseLimit(ctx *gin.Context) int {
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			return limit
		}
	}
	return 0
}

// respondLedgerError maps ledger domain errors to HTTP responses.
func respondLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	code := ""
	if errors.As(err, &ledgerErr) {
		code = string(ledgerErr.Code)
	}

	switch {
	case errors.Is(err, domainerror.ErrInvalidAmount), errors.Is(err, domainerror.ErrEmptyLabel):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: code})
	case errors.Is(err, domainerror.ErrTargetNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: code})
	case errors.Is(err, domainerror.ErrInsufficientFunds):
		resp := dto.ErrorResponse{Error: err.Error(), Code: code}
		if ledgerErr != nil {
			balance := ledgerErr.CurrentBalance
			resp.CurrentBalance = &balance
			resp.CurrentBalanceDisplay = valueobject.FormatIDR(balance)
		}
		ctx.JSON(http.StatusUnprocessableEntity, resp)
	case errors.Is(err, domainerror.ErrPrerequisiteMissing), errors.Is(err, domainerror.ErrInsufficientRemainder):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Code: code})
	case errors.Is(err, domainerror.ErrContention):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: code})
	case errors.Is(err, domainerror.ErrStorageUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error(), Code: code})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
