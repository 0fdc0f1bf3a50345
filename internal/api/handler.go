// Package api exposes the engine over HTTP for the form and document
// rendering frontends.
package api

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fenglian/fee-engine/internal/catalog"
	"github.com/fenglian/fee-engine/internal/document"
	"github.com/fenglian/fee-engine/internal/models"
	"github.com/fenglian/fee-engine/internal/money"
	"github.com/fenglian/fee-engine/internal/numeral"
	"github.com/fenglian/fee-engine/internal/service"
)

// Handler serves the fee engine HTTP API.
type Handler struct {
	catalog   *catalog.Catalog
	contracts *service.ContractService
	expenses  *service.ExpenseService
	outputDir string
	logger    *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(c *catalog.Catalog, contracts *service.ContractService, expenses *service.ExpenseService, outputDir string, logger *zap.Logger) *Handler {
	return &Handler{
		catalog:   c,
		contracts: contracts,
		expenses:  expenses,
		outputDir: outputDir,
		logger:    logger,
	}
}

// GetCatalog returns the service catalog for form rendering.
func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Categories()})
}

// PreviewContract computes the rollup and validation set for a draft
// without persisting anything.
func (h *Handler) PreviewContract(c *gin.Context) {
	var draft models.ContractDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	l := h.contracts.LoadLedger(&draft)
	snapshot, errs := h.contracts.BuildSnapshot(&draft)
	if len(errs) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid":             false,
			"validation_errors": errs,
			"checked_items":     len(l.CheckedEntries()),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "snapshot": snapshot})
}

// SubmitContract validates and persists a contract draft.
func (h *Handler) SubmitContract(c *gin.Context) {
	var draft models.ContractDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	outputPath := ""
	if h.outputDir != "" {
		name := document.SafeFileName(draft.ClientName) + "_合同费用确认单.xlsx"
		outputPath = filepath.Join(h.outputDir, name)
	}

	snapshot, err := h.contracts.Submit(c.Request.Context(), &draft, outputPath)
	if err != nil {
		var vf *service.ValidationFailure
		if errors.As(err, &vf) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"validation_errors": vf.Errors})
			return
		}
		h.logger.Error("Contract submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit contract"})
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// RecomputeExpense computes the reactive total for an expense draft.
func (h *Handler) RecomputeExpense(c *gin.Context) {
	var draft models.ExpenseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	total, err := h.expenses.Recompute(&draft)
	if err != nil {
		h.logger.Error("Expense recompute failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to recompute total"})
		return
	}
	c.JSON(http.StatusOK, total)
}

// SubmitExpense persists an expense record.
func (h *Handler) SubmitExpense(c *gin.Context) {
	var draft models.ExpenseDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	snapshot, err := h.expenses.Submit(c.Request.Context(), &draft)
	if err != nil {
		h.logger.Error("Expense submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit expense record"})
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// RenderNumeral converts an amount to its legal numeral. Out-of-range
// amounts return an empty numeral rather than an error status so document
// rendering degrades instead of failing.
func (h *Handler) RenderNumeral(c *gin.Context) {
	var req struct {
		Amount string `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	amount := money.Parse(money.Sanitize(req.Amount))
	words, err := numeral.ToLegalNumeral(amount)
	if err != nil {
		h.logger.Warn("Numeral conversion out of range",
			zap.String("amount", amount.String()),
			zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"amount": amount.StringFixed(2), "words": ""})
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amount.StringFixed(2), "words": words})
}

// GetContract returns a persisted contract snapshot.
func (h *Handler) GetContract(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	snapshot, err := h.contracts.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load contract"})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "contract not found"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetExpense returns a persisted expense snapshot.
func (h *Handler) GetExpense(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	snapshot, err := h.expenses.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load expense record"})
		return
	}
	if snapshot == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense record not found"})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
