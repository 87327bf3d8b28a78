package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finveld/bank_backoffice/internal/core/ports/services"
	"github.com/finveld/bank_backoffice/internal/dto"
	"github.com/finveld/bank_backoffice/internal/middleware"
)

// ownerHandler handles HTTP requests related to account owners.
type ownerHandler struct {
	ownerService   portssvc.OwnerSvcFacade
	accountService portssvc.AccountSvcFacade
}

// registerOwnerRoutes registers routes related to account owners.
func registerOwnerRoutes(rg *gin.RouterGroup, ownerService portssvc.OwnerSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := &ownerHandler{ownerService: ownerService, accountService: accountService}

	owners := rg.Group("/owners")
	{
		owners.POST("", h.createOwner)
		owners.GET("", h.listOwners)
		owners.GET("/:id", h.getOwner)
		owners.PUT("/:id", h.updateOwner)
		owners.DELETE("/:id", h.deleteOwner)
		owners.GET("/:id/accounts", h.listOwnerAccounts)
	}
}

// createOwner godoc
// @Summary Create a new account owner
// @Description Required permissions: BankClerk-ManageOwners
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body dto.CreateOwnerRequest true "Owner details"
// @Success 201 {object} dto.OwnerResponse
// @Failure 400 {object} map[string]any "Validation issues"
// @Failure 500 {object} map[string]string
// @Router /owners [post]
func (h *ownerHandler) createOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	owner, err := h.ownerService.CreateOwner(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOwnerResponse(owner))
}

// listOwners godoc
// @Summary List all account owners
// @Description Required permissions: BankClerk-ViewOwners
// @Tags owners
// @Produce json
// @Success 200 {array} dto.OwnerResponse
// @Failure 500 {object} map[string]string
// @Router /owners [get]
func (h *ownerHandler) listOwners(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owners, err := h.ownerService.ListOwners(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListOwnerResponse(owners))
}

// getOwner godoc
// @Summary Get an account owner by ID
// @Description Required permissions: BankClerk-ViewOwners
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {object} dto.OwnerResponse
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /owners/{id} [get]
func (h *ownerHandler) getOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	owner, err := h.ownerService.GetOwnerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOwnerResponse(owner))
}

// updateOwner godoc
// @Summary Rename an account owner
// @Description Required permissions: BankClerk-ManageOwners
// @Tags owners
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param owner body dto.UpdateOwnerRequest true "New owner details"
// @Success 200 {object} dto.OwnerResponse
// @Failure 400 {object} map[string]any "Validation issues"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /owners/{id} [put]
func (h *ownerHandler) updateOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	owner, err := h.ownerService.UpdateOwner(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOwnerResponse(owner))
}

// deleteOwner godoc
// @Summary Delete an account owner
// @Description Required permissions: BankClerk-ManageOwners. Blocked while any account in the ledger carries a nonzero balance.
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 204 "Owner deleted"
// @Failure 400 {object} map[string]any "Balance not zero"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /owners/{id} [delete]
func (h *ownerHandler) deleteOwner(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ownerID := c.Param("id")
	if err := h.ownerService.DeleteOwner(c.Request.Context(), ownerID); err != nil {
		respondServiceError(c, logger, err)
		return
	}

	logger.Info("Owner deleted via API", slog.String("owner_id", ownerID))
	c.Status(http.StatusNoContent)
}

// listOwnerAccounts godoc
// @Summary List the accounts of an owner
// @Description Required permissions: AccountOwner-ViewAccounts
// @Tags owners
// @Produce json
// @Param id path string true "Owner ID"
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} map[string]string
// @Router /owners/{id}/accounts [get]
func (h *ownerHandler) listOwnerAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccountsByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}
