package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/finveld/bank_backoffice/internal/apperrors"
	portssvc "github.com/finveld/bank_backoffice/internal/core/ports/services"
	"github.com/finveld/bank_backoffice/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1")
	registerOwnerRoutes(v1, services.Owner, services.Account)
	registerAccountRoutes(v1, services.Account, services.Transaction)
	registerTransactionRoutes(v1, services.Transaction)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// respondServiceError translates the service error taxonomy to HTTP.
// Validation, balance, closed-account and chain failures are client errors;
// everything unclassified becomes an opaque 500 and is logged internally.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error) {
	var (
		notValid  *apperrors.NotValidError
		notZero   *apperrors.BalanceNotZeroError
		closed    *apperrors.AccountClosedError
		invalidOp *apperrors.InvalidAccountOperationError
	)

	switch {
	case errors.As(err, &notValid):
		c.JSON(http.StatusBadRequest, gin.H{"errors": notValid.Violations})
	case errors.As(err, &notZero):
		c.JSON(http.StatusBadRequest, gin.H{"error": notZero.Error(), "accountIDs": notZero.AccountIDs})
	case errors.As(err, &closed):
		c.JSON(http.StatusBadRequest, gin.H{"error": closed.Error()})
	case errors.As(err, &invalidOp):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidOp.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
