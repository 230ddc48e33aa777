package handler

import (
	"context"
	"errors"
	"net/http"

	"vinoteca-server/internal/apierrors"
	"vinoteca-server/internal/observability"
	"vinoteca-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogStore is the slice of the store the public catalog needs.
type CatalogStore interface {
	SearchWines(ctx context.Context, params store.SearchWinesParams) ([]store.Wine, error)
	GetWineByID(ctx context.Context, id uuid.UUID) (store.Wine, error)
}

type Handler struct {
	store  CatalogStore
	logger *observability.Logger
}

func New(catalogStore CatalogStore, logger *observability.Logger) Handler {
	return Handler{store: catalogStore, logger: logger}
}

// HandleSearchWines lists active wines, filtered by the optional query
// string parameters query, type and region.
func (h *Handler) HandleSearchWines(c *gin.Context) {
	ctx := c.Request.Context()

	wines, err := h.store.SearchWines(ctx, store.SearchWinesParams{
		Query:  c.Query("query"),
		Type:   c.Query("type"),
		Region: c.Query("region"),
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"wines": wines})
}

func (h *Handler) HandleGetWine(c *gin.Context) {
	ctx := c.Request.Context()

	wineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeWineNotFound, "Wine not found"))
		return
	}

	wine, err := h.store.GetWineByID(ctx, wineID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeWineNotFound, "Wine not found"))
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, wine)
}
