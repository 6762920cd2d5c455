package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"urbanmart/internal/core/application/usecases/queries"
	"urbanmart/internal/core/domain/model/kernel"
)

// GetProduct handles GET /api/products/:id. Public, no token required.
//
//	@Summary	Get a product by id
//	@Tags		catalog
//	@Produce	json
//	@Param		id	path	string	true	"product id"
//	@Success	200	{object}	envelope
//	@Router		/api/products/{id} [get]
func (s *Server) GetProduct(c echo.Context) error {
	productID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return respondError(c, err)
	}

	product, err := s.handlers.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusOK, product)
}

// GetAdminStats handles GET /api/admin/stats.
//
//	@Summary	Get marketplace-wide counters and revenue
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	envelope
//	@Security	BearerAuth
//	@Router		/api/admin/stats [get]
func (s *Server) GetAdminStats(c echo.Context) error {
	query, err := queries.NewGetAdminStatsQuery()
	if err != nil {
		return respondError(c, err)
	}

	stats, err := s.handlers.GetAdminStats.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, nethttp.StatusOK, stats)
}
