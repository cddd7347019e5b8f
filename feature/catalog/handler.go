package catalog

import (
	"errors"

	"floorops/core/logger"
	"floorops/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/sizes", h.HandleListSizes)
	group.Post("/sizes", h.HandleCreateSize)
	group.Get("/sizes/aliases", h.HandleListSizeAliases)
	group.Post("/sizes/aliases", h.HandleCreateSizeAlias)
	group.Get("/products", h.HandleListProducts)
	group.Post("/products", h.HandleCreateProduct)
	group.Get("/products/aliases", h.HandleListProductAliases)
	group.Post("/products/aliases", h.HandleCreateProductAlias)
	group.Get("/products/search", h.HandleSearchProducts)
}

// HandleListSizes lists the canonical sizes.
// @Summary List Sizes
// @Description List every canonical size label in the dictionary.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Size "Sizes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sizes [get]
func (h *Handler) HandleListSizes(c *fiber.Ctx) error {
	sizes, err := h.service.ListSizes(c.Context())
	if err != nil {
		return h.fail(c, "Listing sizes failed", err)
	}
	return c.JSON(sizes)
}

// HandleCreateSize adds a canonical size.
// @Summary Create Size
// @Description Register a new canonical size label.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body models.CreateSizeRequest true "Size"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sizes [post]
func (h *Handler) HandleCreateSize(c *fiber.Ctx) error {
	var req models.CreateSizeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.CreateSize(c.Context(), req); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		return h.fail(c, "Creating size failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created"})
}

// HandleListSizeAliases lists the size alias edges.
// @Summary List Size Aliases
// @Description List every size alias edge in the dictionary.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.SizeAlias "Size Aliases"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sizes/aliases [get]
func (h *Handler) HandleListSizeAliases(c *fiber.Ctx) error {
	aliases, err := h.service.ListSizeAliases(c.Context())
	if err != nil {
		return h.fail(c, "Listing size aliases failed", err)
	}
	return c.JSON(aliases)
}

// HandleCreateSizeAlias adds a size alias edge.
// @Summary Create Size Alias
// @Description Register an alias text that maps to a canonical size.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body models.CreateSizeAliasRequest true "Size Alias"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sizes/aliases [post]
func (h *Handler) HandleCreateSizeAlias(c *fiber.Ctx) error {
	var req models.CreateSizeAliasRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.CreateSizeAlias(c.Context(), req); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		return h.fail(c, "Creating size alias failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created"})
}

// HandleListProducts lists the canonical products.
// @Summary List Products
// @Description List every canonical product name in the dictionary.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Product "Products"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products [get]
func (h *Handler) HandleListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Context())
	if err != nil {
		return h.fail(c, "Listing products failed", err)
	}
	return c.JSON(products)
}

// HandleCreateProduct adds a canonical product.
// @Summary Create Product
// @Description Register a new canonical product name.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products [post]
func (h *Handler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.CreateProduct(c.Context(), req); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		return h.fail(c, "Creating product failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created"})
}

// HandleListProductAliases lists the product alias edges.
// @Summary List Product Aliases
// @Description List every product alias edge in the dictionary.
// @Tags catalog
// @Produce json
// @Success 200 {array} models.ProductAlias "Product Aliases"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/aliases [get]
func (h *Handler) HandleListProductAliases(c *fiber.Ctx) error {
	aliases, err := h.service.ListProductAliases(c.Context())
	if err != nil {
		return h.fail(c, "Listing product aliases failed", err)
	}
	return c.JSON(aliases)
}

// HandleCreateProductAlias adds a product alias edge.
// @Summary Create Product Alias
// @Description Register an alias text that maps to a canonical product name.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body models.CreateProductAliasRequest true "Product Alias"
// @Success 201 {object} map[string]string "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/aliases [post]
func (h *Handler) HandleCreateProductAlias(c *fiber.Ctx) error {
	var req models.CreateProductAliasRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := h.service.CreateProductAlias(c.Context(), req); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return badRequest(c, err.Error())
		}
		return h.fail(c, "Creating product alias failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "created"})
}

// HandleSearchProducts searches canonical product names.
// @Summary Search Products
// @Description Search canonical product names by substring.
// @Tags catalog
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {array} string "Matching product names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/products/search [get]
func (h *Handler) HandleSearchProducts(c *fiber.Ctx) error {
	names, err := h.service.SearchProducts(c.Context(), c.Query("q"))
	if err != nil {
		return h.fail(c, "Product search failed", err)
	}
	return c.JSON(names)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
