package controller

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/michelstore/storefront-service/config"
	"github.com/michelstore/storefront-service/internal/dto"
	"github.com/michelstore/storefront-service/internal/service"
	pkgdto "github.com/michelstore/storefront-service/pkg/dto"
	"github.com/michelstore/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.CatalogService
	contact config.StoreContact
}

func CreateCatalogController(e *echo.Group, service service.CatalogService, contact config.StoreContact, isLoggedIn echo.MiddlewareFunc) {
	c := Controller{
		service: service,
		contact: contact,
	}

	e.GET("/products", c.GetProducts)
	e.POST("/products", c.AddProduct, isLoggedIn)
	e.PUT("/products/:id", c.UpdateProduct, isLoggedIn)
	e.DELETE("/products/:id", c.DeleteProduct, isLoggedIn)

	e.GET("/kits", c.GetKits)
	e.POST("/kits", c.AddKit, isLoggedIn)
	e.PUT("/kits/:id", c.UpdateKit, isLoggedIn)
	e.DELETE("/kits/:id", c.DeleteKit, isLoggedIn)

	e.POST("/upload", c.Upload, isLoggedIn)
	e.POST("/upload-content", c.UploadContent, isLoggedIn)

	e.GET("/contact", c.GetContact)
}

func (c *Controller) GetProducts(e echo.Context) error {
	products, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.JSON(http.StatusOK, products)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if validationErrors := payload.Validate(); validationErrors != nil {
		return pkgdto.WriteValidationErrorResponse(e, validationErrors)
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.JSON(http.StatusCreated, product)
}

func (c *Controller) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if validationErrors := payload.Validate(); validationErrors != nil {
		return pkgdto.WriteValidationErrorResponse(e, validationErrors)
	}

	payload.ID = e.Param("id")
	product, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.JSON(http.StatusOK, product)
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteProduct(e.Request().Context(), id)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.NoContent(http.StatusNoContent)
}

func (c *Controller) GetKits(e echo.Context) error {
	kits, err := c.service.GetKits(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.JSON(http.StatusOK, kits)
}

func (c *Controller) AddKit(e echo.Context) error {
	payload := dto.KitRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddKit").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if validationErrors := payload.Validate(); validationErrors != nil {
		return pkgdto.WriteValidationErrorResponse(e, validationErrors)
	}

	kit, err := c.service.AddKit(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.JSON(http.StatusCreated, kit)
}

func (c *Controller) UpdateKit(e echo.Context) error {
	payload := dto.KitRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateKit").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if validationErrors := payload.Validate(); validationErrors != nil {
		return pkgdto.WriteValidationErrorResponse(e, validationErrors)
	}

	payload.ID = e.Param("id")
	kit, err := c.service.UpdateKit(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.JSON(http.StatusOK, kit)
}

func (c *Controller) DeleteKit(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteKit(e.Request().Context(), id)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.NoContent(http.StatusNoContent)
}

// Upload is the readiness ack the admin form calls before streaming the file
// itself; the host needs no pre-generated path.
func (c *Controller) Upload(e echo.Context) error {
	return pkgdto.WriteSuccessResponse(e, "Ready for upload")
}

func (c *Controller) UploadContent(e echo.Context) error {
	fileHeader, err := e.FormFile("file")
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.ErrNoFile, nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UploadContent").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrNoFile, nil)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UploadContent").Msg("")
		return pkgdto.WriteErrorResponse(e, errs.ErrInternalServer, nil)
	}

	image, err := c.service.UploadImage(e.Request().Context(), fileHeader.Filename, content)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, errs.Sanitize(err), nil)
	}

	return e.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		ImageURL: image.URL,
		ImageID:  image.ID,
	})
}

func (c *Controller) GetContact(e echo.Context) error {
	return e.JSON(http.StatusOK, c.contact)
}
