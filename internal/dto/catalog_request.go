package dto

import (
	"github.com/michelstore/storefront-service/internal/domain"
	pkgdto "github.com/michelstore/storefront-service/pkg/dto"
)

type ProductRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	ImageID     string  `json:"imageId"`
	Type        string  `json:"type"`
	IsFeatured  bool    `json:"isFeatured"`
}

type KitRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	ImageID     string   `json:"imageId"`
	ProductIDs  []string `json:"productIds"`
	IsFeatured  bool     `json:"isFeatured"`
}

// Validate enforces the insert shape. A nil result means the payload is
// acceptable for persistence once the pending-upload sentinel is resolved.
func (r ProductRequest) Validate() []pkgdto.ValidationError {
	var validationErrors []pkgdto.ValidationError

	if r.Name == "" {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "name", Message: "name is required"})
	}

	if r.Description == "" {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "description", Message: "description is required"})
	}

	if r.Price < 0 {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "price", Message: "price must be greater than or equal to zero"})
	}

	if !domain.ValidInsertImageURL(r.ImageURL) {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "imageUrl", Message: "image URL must point at an accepted host"})
	}

	if r.Type != "" && r.Type != string(domain.ItemKindIndividual) && r.Type != string(domain.ItemKindKit) {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "type", Message: "type must be individual or kit"})
	}

	return validationErrors
}

func (r KitRequest) Validate() []pkgdto.ValidationError {
	var validationErrors []pkgdto.ValidationError

	if r.Name == "" {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "name", Message: "name is required"})
	}

	if r.Description == "" {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "description", Message: "description is required"})
	}

	if r.Price < 0 {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "price", Message: "price must be greater than or equal to zero"})
	}

	if !domain.ValidInsertImageURL(r.ImageURL) {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "imageUrl", Message: "image URL must point at an accepted host"})
	}

	if len(r.ProductIDs) == 0 {
		validationErrors = append(validationErrors, pkgdto.ValidationError{Field: "productIds", Message: "select at least one product"})
	}

	return validationErrors
}
