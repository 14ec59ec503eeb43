package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductRequest() ProductRequest {
	return ProductRequest{
		Name:        "Tênis Runner",
		Description: "Tênis esportivo",
		Price:       19.90,
		ImageURL:    "https://i.ibb.co/abc/shoe.jpg",
		Type:        "individual",
	}
}

func validKitRequest() KitRequest {
	return KitRequest{
		Name:        "Kit Academia",
		Description: "Conjunto completo",
		Price:       89.90,
		ImageURL:    "/objects/uploads/kit.jpg",
		ProductIDs:  []string{"p1", "p2"},
	}
}

func TestProductRequestValidate(t *testing.T) {
	assert.Nil(t, validProductRequest().Validate())

	zeroPrice := validProductRequest()
	zeroPrice.Price = 0
	assert.Nil(t, zeroPrice.Validate(), "zero price is acceptable")

	negative := validProductRequest()
	negative.Price = -1
	errs := negative.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)

	noName := validProductRequest()
	noName.Name = ""
	errs = noName.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "name", errs[0].Field)

	noDescription := validProductRequest()
	noDescription.Description = ""
	errs = noDescription.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "description", errs[0].Field)

	badKind := validProductRequest()
	badKind.Type = "bundle"
	errs = badKind.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "type", errs[0].Field)

	empty := ProductRequest{Price: -1}
	assert.Len(t, empty.Validate(), 4)
}

func TestProductRequestImageURL(t *testing.T) {
	for _, accepted := range []string{
		"https://i.ibb.co/abc/shoe.jpg",
		"/objects/uploads/shoe.jpg",
		"pending-upload",
	} {
		r := validProductRequest()
		r.ImageURL = accepted
		assert.Nil(t, r.Validate(), accepted)
	}

	for _, rejected := range []string{
		"",
		"https://example.com/shoe.jpg",
		"objects/shoe.jpg",
		"pending",
	} {
		r := validProductRequest()
		r.ImageURL = rejected
		errs := r.Validate()
		require.Len(t, errs, 1, rejected)
		assert.Equal(t, "imageUrl", errs[0].Field)
	}
}

func TestKitRequestValidate(t *testing.T) {
	assert.Nil(t, validKitRequest().Validate())

	noProducts := validKitRequest()
	noProducts.ProductIDs = nil
	errs := noProducts.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "productIds", errs[0].Field)

	negative := validKitRequest()
	negative.Price = -0.01
	errs = negative.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "price", errs[0].Field)
}
