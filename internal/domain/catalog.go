package domain

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemKind is the discriminant between standalone products and kit records.
type ItemKind string

const (
	ItemKindIndividual ItemKind = "individual"
	ItemKindKit        ItemKind = "kit"
)

// PendingUploadURL is the sentinel an admin form may submit before the image
// upload has finished. It is accepted at the input boundary only and must be
// replaced with a hosted URL before the record is persisted.
const PendingUploadURL = "pending-upload"

var acceptedImageURLPrefixes = []string{
	"/objects/",
	"https://i.ibb.co/",
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"image_url" json:"imageUrl"`
	ImageID     string             `bson:"image_id,omitempty" json:"imageId,omitempty"`
	Type        ItemKind           `bson:"type" json:"type"`
	IsFeatured  bool               `bson:"is_featured" json:"isFeatured"`
	CreatedAt   int64              `bson:"created_at" json:"createdAt"`
}

type Kit struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	ImageURL    string             `bson:"image_url" json:"imageUrl"`
	ImageID     string             `bson:"image_id,omitempty" json:"imageId,omitempty"`
	ProductIDs  []string           `bson:"product_ids" json:"productIds"`
	IsFeatured  bool               `bson:"is_featured" json:"isFeatured"`
	CreatedAt   int64              `bson:"created_at" json:"createdAt"`
}

// ValidImageURL reports whether url points at one of the accepted hosts.
func ValidImageURL(url string) bool {
	for _, prefix := range acceptedImageURLPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

// ValidInsertImageURL is the input-stage check: the pending-upload sentinel
// is allowed in addition to the accepted prefixes.
func ValidInsertImageURL(url string) bool {
	return url == PendingUploadURL || ValidImageURL(url)
}
