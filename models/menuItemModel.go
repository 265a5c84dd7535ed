package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var MenuCategories = []string{"burger", "side", "drink", "dessert"}

type NutritionalInfo struct {
	Calories float64 `bson:"calories" json:"calories" validate:"min=0"`
	Protein  float64 `bson:"protein" json:"protein" validate:"min=0"`
	Carbs    float64 `bson:"carbs" json:"carbs" validate:"min=0"`
	Fat      float64 `bson:"fat" json:"fat" validate:"min=0"`
}

type MenuItem struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	Name            string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description     string             `bson:"description" json:"description" validate:"required"`
	Price           float64            `bson:"price" json:"price" validate:"min=0"`
	Category        string             `bson:"category" json:"category" validate:"required,oneof=burger side drink dessert"`
	Image           string             `bson:"image" json:"image" validate:"required"`
	InStock         bool               `bson:"inStock" json:"inStock"`
	NutritionalInfo NutritionalInfo    `bson:"nutritionalInfo" json:"nutritionalInfo"`
	Created_at      time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// MenuItemUpdate carries a partial update; nil fields are left alone.
type MenuItemUpdate struct {
	Name            *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Description     *string          `json:"description" validate:"omitempty,min=1"`
	Price           *float64         `json:"price" validate:"omitempty,min=0"`
	Category        *string          `json:"category" validate:"omitempty,oneof=burger side drink dessert"`
	Image           *string          `json:"image" validate:"omitempty,min=1"`
	InStock         *bool            `json:"inStock"`
	NutritionalInfo *NutritionalInfo `json:"nutritionalInfo"`
}

func (u MenuItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Category == nil &&
		u.Image == nil && u.InStock == nil && u.NutritionalInfo == nil
}

type MenuFilter struct {
	Category string
}
