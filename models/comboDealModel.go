package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ComboItem struct {
	MenuItem primitive.ObjectID `bson:"menuItem" json:"menuItem" validate:"required"`
	Quantity int                `bson:"quantity" json:"quantity" validate:"min=1"`
}

type ComboDeal struct {
	ID              primitive.ObjectID `bson:"_id" json:"id"`
	Name            string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description     string             `bson:"description" json:"description" validate:"required"`
	Items           []ComboItem        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Image           string             `bson:"image" json:"image" validate:"required"`
	TotalPrice      float64            `bson:"totalPrice" json:"totalPrice" validate:"min=0"`
	DiscountedPrice float64            `bson:"discountedPrice" json:"discountedPrice" validate:"min=0,ltefield=TotalPrice"`
	ValidFrom       time.Time          `bson:"validFrom" json:"validFrom"`
	ValidUntil      time.Time          `bson:"validUntil" json:"validUntil" validate:"required,gtfield=ValidFrom"`
	Active          bool               `bson:"active" json:"active"`
	Created_at      time.Time          `bson:"createdAt" json:"createdAt"`
	Updated_at      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (d ComboDeal) Savings() float64 {
	return d.TotalPrice - d.DiscountedPrice
}

func (d ComboDeal) SavingsPercentage() int {
	if d.TotalPrice <= 0 {
		return 0
	}
	return int(math.Round(d.Savings() / d.TotalPrice * 100))
}

// AvailableAt reports whether the deal can be ordered at t.
func (d ComboDeal) AvailableAt(t time.Time) bool {
	return d.Active && !t.Before(d.ValidFrom) && !t.After(d.ValidUntil)
}

type ComboDealView struct {
	ComboDeal         `bson:",inline"`
	Savings           float64 `json:"savings"`
	SavingsPercentage int     `json:"savingsPercentage"`
}

func (d ComboDeal) View() ComboDealView {
	return ComboDealView{ComboDeal: d, Savings: d.Savings(), SavingsPercentage: d.SavingsPercentage()}
}

// ComboDealRequest is the admin payload for creating or replacing a deal.
type ComboDealRequest struct {
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Items           []ComboItem `json:"items"`
	Image           string      `json:"image"`
	TotalPrice      float64     `json:"totalPrice"`
	DiscountedPrice float64     `json:"discountedPrice"`
	ValidFrom       *time.Time  `json:"validFrom"`
	ValidUntil      time.Time   `json:"validUntil"`
	Active          *bool       `json:"active"`
}

// ComboDealUpdate is applied on top of the stored deal and the result is re-validated.
type ComboDealUpdate struct {
	Name            *string      `json:"name"`
	Description     *string      `json:"description"`
	Items           *[]ComboItem `json:"items"`
	Image           *string      `json:"image"`
	TotalPrice      *float64     `json:"totalPrice"`
	DiscountedPrice *float64     `json:"discountedPrice"`
	ValidFrom       *time.Time   `json:"validFrom"`
	ValidUntil      *time.Time   `json:"validUntil"`
	Active          *bool        `json:"active"`
}

func (u ComboDealUpdate) Apply(d *ComboDeal) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.Items != nil {
		d.Items = *u.Items
	}
	if u.Image != nil {
		d.Image = *u.Image
	}
	if u.TotalPrice != nil {
		d.TotalPrice = *u.TotalPrice
	}
	if u.DiscountedPrice != nil {
		d.DiscountedPrice = *u.DiscountedPrice
	}
	if u.ValidFrom != nil {
		d.ValidFrom = *u.ValidFrom
	}
	if u.ValidUntil != nil {
		d.ValidUntil = *u.ValidUntil
	}
	if u.Active != nil {
		d.Active = *u.Active
	}
}
