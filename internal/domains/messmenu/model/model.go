package model

import (
	"hostel/shared/model"
	"time"
)

const (
	TableName  = "mess_menus"
	EntityName = "mess menu"

	FieldID        = "id"
	FieldDate      = "date"
	FieldBreakfast = "breakfast"
	FieldLunch     = "lunch"
	FieldDinner    = "dinner"
)

// MessMenu holds the meals served on one calendar day. Date is unique.
type MessMenu struct {
	ID        string    `db:"id"`
	Date      time.Time `db:"date"`
	Breakfast string    `db:"breakfast"`
	Lunch     string    `db:"lunch"`
	Dinner    string    `db:"dinner"`
	model.Metadata
}
