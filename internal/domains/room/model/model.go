package model

import "hostel/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID       = "id"
	FieldNumber   = "number"
	FieldCapacity = "capacity"
	FieldOccupied = "occupied"
)

type Room struct {
	ID       string `db:"id"`
	Number   string `db:"number"`
	Capacity int    `db:"capacity"`
	Occupied int    `db:"occupied"`
	model.Metadata
}

func (r Room) IsAvailable() bool {
	return r.Occupied < r.Capacity
}

func (r Room) Vacancy() int {
	return max(r.Capacity-r.Occupied, 0)
}

// Drift is a room whose counter disagrees with the students bound to it.
type Drift struct {
	ID       string `db:"id"`
	Number   string `db:"number"`
	Occupied int    `db:"occupied"`
	Assigned int    `db:"assigned"`
}
