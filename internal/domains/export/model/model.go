package model

import "time"

const (
	FeedStudents   = "students"
	FeedRooms      = "rooms"
	FeedComplaints = "complaints"
)

// Feeds lists every export in a stable order.
var Feeds = []string{FeedStudents, FeedRooms, FeedComplaints}

type StudentRow struct {
	Username string `db:"username"`
	FullName string `db:"full_name"`
	RollNo   string `db:"roll_no"`
	Contact  string `db:"contact"`
	Course   string `db:"course"`
	Semester int    `db:"semester"`
	Room     string `db:"room"`
}

type RoomRow struct {
	Number   string `db:"number"`
	Capacity int    `db:"capacity"`
	Occupied int    `db:"occupied"`
}

type ComplaintRow struct {
	Title     string    `db:"title"`
	Student   string    `db:"student"`
	Category  string    `db:"category"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
