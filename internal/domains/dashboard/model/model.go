package model

type Summary struct {
	RoomCount           int `db:"room_count"`
	AvailableRoomCount  int `db:"available_room_count"`
	BedCount            int `db:"bed_count"`
	OccupiedBedCount    int `db:"occupied_bed_count"`
	StudentCount        int `db:"student_count"`
	PendingRoomRequests int `db:"pending_room_requests"`
	UnpaidFees          int `db:"unpaid_fees"`
	OpenComplaints      int `db:"open_complaints"`
}
