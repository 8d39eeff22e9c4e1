package dto

import "hostel/internal/domains/dashboard/model"

type SummaryResponse struct {
	RoomCount           int    `json:"room_count"`
	AvailableRoomCount  int    `json:"available_room_count"`
	BedCount            int    `json:"bed_count"`
	OccupiedBedCount    int    `json:"occupied_bed_count"`
	StudentCount        int    `json:"student_count"`
	PendingRoomRequests int    `json:"pending_room_requests"`
	UnpaidFees          int    `json:"unpaid_fees"`
	OpenComplaints      int    `json:"open_complaints"`
	GeneratedAt         string `json:"generated_at"`
}

func (r *SummaryResponse) FromModel(model model.Summary, generatedAt string) {
	r.RoomCount = model.RoomCount
	r.AvailableRoomCount = model.AvailableRoomCount
	r.BedCount = model.BedCount
	r.OccupiedBedCount = model.OccupiedBedCount
	r.StudentCount = model.StudentCount
	r.PendingRoomRequests = model.PendingRoomRequests
	r.UnpaidFees = model.UnpaidFees
	r.OpenComplaints = model.OpenComplaints
	r.GeneratedAt = generatedAt
}
