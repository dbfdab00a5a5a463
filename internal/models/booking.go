package models

// Booking is a lesson booking submitted by a visitor. Teacher name, weekday
// and time slot are stored as label snapshots, not foreign keys, so the
// record stays valid even if the teacher is later removed.
type Booking struct {
	ID          int64  `db:"id" json:"id"`
	TeacherName string `db:"teacher_name" json:"teacher_name"`
	Weekday     string `db:"weekday" json:"weekday"`
	TimeSlot    string `db:"time_slot" json:"time_slot"`
	ClientName  string `db:"client_name" json:"client_name"`
	ClientPhone string `db:"client_phone" json:"client_phone"`
}

// Request is a tutoring request submitted by a visitor. Goal and free-time
// labels are snapshots for the same reason as in Booking.
type Request struct {
	ID          int64  `db:"id" json:"id"`
	Goal        string `db:"goal" json:"goal"`
	FreeTime    string `db:"free_time" json:"free_time"`
	ClientName  string `db:"client_name" json:"client_name"`
	ClientPhone string `db:"client_phone" json:"client_phone"`
}
