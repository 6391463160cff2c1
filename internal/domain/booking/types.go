package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed:
		return true
	default:
		return false
	}
}

// Occupancy is the point-in-time summary of a room: Booked as soon as any
// booking references it, regardless of when that booking takes place.
type Occupancy string

const (
	OccupancyBooked    Occupancy = "Booked"
	OccupancyAvailable Occupancy = "Available"
)

func OccupancyOf(bookingCount int) Occupancy {
	if bookingCount > 0 {
		return OccupancyBooked
	}
	return OccupancyAvailable
}
