package parcel

// Status is the delivery state of a Parcel. It is stored as free text; the
// constants below are the conventional values but any non-empty value is
// accepted and any status may follow any other.
type Status string

const (
	StatusReceived  Status = "RECEIVED"
	StatusDelivered Status = "DELIVERED"
	StatusPending   Status = "PENDING"
)

// IsKnown returns true if the status is one of the conventional constants.
func (s Status) IsKnown() bool {
	switch s {
	case StatusReceived, StatusDelivered, StatusPending:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
