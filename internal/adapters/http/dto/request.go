package dto

import (
	"strings"

	"github.com/jsamuelsen11/parcel-service/internal/domain"
	"github.com/jsamuelsen11/parcel-service/internal/domain/parcel"
)

const msgInvalidDate = "must be a date in YYYY-MM-DD format"

// ParcelRequest is the JSON body for creating or replacing a parcel. Any id
// in the body is ignored; the path or the store decides the ID.
type ParcelRequest struct {
	SenderName        string  `json:"senderName"`
	ReceiverName      string  `json:"receiverName"`
	ParcelDescription string  `json:"parcelDescription"`
	ReceivedDate      string  `json:"receivedDate"`
	Status            string  `json:"status"`
	ContactNumber     *string `json:"contactNumber"`
}

// Validate checks that mandatory fields are present and that receivedDate
// parses. Returns a *domain.ValidationError if any checks fail.
func (r *ParcelRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.SenderName) == "" {
		fields["senderName"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.ReceiverName) == "" {
		fields["receiverName"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.ParcelDescription) == "" {
		fields["parcelDescription"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.ReceivedDate) == "" {
		fields["receivedDate"] = domain.MsgRequired
	} else if _, err := parcel.ParseDate(strings.TrimSpace(r.ReceivedDate)); err != nil {
		fields["receivedDate"] = msgInvalidDate
	}
	if strings.TrimSpace(r.Status) == "" {
		fields["status"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToParcel maps a validated request onto a domain Parcel with a zero ID.
func (r *ParcelRequest) ToParcel() *parcel.Parcel {
	p := &parcel.Parcel{
		SenderName:        r.SenderName,
		ReceiverName:      r.ReceiverName,
		ParcelDescription: r.ParcelDescription,
		Status:            parcel.Status(r.Status),
	}
	if d, err := parcel.ParseDate(strings.TrimSpace(r.ReceivedDate)); err == nil {
		p.ReceivedDate = d
	}
	if r.ContactNumber != nil {
		v := *r.ContactNumber
		p.ContactNumber = &v
	}
	return p
}
