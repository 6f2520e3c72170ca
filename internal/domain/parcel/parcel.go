// Package parcel defines the Parcel entity, the tracked shipment record.
package parcel

import (
	"strings"

	"github.com/jsamuelsen11/parcel-service/internal/domain"
)

// Parcel is a shipment record. ID is assigned by the store on creation and
// never changes afterwards. ContactNumber is the only optional field.
type Parcel struct {
	ID                int64
	SenderName        string
	ReceiverName      string
	ParcelDescription string
	ReceivedDate      Date
	Status            Status
	ContactNumber     *string
}

// Validate checks that every mandatory field is populated.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (p *Parcel) Validate() error {
	if p == nil {
		return &domain.ValidationError{Fields: map[string]string{"parcel": domain.MsgRequired}}
	}

	fields := make(map[string]string)

	if strings.TrimSpace(p.SenderName) == "" {
		fields["senderName"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.ReceiverName) == "" {
		fields["receiverName"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.ParcelDescription) == "" {
		fields["parcelDescription"] = domain.MsgRequired
	}
	if p.ReceivedDate.IsZero() {
		fields["receivedDate"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Status.String()) == "" {
		fields["status"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ReplaceWith overwrites every mutable field of p with the value from src.
// ID is left untouched. A nil ContactNumber in src clears the contact number.
func (p *Parcel) ReplaceWith(src *Parcel) {
	p.SenderName = src.SenderName
	p.ReceiverName = src.ReceiverName
	p.ParcelDescription = src.ParcelDescription
	p.ReceivedDate = src.ReceivedDate
	p.Status = src.Status
	p.ContactNumber = cloneString(src.ContactNumber)
}

// Clone returns a deep copy of p.
func (p *Parcel) Clone() *Parcel {
	c := *p
	c.ContactNumber = cloneString(p.ContactNumber)
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
