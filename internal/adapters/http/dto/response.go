// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/parcel-service/internal/domain/parcel"

// ParcelResponse represents a single parcel in HTTP responses.
type ParcelResponse struct {
	ID                int64   `json:"id"`
	SenderName        string  `json:"senderName"`
	ReceiverName      string  `json:"receiverName"`
	ParcelDescription string  `json:"parcelDescription"`
	ReceivedDate      string  `json:"receivedDate"`
	Status            string  `json:"status"`
	ContactNumber     *string `json:"contactNumber"`
}

// ToParcelResponse converts a domain Parcel to an HTTP response DTO.
func ToParcelResponse(p *parcel.Parcel) ParcelResponse {
	return ParcelResponse{
		ID:                p.ID,
		SenderName:        p.SenderName,
		ReceiverName:      p.ReceiverName,
		ParcelDescription: p.ParcelDescription,
		ReceivedDate:      p.ReceivedDate.String(),
		Status:            p.Status.String(),
		ContactNumber:     p.ContactNumber,
	}
}

// ToParcelListResponse converts parcels to a list of response DTOs. The
// result encodes as a bare JSON array and is never null.
func ToParcelListResponse(parcels []parcel.Parcel) []ParcelResponse {
	items := make([]ParcelResponse, len(parcels))
	for i := range parcels {
		items[i] = ToParcelResponse(&parcels[i])
	}
	return items
}
