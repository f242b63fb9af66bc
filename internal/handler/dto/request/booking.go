package request

import (
	"tourbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	TourID        uuid.UUID `json:"tourId" binding:"required"`
	DepartureDate string    `json:"departureDate" binding:"required"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
}

func (r SubmitBookingRequest) ToInput(cartKey string) commands.SubmitBookingInput {
	return commands.SubmitBookingInput{
		TourID:        r.TourID,
		DepartureDate: r.DepartureDate,
		Adults:        r.Adults,
		Children:      r.Children,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		CartKey:       cartKey,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}
