package contracts

import "context"

// PatientNotification is the payload handed to the outbound messaging
// worker that reaches patients over WhatsApp.
type PatientNotification struct {
	ID          string `json:"id"`
	Event       string `json:"event"`
	PatientID   string `json:"patient_id"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Message     string `json:"message"`
	Token       string `json:"token,omitempty"`
}

type NotificationPublisher interface {
	Publish(ctx context.Context, notification *PatientNotification) error
}
