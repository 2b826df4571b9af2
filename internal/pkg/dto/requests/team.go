package requests

type CreateTeam struct {
	Name             string `json:"name" validate:"required"`
	WhatsAppNumber   string `json:"whatsapp_number" validate:"required"`
	WhatsAppNumberID string `json:"whatsapp_number_id" validate:"required"`
}
