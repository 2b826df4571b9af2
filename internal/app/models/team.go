package models

type Team struct {
	ID               string `json:"id" bson:"_id,omitempty"`
	Name             string `json:"name" bson:"name"`
	WhatsAppNumber   string `json:"whatsapp_number" bson:"whatsAppNumber"`
	WhatsAppNumberID string `json:"whatsapp_number_id" bson:"whatsAppNumberId"`
	TimeModel        `bson:",inline"`
}
