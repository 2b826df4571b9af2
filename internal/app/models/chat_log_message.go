package models

type ChatLogMessage struct {
	ID             string `json:"id" bson:"_id,omitempty"`
	Role           string `json:"role" bson:"role"`
	PatientID      string `json:"patient_id" bson:"patientId"`
	MessageText    string `json:"message_text" bson:"messageText"`
	ConversationID string `json:"conversation_id" bson:"conversationId"`
	TimeModel      `bson:",inline"`
}
