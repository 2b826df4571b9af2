package models

type Patient struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	FirstName   string `json:"first_name" bson:"firstName"`
	LastName    string `json:"last_name" bson:"lastName"`
	AssignedTo  string `json:"assigned_to,omitempty" bson:"assignedTo,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" bson:"phoneNumber,omitempty"`
	Email       string `json:"email,omitempty" bson:"email,omitempty"`
	TimeModel   `bson:",inline"`
}
