package models

// User is the administering clinician. It carries identity only; all
// behavior lives on the questionnaire entities.
type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	FirstName string `json:"first_name" bson:"firstName"`
	LastName  string `json:"last_name" bson:"lastName"`
	Title     string `json:"title,omitempty" bson:"title,omitempty"`
	Email     string `json:"email" bson:"email"`
	TeamID    string `json:"team_id" bson:"teamId"`
	TimeModel `bson:",inline"`
}
