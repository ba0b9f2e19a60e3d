package domain

type Employee struct {
	ID           int32   `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	NationalID   *string `json:"national_id,omitempty"`
	Role         string  `json:"role"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	CreatedOn    string  `json:"created_on"`
}
