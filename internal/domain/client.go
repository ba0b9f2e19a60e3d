package domain

type Client struct {
	ID         int32   `json:"id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	NationalID *string `json:"national_id,omitempty"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	Email      string  `json:"email"`
	CreatedOn  string  `json:"created_on"`
}
