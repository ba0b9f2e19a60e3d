package domain

// Fine is a penalty or damage charge attached to a rental. Fines are removed by
// the database cascade when their rental is deleted.
type Fine struct {
	ID          int32   `json:"id"`
	RentalID    int32   `json:"rental_id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	CreatedOn   string  `json:"created_on"`
}
