package structs

// GameRequest is the POST /games payload.
type GameRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}
