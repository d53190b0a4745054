package pantry

import "savor/frontend/shared/cards"

// AddOutcome is the reply for an add-to-pantry request. Validation means
// the quantity never left this process; otherwise Success and Message are
// the backend's verdict verbatim.
type AddOutcome struct {
	Success    bool   `json:"success"`
	Validation bool   `json:"validation,omitempty"`
	Message    string `json:"message"`
}

// RemoveOutcome reconciles a card with the backend's authoritative
// remaining quantity. Removed tells the page glue to fade the card out.
type RemoveOutcome struct {
	QuantityLeft float64 `json:"quantity_left"`
	Removed      bool    `json:"removed"`
	Message      string  `json:"message,omitempty"`
}

// PageData backs the pantry screen.
type PageData struct {
	Cards        []cards.PantryCard
	Query        string
	NetworkError bool
	Alert        string
}
