package structs

// PageViewRequest is the POST /track/pageview payload.
type PageViewRequest struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	PageURL   string `json:"pageUrl" validate:"required"`
	PageTitle string `json:"pageTitle"`
	Referrer  string `json:"referrer"`
}

// ClickRequest is the POST /track/click payload.
type ClickRequest struct {
	UserID      string `json:"userId"`
	SessionID   string `json:"sessionId"`
	ElementID   string `json:"elementId" validate:"required"`
	ElementText string `json:"elementText"`
	PageURL     string `json:"pageUrl"`
}
