package dto

// SetRateURLRequest defines the payload for saving the exchange-rate endpoint.
type SetRateURLRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// RateURLResponse returns the currently saved endpoint.
type RateURLResponse struct {
	URL string `json:"url"`
}
