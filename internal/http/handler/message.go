package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the common envelope for non-listing responses and all errors.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail, omitted in production
}

type SaveTransactionResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
