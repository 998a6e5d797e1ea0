package errors

// Error is the body of every non-2xx API response.
type Error struct {
	Message string `json:"message"`
	Error   int    `json:"error"`
}
