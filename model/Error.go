package model

// RequestError is the JSON envelope sent back on every failed request
type RequestError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}
