// Package schemas contains the request and response schemas
package schemas

// Res is the common response envelope
type Res struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
