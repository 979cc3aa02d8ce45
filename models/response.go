// models/response.go
package models

import (
	"encoding/json"
	"fmt"
)

// SuccessCode is the backend's "everything went fine" envelope code. Any other
// code carries a user-facing message.
const SuccessCode = 2000

// Envelope is the uniform response shape of every backend endpoint.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// APIError is a backend rejection or a transport failure. Transport failures
// use code 0; backend rejections keep the envelope's code and message.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Code, e.Message)
}

// Page is the server's pagination block, stored verbatim. The server owns the
// numbers; the console never recomputes them.
type Page[T any] struct {
	Items         []T   `json:"items"`
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	PageSize      int   `json:"pageSize"`
}

// Validate checks the pagination block for internal consistency. An empty
// result may report totalPages 0 or 1 depending on the backend version; both
// pass.
func (p *Page[T]) Validate() error {
	if p.CurrentPage < 0 {
		return fmt.Errorf("negative currentPage %d", p.CurrentPage)
	}
	if p.TotalElements < 0 {
		return fmt.Errorf("negative totalElements %d", p.TotalElements)
	}
	if p.TotalElements == 0 {
		if p.TotalPages != 0 && p.TotalPages != 1 {
			return fmt.Errorf("empty result with totalPages %d", p.TotalPages)
		}
		return nil
	}
	if p.TotalPages < 1 {
		return fmt.Errorf("totalPages %d with %d elements", p.TotalPages, p.TotalElements)
	}
	if p.CurrentPage >= p.TotalPages {
		return fmt.Errorf("currentPage %d out of range (totalPages %d)", p.CurrentPage, p.TotalPages)
	}
	if p.PageSize > 0 && int64(p.PageSize)*int64(p.TotalPages) < p.TotalElements {
		return fmt.Errorf("%d pages of %d cannot hold %d elements", p.TotalPages, p.PageSize, p.TotalElements)
	}
	return nil
}

// PageRequest is the 0-based page/size pair sent on every list call.
type PageRequest struct {
	Page int
	Size int
}
