package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeUnmarshal(t *testing.T) {
	body := `{"code":2000,"message":"OK","result":{"items":[{"id":"u1","username":"alice"}],"currentPage":0,"totalPages":1,"totalElements":1,"pageSize":10}}`

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	assert.Equal(t, SuccessCode, env.Code)

	var page Page[User]
	require.NoError(t, json.Unmarshal(env.Result, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Username)
}

func TestPageValidate(t *testing.T) {
	tests := []struct {
		name string
		page Page[User]
		ok   bool
	}{
		{"regular page", Page[User]{CurrentPage: 1, TotalPages: 3, TotalElements: 25, PageSize: 10}, true},
		{"empty with zero pages", Page[User]{TotalElements: 0, TotalPages: 0}, true},
		{"empty with one page", Page[User]{TotalElements: 0, TotalPages: 1}, true},
		{"empty with two pages", Page[User]{TotalElements: 0, TotalPages: 2}, false},
		{"negative currentPage", Page[User]{CurrentPage: -1, TotalPages: 1, TotalElements: 1}, false},
		{"currentPage past the end", Page[User]{CurrentPage: 3, TotalPages: 3, TotalElements: 25}, false},
		{"elements without pages", Page[User]{TotalPages: 0, TotalElements: 5}, false},
		{"pages cannot hold elements", Page[User]{CurrentPage: 0, TotalPages: 2, TotalElements: 25, PageSize: 10}, false},
		{"last page exactly full", Page[User]{CurrentPage: 2, TotalPages: 3, TotalElements: 30, PageSize: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Code: 4040, Message: "Không tìm thấy"}
	assert.Equal(t, "api error 4040: Không tìm thấy", err.Error())
}
