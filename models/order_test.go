package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTransitions(t *testing.T) {
	tests := []struct {
		status      string
		canProcess  bool
		canComplete bool
		canCancel   bool
	}{
		{OrderOpen, true, false, true},
		{OrderInProgress, false, true, true},
		{OrderComplete, false, false, false},
		{OrderCancel, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			o := Order{StatusName: tt.status}
			assert.Equal(t, tt.canProcess, o.CanProcess())
			assert.Equal(t, tt.canComplete, o.CanComplete())
			assert.Equal(t, tt.canCancel, o.CanCancel())
		})
	}
}

func TestBuyerName(t *testing.T) {
	registered := Order{Buyer: &User{Username: "alice"}}
	assert.Equal(t, "alice", registered.BuyerName())

	anonymous := Order{AnonymousBuyer: &AnonymousUser{Name: "Nguyễn Văn A"}}
	assert.Equal(t, "Nguyễn Văn A", anonymous.BuyerName())

	assert.Equal(t, "", (&Order{}).BuyerName())
}

func TestSurveyTransitions(t *testing.T) {
	open := Survey{Status: SurveyOpen}
	assert.True(t, open.CanTake())
	assert.False(t, open.CanRespond())

	taken := Survey{Status: SurveyInProgress}
	assert.False(t, taken.CanTake())
	assert.True(t, taken.CanRespond())

	done := Survey{Status: SurveyComplete}
	assert.False(t, done.CanTake())
	assert.False(t, done.CanRespond())
}

func TestTinyImageName(t *testing.T) {
	p := Product{OriginalImageName: "original_abc123.png"}
	assert.Equal(t, "tiny_abc123.png", p.TinyImageName())
	assert.Equal(t, "", (&Product{}).TinyImageName())
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "An Trần", (&User{FirstName: "An", LastName: "Trần"}).FullName())
	assert.Equal(t, "An", (&User{FirstName: "An"}).FullName())
	assert.Equal(t, "Trần", (&User{LastName: "Trần"}).FullName())
}
