package requests

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleIntAcceptsNumbersAndNumericStrings(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "number", body: `{"date":"2025-03-01","time":"09:00","duration":45}`, want: 45},
		{name: "whole float", body: `{"date":"2025-03-01","time":"09:00","duration":60.0}`, want: 60},
		{name: "numeric string", body: `{"date":"2025-03-01","time":"09:00","duration":"30"}`, want: 30},
		{name: "padded string", body: `{"date":"2025-03-01","time":"09:00","duration":" 15 "}`, want: 15},
		{name: "fraction", body: `{"date":"2025-03-01","time":"09:00","duration":12.5}`, want: 0},
		{name: "garbage string", body: `{"date":"2025-03-01","time":"09:00","duration":"abc"}`, want: 0},
		{name: "null", body: `{"date":"2025-03-01","time":"09:00","duration":null}`, want: 0},
		{name: "missing", body: `{"date":"2025-03-01","time":"09:00"}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request CreateSlot
			require.NoError(t, json.Unmarshal([]byte(tt.body), &request))
			assert.Equal(t, tt.want, request.Duration.Int())
		})
	}
}

func TestCreateBookingSanitizeDropsBlankContactFields(t *testing.T) {
	blank := "   "
	email := " Jan@Example.COM "
	request := CreateBooking{Date: " 2025-03-01 ", Time: "09:00 ", Name: &blank, Email: &email}

	request.Sanitize()

	assert.Equal(t, "2025-03-01", request.Date)
	assert.Equal(t, "09:00", request.Time)
	assert.Nil(t, request.Name)
	assert.Nil(t, request.Phone)
	require.NotNil(t, request.Email)
	assert.Equal(t, "jan@example.com", *request.Email)
}
