package validator_test

import (
	"countdown/internal/domains/countdown/model/dto"
	"countdown/shared/failure"
	"countdown/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    dto.ReconfigureRequest
		wantErr string
	}{
		{
			name: "date and time",
			data: dto.ReconfigureRequest{Date: "2025-06-30", Time: "19:00:00"},
		},
		{
			name: "date only",
			data: dto.ReconfigureRequest{Date: "2025-06-30"},
		},
		{
			name: "instant only",
			data: dto.ReconfigureRequest{Instant: "2025-07-01T01:00:00Z"},
		},
		{
			name:    "nothing set",
			data:    dto.ReconfigureRequest{},
			wantErr: "Date is required when Instant is not set",
		},
		{
			name:    "date and instant together",
			data:    dto.ReconfigureRequest{Date: "2025-06-30", Instant: "2025-07-01T01:00:00Z"},
			wantErr: "Date must not be set together with Instant",
		},
		{
			name:    "impossible date",
			data:    dto.ReconfigureRequest{Date: "2025-02-30"},
			wantErr: "Date must be a calendar date formatted as 2006-01-02",
		},
		{
			name:    "time in wrong layout",
			data:    dto.ReconfigureRequest{Date: "2025-06-30", Time: "7pm"},
			wantErr: "Time must match the layout 15:04:05",
		},
		{
			name:    "instant without offset",
			data:    dto.ReconfigureRequest{Instant: "2025-07-01T01:00:00"},
			wantErr: "Instant must match the layout 2006-01-02T15:04:05Z07:00",
		},
		{
			name:    "title too long",
			data:    dto.ReconfigureRequest{Date: "2025-06-30", Title: strings.Repeat("a", 256)},
			wantErr: "Title must be at most 255 characters long",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name    string
		field   any
		tag     string
		wantErr bool
	}{
		{name: "valid civil date", field: "2025-06-30", tag: "civildate"},
		{name: "empty civil date", field: "", tag: "civildate"},
		{name: "leap day", field: "2024-02-29", tag: "civildate"},
		{name: "not a leap year", field: "2025-02-29", tag: "civildate", wantErr: true},
		{name: "civil date with time", field: "2025-06-30T19:00:00", tag: "civildate", wantErr: true},
		{name: "non string civil date", field: 20250630, tag: "civildate", wantErr: true},
		{name: "valid time", field: "19:00:00", tag: "datetime=15:04:05"},
		{name: "invalid time", field: "25:00:00", tag: "datetime=15:04:05", wantErr: true},
		{name: "required", field: "", tag: "required", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		jsonBody string
		want     dto.ReconfigureRequest
		wantErr  bool
	}{
		{
			name:     "valid body",
			jsonBody: `{"date":"2025-06-30","time":"19:00:00","title":"Fiesta"}`,
			want:     dto.ReconfigureRequest{Date: "2025-06-30", Time: "19:00:00", Title: "Fiesta"},
		},
		{
			name:     "invalid body",
			jsonBody: `{"date":"30/06/2025"}`,
			wantErr:  true,
		},
		{
			name:     "malformed JSON",
			jsonBody: `{"date":}`,
			wantErr:  true,
		},
		{
			name:     "empty JSON",
			jsonBody: `{}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data dto.ReconfigureRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, data)
		})
	}
}
