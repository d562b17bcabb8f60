package validator_test

import (
	"safar/shared/validator"
	"strings"
	"testing"
)

type createGroupPayload struct {
	Code       string `json:"code" validate:"required,max=50"`
	Departure  string `json:"departure_date" validate:"omitempty,dateonly"`
	TotalPax   int    `json:"total_pax" validate:"omitempty,gte=0"`
	Status     string `json:"status" validate:"omitempty,oneof=PREPARATION DEPARTURE ARRIVAL"`
	PickupTime string `json:"pickup_time" validate:"omitempty,timeonly"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid payload",
			body:    `{"code":"GRP-1","departure_date":"2025-10-01","total_pax":45,"status":"PREPARATION"}`,
			wantErr: false,
		},
		{
			name:    "missing required code",
			body:    `{"departure_date":"2025-10-01"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			body:    `{"code":`,
			wantErr: true,
		},
		{
			name:    "invalid date format",
			body:    `{"code":"GRP-1","departure_date":"01-10-2025"}`,
			wantErr: true,
		},
		{
			name:    "invalid time format",
			body:    `{"code":"GRP-1","pickup_time":"9 pm"}`,
			wantErr: true,
		},
		{
			name:    "valid time of day",
			body:    `{"code":"GRP-1","pickup_time":"21:30"}`,
			wantErr: false,
		},
		{
			name:    "status outside enum",
			body:    `{"code":"GRP-1","status":"BOARDING"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := createGroupPayload{}
			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}

			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateStruct(t *testing.T) {
	payload := createGroupPayload{Code: "GRP-9", Status: "ARRIVAL"}
	if err := validator.ValidateStruct(&payload); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	payload = createGroupPayload{Code: "", Status: "ARRIVAL"}
	if err := validator.ValidateStruct(&payload); err == nil {
		t.Errorf("expected error for empty code, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("PREPARATION", "oneof=PREPARATION DEPARTURE ARRIVAL"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("CANCELLED", "oneof=PREPARATION DEPARTURE ARRIVAL"); err == nil {
		t.Errorf("expected error for value outside enum, got nil")
	}
}
