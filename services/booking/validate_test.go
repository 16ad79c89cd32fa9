package booking

import (
	"testing"
	"time"

	"fundi/models"
	"fundi/utils"
)

func TestValidateBookingInput(t *testing.T) {
	base := validInput()

	tests := []struct {
		name   string
		mutate func(*models.BookingInput)
		wantErr bool
	}{
		{"valid", func(i *models.BookingInput) {}, false},
		{"missing clientId", func(i *models.BookingInput) { i.ClientID = "" }, true},
		{"missing workerId", func(i *models.BookingInput) { i.WorkerID = "" }, true},
		{"missing subserviceId", func(i *models.BookingInput) { i.SubserviceID = "" }, true},
		{"missing dateTime", func(i *models.BookingInput) { i.DateTime = "" }, true},
		{"missing unit", func(i *models.BookingInput) { i.Unit = "" }, true},
		{"missing status", func(i *models.BookingInput) { i.Status = "" }, true},
		{"missing location", func(i *models.BookingInput) { i.Location = nil }, true},
		{"negative rate", func(i *models.BookingInput) { i.RatePerUnit = -1 }, true},
		{"unknown status", func(i *models.BookingInput) { i.Status = "Started" }, true},
		{"bad dateTime", func(i *models.BookingInput) { i.DateTime = "14/09/2026 10:00" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := base
			tc.mutate(&input)
			parsed, err := validateBookingInput(input)
			if tc.wantErr {
				if !utils.IsValidation(err) {
					t.Fatalf("err = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if want := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC); !parsed.Equal(want) {
				t.Errorf("parsed = %v, want %v", parsed, want)
			}
		})
	}
}

func TestValidateBookingUpdate(t *testing.T) {
	t.Run("rejects non-updatable field", func(t *testing.T) {
		_, err := validateBookingUpdate(map[string]any{"hasRated": true})
		if !utils.IsValidation(err) {
			t.Fatalf("err = %v, want validation error", err)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := validateBookingUpdate(map[string]any{"status": "Started"})
		if !utils.IsValidation(err) {
			t.Fatalf("err = %v, want validation error", err)
		}
	})

	t.Run("parses dateTime and location", func(t *testing.T) {
		sanitized, err := validateBookingUpdate(map[string]any{
			"status":   models.BookingStatusCompleted,
			"dateTime": "2026-10-01T08:30:00Z",
			"location": map[string]any{"latitude": -1.2921, "longitude": 36.8219},
		})
		if err != nil {
			t.Fatalf("validateBookingUpdate: %v", err)
		}
		if _, ok := sanitized["dateTime"].(time.Time); !ok {
			t.Errorf("dateTime not parsed: %T", sanitized["dateTime"])
		}
		loc, ok := sanitized["location"].(*models.Location)
		if !ok || loc.Latitude != -1.2921 {
			t.Errorf("location not coerced: %#v", sanitized["location"])
		}
	})
}
