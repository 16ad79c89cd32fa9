package models

import (
	"math/rand"
	"testing"
)

func TestOnBookingCreated(t *testing.T) {
	cases := []struct {
		name    string
		current int
		wantWL  int
	}{
		{"from zero", 0, 1},
		{"from one", 1, 2},
		{"from many", 7, 8},
		{"negative treated as zero", -3, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wl, available := OnBookingCreated(tc.current)
			if wl != tc.wantWL {
				t.Errorf("waitingList = %d, want %d", wl, tc.wantWL)
			}
			if available {
				t.Error("worker must not be available with a pending booking")
			}
		})
	}
}

func TestOnBookingDeleted(t *testing.T) {
	cases := []struct {
		name          string
		current       int
		wantWL        int
		wantAvailable bool
	}{
		{"last booking frees the worker", 1, 0, true},
		{"still busy", 3, 2, false},
		{"never below zero", 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wl, available := OnBookingDeleted(tc.current)
			if wl != tc.wantWL {
				t.Errorf("waitingList = %d, want %d", wl, tc.wantWL)
			}
			if available != tc.wantAvailable {
				t.Errorf("available = %v, want %v", available, tc.wantAvailable)
			}
		})
	}
}

// The central consistency property: after any sequence of create/delete
// events, available == (waitingList == 0) and waitingList >= 0.
func TestAvailabilityInvariantUnderRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for run := 0; run < 50; run++ {
		wl, available := 0, true
		for step := 0; step < 200; step++ {
			if rng.Intn(2) == 0 {
				wl, available = OnBookingCreated(wl)
			} else {
				wl, available = OnBookingDeleted(wl)
			}
			if wl < 0 {
				t.Fatalf("run %d step %d: waitingList went negative: %d", run, step, wl)
			}
			if available != (wl == 0) {
				t.Fatalf("run %d step %d: available=%v but waitingList=%d", run, step, available, wl)
			}
		}
	}
}
