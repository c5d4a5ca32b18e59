package attendance

import (
	"testing"
	"time"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "UTC morning stays same civil day",
			in:   time.Date(2024, 9, 30, 8, 0, 0, 0, time.UTC),
			want: "20240930",
		},
		{
			name: "UTC late evening rolls into next civil day",
			in:   time.Date(2024, 9, 30, 20, 0, 0, 0, time.UTC),
			want: "20241001",
		},
		{
			name: "exactly 18:30 UTC is midnight IST",
			in:   time.Date(2024, 9, 30, 18, 30, 0, 0, time.UTC),
			want: "20241001",
		},
		{
			name: "already-IST times are unchanged",
			in:   time.Date(2024, 9, 30, 23, 0, 0, 0, IST),
			want: "20240930",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateKey(tt.in); got != tt.want {
				t.Errorf("DateKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	if StatusPresent.Opposite() != StatusAbsent {
		t.Error("Opposite() of Present should be Absent")
	}
	if StatusAbsent.Opposite() != StatusPresent {
		t.Error("Opposite() of Absent should be Present")
	}
	if StatusPresent.String() != "Present" || StatusAbsent.String() != "Absent" {
		t.Error("Status.String() mismatch")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr error
	}{
		{in: "Present", want: StatusPresent},
		{in: "absent", want: StatusAbsent},
		{in: " PRESENT ", want: StatusPresent},
		{in: "late", wantErr: ErrInvalidStatus},
		{in: "", wantErr: ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if err != tt.wantErr {
				t.Fatalf("ParseStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}
