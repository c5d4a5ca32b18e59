package roster

import (
	"reflect"
	"testing"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		expr    string
		want    []string
		wantErr bool
	}{
		{
			name:   "mixed ranges and singles",
			prefix: "22EG105J",
			expr:   "1-3,5",
			want:   []string{"22EG105J01", "22EG105J02", "22EG105J03", "22EG105J05"},
		},
		{
			name:   "single number is zero padded",
			prefix: "A",
			expr:   "7",
			want:   []string{"A07"},
		},
		{
			name:   "inverted range yields nothing",
			prefix: "A",
			expr:   "5-3",
			want:   []string{},
		},
		{
			name:   "numbers over 99 keep all digits",
			prefix: "A",
			expr:   "99-101",
			want:   []string{"A99", "A100", "A101"},
		},
		{
			name:   "whitespace around tokens and separators",
			prefix: "B",
			expr:   " 1 - 2 , 4 ",
			want:   []string{"B01", "B02", "B04"},
		},
		{
			name:   "single element range",
			prefix: "C",
			expr:   "3-3",
			want:   []string{"C03"},
		},
		{name: "empty expression", prefix: "A", expr: "", wantErr: true},
		{name: "letters", prefix: "A", expr: "1,x", wantErr: true},
		{name: "open-ended range", prefix: "A", expr: "25-", wantErr: true},
		{name: "too many parts", prefix: "A", expr: "1-2-3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.prefix, tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if _, ok := err.(*MalformedRangeError); !ok {
					t.Errorf("Expand() error = %T, want *MalformedRangeError", err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpand_lateralConcatenation(t *testing.T) {
	primary, err := Expand("22EG105J", "1-2")
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}
	lateral, err := Expand("23EG205L", "1")
	if err != nil {
		t.Fatalf("Expand() failed: %v", err)
	}

	combined := append(primary, lateral...)
	want := []string{"22EG105J01", "22EG105J02", "23EG205L01"}
	if !reflect.DeepEqual(combined, want) {
		t.Errorf("combined roster = %v, want %v", combined, want)
	}
}
