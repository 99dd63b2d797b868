package types

import (
	"errors"
	"testing"
)

func TestValidateAttractions(t *testing.T) {
	tests := []struct {
		name    string
		list    []Attraction
		wantErr error
	}{
		{"empty", nil, nil},
		{"unique", []Attraction{{ID: "1"}, {ID: "2"}}, nil},
		{"missing id", []Attraction{{ID: "1"}, {ID: " ", Name: "Fort"}}, ErrMissingID},
		{"duplicate id", []Attraction{{ID: "1"}, {ID: "2"}, {ID: "1"}}, ErrDuplicateID},
		{"ids differing by whitespace are distinct", []Attraction{{ID: "1"}, {ID: " 1"}}, nil},
	}
	for _, tt := range tests {
		err := ValidateAttractions(tt.list)
		if tt.wantErr == nil && err != nil {
			t.Errorf("%s: ValidateAttractions() = %v, want nil", tt.name, err)
		}
		if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: ValidateAttractions() = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestFindAttraction(t *testing.T) {
	list := []Attraction{{ID: "1", Name: "Beach"}, {ID: "2", Name: "Fort"}}
	if got := FindAttraction(list, "2"); got == nil || got.Name != "Fort" {
		t.Errorf("FindAttraction(2) = %+v, want Fort", got)
	}
	if got := FindAttraction(list, "3"); got != nil {
		t.Errorf("FindAttraction(3) = %+v, want nil", got)
	}

	spaced := []Attraction{{ID: "1", Name: "Beach"}, {ID: " 1", Name: "Dune"}}
	if err := ValidateAttractions(spaced); err != nil {
		t.Fatalf("ValidateAttractions() = %v, want nil", err)
	}
	if got := FindAttraction(spaced, " 1"); got == nil || got.Name != "Dune" {
		t.Errorf("FindAttraction(\" 1\") = %+v, want Dune", got)
	}
}

func TestAttractionLocation(t *testing.T) {
	tests := []struct {
		a    Attraction
		want string
	}{
		{Attraction{City: "João Pessoa", State: "PB"}, "João Pessoa, PB"},
		{Attraction{City: "Recife"}, "Recife"},
		{Attraction{State: "PB"}, "PB"},
		{Attraction{}, ""},
	}
	for _, tt := range tests {
		if got := tt.a.Location(); got != tt.want {
			t.Errorf("Location() = %q, want %q", got, tt.want)
		}
	}
}
