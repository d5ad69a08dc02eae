package event

import (
	"strings"
	"testing"

	"github.com/trezcool/charityevents/core"
)

func TestSearchFilter_Validate(t *testing.T) {
	validate, translator := core.NewValidator()
	RegisterValidators(validate, translator)

	tests := []struct {
		name    string
		filter  SearchFilter
		want    SearchFilter
		wantErr bool
	}{
		{name: "empty filter is valid"},
		{
			name:   "all fields valid",
			filter: SearchFilter{Date: "2025-12-20", Location: "Sydney", Category: "3"},
			want:   SearchFilter{Date: "2025-12-20", Location: "Sydney", Category: "3"},
		},
		{
			name:   "all sentinel is valid",
			filter: SearchFilter{Category: "all"},
			want:   SearchFilter{Category: "all"},
		},
		{
			name:   "inputs are cleaned before validation",
			filter: SearchFilter{Location: "  Bondi Beach  ", Category: "ALL"},
			want:   SearchFilter{Location: "Bondi Beach", Category: "all"},
		},
		{name: "malformed date", filter: SearchFilter{Date: "20-12-2025"}, wantErr: true},
		{name: "date with time portion", filter: SearchFilter{Date: "2025-12-20T10:00"}, wantErr: true},
		{name: "location too short", filter: SearchFilter{Location: "x"}, wantErr: true},
		{name: "location too long", filter: SearchFilter{Location: strings.Repeat("a", 101)}, wantErr: true},
		{name: "category zero", filter: SearchFilter{Category: "0"}, wantErr: true},
		{name: "category negative", filter: SearchFilter{Category: "-3"}, wantErr: true},
		{name: "category not a number", filter: SearchFilter{Category: "music"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate(validate)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && tt.filter != tt.want {
				t.Errorf("Validate() cleaned filter = %+v; want %+v", tt.filter, tt.want)
			}
		})
	}
}

func TestSearchFilter_CategoryID(t *testing.T) {
	tests := []struct {
		category string
		wantID   int
		wantOK   bool
	}{
		{"", 0, false},
		{"all", 0, false},
		{"3", 3, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"music", 0, false},
	}
	for _, tt := range tests {
		id, ok := SearchFilter{Category: tt.category}.CategoryID()
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("CategoryID(%q) = (%v, %v); want (%v, %v)", tt.category, id, ok, tt.wantID, tt.wantOK)
		}
	}
}
