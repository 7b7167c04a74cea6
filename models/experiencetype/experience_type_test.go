package experiencetype

import "testing"

func intPtr(v int) *int { return &v }

func TestAllowsPartySize(t *testing.T) {
	bounded := ExperienceType{MinPartySize: 2, MaxPartySize: intPtr(12)}
	unbounded := ExperienceType{MinPartySize: 10}

	tests := []struct {
		name string
		et   ExperienceType
		size int
		want bool
	}{
		{"below minimum", bounded, 1, false},
		{"at minimum", bounded, 2, true},
		{"within bounds", bounded, 8, true},
		{"at maximum", bounded, 12, true},
		{"above maximum", bounded, 13, false},
		{"no max below minimum", unbounded, 9, false},
		{"no max at minimum", unbounded, 10, true},
		{"no max large party", unbounded, 500, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.et.AllowsPartySize(tt.size); got != tt.want {
				t.Errorf("AllowsPartySize(%d) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}
