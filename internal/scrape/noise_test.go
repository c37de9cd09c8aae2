package scrape

import "testing"

func TestIsNoise(t *testing.T) {
	tests := []struct {
		text  string
		noise bool
	}{
		{"Grilled beef patty with lettuce cheese and tomatoes", false},
		{"One of the best steaks I have ever had in Kampala", false},
		{"", true},
		{"Food", true},
		{"View Menu", true},
		{"FOLLOW US", true},
		{"Lorem ipsum dolor sit amet consectetur", true},
		{"Food Drinks Wines All Drinks Cake Events navigation strip", true},
		{"Designed by Fortitude Solutions", true},
		{"Copyright 2024 The Hickory", true},
		{"12345", true},
		{"Sed tincidunt placeholder paragraph text", true},
		{"Opening hours 8am to 11pm", true},
		{"The opening hours are generous", false},
	}
	for _, tt := range tests {
		if got := IsNoise(tt.text); got != tt.noise {
			t.Errorf("IsNoise(%q) = %v, want %v", tt.text, got, tt.noise)
		}
	}
}
