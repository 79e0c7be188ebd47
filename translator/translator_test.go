package translator

import "testing"

func TestNeedsTranslation(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"#version 300 es\nprecision highp float;", true},
		{"\n  #version 300 es\n", true},
		{"#version 410 core\n", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := NeedsTranslation(tt.src); got != tt.want {
			t.Errorf("NeedsTranslation(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestTranslateUnknownStage(t *testing.T) {
	if _, err := Translate("#version 300 es\nvoid main(){}", "geometry"); err == nil {
		t.Error("Translate with unknown stage returned nil error")
	}
}
