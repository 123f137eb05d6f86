package util

import "testing"

func TestParseInterval(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int
		wantError bool
	}{
		{
			name:     "plain seconds",
			input:    "90",
			expected: 90,
		},
		{
			name:     "zero",
			input:    "0",
			expected: 0,
		},
		{
			name:     "duration seconds",
			input:    "45s",
			expected: 45,
		},
		{
			name:     "duration minutes",
			input:    "2m",
			expected: 120,
		},
		{
			name:     "duration hours",
			input:    "1h",
			expected: 3600,
		},
		{
			name:     "mixed duration",
			input:    "1m30s",
			expected: 90,
		},
		{
			name:      "letters",
			input:     "abc",
			wantError: true,
		},
		{
			name:      "empty string",
			input:     "",
			wantError: true,
		},
		{
			name:      "invalid unit",
			input:     "10x",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInterval(tt.input)

			if tt.wantError {
				if err == nil {
					t.Errorf("ParseInterval(%q) expected error but got none", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseInterval(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.expected {
				t.Errorf("ParseInterval(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}
