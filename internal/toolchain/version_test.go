package toolchain

import "testing"

func TestDetectVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{"git linux", "git version 2.39.2\n", "2.39.2", false},
		{"git apple", "git version 2.39.3 (Apple Git-145)\n", "2.39.3", false},
		{"git windows", "git version 2.41.0.windows.1\n", "2.41.0", false},
		{"node", "v18.17.0\n", "18.17.0", false},
		{"npm", "9.6.7\n", "9.6.7", false},
		{"two part", "tool 3.1", "3.1.0", false},
		{"prerelease", "v21.0.0-nightly2023", "21.0.0-nightly2023", false},
		{"garbage", "command not found", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DetectVersion(tt.output)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.String() != tt.want {
				t.Errorf("DetectVersion(%q) = %s, want %s", tt.output, v, tt.want)
			}
		})
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		constraint string
		version    string
		want       bool
		wantErr    bool
	}{
		{">= 18", "18.17.0", true, false},
		{">= 18", "v16.20.0", false, false},
		{">=18", "20.1.0", true, false},
		{"^18 || ^20", "20.5.1", true, false},
		{"^18 || ^20", "19.0.0", false, false},
		{">=16.14 <21", "18.0.0", true, false},
		{">= 2.0", "2.39.2", true, false},
		{"not a range", "1.0.0", false, true},
		{">= 18", "dev", false, true},
	}

	for _, tt := range tests {
		got, err := Satisfies(tt.constraint, tt.version)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Satisfies(%q, %q) expected error", tt.constraint, tt.version)
			}
			continue
		}
		if err != nil {
			t.Errorf("Satisfies(%q, %q) unexpected error: %v", tt.constraint, tt.version, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Satisfies(%q, %q) = %v, want %v", tt.constraint, tt.version, got, tt.want)
		}
	}
}
