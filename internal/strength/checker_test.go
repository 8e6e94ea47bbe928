package strength

import "testing"

func TestCheckUniversalRules(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{
			name:      "contains common word",
			candidate: "xK9!password2#mQ",
			want:      false,
		},
		{
			name:      "contains common word mixed case",
			candidate: "xK9!DrAgOn2#mQwz",
			want:      false,
		},
		{
			name:      "denylist matches substrings not just equality",
			candidate: "abcadminxyz!7Q2w",
			want:      false,
		},
		{
			name:      "triple repeated letter",
			candidate: "aaaK9!x2#mQwertz",
			want:      false,
		},
		{
			name:      "triple repeated digit",
			candidate: "xK9!111x2#mQwbrz",
			want:      false,
		},
		{
			name:      "triple repeated symbol",
			candidate: "xK9!###x2bmQwbrz",
			want:      false,
		},
		{
			name:      "double repeat is allowed",
			candidate: "xxK99!#b2bmQwbrz",
			want:      true,
		},
		{
			name:      "keyboard pattern qazwsx",
			candidate: "K9!qazwsx2#mQbrz",
			want:      false,
		},
		{
			name:      "keyboard pattern digits",
			candidate: "K9!x12345#mQwbrz",
			want:      false,
		},
		{
			name:      "keyboard pattern uppercase form",
			candidate: "K9!xZXCVBN#mQbrz",
			want:      false,
		},
		{
			name:      "clean candidate",
			candidate: "xK9!b7#mQ2wbrzE&",
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Universal rules apply at every level; easy has no further rules.
			if got := Check(tt.candidate, LevelEasy); got != tt.want {
				t.Errorf("Check(%q, easy) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestCheckLevels(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		level     Level
		want      bool
	}{
		{"easy accepts single class", "bcdfghjkmnpbcdfg", LevelEasy, true},
		{"easy accepts empty candidate", "", LevelEasy, true},
		{"strong rejects two classes", "bcdfgBCDFGbcdfgX", LevelStrong, false},
		{"strong accepts three classes", "bcdfgBCDFG24689X", LevelStrong, true},
		{"strong accepts four classes", "bcdfgBCDFG2468!X", LevelStrong, true},
		{"max rejects three classes", "bcdfgBCDFG24689X", LevelMax, false},
		{"max accepts four classes", "bcdfgBCDFG2468!X", LevelMax, true},
		{"max rejects empty candidate", "", LevelMax, false},
		{"unknown level never accepts", "bcdfgBCDFG2468!X", Level("paranoid"), false},
		{"empty level never accepts", "bcdfgBCDFG2468!X", Level(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Check(tt.candidate, tt.level); got != tt.want {
				t.Errorf("Check(%q, %q) = %v, want %v", tt.candidate, tt.level, got, tt.want)
			}
		})
	}
}

func TestCheckUniversalRulesPrecedeLevelRules(t *testing.T) {
	// Four classes present, but the denylist hit must still reject at max.
	candidate := "Dragon24!bcdfgXw"
	if Check(candidate, LevelMax) {
		t.Errorf("Check(%q, max) accepted a denylisted candidate", candidate)
	}
}

func TestCheckIsPure(t *testing.T) {
	candidate := "bcdfgBCDFG2468!X"
	first := Check(candidate, LevelStrong)
	for i := 0; i < 10; i++ {
		if Check(candidate, LevelStrong) != first {
			t.Fatal("Check returned different results for identical inputs")
		}
	}
}

func TestDiversity(t *testing.T) {
	tests := []struct {
		candidate string
		want      int
	}{
		{"", 0},
		{"bcdfg", 1},
		{"BCDFG", 1},
		{"24689", 1},
		{"!#&?~", 1},
		{"bcdfgBCDFG", 2},
		{"bcdfgBCDFG24689", 3},
		{"bcdfgBCDFG2468!", 4},
		{"b7!Q", 4},
	}

	for _, tt := range tests {
		if got := Diversity(tt.candidate); got != tt.want {
			t.Errorf("Diversity(%q) = %d, want %d", tt.candidate, got, tt.want)
		}
	}
}
