package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPassword(t *testing.T) {
	cfg := DefaultPasswordConfig()

	tests := []struct {
		password string
		want     Code
	}{
		{"Passw0rd!", ""},
		{"", CodePasswordEmpty},
		{"Ab1!", CodePasswordTooShort},
		{"alllowercase1!", CodePasswordMissingUppercase},
		{"ALLUPPER1!", CodePasswordMissingLowercase},
		{"NoDigits!!", CodePasswordMissingDigit},
		{"NoSpecial1", CodePasswordMissingSpecial},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Password(tt.password, cfg).Code(), "Password(%q)", tt.password)
	}
}

func TestPasswordMessages(t *testing.T) {
	res := Password("short", DefaultPasswordConfig())
	assert.Equal(t, "Password must be at least 8 characters long", res.ErrorMessage())

	res = Password("NoSpecial1", PasswordConfig{MinLength: 1, RequireSpecial: true, SpecialCharacters: "#$"})
	assert.Equal(t, "Password must contain at least one special character (#$)", res.ErrorMessage())
}

func TestPasswordOptionalClasses(t *testing.T) {
	cfg := PasswordConfig{MinLength: 4}
	assert.True(t, Password("aaaa", cfg).IsValid())

	cfg.RequireDigit = true
	assert.Equal(t, CodePasswordMissingDigit, Password("aaaa", cfg).Code())
}

func TestPasswordStrengthBuckets(t *testing.T) {
	tests := []struct {
		password string
		score    int
		level    StrengthLevel
	}{
		{"", 1, StrengthWeak},
		{"password", 2, StrengthWeak},
		{"Zzzz", 3, StrengthMedium},
		{"Zzzz9!", 5, StrengthMedium},
		{"Tr0ub4dor", 5, StrengthMedium},
		{"Zzzzzzz9!", 6, StrengthStrong},
		{"Xk9#mP2$vL7&", 7, StrengthStrong},
		{"Xk9#mP2$vL7&qR4!", MaxStrengthScore, StrengthVeryStrong},
		{"Admin123Admin123!", 7, StrengthStrong},
	}
	for _, tt := range tests {
		got := PasswordStrength(tt.password)
		assert.Equal(t, tt.score, got.Score, "score of %q", tt.password)
		assert.Equal(t, tt.level, got.Level, "level of %q", tt.password)
	}
}

func TestPasswordStrengthMonotonic(t *testing.T) {
	// Each pair's second password has a superset of character classes, at
	// least the same length, and no weak pattern.
	pairs := [][2]string{
		{"password", "Zxcvbnmp"},
		{"abc12345", "Zbx12945!"},
		{"qwertyuiop", "Qwxrtyuiop9"},
		{"Zzzz", "Zzzz"},
		{"zz", "Zz9#Zz9#Zz9#Zz9#"},
	}
	for _, p := range pairs {
		first, second := PasswordStrength(p[0]), PasswordStrength(p[1])
		assert.GreaterOrEqual(t, second.Level, first.Level, "%q vs %q", p[0], p[1])
	}
}

func TestStrengthLevelString(t *testing.T) {
	assert.Equal(t, "very strong", StrengthVeryStrong.String())
	assert.Equal(t, "unknown", StrengthLevel(42).String())
}
