package domain

import "strings"

// Employee is one roster entry used for login and ticket attribution.
type Employee struct {
	Name       string
	Department string
	Rank       string
	// PasswordHash holds the bcrypt hash of the derived password.
	PasswordHash string
}

// FallbackPassword is used when a phone number yields fewer than four digits.
const FallbackPassword = "0000"

// DerivePassword reduces a raw phone string to the last four digits.
// "010-1234-5678" and "01012345678" both derive to "5678".
func DerivePassword(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) < 4 {
		return FallbackPassword
	}
	return d[len(d)-4:]
}
