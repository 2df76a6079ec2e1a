package service

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

// randomDigits returns n decimal digits from crypto/rand, falling back to the
// current nanoseconds when the entropy source fails.
func randomDigits(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		s := fmt.Sprintf("%0*d", n, time.Now().UnixNano())
		return s[len(s)-n:]
	}
	var sb strings.Builder
	for _, c := range b {
		sb.WriteByte('0' + c%10)
	}
	return sb.String()
}

// inviteCode builds codes like "JB12345": the creator's and guest's initials
// followed by five digits.
func inviteCode(creatorName, guestName string) string {
	return initial(creatorName) + initial(guestName) + randomDigits(5)
}

// vipCode builds codes like "VIP1234".
func vipCode() string {
	return "VIP" + randomDigits(4)
}

// linkCode builds residence link codes like "LNK-A101-482913".
func linkCode(residence string) string {
	return "LNK-" + strings.ToUpper(residence) + "-" + randomDigits(6)
}

func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "X"
	}
	return strings.ToUpper(name[:1])
}
