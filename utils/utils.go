package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// NewReferenceID returns a unique reference for ledger entries
func NewReferenceID() string {
	return uuid.NewString()
}

// GenerateReferralCode generates an 8-character uppercase referral code
func GenerateReferralCode() string {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := ""
	for i := 0; i < 8; i++ {
		code += fmt.Sprintf("%c", charset[rng.Intn(len(charset))])
	}
	return code
}
