package otp

import (
	"github.com/xlzd/gotp"
)

const (
	secretLength = 32
	interval     = 30
)

// Generator produces one-time numeric codes.
type Generator interface {
	RandomCode(length int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a numeric code of the given length derived from a fresh random secret,
// so consecutive codes are independent of each other.
func (g *GOTPGenerator) RandomCode(length int) string {
	secret := gotp.RandomSecret(secretLength)
	return gotp.NewTOTP(secret, length, interval, nil).Now()
}
