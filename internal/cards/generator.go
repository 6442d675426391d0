package cards

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/theplant/luhn"
)

const (
	panLength  = 16
	cvvLength  = 3
	maxBINSize = 6
)

// CardData is freshly generated card material. Number and CVV leave the
// service only inside the issuance response.
type CardData struct {
	Number string
	CVV    string
	Expiry string
}

// Generator produces card material for a new virtual card.
type Generator interface {
	Generate(now time.Time) (CardData, error)
}

// RandomGenerator draws digits from crypto/rand and finishes the PAN with a
// Luhn check digit.
type RandomGenerator struct {
	bin           string
	validityYears int
}

// NewRandomGenerator validates the BIN prefix and validity period.
func NewRandomGenerator(bin string, validityYears int) (*RandomGenerator, error) {
	bin = strings.TrimSpace(bin)
	if bin == "" || len(bin) > maxBINSize || !isDigits(bin) {
		return nil, fmt.Errorf("card bin must be 1-%d digits, got %q", maxBINSize, bin)
	}
	if validityYears <= 0 {
		return nil, fmt.Errorf("card validity must be positive, got %d", validityYears)
	}
	return &RandomGenerator{bin: bin, validityYears: validityYears}, nil
}

// Generate returns a Luhn-valid 16 digit PAN, a CVV and an MM/YY expiry.
func (g *RandomGenerator) Generate(now time.Time) (CardData, error) {
	body, err := randomDigits(panLength - 1 - len(g.bin))
	if err != nil {
		return CardData{}, err
	}
	partial := g.bin + body
	base, err := strconv.Atoi(partial)
	if err != nil {
		return CardData{}, fmt.Errorf("parse pan: %w", err)
	}
	check := -1
	for d := 0; d <= 9; d++ {
		if luhn.Valid(base*10 + d) {
			check = d
			break
		}
	}
	if check < 0 {
		return CardData{}, fmt.Errorf("no luhn check digit for %s", partial)
	}

	cvv, err := randomDigits(cvvLength)
	if err != nil {
		return CardData{}, err
	}

	return CardData{
		Number: formatPAN(partial + strconv.Itoa(check)),
		CVV:    cvv,
		Expiry: now.AddDate(g.validityYears, 0, 0).Format("01/06"),
	}, nil
}

func randomDigits(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	ten := big.NewInt(10)
	for i := 0; i < n; i++ {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("read random digit: %w", err)
		}
		b.WriteByte(byte('0' + d.Int64()))
	}
	return b.String(), nil
}

// formatPAN groups digits in fours: "4111 1111 1111 1111".
func formatPAN(digits string) string {
	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

func maskPAN(number string) (masked, last4 string) {
	digits := strings.ReplaceAll(number, " ", "")
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits)), digits
	}
	last4 = digits[len(digits)-4:]
	return "**** **** **** " + last4, last4
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
