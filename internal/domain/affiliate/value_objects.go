package affiliate

import (
	"crypto/rand"
	"errors"
	"io"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

const (
	CodePrefix        = "AF"
	codeSuffixLength  = 6
	codeAlphabet      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultCommission = "5"
	MinCommission     = 0.0
	MaxCommission     = 100.0
)

var (
	ErrInvalidCommission      = errors.New("commission must be a number")
	ErrCommissionOutOfRange   = errors.New("commission must be between 0 and 100")
	ErrInvalidReferralCode    = errors.New("invalid referral code format")
	ErrReferralCodeGeneration = errors.New("failed to generate referral code")
)

var codeRegex = regexp.MustCompile(`^AF[A-Z0-9]{6}$`)

// Commission is a sales commission percentage.
type Commission struct {
	percent float64
}

// ParseCommission reads the percentage typed into the affiliate form.
// A trailing "%" and a decimal comma are accepted.
func ParseCommission(s string) (Commission, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	s = strings.Replace(s, ",", ".", 1)
	if s == "" {
		return Commission{}, ErrInvalidCommission
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Commission{}, ErrInvalidCommission
	}
	return NewCommission(v)
}

func NewCommission(percent float64) (Commission, error) {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return Commission{}, ErrInvalidCommission
	}
	if percent < MinCommission || percent > MaxCommission {
		return Commission{}, ErrCommissionOutOfRange
	}
	return Commission{percent: percent}, nil
}

func (c Commission) Percent() float64 { return c.percent }

// Code is the referral code handed to an affiliate. Uniqueness is not checked;
// 36^6 combinations make a clash within one site negligible.
type Code string

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !codeRegex.MatchString(s) {
		return Code(""), ErrInvalidReferralCode
	}
	return Code(s), nil
}

// GenerateCode draws the code suffix from r; a nil r uses crypto/rand.
func GenerateCode(r io.Reader) (Code, error) {
	if r == nil {
		r = rand.Reader
	}
	alphabetLen := big.NewInt(int64(len(codeAlphabet)))

	var b strings.Builder
	b.Grow(len(CodePrefix) + codeSuffixLength)
	b.WriteString(CodePrefix)
	for range codeSuffixLength {
		n, err := rand.Int(r, alphabetLen)
		if err != nil {
			return Code(""), errors.Join(ErrReferralCodeGeneration, err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return Code(b.String()), nil
}

func (c Code) String() string {
	return string(c)
}
