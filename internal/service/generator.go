package service

import (
	"errors"

	"github.com/passmint/passmint-go/internal/crypto"
	"github.com/passmint/passmint-go/internal/model"
	"github.com/passmint/passmint-go/internal/strength"
)

const (
	// maxAttempts bounds the generate-and-check loop. After the budget is
	// spent the service returns a final draw with a warning instead of
	// failing, so restrictive settings still produce a password.
	maxAttempts = 100

	defaultLength = 16

	exhaustedWarning = "could not meet all strength criteria; consider a longer password or a lower strength level"
)

var (
	ErrInvalidLength = errors.New("length must be a positive integer")
	ErrLengthTooLong = errors.New("length exceeds the configured maximum")
)

// GeneratorService runs the generate-and-validate loop.
type GeneratorService struct {
	maxLength int
}

// NewGeneratorService creates a GeneratorService. maxLength caps the
// requested password length; the core draw loop itself has no upper bound.
func NewGeneratorService(maxLength int) *GeneratorService {
	return &GeneratorService{maxLength: maxLength}
}

// Generate draws random candidates against the request's policy until one
// passes the strength checker, up to the attempt budget. On exhaustion it
// returns one final fresh draw together with a warning; the only error
// outcomes are an empty alphabet or an out-of-range length.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = defaultLength
	}
	if length < 0 {
		return model.GenerateResponse{}, ErrInvalidLength
	}
	if length > s.maxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}

	level := strength.Level(req.Strength)
	if level == "" {
		level = strength.LevelStrong
	}

	policy := crypto.Policy{
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Digits:    boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	alphabet, err := policy.Alphabet()
	if err != nil {
		return model.GenerateResponse{}, err
	}

	for i := 0; i < maxAttempts; i++ {
		password, err := crypto.Draw(alphabet, length)
		if err != nil {
			return model.GenerateResponse{}, err
		}
		if strength.Check(password, level) {
			return model.GenerateResponse{Password: password}, nil
		}
	}

	// Budget exhausted: one fresh draw, returned regardless of acceptance.
	password, err := crypto.Draw(alphabet, length)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	return model.GenerateResponse{
		Password: password,
		Warning:  exhaustedWarning,
	}, nil
}

// Check runs the strength checker on a caller-supplied password.
func (s *GeneratorService) Check(req model.CheckRequest) model.CheckResponse {
	level := strength.Level(req.Strength)
	if level == "" {
		level = strength.LevelStrong
	}

	return model.CheckResponse{
		Acceptable: strength.Check(req.Password, level),
		Diversity:  strength.Diversity(req.Password),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
