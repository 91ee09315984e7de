package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	LamportsPerSol = uint64(1_000_000_000)
	solDecimals    = 9
)

// SolToLamports converts a decimal SOL amount, e.g. "1.5", to lamports.
func SolToLamports(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" || len(frac) > solDecimals {
		return 0, errors.Errorf("invalid SOL amount %q", s)
	}

	var wholeVal, fracVal uint64
	var err error
	if whole != "" {
		if wholeVal, err = strconv.ParseUint(whole, 10, 64); err != nil {
			return 0, errors.Errorf("invalid SOL amount %q", s)
		}
	}
	if frac != "" {
		frac += strings.Repeat("0", solDecimals-len(frac))
		if fracVal, err = strconv.ParseUint(frac, 10, 64); err != nil {
			return 0, errors.Errorf("invalid SOL amount %q", s)
		}
	}

	if wholeVal > (math.MaxUint64-fracVal)/LamportsPerSol {
		return 0, errors.Errorf("SOL amount %q overflows", s)
	}

	return wholeVal*LamportsPerSol + fracVal, nil
}

// LamportsToSol formats lamports as a decimal SOL string without trailing zeros.
func LamportsToSol(lamports uint64) string {
	whole := lamports / LamportsPerSol
	frac := lamports % LamportsPerSol
	if frac == 0 {
		return strconv.FormatUint(whole, 10)
	}

	return strings.TrimRight(fmt.Sprintf("%d.%09d", whole, frac), "0")
}
