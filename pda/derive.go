// Package pda computes program derived addresses: addresses that are off the ed25519 curve and
// therefore have no private key, so only the owning program can sign for them.
package pda

import (
	"bytes"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

var (
	ErrMaxSeedLength = errors.New("max seed length exceeded")
	ErrInvalidSeeds  = errors.New("provided seeds do not result in a valid address")
	ErrIllegalOwner  = errors.New("owner cannot be a program derived address marker")
)

var pdaMarker = []byte("ProgramDerivedAddress")

// IsOnCurve returns true if bz is the encoding of a point on the ed25519 curve.
func IsOnCurve(bz []byte) bool {
	return solana.IsOnCurve(bz)
}

// CreateProgramAddress hashes seeds and program into an address. The result is rejected if it
// lies on the curve.
func CreateProgramAddress(seeds [][]byte, program types.Address) (types.Address, error) {
	if err := checkSeeds(seeds, MaxSeeds); err != nil {
		return types.Address{}, err
	}

	addr, err := solana.CreateProgramAddress(seeds, solana.PublicKey(program))
	if err != nil {
		return types.Address{}, types.WithCause(ErrInvalidSeeds, err)
	}

	return types.Address(addr), nil
}

// FindProgramAddress searches the bump seed from 255 down to 1 and returns the first one for
// which seeds || bump yields an off-curve address.
func FindProgramAddress(seeds [][]byte, program types.Address) (types.Address, uint8, error) {
	// The bump takes one of the seed slots.
	if err := checkSeeds(seeds, MaxSeeds-1); err != nil {
		return types.Address{}, 0, err
	}

	// The capacity limit makes the bump append allocate instead of writing into seeds.
	addr, bump, err := solana.FindProgramAddress(seeds[:len(seeds):len(seeds)], solana.PublicKey(program))
	if err != nil {
		return types.Address{}, 0, types.WithCause(types.ErrNoValidBumpFound, err)
	}

	return types.Address(addr), bump, nil
}

// CreateWithSeed derives sha256(base || seed || owner), the address of an account created with
// a string seed by the system program.
func CreateWithSeed(base types.Address, seed string, owner types.Address) (types.Address, error) {
	if len(seed) > MaxSeedLength {
		return types.Address{}, errors.Wrapf(ErrMaxSeedLength, "seed is %d bytes", len(seed))
	}
	if bytes.HasSuffix(owner[:], pdaMarker) {
		return types.Address{}, ErrIllegalOwner
	}

	addr, err := solana.CreateWithSeed(solana.PublicKey(base), seed, solana.PublicKey(owner))
	if err != nil {
		return types.Address{}, err
	}

	return types.Address(addr), nil
}

func checkSeeds(seeds [][]byte, max int) error {
	if len(seeds) > max {
		return errors.Wrapf(ErrMaxSeedLength, "%d seeds, at most %d", len(seeds), max)
	}
	for i, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return errors.Wrapf(ErrMaxSeedLength, "seed %d is %d bytes", i, len(seed))
		}
	}

	return nil
}
