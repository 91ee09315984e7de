package types

import (
	"bytes"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	AddressLength   = 32
	HashLength      = 32
	SignatureLength = 64
)

// Address is a 32 byte account, program or derived address. The zero value is the system
// program id (11111111111111111111111111111111).
type Address [AddressLength]byte

func AddressFromBytes(bz []byte) (Address, error) {
	var addr Address
	if len(bz) != AddressLength {
		return addr, errors.Errorf("invalid address length %d, expected %d", len(bz), AddressLength)
	}

	copy(addr[:], bz)
	return addr, nil
}

func AddressFromBase58(s string) (Address, error) {
	bz, err := base58.Decode(s)
	if err != nil {
		return Address{}, errors.Wrapf(err, "cannot decode address %q", s)
	}

	return AddressFromBytes(bz)
}

// MustAddressFromBase58 is AddressFromBase58 for constants. It panics on bad input.
func MustAddressFromBase58(s string) Address {
	addr, err := AddressFromBase58(s)
	if err != nil {
		panic(err)
	}

	return addr
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) String() string {
	return base58.Encode(a[:])
}

func (a Address) Equals(other Address) bool {
	return a == other
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) Less(other Address) bool {
	return bytes.Compare(a[:], other[:]) < 0
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	addr, err := AddressFromBase58(string(text))
	if err != nil {
		return err
	}

	*a = addr
	return nil
}

// Hash identifies a recent point of the ledger (a blockhash).
type Hash [HashLength]byte

func HashFromBase58(s string) (Hash, error) {
	var h Hash
	bz, err := base58.Decode(s)
	if err != nil {
		return h, errors.Wrapf(err, "cannot decode hash %q", s)
	}
	if len(bz) != HashLength {
		return h, errors.Errorf("invalid hash length %d, expected %d", len(bz), HashLength)
	}

	copy(h[:], bz)
	return h, nil
}

func (h Hash) String() string {
	return base58.Encode(h[:])
}

func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Signature is an ed25519 signature over a serialized message.
type Signature [SignatureLength]byte

func SignatureFromBytes(bz []byte) (Signature, error) {
	var sig Signature
	if len(bz) != SignatureLength {
		return sig, errors.Errorf("invalid signature length %d, expected %d", len(bz), SignatureLength)
	}

	copy(sig[:], bz)
	return sig, nil
}

func SignatureFromBase58(s string) (Signature, error) {
	bz, err := base58.Decode(s)
	if err != nil {
		return Signature{}, errors.Wrapf(err, "cannot decode signature %q", s)
	}

	return SignatureFromBytes(bz)
}

func (s Signature) Bytes() []byte {
	return s[:]
}

func (s Signature) String() string {
	return base58.Encode(s[:])
}

func (s Signature) IsZero() bool {
	return s == Signature{}
}
