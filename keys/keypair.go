package keys

import (
	"bytes"
	"crypto/rand"

	"github.com/cosmos/go-bip39"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ed25519"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

const (
	SeedLength    = ed25519.SeedSize
	KeypairLength = ed25519.PrivateKeySize
)

// Keypair holds an ed25519 signing key and its address. It is never mutated after construction so
// a single Keypair can sign from several goroutines.
type Keypair struct {
	private ed25519.PrivateKey
	address types.Address
}

// Generate creates a new random keypair.
func Generate() *Keypair {
	_, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		// crypto/rand does not fail on supported platforms.
		panic(err)
	}

	return newKeypair(private)
}

// FromBytes loads a keypair from its 64 byte encoding: the 32 byte seed followed by the 32 byte
// public key.
func FromBytes(bz []byte) (*Keypair, error) {
	if len(bz) != KeypairLength {
		return nil, errors.Wrapf(types.ErrMalformedKey, "keypair must be %d bytes, got %d", KeypairLength, len(bz))
	}

	private := ed25519.NewKeyFromSeed(bz[:SeedLength])
	if !bytes.Equal(private[SeedLength:], bz[SeedLength:]) {
		return nil, errors.Wrap(types.ErrMalformedKey, "public key does not match the private key")
	}

	return newKeypair(private), nil
}

func FromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, errors.Wrapf(types.ErrMalformedKey, "seed must be %d bytes, got %d", SeedLength, len(seed))
	}

	return newKeypair(ed25519.NewKeyFromSeed(seed)), nil
}

// FromMnemonic derives a keypair from the first 32 bytes of the BIP-39 seed of a mnemonic.
func FromMnemonic(mnemonic, password string) (*Keypair, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, types.WithCause(types.ErrMalformedKey, err)
	}

	return FromSeed(seed[:SeedLength])
}

// NewMnemonic returns a fresh 24 word mnemonic for FromMnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", err
	}

	return bip39.NewMnemonic(entropy)
}

func newKeypair(private ed25519.PrivateKey) *Keypair {
	k := &Keypair{private: private}
	copy(k.address[:], private.Public().(ed25519.PublicKey))

	return k
}

func (k *Keypair) Address() types.Address {
	return k.address
}

// Bytes returns a copy of the 64 byte encoding accepted by FromBytes.
func (k *Keypair) Bytes() []byte {
	bz := make([]byte, KeypairLength)
	copy(bz, k.private)

	return bz
}

// PrivateKey returns a copy of the key in the form solana-go signs with.
func (k *Keypair) PrivateKey() solana.PrivateKey {
	return solana.PrivateKey(k.Bytes())
}

func (k *Keypair) Sign(message []byte) types.Signature {
	var sig types.Signature
	copy(sig[:], ed25519.Sign(k.private, message))

	return sig
}

// Verify checks that sig is a signature of message by the key behind pub.
func Verify(pub types.Address, message []byte, sig types.Signature) bool {
	return ed25519.Verify(ed25519.PublicKey(pub[:]), message, sig[:])
}
