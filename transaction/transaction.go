package transaction

import (
	"encoding/base64"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/keys"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// Largest serialized transaction a node accepts (IPv6 MTU minus headers).
const MaxTransactionSize = 1232

var (
	ErrUnexpectedSigner    = errors.New("signer is not required by the message")
	ErrTransactionTooLarge = errors.New("transaction too large")
	ErrInvalidSignature    = errors.New("invalid signature")
)

// Signer holds the key of one address. keys.Keypair implements it.
type Signer interface {
	Address() types.Address
	PrivateKey() solana.PrivateKey
}

type Transaction struct {
	Message *Message

	// One signature per required signer, in the order of Message.Signers().
	Signatures []types.Signature
}

// Sign signs message with signers. signers must hold a key for every account flagged as signer,
// the payer included, and nothing else; listing a signer twice is allowed. The check runs
// before any signature is produced.
func Sign(message *Message, signers ...Signer) (*Transaction, error) {
	byAddress := make(map[types.Address]Signer, len(signers))
	for _, s := range signers {
		byAddress[s.Address()] = s
	}

	required := message.Signers()
	missing := make([]string, 0)
	for _, addr := range required {
		if _, ok := byAddress[addr]; !ok {
			missing = append(missing, addr.String())
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(types.ErrMissingSigner, "no key for %s", strings.Join(missing, ", "))
	}

	for addr := range byAddress {
		if !message.IsSigner(addr) {
			return nil, errors.Wrapf(ErrUnexpectedSigner, "%s", addr)
		}
	}

	unsigned := solana.Transaction{Message: message.compiled}
	signatures, err := unsigned.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		s, ok := byAddress[types.Address(key)]
		if !ok {
			return nil
		}
		private := s.PrivateKey()
		return &private
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot sign message")
	}

	tx := &Transaction{
		Message:    message,
		Signatures: make([]types.Signature, len(signatures)),
	}
	for i, sig := range signatures {
		tx.Signatures[i] = types.Signature(sig)
	}

	return tx, nil
}

// ID returns the first signature, which identifies the transaction on the network.
func (tx *Transaction) ID() types.Signature {
	if len(tx.Signatures) == 0 {
		return types.Signature{}
	}

	return tx.Signatures[0]
}

// VerifySignatures checks that there is a valid signature for every required signer.
func (tx *Transaction) VerifySignatures() error {
	bz, err := tx.Message.MarshalBinary()
	if err != nil {
		return err
	}

	signers := tx.Message.Signers()
	if len(signers) != len(tx.Signatures) {
		return errors.Wrapf(types.ErrMissingSigner, "%d signers but %d signatures", len(signers), len(tx.Signatures))
	}

	for i, sig := range tx.Signatures {
		if !keys.Verify(signers[i], bz, sig) {
			return errors.Wrapf(ErrInvalidSignature, "signature of %s", signers[i])
		}
	}

	return nil
}

// MarshalBinary encodes the signatures followed by the message.
func (tx *Transaction) MarshalBinary() ([]byte, error) {
	if n := len(tx.Message.Signers()); n != len(tx.Signatures) {
		return nil, errors.Wrapf(types.ErrMissingSigner, "%d signers but %d signatures", n, len(tx.Signatures))
	}

	signed := solana.Transaction{
		Signatures: make([]solana.Signature, len(tx.Signatures)),
		Message:    tx.Message.compiled,
	}
	for i, sig := range tx.Signatures {
		signed.Signatures[i] = solana.Signature(sig)
	}

	return signed.MarshalBinary()
}

func (tx *Transaction) ToBase64() (string, error) {
	bz, err := tx.MarshalBinary()
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(bz), nil
}

// CheckSize fails if the serialized transaction exceeds MaxTransactionSize.
func (tx *Transaction) CheckSize() error {
	bz, err := tx.MarshalBinary()
	if err != nil {
		return err
	}

	if len(bz) > MaxTransactionSize {
		return errors.Wrapf(ErrTransactionTooLarge, "%d bytes, at most %d", len(bz), MaxTransactionSize)
	}

	return nil
}
