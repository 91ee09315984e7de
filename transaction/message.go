package transaction

import (
	"encoding/base64"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/instruction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// Account indexes are encoded as a single byte.
const MaxAccountKeys = 256

var (
	ErrTooManyAccounts  = errors.New("too many account keys")
	ErrNoInstructions   = errors.New("message has no instructions")
	ErrInvalidBlockhash = errors.New("invalid blockhash")
	ErrInvalidPayer     = errors.New("invalid payer")
)

type MessageHeader struct {
	NumRequiredSignatures       uint8
	NumReadonlySignedAccounts   uint8
	NumReadonlyUnsignedAccounts uint8
}

type CompiledInstruction struct {
	ProgramIDIndex uint8
	Accounts       []uint8
	Data           []byte
}

// Message is the signed part of a transaction. It is compiled once in NewMessage and not
// changed afterwards.
type Message struct {
	Payer           types.Address
	Instructions    []*instruction.Instruction
	RecentBlockhash types.Hash

	// Last block height at which RecentBlockhash is accepted. Not part of the wire format.
	LastValidBlockHeight uint64

	Header       MessageHeader
	AccountKeys  []types.Address
	Compiled     []CompiledInstruction
	writableKeys map[types.Address]bool

	compiled solana.Message
}

// NewMessage compiles instructions into a message paid by payer and bound to the lifetime of
// blockhash. The account table is the one solana-go builds: the payer first, then signers before
// non-signers and writable before readonly accounts, each group in order of appearance with
// program ids after instruction accounts.
func NewMessage(instructions []*instruction.Instruction, payer types.Address, blockhash *types.Blockhash) (*Message, error) {
	if len(instructions) == 0 {
		return nil, ErrNoInstructions
	}
	if blockhash == nil || blockhash.Hash.IsZero() || blockhash.LastValidBlockHeight == 0 {
		return nil, errors.Wrap(ErrInvalidBlockhash, "blockhash must carry a hash and a last valid block height")
	}
	if payer.IsZero() {
		return nil, errors.Wrapf(ErrInvalidPayer, "payer cannot be %s", payer)
	}

	converted := make([]solana.Instruction, len(instructions))
	for i, ix := range instructions {
		converted[i] = ix.ToSolana()
	}

	tx, err := solana.NewTransaction(converted, solana.Hash(blockhash.Hash), solana.TransactionPayer(solana.PublicKey(payer)))
	if err != nil {
		return nil, errors.Wrap(err, "cannot compile message")
	}
	if n := len(tx.Message.AccountKeys); n > MaxAccountKeys {
		return nil, errors.Wrapf(ErrTooManyAccounts, "%d keys, at most %d", n, MaxAccountKeys)
	}

	m := &Message{
		Payer:                payer,
		Instructions:         make([]*instruction.Instruction, len(instructions)),
		RecentBlockhash:      blockhash.Hash,
		LastValidBlockHeight: blockhash.LastValidBlockHeight,
		Header: MessageHeader{
			NumRequiredSignatures:       tx.Message.Header.NumRequiredSignatures,
			NumReadonlySignedAccounts:   tx.Message.Header.NumReadonlySignedAccounts,
			NumReadonlyUnsignedAccounts: tx.Message.Header.NumReadonlyUnsignedAccounts,
		},
		AccountKeys:  make([]types.Address, len(tx.Message.AccountKeys)),
		Compiled:     make([]CompiledInstruction, len(tx.Message.Instructions)),
		writableKeys: make(map[types.Address]bool),
		compiled:     tx.Message,
	}
	copy(m.Instructions, instructions)

	signed := int(m.Header.NumRequiredSignatures)
	writableSigned := signed - int(m.Header.NumReadonlySignedAccounts)
	writableUnsigned := len(m.AccountKeys) - int(m.Header.NumReadonlyUnsignedAccounts)
	for i, key := range tx.Message.AccountKeys {
		m.AccountKeys[i] = types.Address(key)
		if i < writableSigned || (i >= signed && i < writableUnsigned) {
			m.writableKeys[m.AccountKeys[i]] = true
		}
	}

	for i, ix := range tx.Message.Instructions {
		compiled := CompiledInstruction{
			ProgramIDIndex: uint8(ix.ProgramIDIndex),
			Accounts:       make([]uint8, len(ix.Accounts)),
			Data:           []byte(ix.Data),
		}
		for j, index := range ix.Accounts {
			compiled.Accounts[j] = uint8(index)
		}
		m.Compiled[i] = compiled
	}

	return m, nil
}

// Signers returns the accounts that must sign, in signature order. The payer is always first.
func (m *Message) Signers() []types.Address {
	return m.AccountKeys[:m.Header.NumRequiredSignatures]
}

func (m *Message) IsSigner(addr types.Address) bool {
	for _, signer := range m.Signers() {
		if signer == addr {
			return true
		}
	}

	return false
}

func (m *Message) IsWritable(addr types.Address) bool {
	return m.writableKeys[addr]
}

// MarshalBinary encodes the message in the legacy wire format. These are the bytes that are
// signed and the bytes the network computes a fee for.
func (m *Message) MarshalBinary() ([]byte, error) {
	return m.compiled.MarshalBinary()
}

func (m *Message) ToBase64() (string, error) {
	bz, err := m.MarshalBinary()
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(bz), nil
}
