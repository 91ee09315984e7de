package instruction

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// AccountMeta references an account used by an instruction.
type AccountMeta struct {
	Address    types.Address
	IsWritable bool
	IsSigner   bool
}

func Writable(addr types.Address, signer bool) AccountMeta {
	return AccountMeta{Address: addr, IsWritable: true, IsSigner: signer}
}

func Readonly(addr types.Address, signer bool) AccountMeta {
	return AccountMeta{Address: addr, IsWritable: false, IsSigner: signer}
}

// Instruction is a call into a program. The order of Accounts is the calling convention of the
// target program and is kept as given.
type Instruction struct {
	ProgramID types.Address
	Accounts  []AccountMeta
	Data      []byte
}

// New copies accounts and data so that later changes by the caller do not leak into the
// instruction.
func New(program types.Address, accounts []AccountMeta, data []byte) *Instruction {
	ix := &Instruction{
		ProgramID: program,
		Accounts:  make([]AccountMeta, len(accounts)),
		Data:      make([]byte, len(data)),
	}
	copy(ix.Accounts, accounts)
	copy(ix.Data, data)

	return ix
}

// Signers returns the addresses flagged as signer, in account order.
func (ix *Instruction) Signers() []types.Address {
	signers := make([]types.Address, 0)
	for _, acc := range ix.Accounts {
		if acc.IsSigner {
			signers = append(signers, acc.Address)
		}
	}

	return signers
}

// FromSolana copies an instruction built with solana-go, e.g. one of its program builders.
func FromSolana(ix solana.Instruction) (*Instruction, error) {
	data, err := ix.Data()
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode instruction data")
	}

	accounts := make([]AccountMeta, 0, len(ix.Accounts()))
	for _, acc := range ix.Accounts() {
		accounts = append(accounts, AccountMeta{
			Address:    types.Address(acc.PublicKey),
			IsWritable: acc.IsWritable,
			IsSigner:   acc.IsSigner,
		})
	}

	return New(types.Address(ix.ProgramID()), accounts, data), nil
}

// ToSolana returns the instruction in the form solana-go compiles into a message.
func (ix *Instruction) ToSolana() solana.Instruction {
	accounts := make(solana.AccountMetaSlice, 0, len(ix.Accounts))
	for _, acc := range ix.Accounts {
		accounts = append(accounts, solana.NewAccountMeta(solana.PublicKey(acc.Address), acc.IsWritable, acc.IsSigner))
	}

	return solana.NewInstruction(solana.PublicKey(ix.ProgramID), accounts, ix.Data)
}
