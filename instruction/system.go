package instruction

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

// SystemProgramID is the built-in program that owns ordinary accounts.
var SystemProgramID = types.Address(solana.SystemProgramID)

// Instruction tags of the system program.
const (
	SystemCreateAccount = system.Instruction_CreateAccount
	SystemAssign        = system.Instruction_Assign
	SystemTransfer      = system.Instruction_Transfer
)

// Transfer moves lamports between two system owned accounts. The payload is the u32 tag followed
// by the u64 amount, both little endian.
func Transfer(from, to types.Address, lamports uint64) *Instruction {
	ix, err := FromSolana(system.NewTransferInstruction(lamports, solana.PublicKey(from), solana.PublicKey(to)).Build())
	if err != nil {
		// Encoding two integers into memory does not fail.
		panic(err)
	}

	return ix
}
