// Package enroll builds calls to the enrollment program: an Anchor program that records a
// learner's github handle in a per-user account and later mints a completion asset into a
// Metaplex core collection.
package enroll

import (
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/instruction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/pda"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

var (
	ProgramID        = types.MustAddressFromBase58("TRBZyQHB3m68FGeVsqTK39Wm4xejadjVhP5MAZaKWDM")
	MplCoreProgramID = types.MustAddressFromBase58("CoREENxT6tW1HoK8ypY1SxRMZTcVPm7R94rH4PZNhX7d")
	CollectionID     = types.MustAddressFromBase58("5ebsp5RChCGK7ssRZMVMufgVZhd2kFbNaotcZ5UvytN2")
)

const (
	enrollmentSeed = "prereqs"
	authoritySeed  = "collection"

	initializeHandler = "initialize"
	submitHandler     = "submit_rs"
)

type initializeArgs struct {
	Github string
}

// EnrollmentAddress is the per-user account of the program.
func EnrollmentAddress(user types.Address) (types.Address, uint8, error) {
	return pda.FindProgramAddress([][]byte{[]byte(enrollmentSeed), user.Bytes()}, ProgramID)
}

// AuthorityAddress is the update authority the program holds over a collection.
func AuthorityAddress(collection types.Address) (types.Address, uint8, error) {
	return pda.FindProgramAddress([][]byte{[]byte(authoritySeed), collection.Bytes()}, ProgramID)
}

// Initialize creates the enrollment account of user.
func Initialize(github string, user, account types.Address) (*instruction.Instruction, error) {
	return instruction.NewAnchor(ProgramID, []instruction.AccountMeta{
		instruction.Writable(user, true),
		instruction.Writable(account, false),
		instruction.Readonly(instruction.SystemProgramID, false),
	}, initializeHandler, initializeArgs{Github: github})
}

// Submit mints the completion asset. mint is a fresh keypair's address and must sign the
// transaction next to user.
func Submit(user, account, mint, collection, authority types.Address) *instruction.Instruction {
	d := instruction.Discriminator(submitHandler)

	return instruction.New(ProgramID, []instruction.AccountMeta{
		instruction.Writable(user, true),
		instruction.Writable(account, false),
		instruction.Writable(mint, true),
		instruction.Writable(collection, false),
		instruction.Readonly(authority, false),
		instruction.Readonly(MplCoreProgramID, false),
		instruction.Readonly(instruction.SystemProgramID, false),
	}, d[:])
}

// NewSubmit derives the enrollment and authority addresses of user and builds Submit.
func NewSubmit(user, mint types.Address) (*instruction.Instruction, error) {
	account, _, err := EnrollmentAddress(user)
	if err != nil {
		return nil, err
	}

	authority, _, err := AuthorityAddress(CollectionID)
	if err != nil {
		return nil, err
	}

	return Submit(user, account, mint, CollectionID, authority), nil
}
