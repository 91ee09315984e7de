package enroll

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/instruction"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/keys"
	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/pda"
)

func TestNewSubmitLayout(t *testing.T) {
	user := keys.Generate().Address()
	mint := keys.Generate().Address()

	ix, err := NewSubmit(user, mint)
	require.Nil(t, err)

	account, _, err := EnrollmentAddress(user)
	require.Nil(t, err)
	authority, _, err := AuthorityAddress(CollectionID)
	require.Nil(t, err)

	require.Equal(t, ProgramID, ix.ProgramID)
	require.Equal(t, []byte{77, 124, 82, 163, 21, 133, 181, 206}, ix.Data)
	require.Equal(t, []instruction.AccountMeta{
		{Address: user, IsWritable: true, IsSigner: true},
		{Address: account, IsWritable: true},
		{Address: mint, IsWritable: true, IsSigner: true},
		{Address: CollectionID, IsWritable: true},
		{Address: authority},
		{Address: MplCoreProgramID},
		{Address: instruction.SystemProgramID},
	}, ix.Accounts)
}

func TestEnrollmentAddress(t *testing.T) {
	user := keys.Generate().Address()

	account, bump, err := EnrollmentAddress(user)
	require.Nil(t, err)
	require.False(t, pda.IsOnCurve(account.Bytes()))

	created, err := pda.CreateProgramAddress([][]byte{[]byte("prereqs"), user.Bytes(), {bump}}, ProgramID)
	require.Nil(t, err)
	require.Equal(t, account, created)
}

func TestInitialize(t *testing.T) {
	user := keys.Generate().Address()
	account, _, err := EnrollmentAddress(user)
	require.Nil(t, err)

	ix, err := Initialize("tsmboa0", user, account)
	require.Nil(t, err)

	d := instruction.Discriminator("initialize")
	require.Equal(t, d[:], ix.Data[:8])
	require.Equal(t, []byte{7, 0, 0, 0}, ix.Data[8:12])
	require.Equal(t, "tsmboa0", string(ix.Data[12:]))
	require.Equal(t, 3, len(ix.Accounts))
	require.Equal(t, []instruction.AccountMeta{
		instruction.Writable(user, true),
		instruction.Writable(account, false),
		instruction.Readonly(instruction.SystemProgramID, false),
	}, ix.Accounts)
}
