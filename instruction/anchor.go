package instruction

import (
	"crypto/sha256"

	"github.com/near/borsh-go"
	"github.com/pkg/errors"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

const DiscriminatorLength = 8

// Discriminator returns the 8 byte selector of an Anchor instruction handler.
func Discriminator(name string) [DiscriminatorLength]byte {
	var d [DiscriminatorLength]byte
	sum := sha256.Sum256([]byte("global:" + name))
	copy(d[:], sum[:DiscriminatorLength])

	return d
}

// NewAnchor builds a call to the Anchor handler name. args is borsh serialized after the
// discriminator; pass nil for handlers without arguments.
func NewAnchor(program types.Address, accounts []AccountMeta, name string, args interface{}) (*Instruction, error) {
	d := Discriminator(name)
	data := d[:]

	if args != nil {
		bz, err := borsh.Serialize(args)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot serialize arguments of %s", name)
		}
		data = append(data, bz...)
	}

	return New(program, accounts, data), nil
}
