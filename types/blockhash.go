package types

// Blockhash is the lifetime of a message: a recent hash and the last block height at which
// the network still accepts transactions that reference it.
type Blockhash struct {
	Hash                 Hash
	LastValidBlockHeight uint64
}

type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)

func (c Commitment) level() int {
	switch c {
	case CommitmentProcessed:
		return 1
	case CommitmentConfirmed:
		return 2
	case CommitmentFinalized:
		return 3
	}

	return 0
}

func (c Commitment) IsValid() bool {
	return c.level() > 0
}

// Reaches returns true if a status observed at commitment c satisfies the target commitment.
func (c Commitment) Reaches(target Commitment) bool {
	return c.IsValid() && c.level() >= target.level()
}
