package types

type SubmissionStatus int

const (
	StatusBuilt SubmissionStatus = iota
	StatusSent
	StatusConfirmed
	StatusRejected
	StatusTimedOut
)

func (s SubmissionStatus) String() string {
	switch s {
	case StatusBuilt:
		return "built"
	case StatusSent:
		return "sent"
	case StatusConfirmed:
		return "confirmed"
	case StatusRejected:
		return "rejected"
	case StatusTimedOut:
		return "timed_out"
	}

	return "unknown"
}

// Confirmation is the outcome of one submission.
type Confirmation struct {
	Signature Signature
	Status    SubmissionStatus
	Slot      uint64

	// Commitment level reached, set when Status is StatusConfirmed.
	Commitment Commitment

	// Number of transport attempts used to send the transaction.
	Attempts int

	// Err is set for StatusRejected and StatusTimedOut.
	Err error
}

func (c *Confirmation) IsConfirmed() bool {
	return c != nil && c.Status == StatusConfirmed
}
