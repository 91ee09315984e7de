package types

import (
	"encoding/json"

	"github.com/solana-turbin3/Q4-25-Builder-tSMBoA/types"
)

type CommitmentConfig struct {
	Commitment string `json:"commitment,omitempty"`
}

type SendTransactionConfig struct {
	Encoding            string `json:"encoding"`
	SkipPreflight       bool   `json:"skipPreflight"`
	PreflightCommitment string `json:"preflightCommitment,omitempty"`
}

type SignatureStatusesConfig struct {
	SearchTransactionHistory bool `json:"searchTransactionHistory"`
}

type RpcContext struct {
	Slot uint64 `json:"slot"`
}

type LatestBlockhashResult struct {
	Context RpcContext `json:"context"`
	Value   struct {
		Blockhash            string `json:"blockhash"`
		LastValidBlockHeight uint64 `json:"lastValidBlockHeight"`
	} `json:"value"`
}

type BalanceResult struct {
	Context RpcContext `json:"context"`
	Value   uint64     `json:"value"`
}

type FeeForMessageResult struct {
	Context RpcContext `json:"context"`
	// Null when the node cannot price the message, e.g. its blockhash is unknown.
	Value *uint64 `json:"value"`
}

type SignatureStatus struct {
	Slot               uint64      `json:"slot"`
	Confirmations      *uint64     `json:"confirmations"`
	Err                interface{} `json:"err"`
	ConfirmationStatus string      `json:"confirmationStatus"`
}

type SignatureStatusesResult struct {
	Context RpcContext         `json:"context"`
	Value   []*SignatureStatus `json:"value"`
}

// Commitment returns the commitment level the status has reached. Nodes that do not report a
// confirmation status use null confirmations for rooted transactions.
func (s *SignatureStatus) Commitment() types.Commitment {
	if s.ConfirmationStatus != "" {
		return types.Commitment(s.ConfirmationStatus)
	}
	if s.Confirmations == nil {
		return types.CommitmentFinalized
	}

	return types.CommitmentProcessed
}

// ErrString renders the transaction error as the node reported it, e.g.
// {"InstructionError":[0,{"Custom":1}]}.
func (s *SignatureStatus) ErrString() string {
	if s.Err == nil {
		return ""
	}

	bz, err := json.Marshal(s.Err)
	if err != nil {
		return "unknown transaction error"
	}

	return string(bz)
}
