package types

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMalformedKey        = errors.New("malformed key")
	ErrNoValidBumpFound    = errors.New("no valid bump found")
	ErrMissingSigner       = errors.New("missing signer")
	ErrFeeUnavailable      = errors.New("fee unavailable")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrRejected            = errors.New("transaction rejected")
	ErrTimedOut            = errors.New("transaction timed out")
)

// JSON-RPC error codes returned by validator nodes.
const (
	RpcCodeBlockCleanedUp           = -32001
	RpcCodeSendTransactionPreflight = -32002
	RpcCodeSignatureVerification    = -32003
	RpcCodeBlockNotAvailable        = -32004
	RpcCodeNodeUnhealthy            = -32005
	RpcCodeMinContextSlotNotReached = -32016
)

// RpcError is an error object returned by the node in a JSON-RPC response. Unlike a transport
// failure, the node received and evaluated the request.
type RpcError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *RpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Transient returns true for the codes a node uses when it is temporarily unable to answer.
func (e *RpcError) Transient() bool {
	switch e.Code {
	case RpcCodeBlockNotAvailable, RpcCodeNodeUnhealthy, RpcCodeMinContextSlotNotReached:
		return true
	}

	return false
}

// RejectedError is a ledger level rejection. Reason is the network's text, unmodified.
type RejectedError struct {
	Code   int
	Reason string
}

func NewRejectedError(code int, reason string) *RejectedError {
	return &RejectedError{Code: code, Reason: reason}
}

func (e *RejectedError) Error() string {
	return "transaction rejected: " + e.Reason
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

// WithCause returns an error that matches kind with errors.Is while keeping cause reachable with
// errors.As and errors.Unwrap.
func WithCause(kind, cause error) error {
	return &causedError{kind: kind, cause: cause}
}

type causedError struct {
	kind  error
	cause error
}

func (e *causedError) Error() string {
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *causedError) Is(target error) bool {
	return target == e.kind
}

func (e *causedError) Unwrap() error {
	return e.cause
}
