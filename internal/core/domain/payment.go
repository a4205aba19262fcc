package domain

import (
	"fmt"
	"maps"
	"slices"
)

// OperationKind names a ledger transaction type built by the payment method.
type OperationKind string

const (
	OperationPay     OperationKind = "PAY"
	OperationMint    OperationKind = "MINT"
	OperationSetFees OperationKind = "SET_FEES"
	OperationGetFees OperationKind = "GET_FEES"
	OperationGetUTXO OperationKind = "GET_UTXO"
)

// Input references a previously created, unspent output.
// JSON fields are declared in key order.
type Input struct {
	Address  string `json:"address"`
	Sequence uint64 `json:"sequence"`
}

// Output sends amount tokens to a payment address.
type Output struct {
	Address string `json:"address"`
	Amount  uint64 `json:"amount"`
}

// UTXO is an unspent output reported by the ledger.
type UTXO struct {
	Address  string `json:"address"`
	Amount   uint64 `json:"amount"`
	Sequence uint64 `json:"sequence"`
}

// Input returns the reference that spends u.
func (u UTXO) Input() Input {
	return Input{Address: u.Address, Sequence: u.Sequence}
}

// Fees maps a ledger transaction type to the fee charged for it.
type Fees map[string]uint64

// Clone returns an independent copy. A nil receiver yields an empty map.
func (f Fees) Clone() Fees {
	out := make(Fees, len(f))
	maps.Copy(out, f)
	return out
}

// Merge overlays update on f and returns the result without touching either.
func (f Fees) Merge(update Fees) Fees {
	out := f.Clone()
	maps.Copy(out, update)
	return out
}

// Types returns the fee keys in sorted order.
func (f Fees) Types() []string {
	return slices.Sorted(maps.Keys(f))
}

// FeeUpdatePolicy decides how a SET_FEES update relates to the fees already
// on the ledger.
type FeeUpdatePolicy string

const (
	// FeeUpdateReplace sends the update as the complete fee schedule.
	FeeUpdateReplace FeeUpdatePolicy = "replace"
	// FeeUpdateMerge overlays the update on the current schedule and sends
	// the combined map.
	FeeUpdateMerge FeeUpdatePolicy = "merge"
)

// ParseFeeUpdatePolicy validates a configured policy name.
func ParseFeeUpdatePolicy(s string) (FeeUpdatePolicy, error) {
	switch p := FeeUpdatePolicy(s); p {
	case FeeUpdateReplace, FeeUpdateMerge:
		return p, nil
	case "":
		return FeeUpdateReplace, nil
	default:
		return "", fmt.Errorf("unknown fee update policy %q", s)
	}
}

// Apply returns the total fee map to send for update given the current
// ledger schedule.
func (p FeeUpdatePolicy) Apply(current, update Fees) Fees {
	if p == FeeUpdateMerge {
		return current.Merge(update)
	}
	return update.Clone()
}

// PaymentAddressConfig carries the optional key-derivation seed.
type PaymentAddressConfig struct {
	Seed []byte
}

// HasSeed reports whether deterministic key generation was requested.
func (c PaymentAddressConfig) HasSeed() bool {
	return len(c.Seed) > 0
}

// PaymentConfig is a validated transfer: a non-empty input set and the
// outputs it funds, in caller order.
type PaymentConfig struct {
	Inputs  []Input
	Outputs []Output
}

// MintConfig is a validated issuance. It never carries inputs.
type MintConfig struct {
	Outputs []Output
}

// SetFeesConfig is a validated fee update.
type SetFeesConfig struct {
	Fees Fees
}
