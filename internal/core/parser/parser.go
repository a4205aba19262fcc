// Package parser reads ledger responses back into domain values. A response
// is accepted whole or rejected with a ParseError; no partial results escape.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/pkg/address"
	"sovtoken-payments/pkg/apperror"
)

// Ledger reply kinds.
const (
	OpReply   = "REPLY"
	OpReject  = "REJECT"
	OpReqNack = "REQNACK"
)

// UTXOSet is an ordered, fully materialized set of unspent outputs.
type UTXOSet struct {
	records []domain.UTXO
}

// Len returns the number of records.
func (s UTXOSet) Len() int { return len(s.records) }

// All iterates the records in response order. It may be ranged over any
// number of times.
func (s UTXOSet) All() iter.Seq2[int, domain.UTXO] {
	return func(yield func(int, domain.UTXO) bool) {
		for i, u := range s.records {
			if !yield(i, u) {
				return
			}
		}
	}
}

// Slice returns a copy of the records.
func (s UTXOSet) Slice() []domain.UTXO {
	if s.records == nil {
		return []domain.UTXO{}
	}
	return slices.Clone(s.records)
}

// MarshalJSON encodes the set as a JSON array.
func (s UTXOSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Slice())
}

type utxoWire struct {
	Address  *string `json:"address"`
	Amount   *int64  `json:"amount"`
	Sequence *int64  `json:"sequence"`
}

type envelope struct {
	Op     string          `json:"op"`
	Reason string          `json:"reason"`
	Result json.RawMessage `json:"result"`
}

// UTXOs parses a UTXO query or payment response. raw is either a bare array
// of records or a ledger reply whose result carries an "outputs" array.
func UTXOs(raw []byte) (UTXOSet, error) {
	body, err := unwrap(raw, "outputs")
	if err != nil {
		return UTXOSet{}, err
	}

	var wires []utxoWire
	if err := json.Unmarshal(body, &wires); err != nil {
		return UTXOSet{}, apperror.ParseError("UTXO records are malformed", err)
	}
	if wires == nil {
		return UTXOSet{}, apperror.ParseError("UTXO records are missing", nil)
	}

	records := make([]domain.UTXO, 0, len(wires))
	for i, w := range wires {
		u, err := w.toDomain(i)
		if err != nil {
			return UTXOSet{}, err
		}
		records = append(records, u)
	}
	return UTXOSet{records: records}, nil
}

func (w utxoWire) toDomain(i int) (domain.UTXO, error) {
	switch {
	case w.Address == nil:
		return domain.UTXO{}, apperror.ParseError(fmt.Sprintf("outputs[%d]: missing address", i), nil)
	case w.Amount == nil:
		return domain.UTXO{}, apperror.ParseError(fmt.Sprintf("outputs[%d]: missing amount", i), nil)
	case w.Sequence == nil:
		return domain.UTXO{}, apperror.ParseError(fmt.Sprintf("outputs[%d]: missing sequence", i), nil)
	case *w.Amount < 0 || *w.Sequence < 0:
		return domain.UTXO{}, apperror.ParseError(fmt.Sprintf("outputs[%d]: negative amount or sequence", i), nil)
	}
	if err := address.Validate(*w.Address); err != nil {
		return domain.UTXO{}, apperror.ParseError(fmt.Sprintf("outputs[%d]: invalid address", i), err)
	}
	return domain.UTXO{
		Address:  *w.Address,
		Amount:   uint64(*w.Amount),
		Sequence: uint64(*w.Sequence),
	}, nil
}

// Fees parses a fee query response: a bare fee map or a ledger reply whose
// result carries a "fees" object.
func Fees(raw []byte) (domain.Fees, error) {
	body, err := unwrap(raw, "fees")
	if err != nil {
		return nil, err
	}

	var wire map[string]*int64
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, apperror.ParseError("fee schedule is malformed", err)
	}
	if wire == nil {
		return nil, apperror.ParseError("fee schedule is missing", nil)
	}

	fees := make(domain.Fees, len(wire))
	for _, txnType := range slices.Sorted(maps.Keys(wire)) {
		amount := wire[txnType]
		if amount == nil || *amount < 0 {
			return nil, apperror.ParseError(fmt.Sprintf("fees[%q]: amount must be a non-negative integer", txnType), nil)
		}
		fees[txnType] = uint64(*amount)
	}
	return fees, nil
}

// unwrap returns the payload of raw: raw itself when it is not a ledger
// reply, otherwise result[field].
func unwrap(raw []byte, field string) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, apperror.ParseError("ledger response is empty", nil)
	}
	if !json.Valid(trimmed) {
		return nil, apperror.ParseError("ledger response is not valid JSON", nil)
	}
	if trimmed[0] != '{' {
		return trimmed, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, apperror.ParseError("ledger response is malformed", err)
	}
	if _, ok := probe["op"]; !ok {
		if _, ok := probe["result"]; !ok {
			return trimmed, nil
		}
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, apperror.ParseError("ledger reply is malformed", err)
	}
	switch env.Op {
	case OpReply, "":
	case OpReject, OpReqNack:
		return nil, apperror.ParseError("ledger refused the request", errors.New(env.Op+": "+env.Reason))
	default:
		return nil, apperror.ParseError(fmt.Sprintf("unexpected ledger reply %q", env.Op), nil)
	}

	var result map[string]json.RawMessage
	if err := json.Unmarshal(env.Result, &result); err != nil || result == nil {
		return nil, apperror.ParseError("ledger reply has no result", err)
	}
	payload, ok := result[field]
	if !ok {
		return nil, apperror.ParseError(fmt.Sprintf("ledger reply result has no %q", field), nil)
	}
	return payload, nil
}
