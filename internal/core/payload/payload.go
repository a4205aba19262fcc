// Package payload turns caller-supplied JSON into validated domain values.
// It is the only place payment-method input is checked; everything it
// returns already satisfies the domain invariants.
package payload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"

	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/pkg/address"
	"sovtoken-payments/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// SeedLength is the exact length of a key-derivation seed.
const SeedLength = 32

// Policy holds the validation decisions that vary per deployment.
type Policy struct {
	AllowZeroPaymentOutputs bool
	AllowZeroMintOutputs    bool
	SubmitterMinLength      int
	SubmitterMaxLength      int
}

// DefaultPolicy rejects zero-amount transfers, accepts zero-amount mint
// outputs and bounds submitter DIDs to 20..22 characters.
func DefaultPolicy() Policy {
	return Policy{
		AllowZeroPaymentOutputs: false,
		AllowZeroMintOutputs:    true,
		SubmitterMinLength:      20,
		SubmitterMaxLength:      22,
	}
}

// Parser validates payment-method payloads. It is safe for concurrent use.
type Parser struct {
	policy   Policy
	validate *validator.Validate
}

// NewParser creates a Parser enforcing policy.
func NewParser(policy Policy) *Parser {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Parser{policy: policy, validate: v}
}

// Policy returns the policy the parser enforces.
func (p *Parser) Policy() Policy {
	return p.policy
}

// wire shapes: pointer fields distinguish absent from zero.

type inputWire struct {
	Address  *string `json:"address" validate:"required"`
	Sequence *int64  `json:"sequence" validate:"required"`
}

type outputWire struct {
	Address *string `json:"address" validate:"required"`
	Amount  *int64  `json:"amount" validate:"required"`
}

type addressConfigWire struct {
	Seed *string `json:"seed"`
}

// ParsePaymentAddressConfig parses `{ "seed"?: string }`. An empty payload
// or an empty seed means a random key.
func (p *Parser) ParsePaymentAddressConfig(raw []byte) (domain.PaymentAddressConfig, error) {
	if isAbsent(raw) {
		return domain.PaymentAddressConfig{}, nil
	}

	var w addressConfigWire
	if err := decode(raw, &w, "payment address config"); err != nil {
		return domain.PaymentAddressConfig{}, err
	}
	if w.Seed == nil || *w.Seed == "" {
		return domain.PaymentAddressConfig{}, nil
	}
	if len(*w.Seed) != SeedLength {
		return domain.PaymentAddressConfig{}, apperror.InvalidValuef("seed must be exactly %d characters", SeedLength)
	}
	return domain.PaymentAddressConfig{Seed: []byte(*w.Seed)}, nil
}

// ParseInputs parses an ordered, non-empty list of unspent output references.
func (p *Parser) ParseInputs(raw []byte) ([]domain.Input, error) {
	if isAbsent(raw) {
		return nil, apperror.MalformedConfig("inputs payload is required", nil)
	}

	var wires []inputWire
	if err := decode(raw, &wires, "inputs"); err != nil {
		return nil, err
	}
	if len(wires) == 0 {
		return nil, apperror.InvalidValue("inputs must not be empty")
	}

	inputs := make([]domain.Input, 0, len(wires))
	seen := make(map[domain.Input]struct{}, len(wires))
	for i, w := range wires {
		if err := p.check(w, "inputs", i); err != nil {
			return nil, err
		}
		if *w.Sequence < 0 {
			return nil, apperror.InvalidValuef("inputs[%d]: sequence must be non-negative", i)
		}
		if err := checkAddress(*w.Address, "inputs", i); err != nil {
			return nil, err
		}

		in := domain.Input{Address: *w.Address, Sequence: uint64(*w.Sequence)}
		if _, dup := seen[in]; dup {
			return nil, apperror.InvalidValuef("inputs[%d]: duplicate reference to %s sequence %d", i, in.Address, in.Sequence)
		}
		seen[in] = struct{}{}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// ParseOutputs parses an ordered, non-empty list of outputs. allowZero
// decides whether a zero amount is accepted.
func (p *Parser) ParseOutputs(raw []byte, allowZero bool) ([]domain.Output, error) {
	if isAbsent(raw) {
		return nil, apperror.MalformedConfig("outputs payload is required", nil)
	}

	var wires []outputWire
	if err := decode(raw, &wires, "outputs"); err != nil {
		return nil, err
	}
	if len(wires) == 0 {
		return nil, apperror.InvalidValue("outputs must not be empty")
	}

	outputs := make([]domain.Output, 0, len(wires))
	for i, w := range wires {
		if err := p.check(w, "outputs", i); err != nil {
			return nil, err
		}
		switch amount := *w.Amount; {
		case amount < 0:
			return nil, apperror.InvalidValuef("outputs[%d]: amount must be non-negative", i)
		case amount == 0 && !allowZero:
			return nil, apperror.InvalidValuef("outputs[%d]: zero amount is not allowed here", i)
		}
		if err := checkAddress(*w.Address, "outputs", i); err != nil {
			return nil, err
		}
		outputs = append(outputs, domain.Output{Address: *w.Address, Amount: uint64(*w.Amount)})
	}
	return outputs, nil
}

// ParsePaymentConfig validates the inputs and outputs of a transfer.
func (p *Parser) ParsePaymentConfig(inputs, outputs []byte) (domain.PaymentConfig, error) {
	in, err := p.ParseInputs(inputs)
	if err != nil {
		return domain.PaymentConfig{}, err
	}
	out, err := p.ParseOutputs(outputs, p.policy.AllowZeroPaymentOutputs)
	if err != nil {
		return domain.PaymentConfig{}, err
	}
	return domain.PaymentConfig{Inputs: in, Outputs: out}, nil
}

// ParseMintConfig validates a mint. inputs may be absent, null or an empty
// list; anything else pairs inputs with an operation that takes none.
func (p *Parser) ParseMintConfig(outputs, inputs []byte) (domain.MintConfig, error) {
	if !isAbsent(inputs) {
		var refs []json.RawMessage
		if err := decode(inputs, &refs, "inputs"); err != nil {
			return domain.MintConfig{}, err
		}
		if len(refs) > 0 {
			return domain.MintConfig{}, apperror.InvalidValue("mint does not accept inputs")
		}
	}

	out, err := p.ParseOutputs(outputs, p.policy.AllowZeroMintOutputs)
	if err != nil {
		return domain.MintConfig{}, err
	}
	return domain.MintConfig{Outputs: out}, nil
}

// ParseFees parses a non-empty map of transaction type to fee.
func (p *Parser) ParseFees(raw []byte) (domain.SetFeesConfig, error) {
	if isAbsent(raw) {
		return domain.SetFeesConfig{}, apperror.MalformedConfig("fees payload is required", nil)
	}

	var wire map[string]*int64
	if err := decode(raw, &wire, "fees"); err != nil {
		return domain.SetFeesConfig{}, err
	}
	if len(wire) == 0 {
		return domain.SetFeesConfig{}, apperror.InvalidValue("fees must not be empty")
	}

	fees := make(domain.Fees, len(wire))
	for _, txnType := range slices.Sorted(maps.Keys(wire)) {
		amount := wire[txnType]
		if amount == nil {
			return domain.SetFeesConfig{}, apperror.MalformedConfig(fmt.Sprintf("fees[%q]: amount is required", txnType), nil)
		}
		if strings.TrimSpace(txnType) == "" {
			return domain.SetFeesConfig{}, apperror.InvalidValue("fees: transaction type must not be blank")
		}
		if *amount < 0 {
			return domain.SetFeesConfig{}, apperror.InvalidValuef("fees[%q]: amount must be non-negative", txnType)
		}
		fees[txnType] = uint64(*amount)
	}
	return domain.SetFeesConfig{Fees: fees}, nil
}

// ParseSubmitter checks the submitter DID is present and within bounds.
func (p *Parser) ParseSubmitter(did string) (string, error) {
	if did == "" {
		return "", apperror.MalformedConfig("submitter identity is required", nil)
	}
	if !address.ValidateDIDLength(did, p.policy.SubmitterMinLength, p.policy.SubmitterMaxLength) {
		return "", apperror.InvalidValuef("submitter identity must be %d to %d characters",
			p.policy.SubmitterMinLength, p.policy.SubmitterMaxLength)
	}
	return did, nil
}

// ParsePaymentAddress validates a single address supplied outside a list,
// such as the target of a UTXO query.
func (p *Parser) ParsePaymentAddress(s string) (string, error) {
	if s == "" {
		return "", apperror.MalformedConfig("payment address is required", nil)
	}
	if err := address.Validate(s); err != nil {
		return "", apperror.WrapInvalidValue("payment address failed validation", err)
	}
	return s, nil
}

func (p *Parser) check(w any, list string, i int) error {
	err := p.validate.Struct(w)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperror.MalformedConfig(fmt.Sprintf("%s[%d]: field %q is required", list, i, verrs[0].Field()), err)
	}
	return apperror.MalformedConfig(fmt.Sprintf("%s[%d]: invalid entry", list, i), err)
}

func checkAddress(s, list string, i int) error {
	if err := address.Validate(s); err != nil {
		return apperror.WrapInvalidValue(fmt.Sprintf("%s[%d]: address failed validation", list, i), err)
	}
	return nil
}

// decode accepts exactly one JSON value; anything after it, including a
// stray closing bracket, is malformed.
func decode(raw []byte, v any, what string) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(v); err != nil {
		return apperror.MalformedConfig("Malformed "+what+" payload", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
		return apperror.MalformedConfig("Malformed "+what+" payload", err)
	}
	return nil
}

func isAbsent(raw []byte) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
