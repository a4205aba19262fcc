// Package request builds canonical ledger transaction requests from
// validated payment-method values.
package request

import (
	"bytes"
	"fmt"

	"sovtoken-payments/internal/core/domain"

	canonicaljson "github.com/gibson042/canonicaljson-go"
)

// DefaultProtocolVersion is the ledger protocol version requests carry
// unless configured otherwise.
const DefaultProtocolVersion = 2

// Request is a built, immutable ledger request. Its bytes are the exact
// payload an external signer signs.
type Request struct {
	op        domain.OperationKind
	submitter string
	body      []byte
}

// Operation returns the ledger operation the request carries.
func (r Request) Operation() domain.OperationKind { return r.op }

// Submitter returns the identity the request is submitted under.
func (r Request) Submitter() string { return r.submitter }

// Bytes returns a copy of the canonical serialization.
func (r Request) Bytes() []byte { return bytes.Clone(r.body) }

func (r Request) String() string { return string(r.body) }

// MarshalJSON embeds the request as its canonical object.
func (r Request) MarshalJSON() ([]byte, error) {
	if r.body == nil {
		return []byte("null"), nil
	}
	return r.Bytes(), nil
}

// Equal reports whether two requests serialize identically.
func (r Request) Equal(other Request) bool {
	return bytes.Equal(r.body, other.body)
}

// Wire envelopes. Fields are declared in canonical key order.

type paymentBody struct {
	Identifier      string               `json:"identifier"`
	Inputs          []domain.Input       `json:"inputs"`
	Operation       domain.OperationKind `json:"operation"`
	Outputs         []domain.Output      `json:"outputs"`
	ProtocolVersion int                  `json:"protocolVersion"`
}

type mintBody struct {
	Identifier      string               `json:"identifier"`
	Operation       domain.OperationKind `json:"operation"`
	Outputs         []domain.Output      `json:"outputs"`
	ProtocolVersion int                  `json:"protocolVersion"`
}

type setFeesBody struct {
	Fees            domain.Fees          `json:"fees"`
	Identifier      string               `json:"identifier"`
	Operation       domain.OperationKind `json:"operation"`
	ProtocolVersion int                  `json:"protocolVersion"`
}

type getUTXOBody struct {
	Address         string               `json:"address"`
	Identifier      string               `json:"identifier"`
	Operation       domain.OperationKind `json:"operation"`
	ProtocolVersion int                  `json:"protocolVersion"`
}

type getFeesBody struct {
	Identifier      string               `json:"identifier"`
	Operation       domain.OperationKind `json:"operation"`
	ProtocolVersion int                  `json:"protocolVersion"`
}

// Builder composes requests. It holds no mutable state and never fails:
// every argument must come from the payload package.
type Builder struct {
	protocolVersion int
}

// NewBuilder returns a Builder stamping requests with protocolVersion.
func NewBuilder(protocolVersion int) *Builder {
	return &Builder{protocolVersion: protocolVersion}
}

// ProtocolVersion returns the version stamped on every request.
func (b *Builder) ProtocolVersion() int { return b.protocolVersion }

// Payment builds a PAY request. Inputs and outputs keep caller order; amount
// conservation is checked by the ledger.
func (b *Builder) Payment(cfg domain.PaymentConfig, submitter string) Request {
	return b.build(domain.OperationPay, submitter, paymentBody{
		Identifier:      submitter,
		Inputs:          cfg.Inputs,
		Operation:       domain.OperationPay,
		Outputs:         cfg.Outputs,
		ProtocolVersion: b.protocolVersion,
	})
}

// Mint builds a MINT request.
func (b *Builder) Mint(cfg domain.MintConfig, submitter string) Request {
	return b.build(domain.OperationMint, submitter, mintBody{
		Identifier:      submitter,
		Operation:       domain.OperationMint,
		Outputs:         cfg.Outputs,
		ProtocolVersion: b.protocolVersion,
	})
}

// SetFees builds a SET_FEES request. The fee map is sent as the complete
// schedule; callers apply their update policy first.
func (b *Builder) SetFees(cfg domain.SetFeesConfig, submitter string) Request {
	return b.build(domain.OperationSetFees, submitter, setFeesBody{
		Fees:            cfg.Fees,
		Identifier:      submitter,
		Operation:       domain.OperationSetFees,
		ProtocolVersion: b.protocolVersion,
	})
}

// GetFees builds a fee schedule query.
func (b *Builder) GetFees(submitter string) Request {
	return b.build(domain.OperationGetFees, submitter, getFeesBody{
		Identifier:      submitter,
		Operation:       domain.OperationGetFees,
		ProtocolVersion: b.protocolVersion,
	})
}

// GetUTXO builds a query for the unspent outputs held by addr.
func (b *Builder) GetUTXO(addr, submitter string) Request {
	return b.build(domain.OperationGetUTXO, submitter, getUTXOBody{
		Address:         addr,
		Identifier:      submitter,
		Operation:       domain.OperationGetUTXO,
		ProtocolVersion: b.protocolVersion,
	})
}

func (b *Builder) build(op domain.OperationKind, submitter string, body any) Request {
	raw, err := canonicaljson.Marshal(body)
	if err != nil {
		// Bodies are plain structs of strings, integers, slices and maps.
		panic(fmt.Sprintf("request: canonical encoding of %s failed: %v", op, err))
	}
	return Request{op: op, submitter: submitter, body: raw}
}
