package dto

import "encoding/json"

// MethodURI binds the payment method path segment.
type MethodURI struct {
	Method string `uri:"method" binding:"required,method_name"`
}

// CreateAddressRequest is the body for payment address creation. Config is
// the PaymentAddressConfig object and may be omitted.
type CreateAddressRequest struct {
	Config json.RawMessage `json:"config,omitempty"`
}

// PaymentRequest is the body for building a PAY request.
type PaymentRequest struct {
	Inputs  json.RawMessage `json:"inputs"`
	Outputs json.RawMessage `json:"outputs"`
}

// MintRequest is the body for building a MINT request.
type MintRequest struct {
	Outputs json.RawMessage `json:"outputs"`
	Inputs  json.RawMessage `json:"inputs,omitempty"`
}

// SetFeesRequest is the body for building a SET_FEES request. Current is
// the ledger's GET_FEES response, required under the merge fee policy.
type SetFeesRequest struct {
	Fees    json.RawMessage `json:"fees"`
	Current json.RawMessage `json:"current,omitempty"`
}

// GetUTXORequest is the body for building a GET_UTXO request.
type GetUTXORequest struct {
	PaymentAddress string `json:"payment_address"`
}

// LedgerResponse carries a raw ledger reply to be parsed.
type LedgerResponse struct {
	Response json.RawMessage `json:"response"`
}

// CommandResult is the data of every payment method response. Result holds
// the operation output: a request body, an address list or parsed records.
type CommandResult struct {
	CommandHandle int32           `json:"command_handle"`
	Result        json.RawMessage `json:"result"`
}

// MethodListResponse lists the registered payment methods.
type MethodListResponse struct {
	Methods []string `json:"methods"`
}
