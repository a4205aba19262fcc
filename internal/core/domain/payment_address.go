package domain

import (
	"encoding/hex"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"
)

// PaymentAddress is a wallet key registered under a payment method.
type PaymentAddress struct {
	Address    string    `json:"address"`
	VerKey     string    `json:"verkey"` // base58
	SealedSeed string    `json:"-"`      // AES-256-GCM sealed signing seed
	CreatedAt  time.Time `json:"created_at"`
}

// commandDigestSize is the number of blake2b bytes kept in a command key.
const commandDigestSize = 16

// BuildCommandKey identifies a command result for replay of retried calls.
// Format: "method:operation:submitter:handle:digest", where digest covers
// the command body so a reused handle with a different body misses.
func BuildCommandKey(method string, op OperationKind, submitter string, handle int32, body []byte) string {
	sum := blake2b.Sum256(body)
	return method + ":" + string(op) + ":" + submitter + ":" +
		strconv.FormatInt(int64(handle), 10) + ":" + hex.EncodeToString(sum[:commandDigestSize])
}
