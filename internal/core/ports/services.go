package ports

import (
	"context"
	"time"

	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/internal/core/parser"
	"sovtoken-payments/internal/core/request"
	"sovtoken-payments/pkg/address"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// TokenService issues and checks bearer tokens naming a submitter DID.
type TokenService interface {
	Generate(submitterDID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	SubmitterDID string
}

// Wallet creates and lists the key pairs behind payment addresses. Signing
// stays inside the wallet; only verification keys leave it.
type Wallet interface {
	CreateKey(ctx context.Context, cfg domain.PaymentAddressConfig) (address.VerKey, error)
	ListKeys(ctx context.Context) ([]address.VerKey, error)
}

// ResultCache replays the result of an already-completed command.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached result or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// --- Service Ports (Business Logic) ---

// PaymentMethodService implements every operation of a payment method.
type PaymentMethodService interface {
	CreatePaymentAddress(ctx context.Context, config []byte) (string, error)
	ListPaymentAddresses(ctx context.Context) ([]string, error)

	BuildPaymentRequest(ctx context.Context, submitter string, inputs, outputs []byte) (request.Request, error)
	BuildMintRequest(ctx context.Context, submitter string, outputs, inputs []byte) (request.Request, error)
	// BuildSetFeesRequest takes the current ledger fee response, which the
	// merge policy requires and the replace policy ignores.
	BuildSetFeesRequest(ctx context.Context, submitter string, fees, current []byte) (request.Request, error)
	BuildGetFeesRequest(ctx context.Context, submitter string) (request.Request, error)
	BuildGetUTXORequest(ctx context.Context, submitter, paymentAddress string) (request.Request, error)

	ParsePaymentResponse(ctx context.Context, resp []byte) (parser.UTXOSet, error)
	ParseGetUTXOResponse(ctx context.Context, resp []byte) (parser.UTXOSet, error)
	ParseGetFeesResponse(ctx context.Context, resp []byte) (domain.Fees, error)
}
