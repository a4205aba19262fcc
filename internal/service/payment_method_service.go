package service

import (
	"context"
	"encoding/json"
	"time"

	"sovtoken-payments/internal/bridge"
	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/internal/core/parser"
	"sovtoken-payments/internal/core/payload"
	"sovtoken-payments/internal/core/ports"
	"sovtoken-payments/internal/core/request"
	"sovtoken-payments/pkg/address"
	"sovtoken-payments/pkg/apperror"
	"sovtoken-payments/pkg/metrics"

	"github.com/rs/zerolog"
)

// Operation labels for calls that do not build a ledger request.
const (
	opCreateAddress = "CREATE_ADDRESS"
	opListAddresses = "LIST_ADDRESSES"
	opParsePayment  = "PARSE_PAY"
	opParseGetUTXO  = "PARSE_GET_UTXO"
	opParseGetFees  = "PARSE_GET_FEES"
)

// PaymentMethodOptions configures one payment method instance.
type PaymentMethodOptions struct {
	Method          string
	ProtocolVersion int
	Policy          payload.Policy
	FeePolicy       domain.FeeUpdatePolicy
}

// PaymentMethodServiceImpl implements ports.PaymentMethodService.
type PaymentMethodServiceImpl struct {
	method    string
	parser    *payload.Parser
	builder   *request.Builder
	feePolicy domain.FeeUpdatePolicy
	wallet    ports.Wallet
	metrics   metrics.Recorder
	log       zerolog.Logger
}

// NewPaymentMethodService creates a new PaymentMethodServiceImpl.
func NewPaymentMethodService(
	opts PaymentMethodOptions,
	wallet ports.Wallet,
	rec metrics.Recorder,
	log zerolog.Logger,
) *PaymentMethodServiceImpl {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	if opts.FeePolicy == "" {
		opts.FeePolicy = domain.FeeUpdateReplace
	}
	return &PaymentMethodServiceImpl{
		method:    opts.Method,
		parser:    payload.NewParser(opts.Policy),
		builder:   request.NewBuilder(opts.ProtocolVersion),
		feePolicy: opts.FeePolicy,
		wallet:    wallet,
		metrics:   rec,
		log:       log.With().Str("method", opts.Method).Logger(),
	}
}

// CreatePaymentAddress creates a wallet key and returns its payment address.
func (s *PaymentMethodServiceImpl) CreatePaymentAddress(ctx context.Context, config []byte) (addr string, err error) {
	defer s.observe(opCreateAddress, time.Now(), &err)

	cfg, err := s.parser.ParsePaymentAddressConfig(config)
	if err != nil {
		return "", err
	}
	key, err := s.wallet.CreateKey(ctx, cfg)
	if err != nil {
		return "", err
	}
	return address.Create(key), nil
}

// ListPaymentAddresses returns the addresses of every wallet key.
func (s *PaymentMethodServiceImpl) ListPaymentAddresses(ctx context.Context) (addrs []string, err error) {
	defer s.observe(opListAddresses, time.Now(), &err)

	keys, err := s.wallet.ListKeys(ctx)
	if err != nil {
		return nil, err
	}
	addrs = make([]string, 0, len(keys))
	for _, k := range keys {
		addrs = append(addrs, address.Create(k))
	}
	return addrs, nil
}

// BuildPaymentRequest validates a transfer and builds its PAY request.
func (s *PaymentMethodServiceImpl) BuildPaymentRequest(ctx context.Context, submitter string, inputs, outputs []byte) (req request.Request, err error) {
	defer s.observe(string(domain.OperationPay), time.Now(), &err)

	did, err := s.parser.ParseSubmitter(submitter)
	if err != nil {
		return request.Request{}, err
	}
	cfg, err := s.parser.ParsePaymentConfig(inputs, outputs)
	if err != nil {
		return request.Request{}, err
	}
	return s.builder.Payment(cfg, did), nil
}

// BuildMintRequest validates an issuance and builds its MINT request.
func (s *PaymentMethodServiceImpl) BuildMintRequest(ctx context.Context, submitter string, outputs, inputs []byte) (req request.Request, err error) {
	defer s.observe(string(domain.OperationMint), time.Now(), &err)

	did, err := s.parser.ParseSubmitter(submitter)
	if err != nil {
		return request.Request{}, err
	}
	cfg, err := s.parser.ParseMintConfig(outputs, inputs)
	if err != nil {
		return request.Request{}, err
	}
	return s.builder.Mint(cfg, did), nil
}

// BuildSetFeesRequest validates a fee update and builds its SET_FEES
// request. Under the merge policy current must hold the ledger's GET_FEES
// response; the replace policy ignores it.
func (s *PaymentMethodServiceImpl) BuildSetFeesRequest(ctx context.Context, submitter string, fees, current []byte) (req request.Request, err error) {
	defer s.observe(string(domain.OperationSetFees), time.Now(), &err)

	did, err := s.parser.ParseSubmitter(submitter)
	if err != nil {
		return request.Request{}, err
	}
	cfg, err := s.parser.ParseFees(fees)
	if err != nil {
		return request.Request{}, err
	}

	var existing domain.Fees
	if s.feePolicy == domain.FeeUpdateMerge {
		if len(current) == 0 {
			return request.Request{}, apperror.MalformedConfig("merge fee policy requires the current fee schedule", nil)
		}
		if existing, err = parser.Fees(current); err != nil {
			return request.Request{}, err
		}
	}

	cfg.Fees = s.feePolicy.Apply(existing, cfg.Fees)
	return s.builder.SetFees(cfg, did), nil
}

// BuildGetFeesRequest builds a fee schedule query.
func (s *PaymentMethodServiceImpl) BuildGetFeesRequest(ctx context.Context, submitter string) (req request.Request, err error) {
	defer s.observe(string(domain.OperationGetFees), time.Now(), &err)

	did, err := s.parser.ParseSubmitter(submitter)
	if err != nil {
		return request.Request{}, err
	}
	return s.builder.GetFees(did), nil
}

// BuildGetUTXORequest builds a query for the unspent outputs of one address.
func (s *PaymentMethodServiceImpl) BuildGetUTXORequest(ctx context.Context, submitter, paymentAddress string) (req request.Request, err error) {
	defer s.observe(string(domain.OperationGetUTXO), time.Now(), &err)

	did, err := s.parser.ParseSubmitter(submitter)
	if err != nil {
		return request.Request{}, err
	}
	addr, err := s.parser.ParsePaymentAddress(paymentAddress)
	if err != nil {
		return request.Request{}, err
	}
	return s.builder.GetUTXO(addr, did), nil
}

// ParsePaymentResponse extracts the outputs a PAY or MINT reply created.
func (s *PaymentMethodServiceImpl) ParsePaymentResponse(ctx context.Context, resp []byte) (set parser.UTXOSet, err error) {
	defer s.observe(opParsePayment, time.Now(), &err)
	return parser.UTXOs(resp)
}

// ParseGetUTXOResponse extracts the unspent outputs of a GET_UTXO reply.
func (s *PaymentMethodServiceImpl) ParseGetUTXOResponse(ctx context.Context, resp []byte) (set parser.UTXOSet, err error) {
	defer s.observe(opParseGetUTXO, time.Now(), &err)
	return parser.UTXOs(resp)
}

// ParseGetFeesResponse extracts the fee schedule of a GET_FEES reply.
func (s *PaymentMethodServiceImpl) ParseGetFeesResponse(ctx context.Context, resp []byte) (fees domain.Fees, err error) {
	defer s.observe(opParseGetFees, time.Now(), &err)
	return parser.Fees(resp)
}

func (s *PaymentMethodServiceImpl) observe(op string, start time.Time, errp *error) {
	err := *errp
	labels := map[string]string{"method": s.method, "outcome": metrics.Outcome(err)}
	s.metrics.IncCounter(op, labels)
	s.metrics.ObserveLatency(op, time.Since(start), labels)

	if err != nil {
		ev := s.log.Warn()
		if apperror.HasCode(err, apperror.CodeInternal) || apperror.HasCode(err, apperror.CodeEncryption) {
			ev = s.log.Error()
		}
		ev.Err(err).Str("operation", op).Str("error_code", apperror.CodeOf(err)).Msg("payment operation failed")
		return
	}
	s.log.Debug().Str("operation", op).Dur("latency", time.Since(start)).Msg("payment operation completed")
}

// Operations exposes the service as a bridge operation table. Built
// requests are returned as their canonical bytes.
func (s *PaymentMethodServiceImpl) Operations() bridge.Operations {
	return bridge.Operations{
		CreatePaymentAddress: func(ctx context.Context, config []byte) ([]byte, error) {
			return marshal(s.CreatePaymentAddress(ctx, config))
		},
		ListPaymentAddresses: func(ctx context.Context) ([]byte, error) {
			return marshal(s.ListPaymentAddresses(ctx))
		},
		BuildPaymentRequest: func(ctx context.Context, submitter string, inputs, outputs []byte) ([]byte, error) {
			return requestBytes(s.BuildPaymentRequest(ctx, submitter, inputs, outputs))
		},
		BuildMintRequest: func(ctx context.Context, submitter string, outputs, inputs []byte) ([]byte, error) {
			return requestBytes(s.BuildMintRequest(ctx, submitter, outputs, inputs))
		},
		BuildSetFeesRequest: func(ctx context.Context, submitter string, fees, current []byte) ([]byte, error) {
			return requestBytes(s.BuildSetFeesRequest(ctx, submitter, fees, current))
		},
		BuildGetFeesRequest: func(ctx context.Context, submitter string) ([]byte, error) {
			return requestBytes(s.BuildGetFeesRequest(ctx, submitter))
		},
		BuildGetUTXORequest: func(ctx context.Context, submitter, paymentAddress string) ([]byte, error) {
			return requestBytes(s.BuildGetUTXORequest(ctx, submitter, paymentAddress))
		},
		ParsePaymentResponse: func(ctx context.Context, resp []byte) ([]byte, error) {
			return marshal(s.ParsePaymentResponse(ctx, resp))
		},
		ParseGetUTXOResponse: func(ctx context.Context, resp []byte) ([]byte, error) {
			return marshal(s.ParseGetUTXOResponse(ctx, resp))
		},
		ParseGetFeesResponse: func(ctx context.Context, resp []byte) ([]byte, error) {
			return marshal(s.ParseGetFeesResponse(ctx, resp))
		},
	}
}

func requestBytes(req request.Request, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	return req.Bytes(), nil
}

func marshal[T any](v T, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return out, nil
}
