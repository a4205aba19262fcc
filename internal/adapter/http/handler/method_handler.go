package handler

import (
	"context"
	"encoding/json"
	"time"

	"sovtoken-payments/internal/adapter/http/dto"
	"sovtoken-payments/internal/adapter/http/middleware"
	"sovtoken-payments/internal/bridge"
	"sovtoken-payments/internal/core/domain"
	"sovtoken-payments/internal/core/ports"
	"sovtoken-payments/pkg/apperror"
	"sovtoken-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Command labels for the calls that do not build a ledger request.
const (
	opCreateAddress domain.OperationKind = "CREATE_ADDRESS"
	opListAddresses domain.OperationKind = "LIST_ADDRESSES"
	opParsePayment  domain.OperationKind = "PARSE_PAY"
	opParseGetUTXO  domain.OperationKind = "PARSE_GET_UTXO"
	opParseGetFees  domain.OperationKind = "PARSE_GET_FEES"
)

type call func(ctx context.Context, ops bridge.Operations) ([]byte, error)

// MethodHandler serves payment method operations. Each call is looked up
// in the registry, run on the dispatcher and, when the caller supplied a
// command handle, remembered so a retry returns the same result.
type MethodHandler struct {
	registry   *bridge.Registry
	dispatcher *bridge.Dispatcher
	cache      ports.ResultCache
	resultTTL  time.Duration
	log        zerolog.Logger
}

// NewMethodHandler creates a MethodHandler. cache may be nil.
func NewMethodHandler(
	registry *bridge.Registry,
	dispatcher *bridge.Dispatcher,
	cache ports.ResultCache,
	resultTTL time.Duration,
	log zerolog.Logger,
) *MethodHandler {
	return &MethodHandler{
		registry:   registry,
		dispatcher: dispatcher,
		cache:      cache,
		resultTTL:  resultTTL,
		log:        log,
	}
}

// ListMethods handles GET /api/v1/methods.
func (h *MethodHandler) ListMethods(c *gin.Context) {
	response.OK(c, dto.MethodListResponse{Methods: h.registry.Names()})
}

// CreatePaymentAddress handles POST /api/v1/methods/:method/addresses.
func (h *MethodHandler) CreatePaymentAddress(c *gin.Context) {
	var req dto.CreateAddressRequest
	if !bindOptional(c, &req) {
		return
	}
	h.run(c, opCreateAddress, req, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.CreatePaymentAddress(ctx, req.Config)
	})
}

// ListPaymentAddresses handles GET /api/v1/methods/:method/addresses.
func (h *MethodHandler) ListPaymentAddresses(c *gin.Context) {
	h.run(c, opListAddresses, nil, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.ListPaymentAddresses(ctx)
	})
}

// BuildPaymentRequest handles POST /api/v1/methods/:method/requests/payment.
func (h *MethodHandler) BuildPaymentRequest(c *gin.Context) {
	var req dto.PaymentRequest
	if !bind(c, &req) {
		return
	}
	submitter := middleware.Submitter(c)
	h.run(c, domain.OperationPay, req, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.BuildPaymentRequest(ctx, submitter, req.Inputs, req.Outputs)
	})
}

// BuildMintRequest handles POST /api/v1/methods/:method/requests/mint.
func (h *MethodHandler) BuildMintRequest(c *gin.Context) {
	var req dto.MintRequest
	if !bind(c, &req) {
		return
	}
	submitter := middleware.Submitter(c)
	h.run(c, domain.OperationMint, req, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.BuildMintRequest(ctx, submitter, req.Outputs, req.Inputs)
	})
}

// BuildSetFeesRequest handles POST /api/v1/methods/:method/requests/set-fees.
func (h *MethodHandler) BuildSetFeesRequest(c *gin.Context) {
	var req dto.SetFeesRequest
	if !bind(c, &req) {
		return
	}
	submitter := middleware.Submitter(c)
	h.run(c, domain.OperationSetFees, req, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.BuildSetFeesRequest(ctx, submitter, req.Fees, req.Current)
	})
}

// BuildGetFeesRequest handles POST /api/v1/methods/:method/requests/get-fees.
func (h *MethodHandler) BuildGetFeesRequest(c *gin.Context) {
	submitter := middleware.Submitter(c)
	h.run(c, domain.OperationGetFees, nil, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.BuildGetFeesRequest(ctx, submitter)
	})
}

// BuildGetUTXORequest handles POST /api/v1/methods/:method/requests/get-utxo.
func (h *MethodHandler) BuildGetUTXORequest(c *gin.Context) {
	var req dto.GetUTXORequest
	if !bind(c, &req) {
		return
	}
	submitter := middleware.Submitter(c)
	h.run(c, domain.OperationGetUTXO, req, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.BuildGetUTXORequest(ctx, submitter, req.PaymentAddress)
	})
}

// ParsePaymentResponse handles POST /api/v1/methods/:method/responses/payment.
func (h *MethodHandler) ParsePaymentResponse(c *gin.Context) {
	var req dto.LedgerResponse
	if !bind(c, &req) {
		return
	}
	h.run(c, opParsePayment, req, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.ParsePaymentResponse(ctx, req.Response)
	})
}

// ParseGetUTXOResponse handles POST /api/v1/methods/:method/responses/get-utxo.
func (h *MethodHandler) ParseGetUTXOResponse(c *gin.Context) {
	var req dto.LedgerResponse
	if !bind(c, &req) {
		return
	}
	h.run(c, opParseGetUTXO, req, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.ParseGetUTXOResponse(ctx, req.Response)
	})
}

// ParseGetFeesResponse handles POST /api/v1/methods/:method/responses/get-fees.
func (h *MethodHandler) ParseGetFeesResponse(c *gin.Context) {
	var req dto.LedgerResponse
	if !bind(c, &req) {
		return
	}
	h.run(c, opParseGetFees, req, func(ctx context.Context, ops bridge.Operations) ([]byte, error) {
		return ops.ParseGetFeesResponse(ctx, req.Response)
	})
}

// run executes fn for op. body is the bound request, nil for calls without
// one; it is part of the replay key.
func (h *MethodHandler) run(c *gin.Context, op domain.OperationKind, body any, fn call) {
	var uri dto.MethodURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.ErrUnknownMethod(c.Param("method")))
		return
	}
	ops, err := h.registry.Lookup(uri.Method)
	if err != nil {
		response.Error(c, err)
		return
	}

	ctx := c.Request.Context()
	handle, replayable := middleware.Handle(c)
	replayable = replayable && h.cache != nil

	var key string
	if replayable {
		raw, err := commandBody(body)
		if err != nil {
			response.Error(c, apperror.InternalError(err))
			return
		}
		key = domain.BuildCommandKey(uri.Method, op, middleware.Submitter(c), handle, raw)
		cached, err := h.cache.Get(ctx, key)
		if err != nil {
			h.log.Warn().Err(err).Str("key", key).Msg("result cache read failed, running command")
		}
		if cached != nil {
			response.OK(c, dto.CommandResult{CommandHandle: handle, Result: cached})
			return
		}
	}

	results, err := h.dispatcher.Submit(ctx, handle, func(ctx context.Context) ([]byte, error) {
		return fn(ctx, ops)
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	var res bridge.Result
	select {
	case res = <-results:
	case <-ctx.Done():
		h.log.Debug().Int32("command_handle", handle).Str("operation", string(op)).Msg("caller left before result")
		return
	}
	if res.Err != nil {
		response.Error(c, res.Err)
		return
	}

	if replayable {
		if err := h.cache.Set(ctx, key, res.Payload, h.resultTTL); err != nil {
			h.log.Warn().Err(err).Str("key", key).Msg("result cache write failed")
		}
	}

	response.OK(c, dto.CommandResult{CommandHandle: res.Handle, Result: res.Payload})
}

func commandBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	return json.Marshal(body)
}

func bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		response.Error(c, apperror.MalformedConfig("invalid request body", err))
		return false
	}
	return true
}

// bindOptional accepts an empty body.
func bindOptional(c *gin.Context, v any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	return bind(c, v)
}
