// Package bridge connects payment-method operations to their callers. A
// Registry maps method names to their operation tables and a Dispatcher
// runs each call off the caller's goroutine, reporting its result once on
// a channel keyed by the caller's command handle.
package bridge

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"sovtoken-payments/pkg/apperror"
)

// Operations is the table of entry points a payment method exposes. Every
// operation returns its result serialized as JSON.
type Operations struct {
	CreatePaymentAddress func(ctx context.Context, config []byte) ([]byte, error)
	ListPaymentAddresses func(ctx context.Context) ([]byte, error)

	BuildPaymentRequest func(ctx context.Context, submitter string, inputs, outputs []byte) ([]byte, error)
	BuildMintRequest    func(ctx context.Context, submitter string, outputs, inputs []byte) ([]byte, error)
	BuildSetFeesRequest func(ctx context.Context, submitter string, fees, current []byte) ([]byte, error)
	BuildGetFeesRequest func(ctx context.Context, submitter string) ([]byte, error)
	BuildGetUTXORequest func(ctx context.Context, submitter, paymentAddress string) ([]byte, error)

	ParsePaymentResponse func(ctx context.Context, resp []byte) ([]byte, error)
	ParseGetUTXOResponse func(ctx context.Context, resp []byte) ([]byte, error)
	ParseGetFeesResponse func(ctx context.Context, resp []byte) ([]byte, error)
}

func (o Operations) missing() []string {
	var names []string
	check := func(name string, set bool) {
		if !set {
			names = append(names, name)
		}
	}
	check("CreatePaymentAddress", o.CreatePaymentAddress != nil)
	check("ListPaymentAddresses", o.ListPaymentAddresses != nil)
	check("BuildPaymentRequest", o.BuildPaymentRequest != nil)
	check("BuildMintRequest", o.BuildMintRequest != nil)
	check("BuildSetFeesRequest", o.BuildSetFeesRequest != nil)
	check("BuildGetFeesRequest", o.BuildGetFeesRequest != nil)
	check("BuildGetUTXORequest", o.BuildGetUTXORequest != nil)
	check("ParsePaymentResponse", o.ParsePaymentResponse != nil)
	check("ParseGetUTXOResponse", o.ParseGetUTXOResponse != nil)
	check("ParseGetFeesResponse", o.ParseGetFeesResponse != nil)
	return names
}

// Registry holds the payment methods known to the process.
type Registry struct {
	mu      sync.RWMutex
	methods map[string]Operations
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{methods: make(map[string]Operations)}
}

// Register adds a method. The name must be unused and every operation set.
func (r *Registry) Register(name string, ops Operations) error {
	if name == "" {
		return fmt.Errorf("payment method name is required")
	}
	if missing := ops.missing(); len(missing) > 0 {
		return fmt.Errorf("payment method %q is missing operations %v", name, missing)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.methods[name]; ok {
		return fmt.Errorf("payment method %q is already registered", name)
	}
	r.methods[name] = ops
	return nil
}

// Lookup returns the operations of a registered method.
func (r *Registry) Lookup(name string) (Operations, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ops, ok := r.methods[name]
	if !ok {
		return Operations{}, apperror.ErrUnknownMethod(name)
	}
	return ops, nil
}

// Names returns the registered method names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
