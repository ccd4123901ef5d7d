// Package checkout implements the three-step order placement wizard:
// shipping address, payment method, confirmation. Transitions only move
// forward and only on success; a failed placement leaves the wizard (and the
// order's pending state) exactly where it was.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
	"storefront-bff/internal/store"
)

type Step int

const (
	StepShipping Step = iota + 1
	StepPayment
	StepConfirmation
)

type PaymentMethod string

const (
	PayOnline PaymentMethod = "razorpay"
	PayCOD    PaymentMethod = "cod"
)

var (
	ErrCartEmpty     = errors.New("cart is empty")
	ErrWrongStep     = errors.New("operation not allowed in current step")
	ErrPaymentFailed = errors.New("payment failed")
)

type Wizard struct {
	api     *backend.Client
	auth    *store.AuthStore
	cart    *store.CartStore
	gateway PaymentGateway
	keyID   string

	Book *AddressBook

	mu      sync.Mutex
	step    Step
	method  PaymentMethod
	orderID string
}

func NewWizard(api *backend.Client, auth *store.AuthStore, cart *store.CartStore, gateway PaymentGateway, keyID string) *Wizard {
	return &Wizard{
		api:     api,
		auth:    auth,
		cart:    cart,
		gateway: gateway,
		keyID:   keyID,
		Book:    NewAddressBook(api, auth.Token),
		step:    StepShipping,
		method:  PayOnline,
	}
}

// Begin guards entry into checkout: a session and a non-empty cart are
// required, then the wizard resets for a fresh run and the address book
// loads. A cart not yet mirrored locally is fetched here rather than
// mistaken for an empty one.
func (w *Wizard) Begin(ctx context.Context) error {
	if !w.auth.IsAuthenticated() {
		return store.ErrNotAuthenticated
	}
	if w.cart.Cart() == nil {
		if err := w.cart.Fetch(ctx); err != nil {
			return err
		}
	}
	if w.cart.Cart().IsEmpty() {
		return ErrCartEmpty
	}
	w.mu.Lock()
	w.step = StepShipping
	w.method = PayOnline
	w.orderID = ""
	w.mu.Unlock()
	w.Book.Load(ctx)
	return nil
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) OrderID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.orderID
}

// ContinueToPayment validates the shipping form and, only then, advances
// 1→2. A validation failure blocks the transition with no network call.
func (w *Wizard) ContinueToPayment() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepShipping {
		return ErrWrongStep
	}
	if err := ValidateShipping(w.Book.Shipping()); err != nil {
		return err
	}
	w.step = StepPayment
	return nil
}

func (w *Wizard) SelectMethod(m PaymentMethod) error {
	if m != PayOnline && m != PayCOD {
		return fmt.Errorf("unknown payment method %q", m)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepPayment {
		return ErrWrongStep
	}
	w.method = m
	return nil
}

func (w *Wizard) Method() PaymentMethod {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.method
}

// Subtotal recomputes the summary total from the live cart items. Display
// convenience only; the server's totals stay authoritative everywhere else.
// Assumes the cart does not change mid-checkout.
func (w *Wizard) Subtotal() float64 {
	cart := w.cart.Cart()
	if cart == nil {
		return 0
	}
	var total float64
	for _, item := range cart.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// PlaceOrder submits the order exactly once and runs the payment branch.
// COD: order stays pending, cart cleared, straight to confirmation. Online:
// gateway overlay → server-side signature verification → cart cleared →
// confirmation; any failure along the way keeps the wizard on the payment
// step with the order left pending and unpaid, no retry, no cancellation.
func (w *Wizard) PlaceOrder(ctx context.Context) error {
	w.mu.Lock()
	if w.step != StepPayment {
		w.mu.Unlock()
		return ErrWrongStep
	}
	method := w.method
	w.mu.Unlock()

	shipping := w.Book.Shipping()
	if err := ValidateShipping(shipping); err != nil {
		w.mu.Lock()
		w.step = StepShipping
		w.mu.Unlock()
		return err
	}

	cart := w.cart.Cart()
	if cart.IsEmpty() {
		return ErrCartEmpty
	}

	subtotal := w.Subtotal()
	req := backend.CreateOrderRequest{
		Items:           freezeItems(cart.Items),
		ShippingAddress: shipping,
		PaymentMethod:   string(method),
		Subtotal:        subtotal,
		ShippingCharges: 0,
		Tax:             0,
		TotalAmount:     subtotal,
	}

	resp, err := w.api.CreateOrder(ctx, w.auth.Token(), req)
	if err != nil {
		return err
	}

	if method == PayCOD {
		return w.confirm(ctx, resp.Order.ID)
	}

	if resp.Intent == nil {
		return fmt.Errorf("backend returned no payment intent for online order")
	}
	receipt, err := w.gateway.Open(ctx, PaymentRequest{
		Intent:      *resp.Intent,
		KeyID:       w.keyID,
		Description: "Purchase from Creative Amour",
		Prefill:     Prefill{Name: shipping.FullName, Contact: shipping.Phone},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	verify := backend.VerifyPaymentRequest{
		OrderID:           resp.Order.ID,
		ProviderOrderID:   receipt.ProviderOrderID,
		ProviderPaymentID: receipt.ProviderPaymentID,
		ProviderSignature: receipt.ProviderSignature,
	}
	if err := w.api.VerifyPayment(ctx, w.auth.Token(), verify); err != nil {
		return fmt.Errorf("payment verification failed: %w", err)
	}

	return w.confirm(ctx, resp.Order.ID)
}

// freezeItems snapshots cart lines into order lines: name, price and image
// captured now, decoupled from the live product records.
func freezeItems(items []models.CartItem) []models.OrderItem {
	frozen := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		frozen = append(frozen, models.OrderItem{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Image:     item.Product.FirstImageURL(),
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}
	return frozen
}

// confirm advances to the confirmation step before touching the cart: the
// order already exists server-side, so a failed cart clear must not reopen
// the payment step and invite a duplicate placement.
func (w *Wizard) confirm(ctx context.Context, orderID string) error {
	w.mu.Lock()
	w.orderID = orderID
	w.step = StepConfirmation
	w.mu.Unlock()

	if err := w.cart.Clear(ctx); err != nil {
		slog.Warn("Cart clear failed after order placement", "order_id", orderID, "error", err)
	}
	return nil
}
