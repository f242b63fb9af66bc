package commands

import (
	"context"

	"tourbook/internal/domain/cart"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/queries"
)

type CartCommands interface {
	Get(ctx context.Context, key string) (*queries.CartView, error)
	RemoveItem(ctx context.Context, key, reference string) (*queries.CartView, error)
	Clear(ctx context.Context, key string) error
	UpdateParticipants(ctx context.Context, key, reference string, kind cart.ParticipantKind, delta int) (*queries.CartView, error)
	// PreviewPromo prices the cart with a checkout code applied to the
	// aggregate subtotal. Nothing is persisted; entries stay untouched.
	PreviewPromo(ctx context.Context, key, code string) (*queries.CartView, error)
}

type cartCommandsImpl struct {
	store cart.Store
}

func NewCartCommands(store cart.Store) CartCommands {
	return &cartCommandsImpl{store: store}
}

func (c *cartCommandsImpl) Get(ctx context.Context, key string) (*queries.CartView, error) {
	items, err := c.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	return cartView(cart.NewLedger(items), nil), nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, key, reference string) (*queries.CartView, error) {
	items, err := c.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	ledger := cart.NewLedger(items)
	if !ledger.Remove(reference) {
		return nil, errs.ErrCartItemNotFound
	}

	if err := c.store.Save(ctx, key, ledger.Items()); err != nil {
		return nil, err
	}
	return cartView(ledger, nil), nil
}

func (c *cartCommandsImpl) Clear(ctx context.Context, key string) error {
	return c.store.Clear(ctx, key)
}

func (c *cartCommandsImpl) UpdateParticipants(ctx context.Context, key, reference string, kind cart.ParticipantKind, delta int) (*queries.CartView, error) {
	items, err := c.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	ledger := cart.NewLedger(items)
	if _, err := ledger.UpdateParticipants(reference, kind, delta); err != nil {
		return nil, err
	}

	if err := c.store.Save(ctx, key, ledger.Items()); err != nil {
		return nil, err
	}
	return cartView(ledger, nil), nil
}

func (c *cartCommandsImpl) PreviewPromo(ctx context.Context, key, code string) (*queries.CartView, error) {
	items, err := c.store.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	promo, ok := cart.ResolvePromo(code)
	if !ok {
		return nil, errs.ErrUnknownPromoCode
	}
	return cartView(cart.NewLedger(items), &promo), nil
}

func cartView(ledger *cart.Ledger, promo *cart.Promo) *queries.CartView {
	items := ledger.Items()
	if items == nil {
		items = []cart.Booking{}
	}

	subtotal := ledger.Subtotal()
	view := &queries.CartView{
		Items:    items,
		Subtotal: subtotal,
		Total:    subtotal,
	}
	if promo != nil {
		total := promo.Apply(subtotal)
		view.PromoCode = &promo.Code
		view.Discount = subtotal - total
		view.Total = total
	}
	return view
}
