package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
)

// AddressBook manages the saved shipping addresses during checkout plus the
// working form draft. Saving is persisted immediately, independent of order
// placement.
type AddressBook struct {
	api   *backend.Client
	token func() string

	mu         sync.Mutex
	addresses  []models.Address
	selectedID string
	draft      models.Address
	formOpen   bool
}

func NewAddressBook(api *backend.Client, token func() string) *AddressBook {
	return &AddressBook{
		api:   api,
		token: token,
		draft: models.Address{Country: "India"},
	}
}

// Load fetches the saved addresses, auto-selecting any flagged default. With
// no saved addresses (or a failed fetch) the entry form opens instead.
func (b *AddressBook) Load(ctx context.Context) {
	addresses, err := b.api.GetAddresses(ctx, b.token())

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		slog.Error("Failed to fetch addresses", "error", err)
		b.formOpen = true
		return
	}

	b.addresses = addresses
	for _, addr := range addresses {
		if addr.IsDefault {
			b.selectLocked(addr)
			return
		}
	}
	if len(addresses) == 0 {
		b.formOpen = true
	}
}

func (b *AddressBook) Select(addressID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, addr := range b.addresses {
		if addr.ID == addressID {
			b.selectLocked(addr)
			return nil
		}
	}
	return fmt.Errorf("unknown address %q", addressID)
}

func (b *AddressBook) selectLocked(addr models.Address) {
	b.selectedID = addr.ID
	b.draft = addr
	b.draft.Country = "India"
	b.formOpen = false
}

// SetDraft replaces the working form contents. Nothing is validated here;
// validation gates the wizard transition and SaveDraft.
func (b *AddressBook) SetDraft(addr models.Address) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draft = addr
	b.selectedID = ""
}

// SaveDraft validates and persists the form draft. The first saved address
// becomes the default. The server returns the whole book; the newest entry
// is selected.
func (b *AddressBook) SaveDraft(ctx context.Context) error {
	b.mu.Lock()
	draft := b.draft
	draft.IsDefault = len(b.addresses) == 0
	b.mu.Unlock()

	if err := ValidateShipping(draft); err != nil {
		return err
	}

	addresses, err := b.api.SaveAddress(ctx, b.token(), draft)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.addresses = addresses
	if len(addresses) > 0 {
		b.selectLocked(addresses[len(addresses)-1])
	}
	return nil
}

// Delete removes a saved address. When the selected one goes away, the new
// default gets selected, or the entry form re-opens if none remains.
func (b *AddressBook) Delete(ctx context.Context, addressID string) error {
	addresses, err := b.api.DeleteAddress(ctx, b.token(), addressID)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.addresses = addresses
	if b.selectedID != addressID {
		return nil
	}

	b.selectedID = ""
	for _, addr := range addresses {
		if addr.IsDefault {
			b.selectLocked(addr)
			return nil
		}
	}
	b.formOpen = true
	return nil
}

func (b *AddressBook) Addresses() []models.Address {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Address, len(b.addresses))
	copy(out, b.addresses)
	return out
}

// Shipping returns the current working address, selected or drafted.
func (b *AddressBook) Shipping() models.Address {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.draft
}

func (b *AddressBook) SelectedID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedID
}

func (b *AddressBook) FormOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.formOpen
}
