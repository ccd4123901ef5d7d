package checkout_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/checkout"
	"storefront-bff/internal/models"
)

func addressServer(t *testing.T, addresses string, onSave func(models.Address)) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /addresses", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"addresses":` + addresses + `}`))
	})
	mux.HandleFunc("POST /addresses", func(w http.ResponseWriter, r *http.Request) {
		var saved models.Address
		require.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
		if onSave != nil {
			onSave(saved)
		}
		saved.ID = "a-new"
		body, _ := json.Marshal(saved)
		w.Write([]byte(`{"success":true,"addresses":[` + string(body) + `]}`))
	})
	mux.HandleFunc("DELETE /addresses/{addressId}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"addresses":[]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newBook(url string) *checkout.AddressBook {
	api := backend.NewClient(url, time.Second)
	return checkout.NewAddressBook(api, func() string { return "tok" })
}

func TestLoadAutoSelectsDefault(t *testing.T) {
	srv := addressServer(t, `[
	  {"_id":"a1","fullName":"Ava Sharma","phone":"9876543210","address":"12 Rose Lane","city":"Pune","state":"MH","pincode":"411001"},
	  {"_id":"a2","fullName":"Ava Sharma","phone":"9876543210","address":"4 Hill Rd","city":"Mumbai","state":"MH","pincode":"400050","isDefault":true}
	]`, nil)

	book := newBook(srv.URL)
	book.Load(context.Background())
	require.Equal(t, "a2", book.SelectedID())
	require.False(t, book.FormOpen())
	require.Equal(t, "4 Hill Rd", book.Shipping().Address)
}

func TestLoadWithNoAddressesOpensForm(t *testing.T) {
	srv := addressServer(t, `[]`, nil)
	book := newBook(srv.URL)
	book.Load(context.Background())
	require.Empty(t, book.SelectedID())
	require.True(t, book.FormOpen())
}

func TestFirstSavedAddressBecomesDefault(t *testing.T) {
	var saved models.Address
	srv := addressServer(t, `[]`, func(a models.Address) { saved = a })

	book := newBook(srv.URL)
	book.Load(context.Background())
	book.SetDraft(validAddress())
	require.NoError(t, book.SaveDraft(context.Background()))

	require.True(t, saved.IsDefault)
	require.Equal(t, "a-new", book.SelectedID())
	require.False(t, book.FormOpen())
}

func TestInvalidDraftNeverLeavesTheClient(t *testing.T) {
	calls := 0
	srv := addressServer(t, `[]`, func(models.Address) { calls++ })

	book := newBook(srv.URL)
	draft := validAddress()
	draft.Phone = "12345"
	book.SetDraft(draft)

	var valErr *checkout.ValidationError
	require.ErrorAs(t, book.SaveDraft(context.Background()), &valErr)
	require.Equal(t, 0, calls)
}

func TestDeletingSelectedWithNoneLeftReopensForm(t *testing.T) {
	srv := addressServer(t, `[
	  {"_id":"a1","fullName":"Ava Sharma","phone":"9876543210","address":"12 Rose Lane","city":"Pune","state":"MH","pincode":"411001","isDefault":true}
	]`, nil)

	book := newBook(srv.URL)
	book.Load(context.Background())
	require.Equal(t, "a1", book.SelectedID())

	require.NoError(t, book.Delete(context.Background(), "a1"))
	require.Empty(t, book.SelectedID())
	require.True(t, book.FormOpen())
}
