package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duit/internal/model"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, WithHTTPClient(srv.Client()))
}

func TestListTransactions(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/transactions/", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": 1, "type": "expense", "amount_cents": 45000, "date": "2025-08-29", "note": "Kopi", "category_id": 2, "account_id": null},
			{"id": 2, "type": "income", "amount_cents": 5000000, "date": "2025-08-25", "note": null, "category_id": null, "account_id": 1}
		]`))
	})

	got, err := client.ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.TypeExpense, got[0].Type)
	assert.Equal(t, int64(45000), got[0].AmountCents)
	require.NotNil(t, got[0].Note)
	assert.Equal(t, "Kopi", *got[0].Note)
	assert.Nil(t, got[0].AccountID)
	assert.Nil(t, got[1].Note)
}

func TestRequestErrorMessageIsFixed(t *testing.T) {
	tests := []struct {
		name string
		call func(*Client) error
		want string
	}{
		{
			name: "fetch accounts",
			call: func(c *Client) error {
				_, err := c.ListAccounts(context.Background())
				return err
			},
			want: "Failed to fetch accounts",
		},
		{
			name: "fetch categories",
			call: func(c *Client) error {
				_, err := c.ListCategories(context.Background())
				return err
			},
			want: "Failed to fetch categories",
		},
		{
			name: "add transaction",
			call: func(c *Client) error {
				_, err := c.CreateTransaction(context.Background(), TransactionPayload{
					Type: model.TypeExpense, AmountCents: 100, Date: "2025-08-29",
				})
				return err
			},
			want: "Failed to add transaction",
		},
		{
			name: "delete category",
			call: func(c *Client) error {
				_, err := c.DeleteCategory(context.Background(), 3)
				return err
			},
			want: "Failed to delete category",
		},
		{
			name: "account lookup by name",
			call: func(c *Client) error {
				_, err := c.GetAccountByName(context.Background(), "BCA")
				return err
			},
			want: "Account not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				// detail in the body must not leak into the message
				http.Error(w, `{"detail": "backend exploded"}`, http.StatusInternalServerError)
			})

			err := tt.call(client)

			require.Error(t, err)
			assert.EqualError(t, err, tt.want)

			var reqErr *RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
		})
	}
}

func TestMalformedSuccessBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>oops</html>`},
		{name: "wrong shape", body: `{"id": 1}`},
		{name: "missing required field", body: `[{"id": 1, "type": "expense", "date": "2025-08-29"}]`},
		{name: "negative amount", body: `[{"id": 1, "type": "expense", "amount_cents": -5, "date": "2025-08-29"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListTransactions(context.Background())

			var decErr *DecodeError
			require.ErrorAs(t, err, &decErr)
			assert.Equal(t, "transaction list", decErr.Resource)
			assert.Contains(t, err.Error(), "invalid transaction list response from server")
		})
	}
}

func TestCreateAccountNormalizesPayload(t *testing.T) {
	var received AccountPayload
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"id": 7, "type": "bank", "name": "BCA", "balance": 0, "icon": "🏦"}`))
	})

	got, err := client.CreateAccount(context.Background(), AccountPayload{Name: "BCA", Icon: "🏦"})

	require.NoError(t, err)
	assert.Equal(t, model.AccountTypeBank, received.Type, "omitted type defaults to bank")
	assert.Equal(t, int64(7), got.ID)
}

func TestCreateCategoryNormalizesPayload(t *testing.T) {
	var received CategoryPayload
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"id": 3, "name": "Belanja", "type": "expense", "icon": "🛒", "color": "amber"}`))
	})

	_, err := client.CreateCategory(context.Background(), CategoryPayload{Name: "Belanja", Icon: "🛒"})

	require.NoError(t, err)
	assert.Equal(t, model.TypeExpense, received.Type)
	assert.Equal(t, model.DefaultColor, received.Color)
}

func TestUpdateTransaction(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/transactions/12", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 12, "type": "income", "amount_cents": 250000, "date": "2025-08-20", "note": null, "category_id": null, "account_id": null}`))
	})

	got, err := client.UpdateTransaction(context.Background(), 12, TransactionPayload{
		Type: model.TypeIncome, AmountCents: 250_000, Date: "2025-08-20",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
	assert.Equal(t, model.TypeIncome, got.Type)
}

func TestDeleteReturnsConfirmation(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/accounts/4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	msg, err := client.DeleteAccount(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, "Account 4 successfully deleted", msg)
}

func TestGetAccountByNameEscapesPath(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/Dompet%20Utama", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id": 2, "type": "ewallet", "name": "Dompet Utama", "balance": 150000}`))
	})

	got, err := client.GetAccountByName(context.Background(), "Dompet Utama")

	require.NoError(t, err)
	assert.Equal(t, "Dompet Utama", got.Name)
}
