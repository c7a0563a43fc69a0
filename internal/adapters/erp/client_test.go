package erp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylianerp/onboarding-portal/internal/ports"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(Options{
		BaseURL:     srv.URL,
		FileBaseURL: "https://files.example.com",
		HTTPClient:  srv.Client(),
	})
	return client, srv
}

func TestLogin_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/candidatelogin", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, "TRK-1", body["tracking_number"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"candidate": map[string]any{
				"id":                 911115,
				"employee_fristname": "Ada",
				"company_id":         59,
			},
			"token": "bearer-token",
		})
	})

	res, err := client.Login(context.Background(), ports.LoginInput{
		Email:          "ada@example.com",
		TrackingNumber: "TRK-1",
	})
	require.NoError(t, err)
	require.NotNil(t, res.User)
	assert.Equal(t, "Ada", res.User.FirstName)
	assert.Equal(t, 59, res.User.Company())
	assert.Equal(t, "bearer-token", res.Token)
}

func TestLogin_FieldErrorsJoined(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "error",
			"errors": map[string][]string{
				"email":           {"The email field is required."},
				"tracking_number": {"The tracking number field is required."},
			},
		})
	})

	_, err := client.Login(context.Background(), ports.LoginInput{})
	require.Error(t, err)
	assert.Equal(t, "The email field is required., The tracking number field is required.", err.Error())
	assert.Equal(t, err.Error(), UserMessage(err))
}

func TestLogin_SingleFieldErrorSurfacedVerbatim(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "error",
			"errors": map[string][]string{"email": {"Invalid"}},
		})
	})

	_, err := client.Login(context.Background(), ports.LoginInput{})
	require.Error(t, err)
	assert.Equal(t, "Invalid", err.Error())
}

func TestLogin_ErrorStatusFallsBackToMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  "error",
			"message": "Account suspended",
		})
	})

	_, err := client.Login(context.Background(), ports.LoginInput{})
	require.Error(t, err)
	assert.Equal(t, "Account suspended", err.Error())
}

func TestLogin_ErrorStatusGenericFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "error"})
	})

	_, err := client.Login(context.Background(), ports.LoginInput{})
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}

func TestLogin_Non2xxWithoutStructuredError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Server exploded"})
	})

	_, err := client.Login(context.Background(), ports.LoginInput{})
	require.Error(t, err)
	assert.Equal(t, "Server exploded", err.Error())
}

func TestLogin_SuccessWithoutCandidateFails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "success"})
	})

	_, err := client.Login(context.Background(), ports.LoginInput{})
	require.Error(t, err)
	assert.Equal(t, "Login failed", err.Error())
}

func TestLogin_MalformedResponseIsGeneric(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})

	_, err := client.Login(context.Background(), ports.LoginInput{})
	require.Error(t, err)
	assert.Equal(t, "An unexpected error occurred", err.Error())
}

func TestFetchRoster_DataEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/fetchalleemployees/59", r.URL.Path)
		assert.Equal(t, "59", r.URL.Query().Get("company_id"))
		assert.Equal(t, "911115", r.URL.Query().Get("id"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": 1, "name": "Ada Lovelace"}},
		})
	})

	roster, err := client.FetchRoster(context.Background(), ports.RosterQuery{
		CompanyID:  59,
		EmployeeID: "911115",
	})
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Ada Lovelace", roster[0].Name)
}

func TestFetchRoster_EmployeesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"employees": []map[string]any{{"id": 2}, {"id": 3}},
		})
	})

	roster, err := client.FetchRoster(context.Background(), ports.RosterQuery{CompanyID: 59, EmployeeID: "1"})
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}

func TestFetchRoster_EmptyEnvelopes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	roster, err := client.FetchRoster(context.Background(), ports.RosterQuery{CompanyID: 59, EmployeeID: "1"})
	require.NoError(t, err)
	assert.NotNil(t, roster)
	assert.Empty(t, roster)
}

func TestFetchRoster_Non2xx(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.FetchRoster(context.Background(), ports.RosterQuery{CompanyID: 59, EmployeeID: "1"})
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch employees", err.Error())
}

func TestAcceptOffer_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acceptoffer", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "TRK-1", body["tracking_number"])
		assert.Equal(t, "ada@example.com", body["email"])
		assert.Equal(t, float64(59), body["company_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"employees": map[string]any{"id": 911115, "offer_accepted": true},
			"message":   "Offer accepted",
		})
	})

	updated, err := client.AcceptOffer(context.Background(), ports.AcceptOfferInput{
		TrackingNumber: "TRK-1",
		Email:          "ada@example.com",
		CompanyID:      59,
		Token:          "tkn",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 911115, updated.ID.Int())
}

func TestAcceptOffer_Non2xx(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{})
	})

	_, err := client.AcceptOffer(context.Background(), ports.AcceptOfferInput{})
	require.Error(t, err)
	assert.Equal(t, "Failed to accept offer", err.Error())
}

func TestUserMessage_UnknownErrorIsGeneric(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", UserMessage(errors.New("dial tcp: refused")))
	assert.Equal(t, "", UserMessage(nil))
}

func TestFileURL(t *testing.T) {
	client := NewClient(Options{FileBaseURL: "https://files.example.com/"})

	assert.Equal(t, "", client.FileURL(""))
	assert.Equal(t, "https://files.example.com/docs/offer.pdf", client.FileURL("/docs/offer.pdf"))
	assert.Equal(t, "https://files.example.com/docs/offer.pdf", client.FileURL("docs/offer.pdf"))
	assert.Equal(t, "https://cdn.example.com/x.pdf", client.FileURL("https://cdn.example.com/x.pdf"))
}
