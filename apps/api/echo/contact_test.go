package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/charityevents/core"
	"github.com/trezcool/charityevents/core/contact"
	emailsvc "github.com/trezcool/charityevents/services/email"
)

func Test_contactApi_create(t *testing.T) {
	t.Run("a valid submission is forwarded to the inbox", func(t *testing.T) {
		app := setup(t)

		sub := contact.Submission{
			Name:    "Jesse Mwangi",
			Email:   "jesse@example.com",
			Message: "Could my team volunteer at the beach cleanup next month?",
		}
		req, rec := newRequest(http.MethodPost, "/api/contact", marchallObj(t, sub))
		app.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ContactResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Message)
		_, err := uuid.Parse(resp.Reference)
		assert.NoError(t, err)

		require.Len(t, emailsvc.SentMessages, 1)
		msg := emailsvc.SentMessages[0]
		assert.Equal(t, "contact@localhost", msg.To[0].Address)
		require.NotNil(t, msg.ReplyTo)
		assert.Equal(t, sub.Email, msg.ReplyTo.Address)
		assert.Equal(t, "Website inquiry [ref "+resp.Reference+"]", msg.Subject)
		assert.Contains(t, msg.Body, sub.Message)
	})

	t.Run("an invalid submission is rejected field by field", func(t *testing.T) {
		app := setup(t)

		sub := contact.Submission{Name: "Jesse Mwangi", Message: "too short"}
		tt := httpTest{
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, ErrorResponse{Error: errValidationFailed, Errors: []core.FieldError{
				{Field: "email", Error: "this field is required", Value: ""},
				{Field: "message", Error: "message must be at least 10 characters in length", Value: "too short"},
			}}),
		}
		req, rec := newRequest(http.MethodPost, "/api/contact", marchallObj(t, sub))
		app.ServeHTTP(rec, req)
		checkCodeAndData(t, tt, rec)

		assert.Empty(t, emailsvc.SentMessages)
	})
}
