package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guestlist/shared/constant"
	"guestlist/shared/failure"
	"guestlist/transport/http/response"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantError  string
		wantFields []string
	}{
		{
			name:       "validation failure",
			err:        failure.Validation("partySize must be at most 2", "partySize"),
			wantCode:   http.StatusBadRequest,
			wantError:  "partySize must be at most 2",
			wantFields: []string{"partySize"},
		},
		{
			name:      "not found",
			err:       failure.NotFound("guest response not found"),
			wantCode:  http.StatusNotFound,
			wantError: "guest response not found",
		},
		{
			name:      "generation failure",
			err:       failure.Generation("failed to generate invitation"),
			wantCode:  http.StatusBadGateway,
			wantError: "failed to generate invitation",
		},
		{
			name:      "store failure is hidden",
			err:       errors.New("pq: connection refused"),
			wantCode:  http.StatusInternalServerError,
			wantError: "something went wrong, please try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))

			var body struct {
				Error  string   `json:"error"`
				Fields []string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

			assert.Equal(t, tt.wantError, body.Error)
			assert.Equal(t, tt.wantFields, body.Fields)
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithJSON(recorder, http.StatusCreated, map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"id":7}}`, recorder.Body.String())
}

func TestWithFile(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithFile(recorder, constant.ContentTypeCSV, "guests.csv", []byte("ID\n1\n"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, constant.ContentTypeCSV, recorder.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, `attachment; filename="guests.csv"`, recorder.Header().Get(constant.RequestHeaderContentDisposition))
	assert.Equal(t, "ID\n1\n", recorder.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()
	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.Contains(t, recorder.Body.String(), constant.ResponseErrorRequestLimitExceeded)
}
