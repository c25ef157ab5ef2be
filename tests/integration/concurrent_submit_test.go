package integration

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Two submits racing on the same form: the row lock serializes them, the
// loser re-reads a SUBMITTED form and gets 409, and the ledger ends up
// with exactly one entry.
func TestConcurrentSubmit_OnlyOneWins(t *testing.T) {
	ownerToken := loginUser(t, "owner")
	janeToken := loginUser(t, "jane")

	form := assignForm(t, ownerToken, seededUserIDs["jane"], "oak-bend", "lot-01", "ASPHALT_SHINGLES")

	body := []byte(`{"form_data":{"shingle":"charcoal"}}`)
	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/api/v1/forms/"+form.FormID+"/submit", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+janeToken)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	wins, conflicts := 0, 0
	for _, code := range codes {
		switch code {
		case http.StatusOK:
			wins++
		case http.StatusConflict:
			conflicts++
		}
	}
	require.Equal(t, 1, wins, "codes: %v", codes)
	require.Equal(t, 1, conflicts, "codes: %v", codes)

	history := getHistory(t, janeToken, form.FormID)
	require.Len(t, history, 1)
	require.Equal(t, 1, history[0].SubmissionNumber)
}
