package validator_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/tefway/ferramentas/internal/engine"
	"github.com/tefway/ferramentas/validator"
)

func newRouter(policy *engine.Policy) *chi.Mux {
	router := chi.NewRouter()
	api := validator.NewAPI(engine.New(policy), nil)
	api.AppendRoutes(router)
	return router
}

func postJSON(t *testing.T, router http.Handler, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/validate-logic-number", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	resp := map[string]string{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1, "exactly one outcome tag expected")
	return w, resp
}

func TestValidateLogicNumber(t *testing.T) {
	router := newRouter(nil)

	t.Run("vero success", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":"vero","logico":"041135700123300","codigo":"00411357000"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "vero processed with logic number 041135700123300 and code 00411357000", resp["Success"])
	})

	t.Run("bin padded success", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":"bin","logico":"123456","codigo":"TF12345678"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "bin processed with logic number 000000000123456 and code TF12345678", resp["Success"])
	})

	t.Run("pattern mismatch answers 400", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":"stone","logico":"short","codigo":"123"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "STONE does not match with the pattern", resp["Failure"])
	})

	t.Run("missing field answers 400", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":"rede"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "Logical number not provided.", resp["Error"])
	})

	t.Run("unsupported acquirer answers 400", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":"foobar","logico":"123456789012345","codigo":"1"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "unsupported adquirence type", resp["Error"])
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, resp["Error"], "invalid parameter")
	})

	t.Run("uppercase acquirer resolves", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":"VERO","logico":"041135700123300","codigo":"00411357000"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, resp["Success"], "vero")
	})
}

func TestValidateLogicNumber_LegacyPreset(t *testing.T) {
	router := newRouter(engine.Legacy())

	t.Run("vero not yet supported answers 200", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":"vero","logico":"041135700123300","codigo":"00411357000"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "vero is not yet supported", resp["Info"])
	})

	t.Run("cielo takes the longer shape", func(t *testing.T) {
		w, resp := postJSON(t, router, `{"adquirente":"cielo","logico":"412345678","codigo":"1"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "cielo processed with logic number 412345678", resp["Success"])
	})
}
