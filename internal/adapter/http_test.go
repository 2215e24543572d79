// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-block-calendar/internal/config"
	"github.com/MKhiriev/go-block-calendar/internal/fakeapi"
	"github.com/MKhiriev/go-block-calendar/internal/logger"
	"github.com/MKhiriev/go-block-calendar/models"
)

// newTestAdapter creates an adapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL string) BlocksAdapter {
	t.Helper()
	a, err := NewHTTPBlocksAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func staticServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://api.example.com/prod/", want: "http://api.example.com/prod"},
		{raw: "  https://api.example.com  ", want: "https://api.example.com"},
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "file:///tmp/index.html", want: "file:///tmp/index.html"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Send ────────────────────────────────────────────────────────────────────

func TestSend_TrailingSlashStripped(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"ok":true,"blocks":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/")
	res, err := a.List(context.Background(), "u1", "2024-05-01", Throwing)

	require.NoError(t, err)
	assert.Equal(t, "/blocks/list", gotPath)
	assert.Equal(t, srv.URL+"/blocks/list", res.URL)
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestSend_TolerantParsing(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantParsed bool
	}{
		{name: "empty body", body: "", wantParsed: false},
		{name: "html error page", body: "<html>bad gateway</html>", wantParsed: false},
		{name: "json null", body: "null", wantParsed: false},
		{name: "json object", body: `{"ok":true,"blocks":[]}`, wantParsed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := staticServer(t, http.StatusOK, tt.body)
			a := newTestAdapter(t, srv.URL)

			res, err := a.Send(context.Background(), OpList, models.ListRequest{UserID: "u1", Date: "2024-05-01"}, Throwing)

			require.NoError(t, err)
			assert.Equal(t, tt.body, res.RawBody)
			assert.Equal(t, tt.wantParsed, res.Parsed != nil)
		})
	}
}

func TestParseBody_FieldsDecodeIndependently(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantNil     bool
		wantFailed  bool
		wantMessage string
		wantError   string
		wantBlocks  []string
	}{
		{name: "top-level array", body: `[1,2]`, wantNil: true},
		{name: "numeric message", body: `{"ok":true,"message":42,"blocks":[{"blockId":"a"}]}`, wantMessage: "42", wantBlocks: []string{"a"}},
		{name: "odd extra field", body: `{"ok":true,"extra":{"x":[1]},"blocks":[{"blockId":"a"},{"blockId":"b"}]}`, wantBlocks: []string{"a", "b"}},
		{name: "bad block skipped", body: `{"ok":true,"blocks":[{"blockId":"a"},{"blockId":7},"x"]}`, wantBlocks: []string{"a"}},
		{name: "string ok ignored", body: `{"ok":"false","error":"nope"}`, wantError: "nope"},
		{name: "structured error", body: `{"ok":false,"error":{"code":"OVERLAP"}}`, wantFailed: true, wantError: `{"code":"OVERLAP"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBody(tt.body)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantFailed, got.Failed())
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantError, got.Error)

			ids := make([]string, 0, len(got.Blocks))
			for _, b := range got.Blocks {
				ids = append(ids, b.BlockID)
			}
			if tt.wantBlocks == nil {
				tt.wantBlocks = []string{}
			}
			assert.Equal(t, tt.wantBlocks, ids)
		})
	}
}

func TestSend_ListWithOddFieldStillSucceeds(t *testing.T) {
	srv := staticServer(t, http.StatusOK, `{"ok":true,"message":42,"blocks":[{"blockId":"a","start":"09:00","end":"10:00","label":"Standup"}]}`)
	a := newTestAdapter(t, srv.URL)

	res, err := a.List(context.Background(), "u1", "2024-05-01", Throwing)

	require.NoError(t, err)
	require.NotNil(t, res.Parsed)
	assert.False(t, res.Parsed.Failed())
	require.Len(t, res.Parsed.BlockList(), 1)
	assert.Equal(t, "Standup", res.Parsed.BlockList()[0].Label)
}

func TestSend_HTTPError(t *testing.T) {
	srv := staticServer(t, http.StatusInternalServerError, "boom")
	a := newTestAdapter(t, srv.URL)

	res, err := a.Send(context.Background(), OpList, models.ListRequest{}, Throwing)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTP)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "boom", httpErr.Body)
	assert.Equal(t, "HTTP 500 from "+srv.URL+"/blocks/list. Response: boom", err.Error())
	assert.Equal(t, http.StatusInternalServerError, res.Status)
}

func TestSend_HTTPErrorEmptyBody(t *testing.T) {
	srv := staticServer(t, http.StatusBadGateway, "")
	a := newTestAdapter(t, srv.URL)

	_, err := a.Send(context.Background(), OpList, models.ListRequest{}, Throwing)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Response: <empty>")
}

func TestSend_APIError(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "server message", body: `{"ok":false,"error":"label is required"}`, wantMsg: "label is required"},
		{name: "no message", body: `{"ok":false}`, wantMsg: "Unknown error"},
		{name: "structured error", body: `{"ok":false,"error":{"code":"OVERLAP"}}`, wantMsg: `{"code":"OVERLAP"}`},
		{name: "numeric message beside failure", body: `{"ok":false,"message":42,"error":"bad"}`, wantMsg: "bad"},
		{name: "blocks of the wrong type", body: `{"ok":false,"blocks":"none","error":"bad"}`, wantMsg: "bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := staticServer(t, http.StatusOK, tt.body)
			a := newTestAdapter(t, srv.URL)

			_, err := a.Send(context.Background(), OpCreate, models.CreateRequest{}, Throwing)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.ErrorIs(t, err, ErrAPI)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
			assert.Equal(t, http.StatusOK, apiErr.Status)
		})
	}
}

func TestSend_NonThrowingReturnsResult(t *testing.T) {
	srv := staticServer(t, http.StatusBadRequest, `{"ok":false,"error":"date must be YYYY-MM-DD"}`)
	a := newTestAdapter(t, srv.URL)

	res, err := a.List(context.Background(), "u1", "bad", SendOptions{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	require.NotNil(t, res.Parsed)
	assert.True(t, res.Parsed.Failed())
	assert.Equal(t, "date must be YYYY-MM-DD", res.Parsed.Error)
}

func TestSend_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	a := newTestAdapter(t, addr)
	_, err := a.List(context.Background(), "u1", "2024-05-01", SendOptions{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)

	var trErr *TransportError
	require.True(t, errors.As(err, &trErr))
	assert.Equal(t, addr+"/blocks/list", trErr.URL)
	assert.Empty(t, trErr.Hint)
	assert.Contains(t, err.Error(), "URL: "+addr+"/blocks/list")
}

func TestSend_FileOriginHint(t *testing.T) {
	a := newTestAdapter(t, "file:///home/user/index.html")

	_, err := a.List(context.Background(), "u1", "2024-05-01", SendOptions{})

	var trErr *TransportError
	require.True(t, errors.As(err, &trErr))
	assert.NotEmpty(t, trErr.Hint)
	assert.Contains(t, err.Error(), "file://")
}

// ── against the fake API ────────────────────────────────────────────────────

func TestAdapter_FakeAPIRoundTrip(t *testing.T) {
	api := fakeapi.NewHandler(logger.Nop())
	srv := httptest.NewServer(api.Init())
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	res, err := a.Create(ctx, models.CreateRequest{UserID: "u1", Date: "2024-05-01", Start: "09:00", End: "09:30", Label: "Standup"})
	require.NoError(t, err)
	require.Len(t, res.Parsed.BlockList(), 1)
	blockID := res.Parsed.BlockList()[0].BlockID

	_, err = a.Create(ctx, models.CreateRequest{UserID: "u1", Date: "2024-05-01", Start: "09:15", End: "10:00", Label: "Overlap"})
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)

	res, err = a.Delete(ctx, models.DeleteRequest{UserID: "u1", Date: "2024-05-01", BlockID: blockID})
	require.NoError(t, err)
	assert.Empty(t, res.Parsed.BlockList())

	reqs := api.Requests()
	require.Len(t, reqs, 3)
	assert.JSONEq(t, `{"userId":"u1","date":"2024-05-01","blockId":"`+blockID+`"}`, reqs[2].Body)
}
