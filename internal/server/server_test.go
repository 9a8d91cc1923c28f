package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/contracts-analyzer/internal/compliance"
	"github.com/joseph-ayodele/contracts-analyzer/internal/contract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/docpipe"
	"github.com/joseph-ayodele/contracts-analyzer/internal/extract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/llm"
	"github.com/joseph-ayodele/contracts-analyzer/internal/recommend"
)

type stubGen struct {
	response string
	calls    int
}

func (g *stubGen) Generate(_ context.Context, _ []llm.Message) (string, error) {
	g.calls++
	return g.response, nil
}

func newTestHandler(gen llm.Generator) http.Handler {
	engine := extract.NewEngine(gen, nil)
	s := New(
		docpipe.NewDigitizer(gen, docpipe.Config{}, nil),
		contract.NewExtractor(engine),
		compliance.NewDetector(engine),
		recommend.NewMatcher(engine),
		nil,
	)
	return s.Routes(0)
}

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDigitizeRejectsNonPDFUpload(t *testing.T) {
	gen := &stubGen{response: "irrelevant"}
	h := newTestHandler(gen)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="contract.txt"`)
	hdr.Set("Content-Type", "text/plain")
	part, err := mw.CreatePart(hdr)
	require.NoError(t, err)
	_, _ = part.Write([]byte("not a pdf"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/digitize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "application/pdf")
	assert.Zero(t, gen.calls)
}

func TestDigitizeMissingFileField(t *testing.T) {
	h := newTestHandler(&stubGen{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/digitize", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing file field")
}

func TestRecommendEmptyListsRejected(t *testing.T) {
	gen := &stubGen{}
	h := newTestHandler(gen)

	rec := postJSON(t, h, "/api/v1/service-plans/recommend", `{"clauses":[],"candidates":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, gen.calls, "precondition failures never reach the generation service")
}

func TestDetectEmptyCatalogRejected(t *testing.T) {
	gen := &stubGen{}
	h := newTestHandler(gen)

	rec := postJSON(t, h, "/api/v1/clauses/detect", `{"content":"text","standardClauses":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, gen.calls)
}

func TestBasicInfoEndpoint(t *testing.T) {
	gen := &stubGen{response: `{
		"contract_number": "SVC-1", "contract_name": "n", "party_a": "a", "party_b": "b",
		"contract_start_date": "", "contract_end_date": "",
		"contract_total_amount": null,
		"contract_payment_method": "", "contract_currency": ""
	}`}
	h := newTestHandler(gen)

	rec := postJSON(t, h, "/api/v1/contracts/basic-info", `{"content":"contract text"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out contract.BasicInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "SVC-1", out.ContractNumber)
	assert.Nil(t, out.ContractTotalAmount)
	assert.Equal(t, 1, gen.calls)
}

func TestDevicesEndpointWrapsItemList(t *testing.T) {
	gen := &stubGen{response: `{"item_list": [
		{"device_name": "CT", "registration_number": "", "device_model": "", "host_system_number": "",
		 "installation_date": "", "service_start_date": "", "service_end_date": ""}
	]}`}
	h := newTestHandler(gen)

	rec := postJSON(t, h, "/api/v1/contracts/devices", `{"content":"contract text"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		ItemList []contract.DeviceInfo `json:"item_list"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.ItemList, 1)
	assert.Equal(t, "CT", out.ItemList[0].DeviceName)
}

func TestMalformedBodyRejected(t *testing.T) {
	h := newTestHandler(&stubGen{})

	rec := postJSON(t, h, "/api/v1/contracts/basic-info", `{"content":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
}

func TestUnrepairableOutputSurfacesAs502(t *testing.T) {
	gen := &stubGen{response: `{"wrong": true}`}
	h := newTestHandler(gen)

	rec := postJSON(t, h, "/api/v1/contracts/basic-info", `{"content":"contract text"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 2, gen.calls, "one attempt plus one repair, then terminal failure")
}

func TestExportEndpoint(t *testing.T) {
	h := newTestHandler(&stubGen{})

	rec := postJSON(t, h, "/api/v1/contracts/export",
		`{"basic_info":{"contract_number":"SVC-1","contract_name":"","party_a":"","party_b":"",
		  "contract_start_date":"","contract_end_date":"","contract_total_amount":null,
		  "contract_payment_method":"","contract_currency":""}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestExportEmptyRequestRejected(t *testing.T) {
	h := newTestHandler(&stubGen{})

	rec := postJSON(t, h, "/api/v1/contracts/export", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
