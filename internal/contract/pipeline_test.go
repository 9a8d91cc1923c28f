package contract

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/contracts-analyzer/internal/docpipe"
	"github.com/joseph-ayodele/contracts-analyzer/internal/extract"
	"github.com/joseph-ayodele/contracts-analyzer/internal/llm"
)

// transcribeStub echoes each page's source text back as its transcription.
type transcribeStub struct{}

func (transcribeStub) Generate(_ context.Context, msgs []llm.Message) (string, error) {
	_, after, _ := strings.Cut(msgs[0].Parts[0].Text, "Page text:\n")
	return after, nil
}

// Digitization artifact flows straight into extraction: two transcribed pages
// become one ordered artifact, and the engine turns it into a typed record.
func TestDigitizeThenExtract(t *testing.T) {
	d := docpipe.NewDigitizer(transcribeStub{}, docpipe.Config{}, nil)
	artifact, err := d.Transcribe(context.Background(), []docpipe.Page{
		{Index: 0, Text: "Clause A"},
		{Index: 1, Text: "Clause B"},
	})
	require.NoError(t, err)
	require.Equal(t, "Clause A\nClause B", artifact)

	gen := &stubGen{response: `{
		"contract_number": "SVC-7", "contract_name": "Agreement",
		"party_a": "Hospital", "party_b": "Vendor",
		"contract_start_date": "2024/01/01", "contract_end_date": "2026/12/31",
		"contract_total_amount": 99000,
		"contract_payment_method": "lump sum", "contract_currency": "CNY"
	}`}
	x := NewExtractor(extract.NewEngine(gen, nil))

	out, err := x.BasicInfo(context.Background(), artifact)
	require.NoError(t, err)
	assert.Equal(t, "SVC-7", out.ContractNumber)
	assert.Equal(t, "Agreement", out.ContractName)
	assert.Equal(t, "Hospital", out.PartyA)
	assert.Equal(t, "Vendor", out.PartyB)
	assert.Equal(t, "2024/01/01", out.ContractStartDate)
	assert.Equal(t, "2026/12/31", out.ContractEndDate)
	require.NotNil(t, out.ContractTotalAmount)
	assert.Equal(t, 99000.0, *out.ContractTotalAmount)
	assert.Equal(t, "lump sum", out.ContractPaymentMethod)
	assert.Equal(t, "CNY", out.ContractCurrency)

	// The artifact rode along as the user message of the extraction request.
	require.Len(t, gen.calls, 1)
	assert.Equal(t, artifact, gen.calls[0][2].Parts[0].Text)
}
