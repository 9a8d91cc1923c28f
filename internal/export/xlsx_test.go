package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/contracts-analyzer/internal/contract"
)

func TestBuildWorkbook(t *testing.T) {
	amount := 150000.5
	data, err := BuildWorkbook(Request{
		BasicInfo: &contract.BasicInfo{
			ContractNumber:      "SVC-2024-001",
			ContractName:        "Service Agreement",
			PartyA:              "City Hospital",
			PartyB:              "Acme Medical Systems",
			ContractTotalAmount: &amount,
			ContractCurrency:    "CNY",
		},
		Devices: []contract.DeviceInfo{
			{DeviceName: "CT Scanner", DeviceModel: "CT-9000", RegistrationNumber: "REG-1"},
			{DeviceName: "MRI", DeviceModel: "MR-450"},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Contract", "Devices"}, f.GetSheetList())

	v, err := f.GetCellValue("Contract", "B1")
	require.NoError(t, err)
	assert.Equal(t, "SVC-2024-001", v)

	v, err = f.GetCellValue("Contract", "B7")
	require.NoError(t, err)
	assert.Equal(t, "150000.50", v)

	v, err = f.GetCellValue("Devices", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Device Name", v)

	v, err = f.GetCellValue("Devices", "C3")
	require.NoError(t, err)
	assert.Equal(t, "MR-450", v)
}

func TestBuildWorkbookDevicesOnly(t *testing.T) {
	data, err := BuildWorkbook(Request{
		Devices: []contract.DeviceInfo{{DeviceName: "CT Scanner"}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Devices"}, f.GetSheetList())
}

func TestBuildWorkbookEmptyRequest(t *testing.T) {
	_, err := BuildWorkbook(Request{})
	require.Error(t, err)
}
