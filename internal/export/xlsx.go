// Package export renders extraction results as an XLSX workbook.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/contracts-analyzer/internal/contract"
)

// Request carries whichever extraction results the caller wants in the
// workbook. Nil/empty sections are skipped.
type Request struct {
	BasicInfo *contract.BasicInfo   `json:"basic_info,omitempty"`
	Devices   []contract.DeviceInfo `json:"devices,omitempty"`
}

// BuildWorkbook returns XLSX bytes: a key/value "Contract" sheet for the
// metadata and a "Devices" table.
func BuildWorkbook(req Request) ([]byte, error) {
	if req.BasicInfo == nil && len(req.Devices) == 0 {
		return nil, fmt.Errorf("export: nothing to export")
	}

	f := excelize.NewFile()

	if req.BasicInfo != nil {
		const sheet = "Contract"
		if err := ensureSheet(f, sheet); err != nil {
			return nil, err
		}
		amount := ""
		if req.BasicInfo.ContractTotalAmount != nil {
			amount = fmt.Sprintf("%.2f", *req.BasicInfo.ContractTotalAmount)
		}
		rows := [][2]string{
			{"Contract Number", req.BasicInfo.ContractNumber},
			{"Contract Name", req.BasicInfo.ContractName},
			{"Party A", req.BasicInfo.PartyA},
			{"Party B", req.BasicInfo.PartyB},
			{"Start Date", req.BasicInfo.ContractStartDate},
			{"End Date", req.BasicInfo.ContractEndDate},
			{"Total Amount", amount},
			{"Payment Method", req.BasicInfo.ContractPaymentMethod},
			{"Currency", req.BasicInfo.ContractCurrency},
		}
		for i, kv := range rows {
			cellA, _ := excelize.CoordinatesToCellName(1, i+1)
			cellB, _ := excelize.CoordinatesToCellName(2, i+1)
			_ = f.SetCellValue(sheet, cellA, kv[0])
			_ = f.SetCellValue(sheet, cellB, kv[1])
		}
	}

	if len(req.Devices) > 0 {
		const sheet = "Devices"
		if err := ensureSheet(f, sheet); err != nil {
			return nil, err
		}
		headers := []string{
			"Device Name", "Registration Number", "Model", "Host System Number",
			"Installation Date", "Service Start", "Service End",
		}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(sheet, cell, h)
		}
		for r, d := range req.Devices {
			values := []string{
				d.DeviceName, d.RegistrationNumber, d.DeviceModel, d.HostSystemNumber,
				d.InstallationDate, d.ServiceStartDate, d.ServiceEndDate,
			}
			for c, v := range values {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
				_ = f.SetCellValue(sheet, cell, v)
			}
		}
	}

	// Drop excelize's default sheet when we created our own.
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		if req.BasicInfo != nil || len(req.Devices) > 0 {
			_ = f.DeleteSheet("Sheet1")
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func ensureSheet(f *excelize.File, name string) error {
	if idx, _ := f.GetSheetIndex(name); idx != -1 {
		return nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return nil
}
