// Package document renders submitted snapshots into printable spreadsheets.
package document

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/fenglian/fee-engine/internal/catalog"
	"github.com/fenglian/fee-engine/internal/models"
)

// ContractFiller writes a contract fee confirmation sheet.
type ContractFiller struct {
	catalog     *catalog.Catalog
	companyName string
	logger      *zap.Logger
}

// NewContractFiller creates a new contract document filler.
func NewContractFiller(c *catalog.Catalog, companyName string, logger *zap.Logger) *ContractFiller {
	return &ContractFiller{
		catalog:     c,
		companyName: companyName,
		logger:      logger,
	}
}

// FillContract writes the snapshot into a new workbook at outputPath: one
// row per selected item grouped under its category heading, followed by the
// negotiated total and its legal numeral.
func (f *ContractFiller) FillContract(snapshot *models.ContractSnapshot, outputPath string) error {
	f.logger.Info("Rendering contract document",
		zap.Int64("contract_id", snapshot.ID),
		zap.String("output_path", outputPath))

	wb := excelize.NewFile()
	defer wb.Close()

	sheet := wb.GetSheetName(0)

	f.setCell(wb, sheet, "A1", "服务合同费用确认单")
	f.setCell(wb, sheet, "A2", "乙方："+f.companyName)
	f.setCell(wb, sheet, "A3", "甲方："+snapshot.ClientName)
	f.setCell(wb, sheet, "A4", "日期："+snapshot.CreatedAt.Format("2006年01月02日"))

	row := 6
	for _, cat := range f.catalog.Categories() {
		items, ok := snapshot.Buckets[cat.OutputField]
		if !ok {
			continue
		}

		f.setCell(wb, sheet, cell("A", row), cat.DisplayName)
		fee, hasFee := snapshot.CategoryFees[cat.ID]
		if hasFee {
			f.setCell(wb, sheet, cell("C", row), fee.StringFixed(2))
		}
		row++

		for _, item := range items {
			f.setCell(wb, sheet, cell("B", row), item.ItemName)
			if item.Amount.IsPositive() {
				f.setCell(wb, sheet, cell("C", row), item.Amount.StringFixed(2))
			}
			row++
		}
	}

	row++
	f.setCell(wb, sheet, cell("A", row), "合计（小写）")
	f.setCell(wb, sheet, cell("C", row), "￥"+snapshot.TotalCost.StringFixed(2))
	row++
	f.setCell(wb, sheet, cell("A", row), "合计（大写）")
	f.setCell(wb, sheet, cell("C", row), snapshot.TotalCostWords)

	if err := wb.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save contract document: %w", err)
	}

	f.logger.Info("Contract document rendered",
		zap.String("output_path", outputPath))
	return nil
}

// setCell sets a cell value, downgrading failures to warnings so one bad
// cell does not abort the whole sheet.
func (f *ContractFiller) setCell(wb *excelize.File, sheet, cellRef, value string) {
	if err := wb.SetCellValue(sheet, cellRef, value); err != nil {
		f.logger.Warn("Failed to set cell value",
			zap.String("sheet", sheet),
			zap.String("cell", cellRef),
			zap.Error(err))
	}
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

// SafeFileName strips characters that are not valid in output file names.
func SafeFileName(name string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_",
		"?", "_", "\"", "_", "<", "_", ">", "_", "|", "_",
	)
	return replacer.Replace(name)
}
