package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"storefront-backend/internal/domains/catalog/model"
	"storefront-backend/internal/shared/utils"
)

// Expected xlsx columns, first sheet, header in row 1:
// A=name, B=sku, C=base_price, D=price_override, E=stock, F=color, G=size
const bulkImportMaxRows = 5000

// ImportProducts parses an xlsx upload and creates one product with one
// variant per row. Row-level failures are collected, not fatal.
func (s *catalogService) ImportProducts(ctx context.Context, xlsxData []byte) (*model.BulkImportResult, error) {
	f, err := excelize.OpenReader(bytes.NewReader(xlsxData))
	if err != nil {
		return nil, model.NewRepositoryError("open import file", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, model.NewRepositoryError("read import sheet", err)
	}

	result := &model.BulkImportResult{}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if i > bulkImportMaxRows {
			result.Errors = append(result.Errors, fmt.Sprintf("import truncated at %d rows", bulkImportMaxRows))
			break
		}

		result.TotalRows++

		if err := s.importRow(ctx, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func (s *catalogService) importRow(ctx context.Context, row []string) error {
	cell := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	name := cell(0)
	sku := cell(1)
	if name == "" || sku == "" {
		return fmt.Errorf("name and sku are required")
	}

	basePrice, err := decimal.NewFromString(cell(2))
	if err != nil || basePrice.LessThanOrEqual(decimal.Zero) {
		return model.ErrInvalidPrice
	}

	var override *decimal.Decimal
	if raw := cell(3); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil || d.LessThanOrEqual(decimal.Zero) {
			return model.ErrInvalidPrice
		}
		override = &d
	}

	stock := 0
	if raw := cell(4); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return fmt.Errorf("invalid stock %q", raw)
		}
	}

	product, err := s.repo.CreateProduct(ctx, &model.Product{
		Name:      name,
		Slug:      utils.GenerateSlug(name),
		BasePrice: basePrice,
		IsActive:  true,
	})
	if err != nil {
		return err
	}

	variant := &model.Variant{
		ProductID:     product.ID,
		SKU:           strings.ToUpper(sku),
		PriceOverride: override,
		Stock:         stock,
		IsActive:      true,
	}
	if color := cell(5); color != "" {
		variant.Color = &color
	}
	if size := cell(6); size != "" {
		variant.Size = &size
	}

	_, err = s.repo.CreateVariant(ctx, variant)
	return err
}
