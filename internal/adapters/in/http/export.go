package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"JO No", "Item No", "Serial No", "Machine Category", "Machine Size",
	"Machine Code", "Worker Name", "Quantity", "Assigning Date", "Status",
}

// ExportAssignments handles GET /api/v1/assignments/export. Streams the
// assignment table as an xlsx workbook, honoring the same jo_no, status and
// assign_to filters as the JSON listing. The shop floor prints this sheet.
func (s *Server) ExportAssignments(ctx echo.Context) error {
	query, err := s.assignmentsQuery(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.handlers.GetAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	const sheet = "Assignments"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return domainError(ctx, err)
	}
	f.SetActiveSheet(index)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return domainError(ctx, err)
	}

	for col, title := range exportHeaders {
		cell, cellErr := excelize.CoordinatesToCellName(col+1, 1)
		if cellErr != nil {
			return domainError(ctx, cellErr)
		}
		if err = f.SetCellValue(sheet, cell, title); err != nil {
			return domainError(ctx, err)
		}
	}

	for row, entry := range entries {
		values := []any{
			entry.JoNo, entry.ItemNo, entry.SerialNo,
			entry.MachineCategory, entry.MachineSize, entry.MachineCode,
			entry.WorkerName, entry.QuantityNo, entry.AssigningDate, entry.Status,
		}
		for col, value := range values {
			cell, cellErr := excelize.CoordinatesToCellName(col+1, row+2)
			if cellErr != nil {
				return domainError(ctx, cellErr)
			}
			if err = f.SetCellValue(sheet, cell, value); err != nil {
				return domainError(ctx, err)
			}
		}
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", "assignments.xlsx"))
	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().WriteHeader(http.StatusOK)

	return f.Write(ctx.Response())
}
