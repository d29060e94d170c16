package http

import (
	"strconv"

	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/workorder"
	"jobshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// queryInt reads an optional integer query parameter; absent means zero.
func queryInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func pathInt(ctx echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func (r CreateWorkOrderRequest) parse() (workorder.JobType, workorder.Header, workorder.ItemDetails, error) {
	jobType, header, err := parseHeader(r.JobType, r.JoNumber, r.JobOrderDate, r.MtlRcdDate, r.MtlChallanNo)
	if err != nil {
		return workorder.UnknownJobType, workorder.Header{}, workorder.ItemDetails{}, err
	}

	return jobType, header, r.Item.toDomain(), nil
}

func (r CreateAssemblyRequest) parse() (workorder.JobType, workorder.Header, []workorder.ItemDetails, error) {
	jobType, header, err := parseHeader(r.JobType, r.JoNumber, r.JobOrderDate, r.MtlRcdDate, r.MtlChallanNo)
	if err != nil {
		return workorder.UnknownJobType, workorder.Header{}, nil, err
	}

	items := make([]workorder.ItemDetails, len(r.Items))
	for i, item := range r.Items {
		items[i] = item.toDomain()
	}
	return jobType, header, items, nil
}

func parseHeader(
	jobTypeRaw string,
	joNumber int,
	jobOrderDateRaw, mtlRcdDateRaw string,
	mtlChallanNo int,
) (workorder.JobType, workorder.Header, error) {
	jobType, err := workorder.JobTypeFromString(jobTypeRaw)
	if err != nil {
		return workorder.UnknownJobType, workorder.Header{}, err
	}

	jobOrderDate, err := kernel.DateFromString(jobOrderDateRaw)
	if err != nil {
		return workorder.UnknownJobType, workorder.Header{}, errs.NewValueIsInvalidErrorWithCause("job_order_date", err)
	}

	mtlRcdDate, err := kernel.DateFromString(mtlRcdDateRaw)
	if err != nil {
		return workorder.UnknownJobType, workorder.Header{}, errs.NewValueIsInvalidErrorWithCause("mtl_rcd_date", err)
	}

	return jobType, workorder.Header{
		JoNumber:     joNumber,
		JobOrderDate: jobOrderDate,
		MtlRcdDate:   mtlRcdDate,
		MtlChallanNo: mtlChallanNo,
	}, nil
}

func (r ItemRequest) toDomain() workorder.ItemDetails {
	return workorder.ItemDetails{
		ItemNo:          r.ItemNo,
		SerialNo:        r.SerialNo,
		Qty:             r.Qty,
		ItemDescription: r.ItemDescription,
		MOC:             r.MOC,
		BinLocation:     r.BinLocation,
		MaterialRemark:  r.MaterialRemark,
		Remark:          r.Remark,
	}
}
