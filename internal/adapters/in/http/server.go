// Package http exposes the work-order tracking API over Echo. Handlers
// translate between JSON payloads and application commands/queries; all
// business rules stay behind the command handlers.
package http

import (
	"errors"
	"net/http"

	"jobshop/internal/catalog"
	"jobshop/internal/core/application/usecases/commands"
	"jobshop/internal/core/application/usecases/queries"
	"jobshop/internal/core/domain/model/assignment"
	"jobshop/internal/core/domain/model/categoryentry"
	"jobshop/internal/core/domain/model/kernel"
	"jobshop/internal/core/domain/model/poservice"
	"jobshop/internal/core/domain/model/workorder"
	"jobshop/internal/core/domain/services"
	"jobshop/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateWorkOrder      commands.CreateWorkOrderCommandHandler
	CreateAssembly       commands.CreateAssemblyCommandHandler
	ApproveWorkOrder     commands.ApproveWorkOrderCommandHandler
	DeleteWorkOrder      commands.DeleteWorkOrderCommandHandler
	CreateCategoryEntry  commands.CreateCategoryEntryCommandHandler
	UpdateCategoryEntry  commands.UpdateCategoryEntryCommandHandler
	ApproveCategoryEntry commands.ApproveCategoryEntryCommandHandler
	DeleteCategoryEntry  commands.DeleteCategoryEntryCommandHandler
	AssignWorker         commands.AssignWorkerCommandHandler
	MarkReadyForQC       commands.MarkReadyForQCCommandHandler
	AcceptAssignment     commands.AcceptAssignmentCommandHandler
	RejectAssignment     commands.RejectAssignmentCommandHandler
	MarkUrgent           commands.MarkUrgentCommandHandler
	CreatePOService      commands.CreatePOServiceCommandHandler
	DeletePOService      commands.DeletePOServiceCommandHandler

	GetWorkOrders        queries.GetWorkOrdersQueryHandler
	GetAssignments       queries.GetAssignmentsQueryHandler
	GetRemainingQuantity queries.GetRemainingQuantityQueryHandler
	GetCategoryEntries   queries.GetCategoryEntriesQueryHandler
	GetPOServices        queries.GetPOServicesQueryHandler
}

// Server coordinates between the HTTP layer and application use cases.
type Server struct {
	handlers Handlers
	catalog  *catalog.Catalog
	validate *validator.Validate
}

// NewServer creates an HTTP server over the given handlers and machine
// catalog.
func NewServer(handlers Handlers, cat *catalog.Catalog) *Server {
	return &Server{
		handlers: handlers,
		catalog:  cat,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts the v1 API on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/work-orders", s.CreateWorkOrder)
	v1.POST("/work-orders/assembly", s.CreateAssembly)
	v1.POST("/work-orders/:id/approve", s.ApproveWorkOrder)
	v1.DELETE("/work-orders/:id", s.DeleteWorkOrder)
	v1.GET("/work-orders", s.GetWorkOrders)

	v1.POST("/category-entries", s.CreateCategoryEntry)
	v1.PUT("/category-entries/:id", s.UpdateCategoryEntry)
	v1.POST("/category-entries/:id/approve", s.ApproveCategoryEntry)
	v1.DELETE("/category-entries/:id", s.DeleteCategoryEntry)
	v1.GET("/category-entries", s.GetCategoryEntries)

	v1.POST("/assignments", s.AssignWorker)
	v1.POST("/assignments/:id/ready-for-qc", s.MarkReadyForQC)
	v1.POST("/assignments/:id/accept", s.AcceptAssignment)
	v1.POST("/assignments/:id/reject", s.RejectAssignment)
	v1.GET("/assignments", s.GetAssignments)
	v1.GET("/assignments/export", s.ExportAssignments)

	v1.GET("/quantities/remaining", s.GetRemainingQuantity)

	v1.POST("/jobs/:jobNo/urgent", s.MarkUrgent)

	v1.POST("/po-services", s.CreatePOService)
	v1.DELETE("/po-services/:id", s.DeletePOService)
	v1.GET("/po-services", s.GetPOServices)

	v1.GET("/catalog", s.GetCatalog)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var req CreateWorkOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	jobType, header, item, err := req.parse()
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(
		orderID, jobType, workorder.Partial, req.JobNo, req.JobCategory, header, item)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CreateWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID.String()})
}

// CreateAssembly handles POST /api/v1/work-orders/assembly.
func (s *Server) CreateAssembly(ctx echo.Context) error {
	var req CreateAssemblyRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	jobType, header, items, err := req.parse()
	if err != nil {
		return badRequest(ctx, err)
	}

	ids := make([]kernel.UUID, len(items))
	for i := range ids {
		ids[i] = kernel.NewUUID()
	}

	cmd, err := commands.NewCreateAssemblyCommand(
		ids, jobType, req.JobNo, req.JobCategory, header, items)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CreateAssembly.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	resp := make([]IDResponse, len(ids))
	for i, id := range ids {
		resp[i] = IDResponse{ID: id.String()}
	}
	return ctx.JSON(http.StatusCreated, resp)
}

// ApproveWorkOrder handles POST /api/v1/work-orders/:id/approve.
func (s *Server) ApproveWorkOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveWorkOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ApproveWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteWorkOrder handles DELETE /api/v1/work-orders/:id. The confirm=true
// query parameter carries the operator's confirmation.
func (s *Server) DeleteWorkOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteWorkOrderCommand(id, ctx.QueryParam("confirm") == "true")
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.DeleteWorkOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkOrders handles GET /api/v1/work-orders.
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	jobType := workorder.UnknownJobType
	if raw := ctx.QueryParam("job_type"); raw != "" {
		parsed, err := workorder.JobTypeFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		jobType = parsed
	}

	jobNo, err := queryInt(ctx, "job_no")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetWorkOrdersQuery(jobType, jobNo, ctx.QueryParam("urgent") == "true")
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.handlers.GetWorkOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// CreateCategoryEntry handles POST /api/v1/category-entries.
func (s *Server) CreateCategoryEntry(ctx echo.Context) error {
	var req CreateCategoryEntryRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	drawingDate, err := kernel.DateFromString(req.DrawingReceivedDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	entryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryEntryCommand(entryID, req.JobNo, categoryentry.Details{
		Description:         req.Description,
		MaterialType:        req.MaterialType,
		Bar:                 req.Bar,
		Tempp:               req.Tempp,
		Qty:                 req.Qty,
		ClientName:          req.ClientName,
		DrawingReceivedDate: drawingDate,
		Remark:              req.Remark,
	})
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CreateCategoryEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: entryID.String()})
}

// UpdateCategoryEntry handles PUT /api/v1/category-entries/:id.
func (s *Server) UpdateCategoryEntry(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var req UpdateCategoryEntryRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	drawingDate, err := kernel.DateFromString(req.DrawingReceivedDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateCategoryEntryCommand(id, categoryentry.Details{
		Description:         req.Description,
		MaterialType:        req.MaterialType,
		Bar:                 req.Bar,
		Tempp:               req.Tempp,
		Qty:                 req.Qty,
		ClientName:          req.ClientName,
		DrawingReceivedDate: drawingDate,
		Remark:              req.Remark,
	})
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.UpdateCategoryEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveCategoryEntry handles POST /api/v1/category-entries/:id/approve.
func (s *Server) ApproveCategoryEntry(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewApproveCategoryEntryCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.ApproveCategoryEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCategoryEntry handles DELETE /api/v1/category-entries/:id.
func (s *Server) DeleteCategoryEntry(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteCategoryEntryCommand(id, ctx.QueryParam("confirm") == "true")
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.DeleteCategoryEntry.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCategoryEntries handles GET /api/v1/category-entries.
func (s *Server) GetCategoryEntries(ctx echo.Context) error {
	jobNo, err := queryInt(ctx, "job_no")
	if err != nil {
		return badRequest(ctx, err)
	}

	query := queries.NewGetCategoryEntriesQuery(jobNo, ctx.QueryParam("urgent") == "true")

	entries, err := s.handlers.GetCategoryEntries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

// AssignWorker handles POST /api/v1/assignments.
func (s *Server) AssignWorker(ctx echo.Context) error {
	var req AssignWorkerRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	assigningDate, err := kernel.DateFromString(req.AssigningDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewAssignWorkerCommand(
		assignmentID, req.JoNo, req.ItemNo, req.SerialNo,
		assignment.Selection{
			MachineCategory: req.MachineCategory,
			MachineSize:     req.MachineSize,
			MachineCode:     req.MachineCode,
			WorkerName:      req.WorkerName,
		},
		req.QuantityNo, assigningDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.AssignWorker.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: assignmentID.String()})
}

// MarkReadyForQC handles POST /api/v1/assignments/:id/ready-for-qc.
func (s *Server) MarkReadyForQC(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkReadyForQCCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.MarkReadyForQC.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AcceptAssignment handles POST /api/v1/assignments/:id/accept.
func (s *Server) AcceptAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAcceptAssignmentCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.AcceptAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectAssignment handles POST /api/v1/assignments/:id/reject.
func (s *Server) RejectAssignment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRejectAssignmentCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.RejectAssignment.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAssignments handles GET /api/v1/assignments.
func (s *Server) GetAssignments(ctx echo.Context) error {
	query, err := s.assignmentsQuery(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	entries, err := s.handlers.GetAssignments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, entries)
}

// GetRemainingQuantity handles GET /api/v1/quantities/remaining.
func (s *Server) GetRemainingQuantity(ctx echo.Context) error {
	joNo, err := queryInt(ctx, "jo_no")
	if err != nil {
		return badRequest(ctx, err)
	}
	itemNo, err := queryInt(ctx, "item_no")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetRemainingQuantityQuery(joNo, itemNo, ctx.QueryParam("serial_no"))
	if err != nil {
		return badRequest(ctx, err)
	}

	resp, err := s.handlers.GetRemainingQuantity.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// MarkUrgent handles POST /api/v1/jobs/:jobNo/urgent.
func (s *Server) MarkUrgent(ctx echo.Context) error {
	jobNo, err := pathInt(ctx, "jobNo")
	if err != nil {
		return badRequest(ctx, err)
	}

	var req MarkUrgentRequest
	if err = s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	dueDate, err := kernel.DateFromString(req.UrgentDueDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMarkUrgentCommand(jobNo, dueDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.MarkUrgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePOService handles POST /api/v1/po-services.
func (s *Server) CreatePOService(ctx echo.Context) error {
	var req CreatePOServiceRequest
	if err := s.bind(ctx, &req); err != nil {
		return badRequest(ctx, err)
	}

	poDate, err := kernel.DateFromString(req.PoDate)
	if err != nil {
		return badRequest(ctx, err)
	}

	category, err := poservice.CategoryFromString(req.JoCategory)
	if err != nil {
		return badRequest(ctx, err)
	}

	recordID := kernel.NewUUID()
	cmd, err := commands.NewCreatePOServiceCommand(
		recordID, req.PoNo, poDate, req.PnNo, req.Description, req.PoQnty, req.JobNo, category)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.CreatePOService.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: recordID.String()})
}

// DeletePOService handles DELETE /api/v1/po-services/:id.
func (s *Server) DeletePOService(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeletePOServiceCommand(id, ctx.QueryParam("confirm") == "true")
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.handlers.DeletePOService.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPOServices handles GET /api/v1/po-services.
func (s *Server) GetPOServices(ctx echo.Context) error {
	category := poservice.UnknownCategory
	if raw := ctx.QueryParam("jo_category"); raw != "" {
		parsed, err := poservice.CategoryFromString(raw)
		if err != nil {
			return badRequest(ctx, err)
		}
		category = parsed
	}

	query, err := queries.NewGetPOServicesQuery(category)
	if err != nil {
		return badRequest(ctx, err)
	}

	records, err := s.handlers.GetPOServices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, records)
}

// GetCatalog handles GET /api/v1/catalog. Returns the machine taxonomy the
// assignment form renders its pickers from.
func (s *Server) GetCatalog(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"version":    s.catalog.Version(),
		"categories": s.catalog.Categories(),
	})
}

func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}

func (s *Server) assignmentsQuery(ctx echo.Context) (queries.GetAssignmentsQuery, error) {
	joNo, err := queryInt(ctx, "jo_no")
	if err != nil {
		return queries.GetAssignmentsQuery{}, err
	}

	status := assignment.UnknownStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := assignment.StatusFromString(raw)
		if statusErr != nil {
			return queries.GetAssignmentsQuery{}, statusErr
		}
		status = parsed
	}

	return queries.NewGetAssignmentsQuery(joNo, status, ctx.QueryParam("assign_to"))
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// domainError maps command handler failures onto HTTP statuses: missing
// records are 404, state conflicts (allocation, QC transitions, unconfirmed
// deletes) are 409, validation problems are 400, everything else is 500.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrOverAllocation),
		errors.Is(err, services.ErrNotApproved),
		errors.Is(err, services.ErrNoQuantity),
		errors.Is(err, assignment.ErrInvalidTransition),
		errors.Is(err, commands.ErrDeleteNotConfirmed),
		errors.Is(err, workorder.ErrDueDateInPast),
		errors.Is(err, categoryentry.ErrDueDateInPast):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
