package cmd

import (
	httpin "jobshop/internal/adapters/in/http"
	"jobshop/internal/adapters/out/postgres"
	"jobshop/internal/catalog"
	"jobshop/internal/core/application/usecases/commands"
	"jobshop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *catalog.Catalog
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, cat *catalog.Catalog) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    cat,
	}
}

func (c *CompositionRoot) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAssemblyCommandHandler() commands.CreateAssemblyCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssemblyCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveWorkOrderCommandHandler() commands.ApproveWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteWorkOrderCommandHandler() commands.DeleteWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCategoryEntryCommandHandler() commands.CreateCategoryEntryCommandHandler {
	var f commands.CategoryEntryUoWFactory = FuncCategoryEntryUoWFactory(func() commands.CategoryEntryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCategoryEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCategoryEntryCommandHandler() commands.UpdateCategoryEntryCommandHandler {
	var f commands.CategoryEntryUoWFactory = FuncCategoryEntryUoWFactory(func() commands.CategoryEntryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCategoryEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveCategoryEntryCommandHandler() commands.ApproveCategoryEntryCommandHandler {
	var f commands.CategoryEntryUoWFactory = FuncCategoryEntryUoWFactory(func() commands.CategoryEntryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveCategoryEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCategoryEntryCommandHandler() commands.DeleteCategoryEntryCommandHandler {
	var f commands.CategoryEntryUoWFactory = FuncCategoryEntryUoWFactory(func() commands.CategoryEntryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCategoryEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignWorkerCommandHandler() commands.AssignWorkerCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignWorkerCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateMarkReadyForQCCommandHandler() commands.MarkReadyForQCCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkReadyForQCCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptAssignmentCommandHandler() commands.AcceptAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectAssignmentCommandHandler() commands.RejectAssignmentCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkUrgentCommandHandler() commands.MarkUrgentCommandHandler {
	var f commands.UrgencyUoWFactory = FuncUrgencyUoWFactory(func() commands.UrgencyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkUrgentCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePOServiceCommandHandler() commands.CreatePOServiceCommandHandler {
	var f commands.POServiceUoWFactory = FuncPOServiceUoWFactory(func() commands.POServiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePOServiceCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePOServiceCommandHandler() commands.DeletePOServiceCommandHandler {
	var f commands.POServiceUoWFactory = FuncPOServiceUoWFactory(func() commands.POServiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePOServiceCommandHandler(f)
}

func (c *CompositionRoot) CreateGetWorkOrdersQueryHandler() queries.GetWorkOrdersQueryHandler {
	return queries.NewGetWorkOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignmentsQueryHandler() queries.GetAssignmentsQueryHandler {
	return queries.NewGetAssignmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRemainingQuantityQueryHandler() queries.GetRemainingQuantityQueryHandler {
	return queries.NewGetRemainingQuantityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoryEntriesQueryHandler() queries.GetCategoryEntriesQueryHandler {
	return queries.NewGetCategoryEntriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPOServicesQueryHandler() queries.GetPOServicesQueryHandler {
	return queries.NewGetPOServicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateWorkOrder:      c.CreateCreateWorkOrderCommandHandler(),
		CreateAssembly:       c.CreateCreateAssemblyCommandHandler(),
		ApproveWorkOrder:     c.CreateApproveWorkOrderCommandHandler(),
		DeleteWorkOrder:      c.CreateDeleteWorkOrderCommandHandler(),
		CreateCategoryEntry:  c.CreateCreateCategoryEntryCommandHandler(),
		UpdateCategoryEntry:  c.CreateUpdateCategoryEntryCommandHandler(),
		ApproveCategoryEntry: c.CreateApproveCategoryEntryCommandHandler(),
		DeleteCategoryEntry:  c.CreateDeleteCategoryEntryCommandHandler(),
		AssignWorker:         c.CreateAssignWorkerCommandHandler(),
		MarkReadyForQC:       c.CreateMarkReadyForQCCommandHandler(),
		AcceptAssignment:     c.CreateAcceptAssignmentCommandHandler(),
		RejectAssignment:     c.CreateRejectAssignmentCommandHandler(),
		MarkUrgent:           c.CreateMarkUrgentCommandHandler(),
		CreatePOService:      c.CreateCreatePOServiceCommandHandler(),
		DeletePOService:      c.CreateDeletePOServiceCommandHandler(),
		GetWorkOrders:        c.CreateGetWorkOrdersQueryHandler(),
		GetAssignments:       c.CreateGetAssignmentsQueryHandler(),
		GetRemainingQuantity: c.CreateGetRemainingQuantityQueryHandler(),
		GetCategoryEntries:   c.CreateGetCategoryEntriesQueryHandler(),
		GetPOServices:        c.CreateGetPOServicesQueryHandler(),
	}
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncCategoryEntryUoWFactory func() commands.CategoryEntryUoW

func (f FuncCategoryEntryUoWFactory) Create() commands.CategoryEntryUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUrgencyUoWFactory func() commands.UrgencyUoW

func (f FuncUrgencyUoWFactory) Create() commands.UrgencyUoW {
	return f()
}

type FuncPOServiceUoWFactory func() commands.POServiceUoW

func (f FuncPOServiceUoWFactory) Create() commands.POServiceUoW {
	return f()
}
