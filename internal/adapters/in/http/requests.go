package http

// Request bodies for the v1 API. Validation happens in two layers: the
// validator tags catch malformed payloads before a command is built, and
// the domain constructors enforce the per-variant business rules.

// ItemRequest carries the per-item fields of a work order.
type ItemRequest struct {
	ItemNo          int    `json:"item_no"`
	SerialNo        string `json:"serial_no" validate:"required"`
	Qty             int    `json:"qty" validate:"required,gt=0"`
	ItemDescription string `json:"item_description" validate:"required"`
	MOC             string `json:"moc" validate:"required"`
	BinLocation     string `json:"bin_location" validate:"required"`
	MaterialRemark  string `json:"material_remark"`
	Remark          string `json:"remark"`
}

// CreateWorkOrderRequest registers one work order in partial mode.
type CreateWorkOrderRequest struct {
	JobType      string      `json:"job_type" validate:"required"`
	JobNo        int         `json:"job_no"`
	JobCategory  string      `json:"job_category"`
	JoNumber     int         `json:"jo_number" validate:"required,gt=0"`
	JobOrderDate string      `json:"job_order_date" validate:"required"`
	MtlRcdDate   string      `json:"mtl_rcd_date" validate:"required"`
	MtlChallanNo int         `json:"mtl_challan_no" validate:"required,gt=0"`
	Item         ItemRequest `json:"item" validate:"required"`
}

// CreateAssemblyRequest registers a batch of work orders sharing one header.
type CreateAssemblyRequest struct {
	JobType      string        `json:"job_type" validate:"required"`
	JobNo        int           `json:"job_no"`
	JobCategory  string        `json:"job_category"`
	JoNumber     int           `json:"jo_number" validate:"required,gt=0"`
	JobOrderDate string        `json:"job_order_date" validate:"required"`
	MtlRcdDate   string        `json:"mtl_rcd_date" validate:"required"`
	MtlChallanNo int           `json:"mtl_challan_no" validate:"required,gt=0"`
	Items        []ItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateCategoryEntryRequest registers a category entry. The misspelled
// drawing date key matches the existing client payloads.
type CreateCategoryEntryRequest struct {
	JobNo               int    `json:"job_no" validate:"required,gt=0"`
	Description         string `json:"description" validate:"required"`
	MaterialType        string `json:"material_type" validate:"required"`
	Bar                 string `json:"bar"`
	Tempp               string `json:"tempp"`
	Qty                 int    `json:"qty" validate:"required,gt=0"`
	ClientName          string `json:"client_name" validate:"required"`
	DrawingReceivedDate string `json:"drawing_recieved_date" validate:"required"`
	Remark              string `json:"remark"`
}

// UpdateCategoryEntryRequest replaces the descriptive fields of an entry.
// Approval and urgency are untouched by updates.
type UpdateCategoryEntryRequest struct {
	Description         string `json:"description" validate:"required"`
	MaterialType        string `json:"material_type" validate:"required"`
	Bar                 string `json:"bar"`
	Tempp               string `json:"tempp"`
	Qty                 int    `json:"qty" validate:"required,gt=0"`
	ClientName          string `json:"client_name" validate:"required"`
	DrawingReceivedDate string `json:"drawing_recieved_date" validate:"required"`
	Remark              string `json:"remark"`
}

// AssignWorkerRequest reserves quantity on a work-order item for a worker
// on a machine.
type AssignWorkerRequest struct {
	JoNo            int    `json:"jo_no" validate:"required,gt=0"`
	ItemNo          int    `json:"item_no"`
	SerialNo        string `json:"serial_no" validate:"required"`
	MachineCategory string `json:"machine_category" validate:"required"`
	MachineSize     string `json:"machine_size"`
	MachineCode     string `json:"machine_code"`
	WorkerName      string `json:"worker_name" validate:"required"`
	QuantityNo      int    `json:"quantity_no" validate:"required,gt=0"`
	AssigningDate   string `json:"assigning_date" validate:"required"`
}

// MarkUrgentRequest escalates every record under a job number.
type MarkUrgentRequest struct {
	UrgentDueDate string `json:"urgent_due_date" validate:"required"`
}

// CreatePOServiceRequest registers a purchase-order service record.
type CreatePOServiceRequest struct {
	PoNo        string `json:"po_no" validate:"required"`
	PoDate      string `json:"po_date" validate:"required"`
	PnNo        string `json:"pn_no"`
	Description string `json:"description" validate:"required"`
	PoQnty      int    `json:"po_qnty" validate:"required,gt=0"`
	JobNo       int    `json:"job_no" validate:"required,gt=0"`
	JoCategory  string `json:"jo_category" validate:"required"`
}

// ErrorResponse is the error envelope every endpoint returns on failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse acknowledges a create with the new record's identifier.
type IDResponse struct {
	ID string `json:"id"`
}
