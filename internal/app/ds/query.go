package ds

// ShipFilter is the query-service filter set. All fields are optional and
// combined with AND.
type ShipFilter struct {
	Manufacturer     string
	Size             string
	Classification   string
	ProductionStatus string
	Search           string
	IncludeStale     bool
	Page             int
	PageSize         int
}

// ShipPage is one page of filtered catalog results.
type ShipPage struct {
	Items      []ShipDocument `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}
