package service

// Pagination is the slice descriptor attached to every listing response
type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Skip    int   `json:"skip"`
	HasMore bool  `json:"has_more"`
}

// NewPagination computes the descriptor for a returned page. HasMore holds
// exactly when skip + len(returned) < total.
func NewPagination(total int64, limit, skip, returned int) Pagination {
	return Pagination{
		Total:   total,
		Limit:   limit,
		Skip:    skip,
		HasMore: int64(skip+returned) < total,
	}
}

// clampPage applies listing defaults and caps
func clampPage(limit, skip, defaultLimit int) (int, int) {
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}
