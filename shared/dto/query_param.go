package dto

import (
	"guestlist/shared/constant"
	"net/http"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the sort_by and sort_dir query parameters.
// The direction is upper-cased but not checked; see ValidDirection.
func (q *QueryParams) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	q.SortBy = strings.TrimSpace(queryParams.Get(constant.RequestParamSortBy))
	q.SortDir = strings.ToUpper(strings.TrimSpace(queryParams.Get(constant.RequestParamSortDir)))
}

// ValidDirection reports whether SortDir is empty or one of ASC and DESC.
func (q *QueryParams) ValidDirection() bool {
	return q.SortDir == "" || q.SortDir == SortDirAsc || q.SortDir == SortDirDesc
}
