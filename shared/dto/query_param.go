package dto

import (
	"hostel/shared/constant"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams is the paging and ordering of a list endpoint.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// Malformed values are ignored. With paged set, a missing page or limit gets
// the default. The limit is capped at constant.MaxValueLimit either way.
func (q *QueryParams) FromRequest(r *http.Request, paged bool) {
	values := r.URL.Query()

	if page, ok := positiveInt(values, constant.RequestParamPage); ok {
		q.Page = page
	}

	if limit, ok := positiveInt(values, constant.RequestParamLimit); ok {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := values.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	switch dir := strings.ToUpper(values.Get(constant.RequestParamSortDir)); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	}

	if !paged {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Restrict drops a sort column that is not in allowed and falls back to
// fallback ordered ascending. SortBy is interpolated into SQL so every
// handler must call this before passing params to a repository.
func (q *QueryParams) Restrict(fallback string, allowed ...string) {
	if q.SortBy != "" && slices.Contains(allowed, q.SortBy) {
		if q.SortDir == "" {
			q.SortDir = SortDirAsc
		}

		return
	}

	q.SortBy = fallback
	q.SortDir = SortDirAsc
}

func positiveInt(values url.Values, key string) (int, bool) {
	n, err := strconv.Atoi(values.Get(key))
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}
