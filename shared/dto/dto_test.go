package dto_test

import (
	"hostel/shared/constant"
	"hostel/shared/dto"
	"hostel/shared/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 7, 1, 9, 30, 0, 0, time.UTC)

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: createdAt.Add(time.Hour),
		CreatedBy:  "warden",
		ModifiedBy: "warden",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, createdAt.Add(time.Hour).Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "warden", metadata.CreatedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=number&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "number", SortDir: dto.SortDirDesc},
		},
		{
			name:           "defaults applied",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit capped",
			query:    "limit=500",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			query:          "page=-1&limit=abc&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Restrict(t *testing.T) {
	allowed := dto.QueryParams{SortBy: "capacity", SortDir: dto.SortDirDesc}
	allowed.Restrict("number", "number", "capacity")

	assert.Equal(t, "capacity", allowed.SortBy)
	assert.Equal(t, dto.SortDirDesc, allowed.SortDir)

	injected := dto.QueryParams{SortBy: "number; DROP TABLE rooms", SortDir: dto.SortDirDesc}
	injected.Restrict("number", "number", "capacity")

	assert.Equal(t, "number", injected.SortBy)
	assert.Equal(t, dto.SortDirAsc, injected.SortDir)

	missingDir := dto.QueryParams{SortBy: "number"}
	missingDir.Restrict("number", "number")

	assert.Equal(t, dto.SortDirAsc, missingDir.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []dto.Clause{
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "room_requests"},
			dto.Filter{Field: "student_id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			dto.Filter{Field: "processed_at", Operator: dto.FilterIsNull, Table: "room_requests"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_requests.status = :status AND student_id IN (:student_id_0, :student_id_1) AND room_requests.processed_at IS NULL)", where)
	assert.Equal(t, map[string]any{"status": "pending", "student_id_0": "a", "student_id_1": "b"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterGroup_NestedSkipsEmptyAndDefaultsToAnd(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []dto.Clause{
			dto.FilterGroup{},
			dto.Filter{Field: "student_id", Value: "s1", Operator: dto.FilterOperatorEq, Table: "fees"},
			dto.Filter{Field: "paid", Value: false, Operator: dto.FilterOperatorEq, Table: "fees"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(fees.student_id = :student_id AND fees.paid = :paid)", where)
	assert.Len(t, args, 2)
}

func TestFilter_PlainAndComparison(t *testing.T) {
	plain := dto.Filter{Operator: dto.FilterPlainQuery, Value: "occupied < capacity"}
	where, _ := plain.GetWhereClause()
	assert.Equal(t, "(occupied < capacity)", where)

	from := dto.Filter{Field: "date", ArgName: "date_from", Value: "2024-06-01", Operator: dto.FilterOperatorGreaterEq}
	where, args := from.GetWhereClause()
	assert.Equal(t, "date >= :date_from", where)
	assert.Equal(t, "2024-06-01", args["date_from"])
}

func TestFilter_LikeEscapesWildcards(t *testing.T) {
	filter := dto.Filter{Field: "number", Value: "A_1%", Operator: dto.FilterOperatorLike, Table: "rooms"}

	where, args := filter.GetWhereClause()

	assert.Equal(t, "LOWER(rooms.number) LIKE LOWER(:number)", where)
	assert.Equal(t, `%A\_1\%%`, args["number"])
}

func TestFilter_In(t *testing.T) {
	tests := []struct {
		name         string
		value        any
		expected     string
		expectedArgs map[string]any
	}{
		{name: "empty slice matches nothing", value: []string{}, expected: "FALSE", expectedArgs: map[string]any{}},
		{name: "scalar is bound", value: "room-1", expected: "rooms.id IN (:id)", expectedArgs: map[string]any{"id": "room-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := dto.Filter{Field: "id", Value: tt.value, Operator: dto.FilterOperatorIn, Table: "rooms"}

			where, args := filter.GetWhereClause()

			assert.Equal(t, tt.expected, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilter_EqFold(t *testing.T) {
	where, args := dto.Filter{Field: "username", Value: "Warden", Operator: dto.FilterOperatorEqFold, Table: "users"}.GetWhereClause()

	assert.Equal(t, "LOWER(users.username) = LOWER(:username)", where)
	assert.Equal(t, map[string]any{"username": "Warden"}, args)
}
