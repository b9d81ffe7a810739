package persistence

import (
	"strings"

	"github.com/estuaire/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPagination applies page/page-size offsets to a query
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// applyOrder applies the filter ordering, restricted to an allowlist of
// sortable columns. Unknown columns fall back to the default clause.
func applyOrder(query *gorm.DB, filter shared.Filter, allowed map[string]bool, defaultClause string) *gorm.DB {
	if filter.OrderBy != "" && allowed[filter.OrderBy] {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		return query.Order(filter.OrderBy + " " + dir)
	}
	return query.Order(defaultClause)
}
