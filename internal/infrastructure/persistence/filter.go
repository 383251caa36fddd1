package persistence

import (
	"fmt"
	"strings"

	"github.com/salon/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies pagination, ordering and simple equality filters
// to a query. Search matching is left to the individual repositories
// since the searched columns differ per entity.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		if isSafeColumn(key) {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}
	}

	if filter.OrderBy != "" && isSafeColumn(filter.OrderBy) {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", filter.OrderBy, dir))
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit())
	}

	return query
}

// applyCountFilter applies only the equality filters, for Count queries
func applyCountFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		if isSafeColumn(key) {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}
	}
	return query
}

// isSafeColumn guards against SQL injection through column names
func isSafeColumn(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return false
		}
	}
	return true
}
