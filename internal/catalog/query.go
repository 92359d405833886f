// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package catalog

import (
	"errors"
	"fmt"

	"github.com/tomtom215/holocron/internal/models"
)

// Record is one catalog entity as the pipeline sees it.
type Record = models.Record

// Resources served by the catalog.
const (
	ResourcePeople  = "people"
	ResourcePlanets = "planets"
)

// Sort fields accepted by ListPage.
const (
	SortName    = models.FieldName
	SortCreated = models.FieldCreated
)

// DefaultPerPage is the page size used when ListQuery.PerPage is unset.
const DefaultPerPage = 15

var (
	// ErrInvalidSortField is returned when the sort field is not name or created.
	ErrInvalidSortField = errors.New("invalid sort field")

	// ErrUnknownResource is returned for a resource the catalog does not serve.
	ErrUnknownResource = errors.New("unknown resource")
)

// ListQuery describes one page request.
type ListQuery struct {
	Resource   string
	Page       int
	PerPage    int
	Search     string
	SortField  string
	Descending bool
}

// Order returns "desc" or "asc".
func (q ListQuery) Order() string {
	if q.Descending {
		return "desc"
	}
	return "asc"
}

// PageResult is one page of a filtered, sorted collection. Count is the
// filtered size, not the page length. Next and Previous are nil when there
// is no such page.
type PageResult struct {
	Count    int
	Next     *string
	Previous *string
	Results  []Record
}

// ValidateSortField returns nil for name and created. Any other value,
// including "", yields an error wrapping ErrInvalidSortField.
func ValidateSortField(field string) error {
	switch field {
	case SortName, SortCreated:
		return nil
	default:
		return fmt.Errorf("%w: %s. Allowed fields are: %s, %s", ErrInvalidSortField, field, SortName, SortCreated)
	}
}
