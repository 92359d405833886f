// Holocron - Star Wars Catalog Explorer API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holocron

package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// filterByName returns the records whose name contains search, ignoring
// case, in their original order. The result is always a fresh slice so
// callers may reorder it without touching the cached collection.
func filterByName(records []Record, search string) []Record {
	out := make([]Record, 0, len(records))
	if search == "" {
		return append(out, records...)
	}

	needle := strings.ToLower(search)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.String(SortName)), needle) {
			out = append(out, r)
		}
	}
	return out
}

// sortRecords stable-sorts records in place on field. Each record's key is
// computed once, so every comparison uses the same rule.
func sortRecords(records []Record, field string, descending bool) {
	keyed := make([]keyedRecord, len(records))
	for i, r := range records {
		keyed[i] = keyedRecord{key: sortKey(field, r.String(field)), record: r}
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		c := compareKeys(keyed[i].key, keyed[j].key)
		if descending {
			return c > 0
		}
		return c < 0
	})

	for i := range keyed {
		records[i] = keyed[i].record
	}
}

type keyedRecord struct {
	key    string
	record Record
}

// createdLayouts are the timestamp forms accepted in created. Values
// without a zone are taken as UTC.
var createdLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	time.DateOnly,
}

// sortKeyLayout is fixed-width, so keys compare chronologically as strings.
const sortKeyLayout = "2006-01-02T15:04:05.000000000Z"

// sortKey maps a field value to its comparison key. A created value that
// parses becomes a normalized UTC timestamp; anything else is its raw
// string, with a missing value as "".
func sortKey(field, value string) string {
	if field != SortCreated || value == "" {
		return value
	}
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format(sortKeyLayout)
		}
	}
	return value
}

// compareKeys orders two sort keys. Ties keep fetch order under a stable sort.
func compareKeys(a, b string) int {
	return strings.Compare(a, b)
}

// paginate returns the 1-based page of records. A page past the end is empty.
func paginate(records []Record, page, perPage int) []Record {
	if page < 1 || page > pageCount(len(records), perPage) {
		return []Record{}
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(records))
	return records[start:end]
}

// pageCount is the number of non-empty pages.
func pageCount(count, perPage int) int {
	return (count + perPage - 1) / perPage
}

// lastPage is the highest page that holds at least one record, or 1 for an
// empty result.
func lastPage(count, perPage int) int {
	return max(pageCount(count, perPage), 1)
}

// pageLinks builds the relative next and previous URLs for q.
func pageLinks(prefix string, q ListQuery, count int) (next, previous *string) {
	if q.Page < pageCount(count, q.PerPage) {
		next = pageLink(prefix, q, q.Page+1)
	}
	if q.Page > 1 && q.Page-1 <= lastPage(count, q.PerPage) {
		previous = pageLink(prefix, q, q.Page-1)
	}
	return next, previous
}

func pageLink(prefix string, q ListQuery, page int) *string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("sort_by", q.SortField)
	params.Set("order", q.Order())
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	link := strings.TrimRight(prefix, "/") + "/" + q.Resource + "?" + params.Encode()
	return &link
}
