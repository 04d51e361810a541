// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

// Package pagination provides the shared page abstraction for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested (page number, page
// size, sort column, sort direction) and how a bounded slice of an ordered
// result set is delivered back, together with the metadata describing its
// position within the whole.
package pagination

import "strings"

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// DefaultPageSize is the number of items per page if not specified.
	DefaultPageSize = 10
	// MaxPageSize is the upper bound for items per page to prevent system abuse.
	MaxPageSize = 100

	// SortAscending and SortDescending are the canonical sort directions.
	SortAscending  = "asc"
	SortDescending = "desc"
)

// Options holds the parsed paging and sorting parameters of a list request.
type Options struct {
	Page     int
	PageSize int
	SortBy   string
	SortDir  string
}

// Offset returns the SQL OFFSET value derived from Page and PageSize.
func (o Options) Offset() int {
	if o.Page <= 1 {
		return 0
	}
	return (o.Page - 1) * o.PageSize
}

// Normalize clamps the options into their valid ranges and canonicalizes the
// sort direction. An unrecognized direction falls back to ascending.
func (o Options) Normalize() Options {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.PageSize > MaxPageSize {
		o.PageSize = MaxPageSize
	}
	if strings.EqualFold(o.SortDir, SortDescending) {
		o.SortDir = SortDescending
	} else {
		o.SortDir = SortAscending
	}
	return o
}

// Page is one page of a larger ordered result set.
//
// # Invariants
//
// Pages are 1-indexed. len(Items) never exceeds PageSize, and TotalPages is
// always ceil(TotalItems / PageSize). A page number beyond TotalPages yields
// an empty Items slice with the totals intact.
type Page[T any] struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
	TotalItems int `json:"totalItems"`
	Items      []T `json:"items"`
}

// New constructs a Page from one slice of items and the total item count.
//
// It computes TotalPages from the total count and page size.
func New[T any](page, pageSize, totalItems int, items []T) Page[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalItems + pageSize - 1) / pageSize
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
		Items:      items,
	}
}

// Empty returns a page with no items for the given options and a zero total.
func Empty[T any](opts Options) Page[T] {
	return New[T](opts.Page, opts.PageSize, 0, nil)
}
