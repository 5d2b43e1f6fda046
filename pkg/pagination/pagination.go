// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
// The page size is fixed; clients only choose which page to read.
package pagination

import "math"

const (
	// PageSize is the number of items returned per page.
	PageSize = 10
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// MaxPage is the highest page whose offset still fits a 32-bit int.
	MaxPage = math.MaxInt32 / PageSize
)

// Params holds the requested page and the page size.
type Params struct {
	Page int
	Size int
}

// New returns [Params] for page using the fixed [PageSize].
//
// Pages below 1 are clamped to [DefaultPage] and pages above [MaxPage] to [MaxPage].
func New(page int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	return Params{Page: page, Size: PageSize}
}

// Offset returns the SQL OFFSET value derived from [Page] and [Size].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// Limit returns the SQL LIMIT value.
func (p Params) Limit() int {
	return p.Size
}

// Meta is the paging metadata included in API list responses.
type Meta struct {
	Page      int `json:"page"`
	TotalPage int `json:"total_page"`
	TotalItem int `json:"total_item"`
}

// NewMeta constructs paging metadata for a response.
//
// It automatically calculates TotalPage based on the total count and page size.
func NewMeta(params Params, total int) Meta {
	totalPage := 0
	if params.Size > 0 {
		totalPage = (total + params.Size - 1) / params.Size
	}

	return Meta{
		Page:      params.Page,
		TotalPage: totalPage,
		TotalItem: total,
	}
}
