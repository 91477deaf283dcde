package view_models

import (
	"strconv"

	"beveragebuddy/internal/models/request_models"
)

type CategoryRow struct {
	ID          uint
	Name        string
	ReviewCount int64
}

// CategoryColumns lists the grid columns of the categories page.
var CategoryColumns = []Column[CategoryRow]{
	{Header: "Category", Value: func(r CategoryRow) string { return r.Name }, Link: true},
	{Header: "Beverages", Value: func(r CategoryRow) string { return strconv.FormatInt(r.ReviewCount, 10) }},
}

type CategoryDialog = Dialog[request_models.CategoryForm]

type CategoryPage struct {
	Page
	Columns []Column[CategoryRow]
	Rows    []CategoryRow
	Dialog  *CategoryDialog
}
