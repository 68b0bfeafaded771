package importer

import (
	"fmt"
	"strings"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/textnorm"
	"warehouse-counter/core/utils"

	"github.com/shopspring/decimal"
)

// Column identifies a known grid column.
type Column string

const (
	ColumnName     Column = "name"
	ColumnCategory Column = "category"
	ColumnBranch   Column = "branch"
	ColumnQuantity Column = "quantity"
	ColumnCode     Column = "code"
	ColumnAlias    Column = "alias"
)

// headers maps folded header labels to columns.
var headers = map[string]Column{
	"name":      ColumnName,
	"nombre":    ColumnName,
	"producto":  ColumnName,
	"category":  ColumnCategory,
	"categoria": ColumnCategory,
	"branch":    ColumnBranch,
	"sucursal":  ColumnBranch,
	"quantity":  ColumnQuantity,
	"cantidad":  ColumnQuantity,
	"qty":       ColumnQuantity,
	"code":      ColumnCode,
	"codigo":    ColumnCode,
	"alias":     ColumnAlias,
	"barcode":   ColumnAlias,
	"ean":       ColumnAlias,
}

// Row is one parsed data row. Line is 1-based and counts the header.
type Row struct {
	Line     int             `json:"line"`
	Code     string          `json:"code,omitempty"`
	Alias    string          `json:"alias,omitempty"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Branch   string          `json:"branch"`
	Quantity decimal.Decimal `json:"quantity"`
}

// Product returns the row as a catalog product without id.
func (r Row) Product() catalog.Product {
	return catalog.Product{
		Code:          r.Code,
		Alias:         r.Alias,
		Name:          r.Name,
		Category:      r.Category,
		Branch:        r.Branch,
		TotalQuantity: r.Quantity,
	}
}

// Issue is a row that was not imported.
type Issue struct {
	Line   int    `json:"line"`
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason"`
}

// Parse reads a grid whose first non-empty row is the header. Rows that
// cannot become products are returned as issues; a grid without a name
// column is an INVALID_INPUT error.
func Parse(grid [][]any) ([]Row, []Issue, error) {
	start := -1
	for i, cells := range grid {
		if !blank(cells) {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, nil, domainerr.New(domainerr.KindInvalidInput, "import has no header row")
	}

	columns := mapHeader(grid[start])
	if _, ok := columns[ColumnName]; !ok {
		return nil, nil, domainerr.New(domainerr.KindInvalidInput, "import header has no name column")
	}

	var rows []Row
	var issues []Issue
	for i := start + 1; i < len(grid); i++ {
		cells := grid[i]
		if blank(cells) {
			continue
		}
		line := i + 1

		row := Row{
			Line:     line,
			Code:     strings.ToUpper(cell(cells, columns, ColumnCode)),
			Alias:    cell(cells, columns, ColumnAlias),
			Name:     textnorm.ProductName(cell(cells, columns, ColumnName)),
			Category: cell(cells, columns, ColumnCategory),
			Branch:   cell(cells, columns, ColumnBranch),
		}
		if row.Name == "" {
			issues = append(issues, Issue{Line: line, Code: row.Code, Reason: "missing name"})
			continue
		}

		if cell(cells, columns, ColumnQuantity) != "" {
			q, err := utils.ToDecimal(raw(cells, columns, ColumnQuantity))
			if err != nil {
				issues = append(issues, Issue{Line: line, Code: row.Code, Reason: "invalid quantity: " + err.Error()})
				continue
			}
			if q.IsNegative() {
				issues = append(issues, Issue{Line: line, Code: row.Code, Reason: fmt.Sprintf("negative quantity %s", q)})
				continue
			}
			row.Quantity = q
		}

		rows = append(rows, row)
	}
	return rows, issues, nil
}

func mapHeader(cells []any) map[Column]int {
	out := make(map[Column]int)
	for i, c := range cells {
		col, ok := headers[textnorm.Fold(utils.ToString(c))]
		if !ok {
			continue
		}
		if _, dup := out[col]; !dup {
			out[col] = i
		}
	}
	return out
}

func raw(cells []any, columns map[Column]int, col Column) any {
	i, ok := columns[col]
	if !ok || i >= len(cells) {
		return nil
	}
	return cells[i]
}

func cell(cells []any, columns map[Column]int, col Column) string {
	v := raw(cells, columns, col)
	if v == nil {
		return ""
	}
	return strings.TrimSpace(utils.ToString(v))
}

func blank(cells []any) bool {
	for _, c := range cells {
		if c != nil && strings.TrimSpace(utils.ToString(c)) != "" {
			return false
		}
	}
	return true
}
