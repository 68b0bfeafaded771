package checks

import (
	"regexp"
	"sort"
	"strings"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/codegen"
)

// generatedCode matches AF.<cat>.<branch>.<name3>.<seq>.
var generatedCode = regexp.MustCompile(`^` + codegen.Root + `\.[A-Z]{2}\.[A-Z]{2}\.[A-Z]{3}\.\d{3,}$`)

// Finding is one product that failed a check.
type Finding struct {
	ProductID string `json:"product_id"`
	Code      string `json:"code"`
	Detail    string `json:"detail"`
}

// CodeReport is the result of the code checks.
type CodeReport struct {
	// Duplicates maps a code to the ids sharing it.
	Duplicates map[string][]string `json:"duplicates"`
	// Malformed are codes with the generated root that do not follow its layout.
	Malformed []Finding `json:"malformed"`
	// Empty are products without a code.
	Empty []Finding `json:"empty"`
	// Manual counts codes entered by hand (not generated).
	Manual int `json:"manual"`
}

// Clean reports whether no code problem was found.
func (r CodeReport) Clean() bool {
	return len(r.Duplicates) == 0 && len(r.Malformed) == 0 && len(r.Empty) == 0
}

// CheckCodes looks for duplicate, malformed and missing codes.
func CheckCodes(products []catalog.Product) CodeReport {
	report := CodeReport{
		Duplicates: map[string][]string{},
		Malformed:  []Finding{},
		Empty:      []Finding{},
	}

	owners := make(map[string][]string)
	for _, p := range products {
		code := strings.ToUpper(strings.TrimSpace(p.Code))
		if code == "" {
			report.Empty = append(report.Empty, Finding{ProductID: p.ID, Detail: "product has no code"})
			continue
		}
		owners[code] = append(owners[code], p.ID)

		switch {
		case generatedCode.MatchString(code):
		case strings.HasPrefix(code, codegen.Root+"."):
			report.Malformed = append(report.Malformed, Finding{ProductID: p.ID, Code: p.Code, Detail: "code does not follow " + codegen.Root + ".XX.XX.XXX.NNN"})
		default:
			report.Manual++
		}
	}

	for code, ids := range owners {
		if len(ids) > 1 {
			sort.Strings(ids)
			report.Duplicates[code] = ids
		}
	}
	return report
}

// CheckQuantities reports products breaking 0 <= counted <= total.
func CheckQuantities(products []catalog.Product) []Finding {
	out := []Finding{}
	for _, p := range products {
		switch {
		case p.TotalQuantity.IsNegative():
			out = append(out, Finding{ProductID: p.ID, Code: p.Code, Detail: "negative total " + p.TotalQuantity.String()})
		case p.CountedQuantity.IsNegative():
			out = append(out, Finding{ProductID: p.ID, Code: p.Code, Detail: "negative count " + p.CountedQuantity.String()})
		case p.CountedQuantity.GreaterThan(p.TotalQuantity):
			out = append(out, Finding{ProductID: p.ID, Code: p.Code,
				Detail: "counted " + p.CountedQuantity.String() + " exceeds total " + p.TotalQuantity.String()})
		}
	}
	return out
}
