package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/textnorm"
)

// Root is the fixed first segment of every code.
const Root = "AF"

// Source exposes the existing codes a generator must avoid.
type Source interface {
	AllWithCodePrefix(prefix, excludeID string) []catalog.Product
}

// Input describes the product a code is proposed for.
type Input struct {
	Category string
	Branch   string
	Name     string
	// ExcludeID is the product being edited, so its own code does not count.
	ExcludeID string
}

// Generator computes codes from the static segment tables.
type Generator struct {
	categories table
	branches   table
}

// New creates a generator over the package tables.
func New() *Generator {
	return &Generator{
		categories: newTable(Categories),
		branches:   newTable(Branches),
	}
}

// CategoryCode returns the two-letter segment for a category label.
func (g *Generator) CategoryCode(label string) string {
	return g.categories.lookup(label)
}

// BranchCode returns the two-letter segment for a branch label.
func (g *Generator) BranchCode(label string) string {
	return g.branches.lookup(label)
}

// Prefix returns AF.<category>.<branch>.<name3> or CODE_INSUFFICIENT_INPUT
// when the name has fewer than three letters.
func (g *Generator) Prefix(in Input) (string, error) {
	letters := textnorm.Letters(in.Name)
	if len(letters) < 3 {
		return "", domainerr.New(domainerr.KindCodeInsufficientInput,
			fmt.Sprintf("name %q needs at least 3 letters to build a code", in.Name))
	}
	return strings.Join([]string{Root, g.CategoryCode(in.Category), g.BranchCode(in.Branch), letters[:3]}, "."), nil
}

// Next proposes the next free code under the input's prefix.
// The result is deterministic for a given snapshot and input.
func (g *Generator) Next(src Source, in Input) (string, error) {
	prefix, err := g.Prefix(in)
	if err != nil {
		return "", err
	}
	next := MaxSequence(prefix, src.AllWithCodePrefix(prefix, in.ExcludeID)) + 1
	return Format(prefix, next), nil
}

// Format joins a prefix and a sequence, zero padded to three digits.
func Format(prefix string, seq int) string {
	return fmt.Sprintf("%s.%03d", prefix, seq)
}

// MaxSequence returns the highest numeric trailing segment among products
// under prefix, or 0 when there is none.
func MaxSequence(prefix string, products []catalog.Product) int {
	head := strings.ToUpper(prefix) + "."
	highest := 0
	for _, p := range products {
		code := strings.ToUpper(p.Code)
		if !strings.HasPrefix(code, head) {
			continue
		}
		tail := code[len(head):]
		if i := strings.LastIndex(tail, "."); i >= 0 {
			tail = tail[i+1:]
		}
		n, err := strconv.Atoi(tail)
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}
