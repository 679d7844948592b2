// Package sku knows the capacity SKU names: which tier sizes exist, how a
// size is read out of a name, and what the reference list prices are.
package sku

import (
	"regexp"
	"strconv"
	"strings"

	"capacity-cost/internal/errors"
)

// DefaultNames is the enumeration of purchasable tier sizes
var DefaultNames = []string{
	"F2", "F4", "F8", "F16", "F32", "F64", "F128", "F256", "F512", "F1024", "F2048",
}

var tierPattern = regexp.MustCompile(`^\s*[fF]\s*(\d+)\s*$`)

// ExtractTierSize reads the tier size out of a name such as "F64", " f 128 ".
// The second result is false when the name does not match.
func ExtractTierSize(name string) (int, bool) {
	m := tierPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Canonical formats a tier size as a SKU name
func Canonical(size int) string {
	return "F" + strconv.Itoa(size)
}

// Catalog is an ordered set of valid SKU names with a fallback
type Catalog struct {
	names      []string
	bySize     map[int]string
	defaultSKU string
}

// NewCatalog validates names and builds a catalog. An empty defaultSKU
// selects the first name.
func NewCatalog(names []string, defaultSKU string) (*Catalog, error) {
	if len(names) == 0 {
		return nil, errors.Config("sku catalog is empty")
	}

	c := &Catalog{
		names:  make([]string, 0, len(names)),
		bySize: make(map[int]string, len(names)),
	}
	for _, name := range names {
		size, ok := ExtractTierSize(name)
		if !ok || size <= 0 {
			return nil, errors.Newf(errors.TypeConfig, "invalid sku name %q", name)
		}
		if _, dup := c.bySize[size]; dup {
			return nil, errors.Newf(errors.TypeConfig, "duplicate sku %q", name)
		}
		canonical := Canonical(size)
		c.bySize[size] = canonical
		c.names = append(c.names, canonical)
	}

	if defaultSKU == "" {
		c.defaultSKU = c.names[0]
		return c, nil
	}
	size, ok := ExtractTierSize(defaultSKU)
	if !ok {
		return nil, errors.Newf(errors.TypeConfig, "invalid default sku %q", defaultSKU)
	}
	canonical, ok := c.bySize[size]
	if !ok {
		return nil, errors.Newf(errors.TypeConfig, "default sku %q is not in the catalog", defaultSKU)
	}
	c.defaultSKU = canonical
	return c, nil
}

// DefaultCatalog returns the F2..F2048 catalog with F2 as fallback
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultNames, "")
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the SKU names in catalog order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Default returns the fallback SKU
func (c *Catalog) Default() string {
	return c.defaultSKU
}

// Contains reports whether name denotes a catalog SKU
func (c *Catalog) Contains(name string) bool {
	size, ok := ExtractTierSize(name)
	if !ok {
		return false
	}
	_, ok = c.bySize[size]
	return ok
}

// Normalize maps name to its canonical catalog spelling, or to the default
// SKU when the name is not recognized.
func (c *Catalog) Normalize(name string) string {
	if size, ok := ExtractTierSize(name); ok {
		if canonical, ok := c.bySize[size]; ok {
			return canonical
		}
	}
	return c.defaultSKU
}

// String lists the catalog
func (c *Catalog) String() string {
	return strings.Join(c.names, ", ")
}
