// Package scenario loads comparison scenarios from files.
// HCL, YAML and JSON are supported; all three decode into a config.Preset
// so a file can be applied to a workspace exactly like a built-in preset.
package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"capacity-cost/internal/config"
	"capacity-cost/internal/errors"
	"capacity-cost/internal/logging"
)

// Format is a scenario file syntax
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DetectFormat picks the syntax from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.NotSupported("scenario file type " + filepath.Ext(path)).WithContext("path", path)
}

// Load reads and decodes a scenario file
func Load(path string) (config.Preset, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return config.Preset{}, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return config.Preset{}, errors.Wrapf(errors.TypeInput, err, "read scenario %s", path)
	}
	p, err := Decode(f, path, src)
	if err != nil {
		return config.Preset{}, err
	}
	logging.Debug("scenario loaded",
		zap.String("path", path),
		zap.String("format", string(f)),
		zap.Int("capacities", len(p.Capacities)))
	return p, nil
}

// Decode parses src in the given format. name is used in error messages.
func Decode(f Format, name string, src []byte) (config.Preset, error) {
	switch f {
	case FormatHCL:
		return decodeHCL(name, src)
	case FormatYAML:
		var p config.Preset
		dec := yaml.NewDecoder(bytes.NewReader(src))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return config.Preset{}, errors.Parsing("decode "+name, err)
		}
		return p, nil
	case FormatJSON:
		var p config.Preset
		dec := json.NewDecoder(bytes.NewReader(src))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return config.Preset{}, errors.Parsing("decode "+name, err)
		}
		return p, nil
	}
	return config.Preset{}, errors.NotSupported("scenario format " + string(f))
}

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "currency"},
		{Name: "region"},
		{Name: "viewers"},
		{Name: "builders"},
		{Name: "license_cost"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "capacity", LabelNames: []string{"sku"}},
	},
}

var capacitySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "monthly_cost", Required: true},
	},
}

func decodeHCL(name string, src []byte) (config.Preset, error) {
	var p config.Preset

	file, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return p, diagError(name, diags)
	}
	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return p, diagError(name, diags)
	}

	for attrName, attr := range content.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return p, diagError(name, diags)
		}
		var err error
		switch attrName {
		case "currency":
			p.Currency, err = ctyString(val)
		case "region":
			p.Region, err = ctyString(val)
		case "viewers":
			p.Viewers, err = ctyInt(val)
		case "builders":
			p.Builders, err = ctyInt(val)
		case "license_cost":
			p.LicenseCost, err = ctyDecimal(val)
		}
		if err != nil {
			return p, errors.Parsing(fmt.Sprintf("%s:%d: %s", name, attr.Range.Start.Line, attrName), err)
		}
	}

	for _, block := range content.Blocks {
		body, diags := block.Body.Content(capacitySchema)
		if diags.HasErrors() {
			return p, diagError(name, diags)
		}
		attr := body.Attributes["monthly_cost"]
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return p, diagError(name, diags)
		}
		cost, err := ctyDecimal(val)
		if err != nil {
			return p, errors.Parsing(fmt.Sprintf("%s:%d: capacity %q monthly_cost", name, attr.Range.Start.Line, block.Labels[0]), err)
		}
		p.Capacities = append(p.Capacities, config.PresetCapacity{
			SKU:         block.Labels[0],
			MonthlyCost: cost,
		})
	}
	return p, nil
}

func diagError(name string, diags hcl.Diagnostics) error {
	line := 0
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil {
			line = d.Subject.Start.Line
			break
		}
	}
	return errors.Parsing("parse "+name, diags).WithContext("line", line)
}

func ctyString(v cty.Value) (string, error) {
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.String {
		return "", fmt.Errorf("expected a string, got %s", v.Type().FriendlyName())
	}
	return v.AsString(), nil
}

func ctyDecimal(v cty.Value) (decimal.Decimal, error) {
	if v.IsNull() || !v.IsKnown() || v.Type() != cty.Number {
		return decimal.Zero, fmt.Errorf("expected a number, got %s", v.Type().FriendlyName())
	}
	return decimal.NewFromString(v.AsBigFloat().Text('f', -1))
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

func ctyInt(v cty.Value) (int64, error) {
	d, err := ctyDecimal(v)
	if err != nil {
		return 0, err
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("expected a whole number, got %s", d)
	}
	if d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		return 0, fmt.Errorf("%s is out of range", d)
	}
	return d.IntPart(), nil
}
