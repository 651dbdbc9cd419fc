// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package gen

import (
	_ "embed"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hashicorp/errwrap"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl"
	"github.com/hashicorp/hcl/hcl/ast"
	"github.com/samber/lo"
)

// DefaultMatrix is the matrix the root package is generated from.
//
//go:embed matrix.hcl
var DefaultMatrix string

// MaxInputs is the largest arity a unit may declare.
const MaxInputs = 3

// resultParam is the type parameter every unit uses for its result.
const resultParam = "V"

// Kind is one element type of the matrix.
type Kind struct {
	Name string `mapstructure:"-"`
	Type string `mapstructure:"type"`
	Doc  string `mapstructure:"doc"`
}

// Unit is one generic unit type that receives an AndThenTo method per kind.
type Unit struct {
	Name     string   `mapstructure:"-"`
	Receiver string   `mapstructure:"receiver"`
	Inputs   []string `mapstructure:"inputs"`
	// Helper is the unexported composition function the method delegates to.
	Helper string `mapstructure:"helper"`
}

// TypeArgs returns the type argument list of the unit's receiver, e.g.
// "A, B, V".
func (u *Unit) TypeArgs() string {
	return strings.Join(append(append([]string{}, u.Inputs...), resultParam), ", ")
}

// ResultArgs returns the type argument list of the unit produced by
// AndThenTo<k>, e.g. "A, B, int32".
func (u *Unit) ResultArgs(k *Kind) string {
	return strings.Join(append(append([]string{}, u.Inputs...), k.Type), ", ")
}

// Matrix is the parsed contents of a matrix file.
type Matrix struct {
	Kinds []*Kind
	Units []*Unit
}

// LoadMatrixFile loads the matrix from the given file.
func LoadMatrixFile(path string) (*Matrix, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMatrix(string(d))
}

// ParseMatrix parses and validates an HCL matrix.
func ParseMatrix(d string) (*Matrix, error) {
	obj, err := hcl.Parse(d)
	if err != nil {
		return nil, err
	}

	list, ok := obj.Node.(*ast.ObjectList)
	if !ok {
		return nil, fmt.Errorf("error parsing: file doesn't contain a root object")
	}

	if err := checkTopLevel(list); err != nil {
		return nil, err
	}

	var result Matrix
	if o := list.Filter("kind"); len(o.Items) > 0 {
		if err := parseKinds(&result.Kinds, o); err != nil {
			return nil, errwrap.Wrapf("error parsing 'kind': {{err}}", err)
		}
	}
	if o := list.Filter("unit"); len(o.Items) > 0 {
		if err := parseUnits(&result.Units, o); err != nil {
			return nil, errwrap.Wrapf("error parsing 'unit': {{err}}", err)
		}
	}

	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}

func checkTopLevel(list *ast.ObjectList) error {
	var result error
	for _, item := range list.Items {
		if len(item.Keys) == 0 {
			continue
		}
		switch key := item.Keys[0].Token.Value().(string); key {
		case "kind", "unit":
		default:
			result = multierror.Append(result, fmt.Errorf("unknown block %q", key))
		}
	}
	return result
}

func parseKinds(result *[]*Kind, list *ast.ObjectList) error {
	var errs error
	for _, item := range list.Items {
		k := new(Kind)
		name, err := decodeBlock(item, "kind", k)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		k.Name = name
		*result = append(*result, k)
	}
	return errs
}

func parseUnits(result *[]*Unit, list *ast.ObjectList) error {
	var errs error
	for _, item := range list.Items {
		u := new(Unit)
		name, err := decodeBlock(item, "unit", u)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		u.Name = name
		*result = append(*result, u)
	}
	return errs
}

// decodeBlock decodes the body of a labeled block into out, rejecting keys
// out does not declare, and returns the block label.
func decodeBlock(item *ast.ObjectItem, blockName string, out interface{}) (string, error) {
	if len(item.Keys) == 0 {
		return "", fmt.Errorf("%s block is missing a name", blockName)
	}
	key := item.Keys[0].Token.Value().(string)

	var m map[string]interface{}
	if err := hcl.DecodeObject(&m, item.Val); err != nil {
		return "", multierror.Prefix(err, fmt.Sprintf("%s.%s:", blockName, key))
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return "", err
	}
	if err := dec.Decode(m); err != nil {
		return "", multierror.Prefix(err, fmt.Sprintf("%s.%s:", blockName, key))
	}
	return key, nil
}

// Validate reports every problem with m at once.
func (m *Matrix) Validate() error {
	var result error
	if len(m.Kinds) == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one kind is required"))
	}
	for _, k := range m.Kinds {
		if err := k.validate(); err != nil {
			result = multierror.Append(result, multierror.Prefix(err, fmt.Sprintf("kind.%s:", k.Name)))
		}
	}
	for _, k := range lo.FindDuplicatesBy(m.Kinds, func(k *Kind) string { return k.Name }) {
		result = multierror.Append(result, fmt.Errorf("duplicate kind %q", k.Name))
	}
	for _, u := range m.Units {
		if err := u.validate(); err != nil {
			result = multierror.Append(result, multierror.Prefix(err, fmt.Sprintf("unit.%s:", u.Name)))
		}
	}
	for _, u := range lo.FindDuplicatesBy(m.Units, func(u *Unit) string { return u.Name }) {
		result = multierror.Append(result, fmt.Errorf("duplicate unit %q", u.Name))
	}
	return result
}

func (k *Kind) validate() error {
	var result error
	if !isExportedIdent(k.Name) {
		result = multierror.Append(result, fmt.Errorf("name %q is not an exported Go identifier", k.Name))
	}
	switch {
	case k.Type == "":
		result = multierror.Append(result, fmt.Errorf("type is required"))
	default:
		if _, err := parser.ParseExpr(k.Type); err != nil {
			result = multierror.Append(result, errwrap.Wrapf(fmt.Sprintf("type %q: {{err}}", k.Type), err))
		}
	}
	if k.Doc == "" {
		k.Doc = fmt.Sprintf("%s aliases specialize the units to %s.", k.Name, k.Type)
	}
	return result
}

func (u *Unit) validate() error {
	var result error
	if !isExportedIdent(u.Name) {
		result = multierror.Append(result, fmt.Errorf("name %q is not an exported Go identifier", u.Name))
	}
	if len(u.Inputs) > MaxInputs {
		result = multierror.Append(result, fmt.Errorf("%d inputs declared, at most %d are supported", len(u.Inputs), MaxInputs))
	}
	for _, in := range u.Inputs {
		if !token.IsIdentifier(in) {
			result = multierror.Append(result, fmt.Errorf("input %q is not a Go identifier", in))
		}
		if in == resultParam {
			result = multierror.Append(result, fmt.Errorf("input %q is reserved for the result", in))
		}
	}
	for _, in := range lo.FindDuplicates(u.Inputs) {
		result = multierror.Append(result, fmt.Errorf("duplicate input %q", in))
	}
	switch {
	case !token.IsIdentifier(u.Receiver):
		result = multierror.Append(result, fmt.Errorf("receiver %q is not a Go identifier", u.Receiver))
	case u.Receiver == "after" || lo.Contains(u.Inputs, u.Receiver):
		result = multierror.Append(result, fmt.Errorf("receiver %q collides with a parameter name", u.Receiver))
	}
	if !token.IsIdentifier(u.Helper) {
		result = multierror.Append(result, fmt.Errorf("helper %q is not a Go identifier", u.Helper))
	}
	return result
}

func isExportedIdent(s string) bool {
	return token.IsIdentifier(s) && token.IsExported(s)
}
