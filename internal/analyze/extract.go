package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path"
	"sort"
	"strconv"
	"strings"

	"tuplegen/internal/diagnostic"
)

// ExtractFile scans one parsed file for type declarations carrying a
// tuplegen directive and extracts a StructModel for each. A rejected
// declaration yields a diagnostic instead of a model; other
// declarations in the same file are unaffected.
func ExtractFile(fset *token.FileSet, file *ast.File, pkg PackageRef) ([]*StructModel, diagnostic.Diagnostics) {
	var (
		models []*StructModel
		diags  diagnostic.Diagnostics
	)

	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}

		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				// For an unparenthesized declaration the doc comment
				// hangs off the GenDecl, not the TypeSpec. Grouped
				// declarations keep per-spec docs only, so a block
				// comment never annotates every type in the block.
				doc = gd.Doc
			}

			dir, found := findDirective(doc)
			if !found {
				continue
			}

			if dir.Strategy == 0 {
				diags.AddWarning(diagnostic.CodeUnknownDirective,
					fmt.Sprintf("unknown directive %q, type skipped", dir.Raw),
					ts.Name.Name, "", fset.Position(dir.Pos))

				continue
			}

			model, diag := extractStruct(fset, file, ts, pkg, dir.Strategy)
			if diag != nil {
				diags.Add(*diag)

				continue
			}

			models = append(models, model)
		}
	}

	return models, diags
}

// extractStruct builds the field model for a single annotated type
// declaration, or a diagnostic when the declaration is not a struct
// with named fields.
func extractStruct(
	fset *token.FileSet,
	file *ast.File,
	ts *ast.TypeSpec,
	pkg PackageRef,
	strategy Strategy,
) (*StructModel, *diagnostic.Diagnostic) {
	name := ts.Name.Name

	if ts.Assign.IsValid() {
		diag := diagnostic.Errorf(diagnostic.CodeUnsupportedShape, name, "",
			fset.Position(ts.Pos()),
			"%s selects a type alias; only struct types with named fields are supported", strategy.Directive())

		return nil, &diag
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		diag := diagnostic.Errorf(diagnostic.CodeUnsupportedShape, name, "",
			fset.Position(ts.Pos()),
			"%s requires a struct type with named fields, got %s", strategy.Directive(), types.ExprString(ts.Type))

		return nil, &diag
	}

	model := &StructModel{
		Name:     name,
		Pkg:      pkg,
		Strategy: strategy,
		Pos:      fset.Position(ts.Pos()),
	}

	var typeExprs []ast.Expr

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			diag := diagnostic.Errorf(diagnostic.CodeUnsupportedShape, name,
				types.ExprString(field.Type), fset.Position(field.Pos()),
				"embedded fields are not supported")

			return nil, &diag
		}

		// A declaration like "a, b int" declares one field per name,
		// in source order, all sharing the type expression.
		for _, fieldName := range field.Names {
			model.Fields = append(model.Fields, FieldDescriptor{
				Name:    fieldName.Name,
				Expr:    field.Type,
				TypeKey: types.ExprString(field.Type),
				Index:   len(model.Fields),
				Pos:     fset.Position(fieldName.Pos()),
			})
		}

		typeExprs = append(typeExprs, field.Type)
	}

	if ts.TypeParams != nil {
		model.TypeParams, model.TypeArgs = renderTypeParams(ts.TypeParams)
		for _, param := range ts.TypeParams.List {
			typeExprs = append(typeExprs, param.Type)
		}
	}

	model.Imports = collectImports(file, typeExprs)

	return model, nil
}

// renderTypeParams renders a type parameter list for passthrough onto
// the generated function, plus the matching argument list for the
// instantiated struct type.
func renderTypeParams(params *ast.FieldList) (decl, args string) {
	var declParts, argParts []string

	for _, param := range params.List {
		var names []string
		for _, name := range param.Names {
			names = append(names, name.Name)
			argParts = append(argParts, name.Name)
		}

		declParts = append(declParts, strings.Join(names, ", ")+" "+types.ExprString(param.Type))
	}

	return "[" + strings.Join(declParts, ", ") + "]", "[" + strings.Join(argParts, ", ") + "]"
}

// collectImports resolves the package qualifiers referenced by the
// given type expressions against the declaring file's import list.
// Unresolvable qualifiers (dot imports, packages whose name differs
// from the path base and carry no alias) are skipped.
func collectImports(file *ast.File, exprs []ast.Expr) []ImportRef {
	byQualifier := fileImports(file)

	seen := make(map[string]ImportRef)

	for _, expr := range exprs {
		ast.Inspect(expr, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			qualifier, ok := sel.X.(*ast.Ident)
			if !ok {
				return true
			}

			if ref, ok := byQualifier[qualifier.Name]; ok {
				seen[ref.Path] = ref
			}

			return true
		})
	}

	refs := make([]ImportRef, 0, len(seen))
	for _, ref := range seen {
		refs = append(refs, ref)
	}

	sort.Slice(refs, func(i, j int) bool {
		return refs[i].Path < refs[j].Path
	})

	return refs
}

// fileImports indexes a file's imports by the qualifier they bind.
func fileImports(file *ast.File) map[string]ImportRef {
	byQualifier := make(map[string]ImportRef)

	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		ref := ImportRef{Path: importPath}

		qualifier := path.Base(importPath)
		if spec.Name != nil {
			if spec.Name.Name == "_" || spec.Name.Name == "." {
				continue
			}

			qualifier = spec.Name.Name
			ref.Alias = spec.Name.Name
		}

		byQualifier[qualifier] = ref
	}

	return byQualifier
}
