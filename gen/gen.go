// Package gen derives entity mappings from annotated Go structs and renders
// the Table, Params and SetKey methods the entities package needs.
//
// A struct opts in with a marker comment:
//
//	//entities:table name=Sample schema=whatever
//
// and describes its columns with field tags:
//
//	Id   int64  `db:"Id" entity:"key"`
//	Name string `db:"Name" entity:"altkey"`
//
// Recognized entity options are key, altkey, noinsert, noupdate and
// modified=<Field>; entity:"-" or db:"-" skips a field.
package gen

import (
	"errors"
	"fmt"
	"go/ast"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/samber/lo"
)

const (
	Marker      = "entities:table"
	EntitiesPkg = "github.com/gtechsltn/entities"
	Header      = "Code generated by entitygen. DO NOT EDIT."
)

var (
	ErrNoKey         = errors.New("gen: no key field")
	ErrUnknownOption = errors.New("gen: unknown option")
	ErrModified      = errors.New("gen: modified counterpart is not a field")
	ErrKeyType       = errors.New("gen: unsupported key type")
)

type Model struct {
	Type   string
	Table  string
	Schema string
	Fields []Field

	keyType jen.Code
}

type Field struct {
	Name     string
	Column   string
	Key      bool
	AltKey   bool
	NoInsert bool
	NoUpdate bool
	Modified string
}

// ParseFile returns the models declared in f, in source order.
func ParseFile(f *ast.File) ([]*Model, error) {
	imports := importNames(f)

	var models []*Model
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				continue
			}

			doc := ts.Doc
			if doc == nil && len(gd.Specs) == 1 {
				doc = gd.Doc
			}
			args, ok := marker(doc)
			if !ok {
				continue
			}

			m, err := parseModel(ts.Name.Name, args, st, imports)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", ts.Name.Name, err)
			}
			models = append(models, m)
		}
	}
	return models, nil
}

func marker(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if rest, ok := strings.CutPrefix(text, Marker); ok {
			if rest != "" && !unicode.IsSpace(rune(rest[0])) {
				continue
			}
			return strings.TrimSpace(rest), true
		}
	}
	return "", false
}

func parseModel(name, args string, st *ast.StructType, imports map[string]string) (*Model, error) {
	m := &Model{Type: name, Table: name}
	for _, arg := range strings.Fields(args) {
		k, v, _ := strings.Cut(arg, "=")
		switch k {
		case "name":
			m.Table = v
		case "schema":
			m.Schema = v
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOption, arg)
		}
	}

	var keyExpr ast.Expr
	for _, af := range st.Fields.List {
		tag := reflect.StructTag("")
		if af.Tag != nil {
			raw, err := strconv.Unquote(af.Tag.Value)
			if err != nil {
				return nil, err
			}
			tag = reflect.StructTag(raw)
		}
		for _, ident := range af.Names {
			if !ident.IsExported() {
				continue
			}
			f, skip, err := parseField(ident.Name, tag)
			if err != nil {
				return nil, err
			}
			if skip {
				continue
			}
			if f.Key && keyExpr == nil {
				keyExpr = af.Type
			}
			m.Fields = append(m.Fields, f)
		}
	}

	if keyExpr == nil {
		return nil, ErrNoKey
	}
	keyType, err := typeCode(keyExpr, imports)
	if err != nil {
		return nil, err
	}
	m.keyType = keyType

	for _, f := range m.Fields {
		if f.Modified == "" {
			continue
		}
		if !lo.ContainsBy(m.Fields, func(o Field) bool { return o.Name == f.Modified }) {
			return nil, fmt.Errorf("%w: %s", ErrModified, f.Modified)
		}
	}
	return m, nil
}

func parseField(name string, tag reflect.StructTag) (Field, bool, error) {
	f := Field{Name: name, Column: name}

	if db, _, _ := strings.Cut(tag.Get("db"), ","); db == "-" {
		return f, true, nil
	} else if db != "" {
		f.Column = db
	}

	opts := lo.Compact(lo.Map(strings.Split(tag.Get("entity"), ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	for _, opt := range opts {
		switch k, v, _ := strings.Cut(opt, "="); k {
		case "-":
			return f, true, nil
		case "key":
			f.Key = true
		case "altkey":
			f.AltKey = true
		case "noinsert":
			f.NoInsert = true
		case "noupdate":
			f.NoUpdate = true
		case "modified":
			f.Modified = v
		default:
			return f, false, fmt.Errorf("%w: %q on %s", ErrUnknownOption, opt, name)
		}
	}
	return f, false, nil
}

func importNames(f *ast.File) map[string]string {
	names := make(map[string]string, len(f.Imports))
	for _, spec := range f.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := path[strings.LastIndex(path, "/")+1:]
		if spec.Name != nil {
			name = spec.Name.Name
		}
		names[name] = path
	}
	return names
}

func typeCode(expr ast.Expr, imports map[string]string) (jen.Code, error) {
	switch t := expr.(type) {
	case *ast.Ident:
		return jen.Id(t.Name), nil
	case *ast.SelectorExpr:
		pkg, ok := t.X.(*ast.Ident)
		if !ok {
			break
		}
		path, ok := imports[pkg.Name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown package %s", ErrKeyType, pkg.Name)
		}
		return jen.Qual(path, t.Sel.Name), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrKeyType, expr)
}

// Render writes the generated methods for models as one Go file.
func Render(w io.Writer, pkgName string, models []*Model) error {
	f := jen.NewFile(pkgName)
	f.HeaderComment(Header)
	for _, m := range models {
		m.render(f)
	}
	return f.Render(w)
}

func (m *Model) varName() string {
	return strings.ToLower(m.Type[:1]) + m.Type[1:] + "Table"
}

func (m *Model) key() Field {
	f, _ := lo.Find(m.Fields, func(f Field) bool { return f.Key })
	return f
}

func (m *Model) render(f *jen.File) {
	table := jen.Dict{
		jen.Id("Name"): jen.Lit(m.Table),
		jen.Id("Columns"): jen.Index().Qual(EntitiesPkg, "Column").ValuesFunc(func(g *jen.Group) {
			for _, c := range m.Fields {
				g.Values(c.dict())
			}
		}),
	}
	if m.Schema != "" {
		table[jen.Id("Schema")] = jen.Lit(m.Schema)
	}
	f.Var().Id(m.varName()).Op("=").Op("&").Qual(EntitiesPkg, "Table").Values(table)

	f.Commentf("Table returns the table mapping of %s.", m.Type)
	f.Func().Params(jen.Op("*").Id(m.Type)).Id("Table").Params().Op("*").Qual(EntitiesPkg, "Table").Block(
		jen.Return(jen.Id(m.varName())),
	)

	f.Commentf("Params returns the bind parameters of %s.", m.Type)
	f.Func().Params(jen.Id("e").Op("*").Id(m.Type)).Id("Params").Params().Qual(EntitiesPkg, "Params").Block(
		jen.Return(jen.Qual(EntitiesPkg, "Params").Values(jen.DictFunc(func(d jen.Dict) {
			for _, c := range m.Fields {
				d[jen.Lit(c.Name)] = jen.Id("e").Dot(c.Name)
			}
		}))),
	)

	f.Commentf("SetKey assigns the generated key of %s.", m.Type)
	f.Func().Params(jen.Id("e").Op("*").Id(m.Type)).Id("SetKey").Params(jen.Id("key").Add(m.keyType)).Block(
		jen.Id("e").Dot(m.key().Name).Op("=").Id("key"),
	)
}

func (c Field) dict() jen.Dict {
	d := jen.Dict{jen.Id("Field"): jen.Lit(c.Name)}
	if c.Column != c.Name {
		d[jen.Id("Name")] = jen.Lit(c.Column)
	}
	flags := map[string]bool{"Key": c.Key, "AltKey": c.AltKey, "NoInsert": c.NoInsert, "NoUpdate": c.NoUpdate}
	for name, set := range flags {
		if set {
			d[jen.Id(name)] = jen.True()
		}
	}
	if c.Modified != "" {
		d[jen.Id("Modified")] = jen.Lit(c.Modified)
	}
	return d
}
