package gen

import (
	"bytes"
	"go/ast"
)

// Package renders the models declared across files. It returns nil when the
// package declares no models.
func Package(name string, files []*ast.File) ([]byte, error) {
	var models []*Model
	for _, f := range files {
		ms, err := ParseFile(f)
		if err != nil {
			return nil, err
		}
		models = append(models, ms...)
	}
	if len(models) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	if err := Render(&buf, name, models); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
