package graphql

import (
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// LabelUnknown etiqueta de métricas para peticiones cuya operación no se puede resolver.
const LabelUnknown = "unknown"

// operationLabeler traduce una petición a la etiqueta "operation" de las métricas: el primer
// campo raíz de la operación ejecutada, solo si el schema lo declara. El nombre que manda el
// cliente nunca llega a la etiqueta, así las series quedan acotadas por el schema.
type operationLabeler struct {
	rootFields map[string]struct{}
}

func newOperationLabeler() *operationLabeler {
	l := &operationLabeler{rootFields: map[string]struct{}{}}
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	if err != nil {
		return l
	}
	for _, root := range []*ast.Definition{schema.Query, schema.Mutation} {
		if root == nil {
			continue
		}
		for _, f := range root.Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			l.rootFields[f.Name] = struct{}{}
		}
	}
	return l
}

// label elige la operación como lo hace el ejecutor: por nombre si viene, o la única del documento.
func (l *operationLabeler) label(query, operationName string) string {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil || doc == nil {
		return LabelUnknown
	}
	var op *ast.OperationDefinition
	switch {
	case operationName != "":
		for _, o := range doc.Operations {
			if o.Name == operationName {
				op = o
				break
			}
		}
	case len(doc.Operations) == 1:
		op = doc.Operations[0]
	}
	if op == nil {
		return LabelUnknown
	}
	for _, sel := range op.SelectionSet {
		f, ok := sel.(*ast.Field)
		if !ok {
			continue
		}
		if _, known := l.rootFields[f.Name]; known {
			return f.Name
		}
	}
	return LabelUnknown
}
