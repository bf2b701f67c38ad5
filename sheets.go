package pycheat

import (
	_ "embed"
)

//go:embed sheets/Basics.py
var basicsSheet string

//go:embed sheets/Intermediate.py
var intermediateSheet string

//go:embed sheets/Advanced.py
var advancedSheet string

// Document is a named source text that can be viewed as a sheet.
type Document struct {
	Name   string
	Source string
}

var builtinSheets = [...]Document{
	{Name: "Basics", Source: basicsSheet},
	{Name: "Intermediate", Source: intermediateSheet},
	{Name: "Advanced", Source: advancedSheet},
}

// BuiltinSheets returns the embedded sheets in display order.
func BuiltinSheets() []Document {
	docs := make([]Document, len(builtinSheets))
	copy(docs, builtinSheets[:])
	return docs
}

// SheetNames returns the names of the embedded sheets in display order.
func SheetNames() []string {
	names := make([]string, len(builtinSheets))
	for i, d := range builtinSheets {
		names[i] = d.Name
	}
	return names
}
