/*
Package mapping converts Go structs into tree elements.

🎯 Purpose:
  - Turns a struct value into a *tree.Element using struct tags
  - Lets types rename themselves and post-process their element
  - Lets fields pick a registered text transformer

🏷️ Tags:

	type Componente struct {
		Nome string `entity:"nome,attribute"`
		Peso int    `entity:"peso,attribute,transform=percent"`
		Nota string `entity:"-"`
	}

	name        exposed name; empty keeps the Go field name
	attribute   becomes an attribute of the element
	nested      becomes a daughter element
	transform=k text produced by the transformer registered under k
	-           ignored

🔄 Classification, in order:
 1. attribute fields become attributes
 2. nested fields and slice/array fields become daughters: a sequence value
    becomes a wrapper element holding one mapped element per item, any other
    value becomes a text-only element (its own fields are not mapped)
 3. everything else becomes a text-only daughter

🤝 Interfaces:
  - EntityNamer overrides the element name (default: lower-cased type name)
  - PostProcessorProvider builds a PostProcessor that may edit the finished
    element; it runs for every mapped value, including sequence items
*/
package mapping
