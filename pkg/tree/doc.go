/*
Package tree implements the in-memory element tree and every operation over it.

	+------------+
	|  Document  |
	|  (roots)   |
	+-----+------+
	      |
	+-----+------+
	|  Element   |-----> Attributes
	| (daughters)|
	+-----+------+
	      |
	+-----+------+
	|  Visitor   |
	| (per op)   |
	+------------+

🎯 Purpose:
  - Models documents, elements and attributes
  - Provides local mutations (add/remove/edit by name)
  - Provides global operations (rename, remove, query, serialize)

🔄 Local vs global:
Local operations (RemoveEntity, AddAttributeToEntity, Element.RemoveAttribute, ...)
act on one list, affect every match and fail with ErrNotFound when nothing matches.
Global operations (RenameEntity, RemoveEntityGlobally, ...) walk the tree through a
Visitor and quietly do nothing when nothing matches. The two families also disagree
on scope and cardinality:

	RemoveEntity             roots only, every match, ErrNotFound on miss
	RemoveEntityGlobally     roots only, first match, no-op on miss
	RemoveAttribute          one element, every match, ErrNotFound on miss
	RemoveAttributeGlobally  whole tree, first match per owner, no-op on miss
	RenameEntity             whole tree, every match, no-op on miss

Each global operation is its own Visitor with its own recursion so that these
contracts stay independent.

🔍 Example:

	doc := tree.NewDocument()
	plano, _ := tree.NewElement("plano")
	doc.AddEntity(plano)
	curso, _ := tree.NewTextElement("curso", "Mestrado")
	plano.AddDaughter(curso)
	fmt.Println(doc.ToText())

The tree is not safe for concurrent use.
*/
package tree
