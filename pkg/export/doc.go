/*
Package export converts tree documents into github.com/beevik/etree documents.

The native tree serializer writes text and attribute values as they are. When
the output has to be consumed by XML tooling, convert the document with ToEtree
or render it with RenderEscaped, which escapes markup characters and indents
with tabs.

Attributes are written in order. etree keeps one attribute per name, so when
an element carries the same attribute name twice the last value wins.
*/
package export
