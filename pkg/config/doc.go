/*
Package config loads transform plans for xmlentity documents.

	            +-------------+
	            |    Plan     |
	            |  (Config)   |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
  - Describes what to do to a document: header overrides, an ordered list of
    transforms and where to write the result
  - Picks a parser from the file extension
  - Rejects unknown fields, unknown ops and transforms missing their arguments

📄 Formats:

	# plan.yaml
	version: "1.0"
	encoding: UTF-8
	output: out/plano.xml
	transforms:
	  - op: rename_entity
	    entity: fuc
	    to: unidade

	# plan.hcl
	output = "out/plano.xml"
	transform "rename_entity" {
	  entity = "fuc"
	  to     = "unidade"
	}

🔧 Ops and their required fields:

	rename_entity     entity, to
	rename_attribute  entity, attribute, to
	remove_entity     entity
	remove_entities   entity
	remove_attribute  entity, attribute
	add_attribute     entity, attribute (value may be empty)

🤝 Interfaces:
  - Parser: format-specific decoding, registered with Register
*/
package config
