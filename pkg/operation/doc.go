/*
Package operation applies transform plans to xmlentity documents.

	+-------------+      FromConfig      +-------------+
	| config.Plan | -------------------> | []Operation |
	+-------------+                      +------+------+
	                                            |
	                                     +------+------+
	                                     |   Runner    |
	                                     | (in order)  |
	                                     +------+------+
	                                            |
	                              +-------------+-------------+
	                              |                           |
	                       +------+------+             +------+------+
	                       | tree.Document|            |  sink.Sink  |
	                       |  (mutated)   |            |  (output)   |
	                       +-------------+             +-------------+

🎯 Purpose:
  - Turns plan transforms into named, self-describing operations
  - Applies them one after another against a single document
  - Reports each step as changed or unchanged

🔄 Flow:
 1. FromConfig builds one Operation per transform
 2. Runner.Execute applies header overrides from the plan
 3. Runner.Run applies each operation, stopping at the first failure
 4. The rendered document is written to the plan output, if any

⚡ Local vs global:
  - remove_entities and add_attribute only look at root elements and fail with
    tree.ErrNotFound when nothing matches
  - rename_entity, rename_attribute, remove_entity and remove_attribute walk the
    whole tree and do nothing on a miss

🔍 Example:

	plan, err := config.Load(ctx, "plan.yaml")
	runner := operation.NewRunner(log.New(os.Stdout, zerolog.InfoLevel))
	text, err := runner.Execute(ctx, doc, plan, sink.NewFileSink("."))
*/
package operation
