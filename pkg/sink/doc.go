/*
Package sink delivers rendered document text to a location.

	+----------------+      WriteText(ctx, location, text)
	| tree.Document  | ---------------------------------+
	|   .Export()    |                                  |
	+----------------+                                  v
	                                     +--------------+--------------+
	                                     |                             |
	                              +------+------+              +-------+------+
	                              |  FileSink   |              |  MemorySink  |
	                              | (disk, dir) |              | (recorded)   |
	                              +-------------+              +--------------+

🎯 Purpose:
  - Gives tree.Document.Export somewhere to write
  - Keeps I/O out of the tree package

💾 FileSink:
  - Resolves relative locations against its root directory
  - Creates missing parent directories
  - Overwrites the target in a single write; no temp file, no retry

🧪 MemorySink:
  - Records every write in order, keeps the latest text per location
*/
package sink
