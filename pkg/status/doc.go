/*
Package status defines the outcome vocabulary for a rewrite pass.

	+-----------+     Track      +-----------+
	| Rewriter  | -------------> |  Summary  |
	+-----------+                +-----+-----+
	                                   |
	                             FileFormatter
	                                   |
	                            console output

🎯 Purpose:
- Classifies every visited file (updated / unchanged / skipped / failed)
- Accumulates per-file outcomes into a Summary for one pass
- Formats outcome lines and the end-of-pass account

🔄 Flow:
1. The rewriter classifies each file it visits
2. Track records the outcome in visit order
3. The console layer renders outcomes through a FileFormatter

📝 Design Philosophy:
Nothing here is persisted: a Summary lives for exactly one run, and binary
skips are deliberately not errors. Read and write failures are tracked as
failed files so the pass can continue and still report them at the end.
*/
package status
