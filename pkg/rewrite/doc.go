/*
Package rewrite walks a skeleton tree and substitutes placeholder tokens in place.

	+-------------+
	|  Rewriter   |
	| (Tree Walk) |
	+------+------+
	       |
	+------+------+
	|  Replacer   |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Enumerates every file under the skeleton root exactly once
- Prunes hidden and cache directories before descent
- Applies the replacement table to readable text files and writes changes back

🔄 Flow:
1. Walk the tree, pruning hidden directories, __pycache__, and manifest exclusions
2. Skip protected setup assets and files matching exclusion patterns
3. Classify each file as text or binary; binary files are never modified
4. Apply the table in a single pass and write back only when content changed
5. Track every outcome in a status.Summary and report it via the console logger

⚡ Key Responsibilities:
- Directory pruning (pruned directories are never opened, not even for reading)
- Binary classification (UTF-8 validity plus NUL sniff)
- File mode preservation on write-back
- Distinguishing skips from genuine I/O failures

📝 Design Philosophy:
The walk is deliberately single-threaded: the tree is small (a project skeleton),
the pass runs once per project lifetime, and a sequential walk keeps the outcome
order deterministic for reporting. A read or write failure on one file is recorded
and shown as a warning, but never aborts the pass: a partially personalised
skeleton with a clear report beats an aborted one.

The pass is not idempotent. A second run with the same table only leaves the
tree unchanged when no token text survived the first pass; substituted values
that happen to contain token text are substituted again. One pass per skeleton
is the contract.

🔍 Example:

	rw, err := rewrite.New(rewrite.Options{Root: root, Table: table})
	if err != nil { ... }
	summary, err := rw.Run(ctx)
*/
package rewrite
