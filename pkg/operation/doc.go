/*
Package operation implements the driver logic for batch source rewrites.

	+-------------+
	|  Operation  |
	| (Driver)    |
	+------+------+
	       |
	+------+------+------+
	|      |             |
	rewrite  indent      status
	(rules)  (repair)    (tracking + I/O)

🎯 Purpose:
- Resolves each file block's target path or glob
- Runs the rewrite and indentation repair engines over each file
- Writes a file back only when its content actually changed
- Tracks per-file results and reports them to the user

🔄 Flow:
1. Resolve targets (literal path or doublestar glob, relative to root)
2. Read the file in full; check the require precondition
3. Apply ordered rules, then blank-run cleanup, then indent repairs
4. Compare against the original; write atomically only on change
5. Track the result and emit a user-facing status line

⚡ Key Responsibilities:
- Per-file pipeline orchestration
- Fatal-vs-informational error split: unreadable files abort the run,
  zero-match rules and no-op files are informational
- Surfacing pattern drift (rules that never matched) as warnings

📝 Design Philosophy:
The operation package owns sequencing, not mechanism. The rewrite and
indent engines are pure text transforms with no file system access, and
the status manager owns all target file I/O. One operation covers one
file block, so the runner can execute blocks in parallel when async is
enabled without any shared mutable state beyond the status manager.
*/
package operation
