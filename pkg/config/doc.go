/*
Package config manages configuration parsing and validation for logrc.

	            +-------------+
	            |   Config    |
	            | (Rule data) |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   YAML    |           |   HCL   |
	| Parser    |           | Parser  |
	+-----------+           +---------+

🎯 Purpose:
- Loads the per-file rule tables (rewrite rules, indent repairs,
  preconditions, verify patterns) from a config file
- Validates rule patterns before any file is touched
- Supports multiple config formats via a parser registry

🔄 Flow:
1. Reads configuration from file
2. Picks a parser by file extension
3. Decodes format-specific syntax into the shared model
4. Validates patterns and structure

📝 Design Philosophy:
The rule tables are data, not code: the engines are generic, and
everything specific to one target codebase (exact literal message text,
anchor markers, property names) lives here. Keeping the tables external
means the engines are testable without any particular target file, and
a new migration is a new config, not a new program.
*/
package config
