/*
Package config manages manifest parsing and validation for skelrc.

	            +-------------+
	            |  Manifest   |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +----+----+
	|   YAML    | |  JSON  | |   HCL   |
	|  Loader   | | Loader | | Loader  |
	+-----------+ +--------+ +---------+

🎯 Purpose:
- Loads the optional per-skeleton manifest (.skelrc.yaml / .skelrc.hcl / .skelrc)
- Falls back to canonical defaults when a skeleton ships no manifest
- Builds the four-key replacement table from the configured token scheme
- Validates manifest values before any pipeline step runs

🔄 Flow:
1. Locate probes the skeleton root for a manifest file
2. Load picks the format from the extension (.skelrc tries YAML then HCL)
3. Defaults fill unset fields, then validation runs
4. The pipeline asks the manifest for the tool, scheme table, and exclusions

📝 Design Philosophy:
The manifest is deliberately optional: a bare skeleton behaves exactly like
the canonical template (literal scheme, uv, pre-commit hooks, public remote
prompt). Every knob exists so a skeleton author can deviate, not so a user
must configure anything. Configuration is loaded once, passed by parameter,
and never consulted from global state.

🔍 Example:

	m, err := config.Locate(ctx, ".")
	if err != nil {
		return err
	}

	table, err := m.Table("demo", "", "3.12")
	if err != nil {
		return err
	}
	// table now maps the skeleton's tokens to demo / "" / 3.12 / py312
*/
package config
