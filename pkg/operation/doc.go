/*
Package operation strings the initialisation stages into the one-shot pipeline.

	+-------------+
	| Initialiser |
	| (Pipeline)  |
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (In Order)  |
	+------+------+

🎯 Purpose:
- Owns the order of the run: preflight, collect, rewrite, hooks, self-removal, bootstrap
- Carries the data stages hand to each other (answers, setup assets, rewrite summary)
- Separates the one hard gate (preflight) from the advisory tail of the run

🔄 Flow:
1. preflight: verify the environment tool is installed; the only fatal stage
2. collect: prompt for project name, description, and version
3. rewrite: resolve setup assets, then personalise the tree
4. hooks: install commit-hook tooling; failures warn and continue
5. self-removal: delete the manifest and setup files, exactly once
6. bootstrap: local git repository, then the GitHub remote

⚡ Key Responsibilities:
- Stage ordering and stage-level debug logging
- Passing collected answers into the replacement table
- Printing the closing messages of a completed run

📝 Design Philosophy:
The pipeline is synchronous on purpose. Each stage mutates the same skeleton
tree, the run happens once per project lifetime, and an operator is watching:
there is nothing to parallelise and everything to gain from a deterministic,
narratable order. Stages after the rewrite never fail the run: a personalised
tree with a missing remote is a success with a warning, not a failure.

🔍 Example:

	in, err := operation.New(operation.Options{
		Root:     ".",
		Manifest: manifest,
		Runner:   execx.NewRealRunner(),
		Prompter: prompt.New(os.Stdin, os.Stdout, false),
	})
	if err != nil { ... }
	err = in.Run(ctx)
*/
package operation
