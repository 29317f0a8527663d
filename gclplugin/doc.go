/*
Package gclplugin provides golangci-lint plugin integration for the [callpair] analyzer.

# Usage

1. Add a file `.custom-gcl.yaml` to your source with:

	---
	version: v2.7.0

	name: golangci-lint
	destination: .

	plugins:
	  - module: fillmore-labs.com/callpair
	    import: fillmore-labs.com/callpair/gclplugin
	    version: v0.0.1

2. Run `golangci-lint custom` from your project root.

This will create a custom `golangci-lint` executable in your project root.

3. Configure the linter in `.golangci.yaml`:

	---
	version: "2"
	linters:
	  default: none
	  enable:
	    - callpair
	  settings:
	    custom:
	      callpair:
	        type: module
	        description: "callpair checks that paired calls are balanced."
	        original-url: "https://fillmore-labs.com/callpair"
	        settings:
	          max-nesting: 4
	          pairs:
	            - opener: Begin
	              closers: [Commit, Rollback]
	              require-sync: true

4. Run the linter:

	./golangci-lint run .

[callpair]: https://pkg.go.dev/fillmore-labs.com/callpair/analyzer
*/
package gclplugin
