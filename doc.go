/*
Package injectenv dumps environment variables as JSON so they can be injected
into files at deploy time, typically the runtime configuration of a static
web application.

The work is a straight pipeline: collect the variables (optionally those
with a given prefix, optionally stripping it), mask sensitive values,
encode the result as a JSON object (optionally as a JSON string literal)
and place it into a format template.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/anton-fomin/inject-env"
		"github.com/anton-fomin/inject-env/pkg/adapters/osenv"
	)

	func main() {
		out, err := injectenv.Render(osenv.New().Snapshot(),
			injectenv.WithPrefix("REACT_APP_"),
			injectenv.WithFormat("window.APP_ENV = {}"),
		)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
	}

The inject-env command in cmd/inject-env wraps the same pipeline and adds
the output modes (stdout, overwrite a file, replace a token inside a file).
*/
package injectenv
