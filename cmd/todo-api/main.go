// Command todo-api runs the todo and user REST API.
//
//	todo-api serve     start the HTTP server
//	todo-api migrate   prepare the configured store (indexes or tables)
//	todo-api seed      replace stored todos and users with the fixture set
//
// Configuration comes from the preset picked by TODOAPI_PRIMARY.ENV plus
// TODOAPI_ environment variables; see internal/config.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
