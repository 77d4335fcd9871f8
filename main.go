// Artrepo serves artwork candidates for media items out of community
// maintained artwork repositories.
//
// The sources live in the src directory. This file only embeds the SQL files
// and starts the service.
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/ironsmile/artrepo/src"
)

// sqlFilesFS is the directory with the sql-migrate migrations of the cache
// database. If the embedded directory name changes, remember to change it in
// main() too.
//
//go:embed sqls
var sqlFilesFS embed.FS

func main() {
	sqls, err := fs.Sub(sqlFilesFS, "sqls")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading sqls subFS: %s\n", err)
		os.Exit(1)
	}

	src.Main(sqls)
}
