// dirsize lists directory entries sorted by size, largest first.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/user/photo-tidy/pkg"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [directory]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Lists the entries of a directory (default: current directory)")
		fmt.Fprintln(os.Stderr, "sorted by size. Directories are sized recursively.")
	}
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	entries, err := pkg.ListBySize(dir)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	var total int64
	for _, e := range entries {
		name := e.Name
		if e.IsDir {
			name += string(os.PathSeparator)
		}
		fmt.Printf("%10s  %s\n", humanize.IBytes(uint64(e.Size)), name)
		total += e.Size
	}
	fmt.Printf("%10s  total (%d entries)\n", humanize.IBytes(uint64(total)), len(entries))
}
