// clipcat concatenates the files of a directory to the system clipboard.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/atotto/clipboard"

	"github.com/user/photo-tidy/pkg"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [directory]\n\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Concatenates the regular files of a directory (default: current")
		fmt.Fprintln(os.Stderr, "directory) and places the result on the system clipboard.")
	}
	flag.Parse()

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	text, count, err := pkg.ConcatDirectory(dir)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if count == 0 {
		fmt.Println("No files to copy.")
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Fatalf("Error writing to clipboard: %v", err)
	}
	fmt.Printf("Copied %d file(s), %d bytes to clipboard.\n", count, len(text))
}
