// Command hash-generator prints bcrypt hashes for passwords given on the
// command line, for seeding users by hand.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phrazzld/shop-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password...")
		os.Exit(2)
	}

	for _, password := range flag.Args() {
		hash, err := auth.HashPassword(password, *cost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error generating hash: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
	}
}
