// Command jwtcrack recovers the secret of an HS256 JSON Web Token with a
// dictionary attack.
//
//	jwtcrack -t token.txt -d words.txt -c 16
//	cat words.txt | jwtcrack -t token.txt
//	jwtcrack -t token.txt -s3 s3://wordlists/rockyou.txt -potfile jwtcrack.pot
//
// On success the secret and the token's signing input are printed to stdout
// separated by four spaces. Exit status is 0 when a secret is found, 1 for
// invalid input, 2 when the dictionary is exhausted and 130 when interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
