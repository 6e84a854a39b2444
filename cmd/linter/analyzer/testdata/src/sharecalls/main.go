package sharecalls

import (
	"log"
	"os"
)

func main() {
	os.Exit(0)               // allowed in main
	log.Fatal("not allowed") // want "standard library log.Fatal is forbidden, use zerolog"
	panic("still forbidden") // want "panic is forbidden"
}
