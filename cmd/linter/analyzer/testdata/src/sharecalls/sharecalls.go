package sharecalls

import (
	"log"
	"os"
)

func copyLink() {
	panic("clipboard unavailable") // want "panic is forbidden"
}

func shorten() {
	log.Printf("shortening") // want "standard library log.Printf is forbidden, use zerolog"
}

func quit() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

type widget struct{}

func (widget) main() {
	os.Exit(0) // want "os.Exit is forbidden outside main function"
}

func shadowed() {
	panic := func(string) {}
	panic("not the builtin")
}
