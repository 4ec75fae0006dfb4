// Command mwawdump is a thin inspection tool: it opens a legacy
// word-processor file, runs the matching format parser, and prints the
// event trace and extracted text.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Distrotech/libmwaw-sub009/formats/msword"
	"github.com/Distrotech/libmwaw-sub009/sink"
	"github.com/Distrotech/libmwaw-sub009/storage"
)

func main() {
	password := flag.String("password", "", "decryption password for an encrypted document")
	showEvents := flag.Bool("events", false, "print the full event trace instead of just the text")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: mwawdump [-password P] [-events] <file.doc>")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("mwawdump: %v", err)
	}

	reader, err := storage.NewReader(data)
	if err != nil {
		log.Fatalf("mwawdump: %v", err)
	}

	rec := sink.NewRecorder()
	err = msword.Parse(reader, rec, msword.Options{Password: *password})
	if err != nil {
		log.Fatalf("mwawdump: %v", err)
	}

	if *showEvents {
		printEvents(rec)
		return
	}
	printText(rec)
}

func printEvents(rec *sink.Recorder) {
	for _, e := range rec.Events {
		if e.Text != "" {
			fmt.Printf("%s %q\n", e.Name, e.Text)
			continue
		}
		fmt.Println(e.Name)
	}
}

func printText(rec *sink.Recorder) {
	var b strings.Builder
	for _, e := range rec.Events {
		if e.Name == "insert_text" {
			b.WriteString(e.Text)
		}
		if e.Name == "insert_tab" {
			b.WriteByte('\t')
		}
		if e.Name == "close_paragraph" {
			b.WriteByte('\n')
		}
	}
	fmt.Print(b.String())
}
