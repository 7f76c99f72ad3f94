package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/midbel/tally"
	"github.com/midbel/tally/store"
)

func main() {
	var (
		scan  = flag.Bool("s", false, "print the token stream instead of running the script")
		state = flag.String("w", "", "load and save variables from the given file")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tally [-s] [-w file] <script>")
		os.Exit(2)
	}
	r, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer r.Close()

	if *scan {
		err = scanFile(r)
	} else {
		err = runFile(r, *state)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFile(r io.Reader, state string) error {
	run := tally.NewRunner(os.Stdout)
	run.Color = true
	if state == "" {
		return run.Run(r)
	}
	st, err := store.Open(state)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Load(run.Env); err != nil {
		return err
	}
	if err := run.Run(r); err != nil {
		return err
	}
	return st.Save(run.Env)
}

func scanFile(r io.Reader) error {
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		scan := tally.Scan(lines.Text())
		for {
			tok := scan.Scan()
			if tok.Type == tally.EOF {
				break
			}
			fmt.Println(tok)
		}
		if err := scan.Err(); err != nil {
			fmt.Println(err)
		}
	}
	return lines.Err()
}
