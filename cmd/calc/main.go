package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname string
		flags           config
		nl, echo, exact bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML file giving angle and style")
	flag.Func("angle", "angle mode, degrees or radians (overrides config; default degrees)", func(v string) error {
		flags.Angle = new(calc.AngleMode)
		return flags.Angle.UnmarshalText([]byte(v))
	})
	flag.Func("style", "display style, one of regular, fixed, scientific, engineering, triads (overrides config; default regular)", func(v string) error {
		flags.Style = new(calc.Style)
		return flags.Style.UnmarshalText([]byte(v))
	})
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&exact, "big", false, "print the exact factorial of each result")
	flag.Parse()

	s, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	s = flags.apply(s)
	s.echo, s.exact = echo, exact

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		srcs, err = readExprs(f, nl)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	srcs = append(srcs, flag.Args()...)

	out := bufio.NewWriter(os.Stdout)
	for _, src := range srcs {
		show(out, src, s)
	}
	if err := out.Flush(); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// readExprs reads expressions from r. If lines is true, each non-blank line
// is an expression; otherwise the entire input is one.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) != "" {
			srcs = append(srcs, sc.Text())
		}
	}
	return srcs, sc.Err()
}

// show evaluates src and writes the result as the calculator displays it.
func show(w io.Writer, src string, s settings) {
	a, err := calc.Parse(src)
	if err != nil {
		fmt.Fprintln(w, "Error:", err)
		return
	}
	if s.echo {
		fmt.Fprintf(w, "%v : ", a)
	}
	r, err := a.Eval(s.mode)
	if err != nil {
		fmt.Fprintln(w, "Error:", err)
		return
	}
	if s.exact {
		x, err := calc.BigFactorialInt(r)
		if err != nil {
			fmt.Fprintln(w, "Error:", err)
			return
		}
		fmt.Fprintln(w, calc.FormatBig(x, s.style))
		return
	}
	fmt.Fprintln(w, calc.Format(r, s.style))
}
