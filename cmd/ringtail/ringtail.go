package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"
	ringbuffer "github.com/xchscan/ring-buffer-ts"
)

// Prints the last N lines of a file (or stdin), like "tail -n", built on the
// ring buffer so that memory use stays bounded regardless of input size.
// Example:
// journalctl -u myservice | ringtail -n 50

func check(err error) {
	if err != nil {
		panic(err)
	}
}

// collectLast feeds lines from src into window, dropping the first skip
// lines. Returns the total number of lines seen, including skipped ones.
func collectLast(src io.Reader, window *ringbuffer.RingT[string], skip int) (int, error) {
	seen := 0
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		seen++
		if seen <= skip {
			continue
		}
		window.Add(scanner.Text())
	}
	return seen, scanner.Err()
}

func main() {
	parser := argparse.NewParser("ringtail", "Print the last N lines of a file or stdin")
	nLines := parser.Int("n", "lines", &argparse.Options{Help: "Number of lines to keep", Required: false, Default: 10})
	input := parser.String("i", "input", &argparse.Options{Help: "Input file (stdin if omitted)", Required: false, Default: ""})
	skip := parser.Int("", "skip", &argparse.Options{Help: "Drop the first K lines before windowing", Required: false, Default: 0})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	logger, _ := logs.NewLog()

	src := os.Stdin
	if *input != "" {
		src, err = os.Open(*input)
		check(err)
		defer src.Close()
	}

	window, err := ringbuffer.NewRingT[string](*nLines)
	check(err)

	seen, err := collectLast(src, window, *skip)
	check(err)

	for _, line := range window.ToSlice() {
		fmt.Println(line)
	}

	logger.Infof("ringtail: %v lines seen, %v kept", seen, window.Len())
}
