package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed data/answers.txt
var embeddedAnswers string

//go:embed data/allowed.txt
var embeddedAllowed string

// SourceEmbedded names the built-in lists in Lists.AnswersSource/AllowedSource.
const SourceEmbedded = "embedded"

// Options selects where word lists come from.
type Options struct {
	// AnswersFile is a newline-delimited answer pool. Empty uses the
	// embedded pool, or AllowedFile when only that one is set.
	AnswersFile string
	// AllowedFile is a newline-delimited list of extra valid guesses.
	AllowedFile string
	// IncludeAnswers adds every answer to the dictionary so the
	// answer itself is always a valid guess.
	IncludeAnswers bool
}

// Lists holds the loaded collaborators and where they came from.
type Lists struct {
	Dictionary    *Dictionary
	Pool          *Pool
	AnswersSource string
	AllowedSource string
}

// Load reads the lists selected by opts.
//
//  1. Both files set: answers from AnswersFile, guesses from AllowedFile.
//  2. Only AllowedFile set: that file serves as both lists.
//  3. Only AnswersFile set: answers from it, guesses from the embedded list.
//  4. Neither set: embedded defaults.
func Load(opts Options) (*Lists, error) {
	var (
		answers, allowed []string
		lists            Lists
		err              error
	)

	switch {
	case opts.AnswersFile != "" && opts.AllowedFile != "":
		if answers, err = ReadFile(opts.AnswersFile); err != nil {
			return nil, err
		}
		if allowed, err = ReadFile(opts.AllowedFile); err != nil {
			return nil, err
		}
		lists.AnswersSource, lists.AllowedSource = opts.AnswersFile, opts.AllowedFile

	case opts.AllowedFile != "":
		if allowed, err = ReadFile(opts.AllowedFile); err != nil {
			return nil, err
		}
		answers = allowed
		lists.AnswersSource, lists.AllowedSource = opts.AllowedFile, opts.AllowedFile

	case opts.AnswersFile != "":
		if answers, err = ReadFile(opts.AnswersFile); err != nil {
			return nil, err
		}
		allowed = parseLines(embeddedAllowed)
		lists.AnswersSource, lists.AllowedSource = opts.AnswersFile, SourceEmbedded

	default:
		answers = parseLines(embeddedAnswers)
		allowed = parseLines(embeddedAllowed)
		lists.AnswersSource, lists.AllowedSource = SourceEmbedded, SourceEmbedded
	}

	if opts.IncludeAnswers {
		allowed = append(append([]string(nil), allowed...), answers...)
	}

	lists.Dictionary = NewDictionary(allowed)
	lists.Pool = NewPool(answers)
	return &lists, nil
}

// ReadFile loads a newline-delimited word list from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", path, err)
	}
	return list, nil
}

// Read parses one word per line, uppercasing each entry.
// Blank lines and lines starting with '#' are skipped.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := parseLine(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func parseLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := parseLine(line); ok {
			out = append(out, w)
		}
	}
	return out
}

func parseLine(line string) (string, bool) {
	w := Normalize(line)
	if w == "" || strings.HasPrefix(w, "#") {
		return "", false
	}
	return w, true
}
