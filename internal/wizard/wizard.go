// Package wizard collects the scaffolding answer record through an ordered
// sequence of interactive questions on a reader/writer pair. Questions that
// do not apply to earlier answers are skipped, invalid input re-prompts,
// and EOF at any point cancels the whole run before anything is planned.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plugsmith-labs/plugsmith/internal/scaffold"
)

// ErrCancelled reports that the user aborted collection (EOF on input).
var ErrCancelled = errors.New("cancelled")

// Options seeds question defaults, typically from user configuration.
type Options struct {
	// DefaultCategory preselects a category; the zero value means the
	// category question has no default and requires an explicit choice.
	DefaultCategory scaffold.Category

	// DefaultTyping preselects the static-typing answer.
	DefaultTyping bool
}

// categoryChoices drives the numbered category menu, in display order.
var categoryChoices = []struct {
	category scaffold.Category
	hint     string
}{
	{scaffold.CategoryUI, "renders interface elements into host slots"},
	{scaffold.CategoryMiddleware, "transforms data at host pipeline points"},
	{scaffold.CategoryHybrid, "both UI and middleware"},
}

// session holds the reader/writer pair and defaults for one collection run.
type session struct {
	in   *bufio.Reader
	out  io.Writer
	opts Options
}

// step is one question in the collection sequence. A step with a skip
// predicate is bypassed when the predicate reports true for the answers
// collected so far.
type step struct {
	name string
	skip func() bool
	ask  func() error
}

// Run walks the user through the question sequence and returns the
// validated answer record. EOF at any question returns ErrCancelled and no
// partial state.
func Run(r io.Reader, w io.Writer, opts Options) (*scaffold.Answers, error) {
	s := &session{in: bufio.NewReader(r), out: w, opts: opts}
	answers := &scaffold.Answers{}

	steps := []step{
		{name: "name", ask: func() error { return s.askName(answers) }},
		{name: "category", ask: func() error { return s.askCategory(answers) }},
		{
			name: "slots",
			skip: func() bool { return !answers.Category.HasUI() },
			ask:  func() error { return s.askSlots(answers) },
		},
		{
			name: "points",
			skip: func() bool { return !answers.Category.HasMiddleware() },
			ask:  func() error { return s.askPoints(answers) },
		},
		{name: "typing", ask: func() error { return s.askTyping(answers) }},
	}

	for _, st := range steps {
		if st.skip != nil && st.skip() {
			continue
		}
		if err := st.ask(); err != nil {
			return nil, fmt.Errorf("question %q: %w", st.name, err)
		}
	}

	if err := answers.Validate(); err != nil {
		return nil, err
	}
	return answers, nil
}

// readLine reads one trimmed input line, translating EOF into cancellation.
// A final line without a trailing newline still counts as input.
func (s *session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", ErrCancelled
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// askName prompts until the project name matches the allowed pattern.
func (s *session) askName(a *scaffold.Answers) error {
	for {
		fmt.Fprintf(s.out, "Project name (lowercase letters, digits, hyphens): ")
		line, err := s.readLine()
		if err != nil {
			return err
		}
		if err := scaffold.ValidateName(line); err != nil {
			fmt.Fprintf(s.out, "%v\n", err)
			continue
		}
		a.Name = line
		return nil
	}
}

// askCategory presents a numbered menu. Empty input selects the configured
// default when one is set; out-of-range input re-prompts.
func (s *session) askCategory(a *scaffold.Answers) error {
	for {
		fmt.Fprintf(s.out, "\nSelect plugin category:\n")
		for i, c := range categoryChoices {
			marker := " "
			if c.category == s.opts.DefaultCategory {
				marker = "*"
			}
			fmt.Fprintf(s.out, " %s%d) %-11s %s\n", marker, i+1, c.category, c.hint)
		}
		fmt.Fprintf(s.out, "Enter number [1-%d]: ", len(categoryChoices))

		line, err := s.readLine()
		if err != nil {
			return err
		}
		if line == "" && s.opts.DefaultCategory != "" {
			a.Category = s.opts.DefaultCategory
			return nil
		}

		num, convErr := strconv.Atoi(line)
		if convErr != nil || num < 1 || num > len(categoryChoices) {
			fmt.Fprintf(s.out, "invalid selection %q: choose 1-%d\n", line, len(categoryChoices))
			continue
		}
		a.Category = categoryChoices[num-1].category
		return nil
	}
}

// askSlots collects the UI slot names.
func (s *session) askSlots(a *scaffold.Answers) error {
	fmt.Fprintf(s.out, "\nUI slot names, comma-separated (empty for none): ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	a.Slots = splitList(line)
	return nil
}

// askPoints collects the middleware point names.
func (s *session) askPoints(a *scaffold.Answers) error {
	fmt.Fprintf(s.out, "\nMiddleware point names, comma-separated (empty for none): ")
	line, err := s.readLine()
	if err != nil {
		return err
	}
	a.Points = splitList(line)
	return nil
}

// askTyping asks the static-typing question with a yes/no default.
func (s *session) askTyping(a *scaffold.Answers) error {
	hint := "Y/n"
	if !s.opts.DefaultTyping {
		hint = "y/N"
	}
	for {
		fmt.Fprintf(s.out, "\nUse TypeScript for static typing? [%s]: ", hint)
		line, err := s.readLine()
		if err != nil {
			return err
		}
		switch strings.ToLower(line) {
		case "":
			a.StaticTyping = s.opts.DefaultTyping
			return nil
		case "y", "yes":
			a.StaticTyping = true
			return nil
		case "n", "no":
			a.StaticTyping = false
			return nil
		}
		fmt.Fprintf(s.out, "answer y or n\n")
	}
}

// splitList normalizes comma-separated input: entries are trimmed, empties
// dropped, and duplicates removed preserving first occurrence.
func splitList(line string) []string {
	seen := make(map[string]bool)
	var items []string
	for _, part := range strings.Split(line, ",") {
		item := strings.TrimSpace(part)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		items = append(items, item)
	}
	return items
}
