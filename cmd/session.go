package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nerdwave-nick/pokewrap/internal/render"
	"github.com/nerdwave-nick/pokewrap/internal/resource"
)

// session is one user's view on the registry: the display toggles live here
// rather than on the resource kinds.
type session struct {
	reg      *resource.Registry
	renderer *render.Renderer
	display  render.Display
}

func newSession(reg *resource.Registry, renderer *render.Renderer) *session {
	return &session{reg: reg, renderer: renderer, display: render.DefaultDisplay()}
}

// search looks up query and renders the result to out. NotFound is reported
// to the user, transport and payload faults are returned.
func (s *session) search(ctx context.Context, out io.Writer, kind resource.Kind, query string) error {
	rec, found, err := s.reg.Search(ctx, kind, query)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(out, "Nothing found for %s %q.\n", kind, query)
		return nil
	}
	return s.renderer.Render(ctx, out, rec, s.display)
}

func (s *session) parseKind(input string) (resource.Kind, error) {
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(resource.Kinds) {
			return resource.Kinds[n-1], nil
		}
		return 0, fmt.Errorf("no resource kind number %d", n)
	}
	return resource.ParseKind(input)
}

func (s *session) menu(out io.Writer) {
	names := make([]string, len(resource.Kinds))
	for i, k := range resource.Kinds {
		names[i] = fmt.Sprintf("%d) %s", i+1, k)
	}
	fmt.Fprintf(out, "\n%s\n%s  q) quit\n", strings.Join(names, "  "), s.display)
}

// interactive runs the menu loop until the input ends, the user quits or ctx is cancelled.
func (s *session) interactive(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := func(label string) (string, bool) {
		fmt.Fprint(out, label)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.menu(out)
		choice, ok := prompt("Search: ")
		if !ok {
			return scanner.Err()
		}
		switch strings.ToLower(choice) {
		case "":
			continue
		case "q", "quit", "exit":
			return nil
		}
		if len(choice) == 1 {
			if d, ok := s.display.Toggle(choice); ok {
				s.display = d
				continue
			}
		}

		kind, err := s.parseKind(choice)
		if err != nil {
			fmt.Fprintln(out, "Not a valid search!")
			continue
		}
		query, ok := prompt(fmt.Sprintf("%s Name or ID: ", kind))
		if !ok {
			return scanner.Err()
		}
		if query == "" {
			continue
		}
		if err := s.search(ctx, out, kind, query); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			fmt.Fprintf(out, "Search failed: %v\n", err)
		}
	}
}
