package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// GlossaryCreateOptions configures glossary creation. Entries is a list
// of "source=target" pairs; EntriesFile points at a file with one pair
// per line.
type GlossaryCreateOptions struct {
	Name        string
	SourceLang  string
	TargetLang  string
	Entries     []string
	EntriesFile string
	Wait        bool
}

// RunGlossaryCreate creates a glossary and optionally waits until the
// server reports it ready.
func RunGlossaryCreate(ctx context.Context, deps *Deps, opts GlossaryCreateOptions) error {
	entries, err := parseGlossaryEntries(opts.Entries, opts.EntriesFile)
	if err != nil {
		return err
	}

	info, err := deps.Client.CreateGlossary(ctx, opts.Name, opts.SourceLang, opts.TargetLang, entries)
	if err != nil {
		return err
	}
	deps.Log.Info().Str("glossary_id", info.GlossaryID).Str("name", info.Name).Msg("glossary created")

	if opts.Wait && !info.Ready {
		ready, err := deps.Client.WaitUntilGlossaryReady(ctx, info.GlossaryID)
		if err != nil {
			return err
		}
		info = ready
	}

	fmt.Fprintln(deps.Out, info.GlossaryID)
	return nil
}

// RunGlossaryList prints all glossaries of the account.
func RunGlossaryList(ctx context.Context, deps *Deps) error {
	glossaries, err := deps.Client.ListGlossaries(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(deps.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLANGUAGES\tENTRIES\tREADY")
	for _, g := range glossaries {
		fmt.Fprintf(w, "%s\t%s\t%s->%s\t%d\t%t\n",
			g.GlossaryID, g.Name, g.SourceLang, g.TargetLang, g.EntryCount, g.Ready)
	}
	return w.Flush()
}

// RunGlossaryWait blocks until the glossary is ready and prints it.
func RunGlossaryWait(ctx context.Context, deps *Deps, glossaryID string) error {
	info, err := deps.Client.WaitUntilGlossaryReady(ctx, glossaryID)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Out, "%s ready (%d entries)\n", info.GlossaryID, info.EntryCount)
	return nil
}

// RunGlossaryDelete removes a glossary by ID.
func RunGlossaryDelete(ctx context.Context, deps *Deps, glossaryID string) error {
	if err := deps.Client.DeleteGlossary(ctx, glossaryID); err != nil {
		return err
	}
	deps.Log.Info().Str("glossary_id", glossaryID).Msg("glossary deleted")
	return nil
}

func parseGlossaryEntries(pairs []string, file string) (map[string]string, error) {
	entries := make(map[string]string, len(pairs))

	addPair := func(raw string) error {
		source, target, found := strings.Cut(raw, "=")
		source = strings.TrimSpace(source)
		target = strings.TrimSpace(target)
		if !found || source == "" || target == "" {
			return fmt.Errorf("glossary entry %q is not of the form source=target", raw)
		}
		entries[source] = target
		return nil
	}

	for _, pair := range pairs {
		if err := addPair(pair); err != nil {
			return nil, err
		}
	}

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("open entries file: %w", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if err := addPair(line); err != nil {
				return nil, err
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read entries file: %w", err)
		}
	}

	return entries, nil
}
