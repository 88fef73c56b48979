package app

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// RunLanguages prints the supported source or target languages.
func RunLanguages(ctx context.Context, deps *Deps, kind string) error {
	var target bool
	switch kind {
	case "", "source":
	case "target":
		target = true
	default:
		return fmt.Errorf("language type %q is not source or target", kind)
	}

	fetch := deps.Client.SourceLanguages
	if target {
		fetch = deps.Client.TargetLanguages
	}
	languages, err := fetch(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(deps.Out, 0, 4, 2, ' ', 0)
	for _, lang := range languages {
		line := fmt.Sprintf("%s\t%s", lang.Code, lang.Name)
		if target && lang.SupportsFormality {
			line += "\tformality"
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// RunUsage prints the account usage counters.
func RunUsage(ctx context.Context, deps *Deps) error {
	usage, err := deps.Client.GetUsage(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Out, "characters: %d / %d\n", usage.CharacterCount, usage.CharacterLimit)
	if usage.DocumentLimit > 0 {
		fmt.Fprintf(deps.Out, "documents:  %d / %d\n", usage.DocumentCount, usage.DocumentLimit)
	}
	if usage.AnyLimitReached() {
		fmt.Fprintln(deps.Out, "warning: a usage limit has been reached")
	}
	return nil
}
