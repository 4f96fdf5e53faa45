package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/recarchiver/internal/recorded"
)

const menu = "Select a command\n" +
	"1: Check disk free space\n" +
	"2: Search recorded\n" +
	"3: Upload recorded\n" +
	"4: Delete recorded\n"

const (
	titlePrompt  = "title: "
	prefixPrompt = "S3 prefix ex:2022Q3/Engage Kiss/ : "
)

var warnColor = color.New(color.FgRed)

// Run executes one command. When selection is empty the menu is shown and
// the selection is read from the input.
func (a *App) Run(ctx context.Context, selection string) error {
	if selection == "" {
		s, err := GetSimpleText(a.reader, menu, a.out)
		if err != nil {
			return err
		}
		selection = s
	}
	selection = strings.TrimSpace(selection)

	a.logger.Debug(ctx, "command selected", "selection", selection)

	switch selection {
	case "1":
		return a.checkFreeSpace(ctx)
	case "2":
		return a.search(ctx)
	case "3":
		return a.upload(ctx)
	case "4":
		return a.delete(ctx)
	default:
		warnColor.Fprintf(a.out, "This command not exist. %s\n", selection)
		return nil
	}
}

func (a *App) checkFreeSpace(ctx context.Context) error {
	return a.reporter.Report(ctx, a.out)
}

func (a *App) search(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, titlePrompt, a.out)
	if err != nil {
		return err
	}

	for p, err := range a.searcher.Search(ctx, title) {
		if err != nil {
			return err
		}
		size, err := recorded.FileSizeGB(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s %.1f GB\n", p, size)
	}
	return nil
}

func (a *App) upload(ctx context.Context) error {
	prefix, err := GetSimpleText(a.reader, prefixPrompt, a.out)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, titlePrompt, a.out)
	if err != nil {
		return err
	}

	// Built on the first match, so a title with no matches never needs S3.
	var u uploader
	n := 0
	for p, err := range a.searcher.Search(ctx, title) {
		if err != nil {
			return err
		}
		if u == nil {
			if u, err = a.newUploader(ctx); err != nil {
				return err
			}
		}
		if _, err := u.Upload(ctx, p, prefix); err != nil {
			return err
		}
		n++
	}
	a.logger.Info(ctx, "upload batch finished", "files", n, "prefix", prefix)
	return nil
}

func (a *App) delete(ctx context.Context) error {
	title, err := GetSimpleText(a.reader, titlePrompt, a.out)
	if err != nil {
		return err
	}

	paths, err := recorded.Collect(a.searcher.Search(ctx, title))
	if err != nil {
		return err
	}

	warnColor.Fprintln(a.out, "Are you sure you want to delete this?")
	for _, p := range paths {
		fmt.Fprintln(a.out, p)
	}

	ok, err := Confirm(a.reader, a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.logger.Info(ctx, "delete cancelled", "files", len(paths))
		return nil
	}

	if err := recorded.DeleteAll(paths); err != nil {
		return err
	}
	a.logger.Info(ctx, "deleted", "files", len(paths))
	return nil
}
