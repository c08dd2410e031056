package pkgmanager

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Select asks the user to choose a package manager. A terminal on in gets an
// interactive list preselected with current; any other reader gets a
// numbered menu written to out.
func Select(in io.Reader, out io.Writer, current PackageManager) (PackageManager, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return selectInteractive(current)
	}
	return selectFromMenu(bufio.NewReader(in), out)
}

func selectInteractive(current PackageManager) (PackageManager, error) {
	choice := current
	if !choice.Valid() {
		choice = Default
	}

	opts := make([]huh.Option[PackageManager], 0, len(All))
	for _, pm := range All {
		opts = append(opts, huh.NewOption(pm.String(), pm))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[PackageManager]().
				Title("Package manager").
				Description("Used for install, run, and add suggestions").
				Options(opts...).
				Value(&choice),
		),
	).Run()
	if err != nil {
		return "", fmt.Errorf("selecting package manager: %w", err)
	}
	return choice, nil
}

// selectFromMenu presents a numbered list and returns the chosen manager.
func selectFromMenu(reader *bufio.Reader, w io.Writer) (PackageManager, error) {
	fmt.Fprintf(w, "\nSelect package manager:\n")
	for i, pm := range All {
		fmt.Fprintf(w, "  %d) %s\n", i+1, pm)
	}
	fmt.Fprintf(w, "Enter number [1-%d]: ", len(All))

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading selection: %w", err)
	}

	input := strings.TrimSpace(line)
	num, err := strconv.Atoi(input)
	if err != nil || num < 1 || num > len(All) {
		return "", fmt.Errorf("invalid selection %q: choose 1-%d", input, len(All))
	}
	return All[num-1], nil
}
