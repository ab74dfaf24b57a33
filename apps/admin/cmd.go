package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/term"

	echoapi "github.com/trezcool/masomo/apps/api/echo"
	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/collection"
	"github.com/trezcool/masomo/core/user"
	exportsvc "github.com/trezcool/masomo/services/export"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf    *core.Config
	usrSvc  *user.Service
	screens map[string]screen
	in      io.Reader
	out     io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  token -username USERNAME|EMAIL - print an API token. The password will be prompted next.")
	fmt.Fprintln(cli.out, "  stats -screen SCREEN - print the screen's statistics")
	fmt.Fprintln(cli.out, "  export -screen SCREEN -out FILE.xlsx [-search TEXT] [-filter NAME=VALUE]... [-ordering FIELD,-FIELD] - export a filtered screen")
	fmt.Fprintln(cli.out, "  browse -screen SCREEN - browse a screen interactively")
	fmt.Fprintf(cli.out, "Screens: %s\n", strings.Join(screenNames(cli.screens), ", "))
}

// filterFlag collects repeated `-filter name=value` flags.
type filterFlag map[string]string

func (f filterFlag) String() string {
	pairs := make([]string, 0, len(f))
	for name, val := range f {
		pairs = append(pairs, name+"="+val)
	}
	return strings.Join(pairs, ",")
}

func (f filterFlag) Set(val string) error {
	name, value, ok := strings.Cut(val, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return errors.Errorf("filter must be of form NAME=VALUE (got '%s')", val)
	}
	f[core.CleanString(name, true /* lower */)] = core.CleanString(value)
	return nil
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func (cli *commandLine) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) screen(fs *flag.FlagSet, name string) (screen, error) {
	if name == "" {
		fs.Usage()
		return screen{}, errHelp
	}
	scr, ok := cli.screens[strings.ToLower(name)]
	if !ok {
		return screen{}, errors.Wrap(errUnknownScreen, name)
	}
	return scr, nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()

	tokenCmd := cli.newFlagSet("token")
	tokenUname := tokenCmd.String("username", "", "The user's username or email. The password will be prompted next.")

	statsCmd := cli.newFlagSet("stats")
	statsScreen := statsCmd.String("screen", "", "The screen to compute statistics for.")

	exportCmd := cli.newFlagSet("export")
	exportScreen := exportCmd.String("screen", "", "The screen to export.")
	exportOut := exportCmd.String("out", "", "The xlsx file to write.")
	exportSearch := exportCmd.String("search", "", "Case-insensitive search text.")
	exportOrdering := exportCmd.String("ordering", "", "Comma-separated fields to order by, '-' prefixed for descending order.")
	exportFilters := make(filterFlag)
	exportCmd.Var(exportFilters, "filter", "A categorical filter NAME=VALUE. May be repeated.")

	browseCmd := cli.newFlagSet("browse")
	browseScreen := browseCmd.String("screen", "", "The screen to browse.")

	switch args[1] {
	case "token":
		if err := cli.parse(tokenCmd, args[2:]); err != nil {
			return err
		}
		if *tokenUname == "" {
			tokenCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(ctx, *tokenUname, string(pwd))

	case "stats":
		if err := cli.parse(statsCmd, args[2:]); err != nil {
			return err
		}
		scr, err := cli.screen(statsCmd, *statsScreen)
		if err != nil {
			return err
		}
		return cli.stats(ctx, scr)

	case "export":
		if err := cli.parse(exportCmd, args[2:]); err != nil {
			return err
		}
		scr, err := cli.screen(exportCmd, *exportScreen)
		if err != nil {
			return err
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		sheet, err := scr.sheet(ctx, *exportSearch, *exportOrdering, exportFilters)
		if err != nil {
			return err
		}
		return cli.export(sheet, *exportOut)

	case "browse":
		if err := cli.parse(browseCmd, args[2:]); err != nil {
			return err
		}
		scr, err := cli.screen(browseCmd, *browseScreen)
		if err != nil {
			return err
		}
		return cli.browse(ctx, scr)

	default:
		cli.printUsage()
		return errHelp
	}
}

// Commands

func (cli *commandLine) token(ctx context.Context, uname, pwd string) error {
	usr, err := cli.usrSvc.Authenticate(ctx, uname, pwd)
	if err != nil {
		return err
	}
	token, err := echoapi.GenerateToken(cli.conf, echoapi.GetUserClaims(cli.conf, usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	fmt.Fprintln(cli.out, token)
	return nil
}

func (cli *commandLine) stats(ctx context.Context, scr screen) error {
	stats, err := scr.stats(ctx)
	if err != nil {
		return errors.Wrap(err, "computing stats")
	}
	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	return enc.Encode(stats)
}

func (cli *commandLine) export(sheet collection.Sheet, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating export file")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing export file")
		}
	}()

	if err = exportsvc.WriteXLSX(f, sheet); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d %s exported to %s\n", len(sheet.Rows), strings.ToLower(sheet.Title), path)
	return nil
}

func (cli *commandLine) browse(ctx context.Context, scr screen) error {
	view, err := scr.view(ctx, cli.conf.Listing.PageSize)
	if err != nil {
		return err
	}

	cli.renderView(view)
	scanner := bufio.NewScanner(cli.in)
	for {
		fmt.Fprint(cli.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(cli.out)
			return scanner.Err()
		}
		quit, err := cli.browseCommand(view, scanner.Text())
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintf(cli.out, "error: %s\n", err)
			continue
		}
		cli.renderView(view)
	}
}

// browseCommand applies one console line to view. It reports whether the console should stop.
func (cli *commandLine) browseCommand(view browser, line string) (quit bool, err error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit", "q":
		return true, nil
	case "search":
		view.SetSearch(arg)
	case "filter":
		name, value, _ := strings.Cut(arg, " ")
		if name == "" {
			return false, errors.New("usage: filter NAME [VALUE]")
		}
		return false, view.SetFilter(strings.ToLower(name), core.CleanString(value))
	case "page":
		page, err := strconv.Atoi(arg)
		if err != nil {
			return false, errors.New("usage: page N")
		}
		view.SetPage(page)
	case "next", "n":
		view.NextPage()
	case "prev", "p":
		view.PrevPage()
	case "open":
		return false, view.Select(arg)
	case "close":
		view.Close()
	case "reset":
		view.Reset()
	default:
		return false, errors.New("commands: search TEXT, filter NAME [VALUE], page N, next, prev, open ID, close, reset, quit")
	}
	return false, nil
}

func (cli *commandLine) renderView(view browser) {
	page, pages, total := view.Position()
	fmt.Fprintf(cli.out, "%s: page %d/%d (%d records)\n", view.Title(), page, pages, total)
	cli.renderSheet(view.Sheet())

	if detail, ok := view.Detail(); ok {
		fmt.Fprintln(cli.out)
		cli.renderSheet(detail)
	}
}

func (cli *commandLine) renderSheet(sheet collection.Sheet) {
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(sheet.Header, "\t"))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = collection.Text(cell)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
}
