// 16 Oct 2026

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/molscript/pkg/cmmn"
	"github.com/andrew-torda/molscript/pkg/scriptio"
	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cmmn.ExitFailure)
	}
}

var commonFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "log",
		Usage: `where to write progress, "stdout" or a file name. Default is nowhere`,
	},
	&cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "output file, default is standard output",
	},
}

// modeCommand makes a command that runs one file through mode.
func modeCommand(mode scriptio.Mode, usage string) *cli.Command {
	return &cli.Command{
		Name:      mode.String(),
		Usage:     usage,
		ArgsUsage: "<file>",
		Flags:     commonFlags,
		Action: func(cctx *cli.Context) error {
			return runMode(cctx, mode)
		},
	}
}

func runMode(cctx *cli.Context, mode scriptio.Mode) error {
	if cctx.NArg() != 1 {
		return cli.Exit("expected a single file argument", cmmn.ExitUsageError)
	}
	var w io.Writer = os.Stdout
	if outfile := cctx.String("out"); outfile != "" {
		fp, err := os.Create(outfile)
		if err != nil {
			return err
		}
		defer fp.Close()
		w = fp
	}
	opts := &scriptio.Options{Mode: mode, LogFile: cctx.String("log")}
	return scriptio.Run(opts, cctx.Args().First(), w)
}

func run(args []string) error {
	app := cli.App{
		Name:    "molscript",
		Usage:   "read and write molecular scripting literals",
		Version: versioninfo.Short(),
	}
	app.Commands = []*cli.Command{
		modeCommand(scriptio.ModeUnescape, "read points, atom sets and matrices, one per line"),
		modeCommand(scriptio.ModeUnicode, `expand \uXXXX escapes`),
		modeCommand(scriptio.ModeStrings, `read ["a", "b"] string arrays and write them back`),
	}
	return app.Run(args)
}
