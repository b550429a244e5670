// Package command provides CLI command definitions for docfold-cli.
package command

import (
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"
)

// FolderCommand returns the folder subcommand group.
func FolderCommand() *cli.Command {
	return &cli.Command{
		Name:    "folder",
		Aliases: []string{"f"},
		Usage:   "Inspect stored documents",
		Subcommands: []*cli.Command{
			{
				Name:      "keys",
				Usage:     "List document keys in a folder",
				ArgsUsage: "FOLDER",
				Action:    folderKeys,
			},
			{
				Name:      "get",
				Usage:     "Print a document",
				ArgsUsage: "FOLDER KEY",
				Action:    folderGet,
			},
		},
	}
}

func folderKeys(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: docfold-cli folder keys FOLDER", 2)
	}

	docs, err := openStore(c)
	if err != nil {
		return err
	}
	defer docs.Close()

	keys, err := docs.List(c.Context, c.Args().Get(0))
	if err != nil {
		return err
	}

	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintln(c.App.Writer, k)
	}
	return nil
}

func folderGet(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: docfold-cli folder get FOLDER KEY", 2)
	}

	docs, err := openStore(c)
	if err != nil {
		return err
	}
	defer docs.Close()

	data, err := docs.Get(c.Context, c.Args().Get(0), c.Args().Get(1))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}
