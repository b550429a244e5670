// Package command provides CLI command definitions for docfold-cli.
package command

import (
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/docfold-go/internal/core/domain"
	"github.com/yndnr/docfold-go/internal/core/service"
)

// UserCommand returns the user subcommand group.
func UserCommand() *cli.Command {
	return &cli.Command{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "Manage credential records",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Create a credential record",
				ArgsUsage: "USERNAME PASSWORD",
				Action:    userAdd,
			},
			{
				Name:      "passwd",
				Usage:     "Set a user's password",
				ArgsUsage: "USERNAME PASSWORD",
				Action:    userPasswd,
			},
			{
				Name:   "list",
				Usage:  "List known usernames",
				Action: userList,
			},
			{
				Name:      "check",
				Usage:     "Verify a username/password pair",
				ArgsUsage: "USERNAME PASSWORD",
				Action:    userCheck,
			},
		},
	}
}

func userAdd(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: docfold-cli user add USERNAME PASSWORD", 2)
	}

	docs, err := openStore(c)
	if err != nil {
		return err
	}
	defer docs.Close()

	creds, err := openCredentials(c, docs)
	if err != nil {
		return err
	}

	user := c.Args().Get(0)
	if err := creds.Create(c.Context, user, c.Args().Get(1)); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "created user %s\n", user)
	return nil
}

func userPasswd(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: docfold-cli user passwd USERNAME PASSWORD", 2)
	}

	docs, err := openStore(c)
	if err != nil {
		return err
	}
	defer docs.Close()

	creds, err := openCredentials(c, docs)
	if err != nil {
		return err
	}

	user := c.Args().Get(0)
	if err := creds.UpdatePassword(c.Context, user, c.Args().Get(1)); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "updated password for %s\n", user)
	return nil
}

func userList(c *cli.Context) error {
	docs, err := openStore(c)
	if err != nil {
		return err
	}
	defer docs.Close()

	users, err := docs.List(c.Context, service.AuthFolder)
	if err != nil {
		// No auth folder yet means no users.
		if errors.Is(err, domain.ErrFolderNotFound) {
			return nil
		}
		return err
	}

	sort.Strings(users)
	for _, u := range users {
		fmt.Fprintln(c.App.Writer, u)
	}
	return nil
}

func userCheck(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: docfold-cli user check USERNAME PASSWORD", 2)
	}

	docs, err := openStore(c)
	if err != nil {
		return err
	}
	defer docs.Close()

	creds, err := openCredentials(c, docs)
	if err != nil {
		return err
	}

	if err := creds.Verify(c.Context, c.Args().Get(0), c.Args().Get(1)); err != nil {
		return cli.Exit("verification failed", 1)
	}

	fmt.Fprintln(c.App.Writer, "ok")
	return nil
}
