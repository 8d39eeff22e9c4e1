package main

import (
	"errors"
	"fmt"
	"hostel/di"
	"hostel/internal/domains/user/model/dto"
	"hostel/shared/actor"
	"hostel/shared/constant"
	"hostel/shared/validator"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

var (
	readPasswordFunc = func() ([]byte, error) { return term.ReadPassword(int(syscall.Stdin)) }

	errPasswordMismatch = errors.New("passwords do not match")
)

type commandLine struct {
	admin        func() *di.Admin
	readPassword func() ([]byte, error)
}

func (c *commandLine) app() *cli.App {
	return &cli.App{
		Name:  "hostel-admin",
		Usage: "operator tasks for the hostel portal",
		Commands: []*cli.Command{
			{
				Name:  "adduser",
				Usage: "create an account, the password is prompted",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "full-name", Required: true},
					&cli.StringFlag{Name: "level", Value: constant.RoleStaff, Usage: "staff or student"},
				},
				Action: c.addUser,
			},
			{
				Name:  "reconcile",
				Usage: "compare room occupancy counters with assigned students",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "fix", Usage: "recount drifted rooms"},
				},
				Action: c.reconcile,
			},
		},
	}
}

func (c *commandLine) promptPassword(ctx *cli.Context) (string, error) {
	fmt.Fprint(ctx.App.Writer, "Enter password: ")

	password, err := c.readPassword()
	fmt.Fprintln(ctx.App.Writer)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(ctx.App.Writer, "Repeat password: ")

	confirm, err := c.readPassword()
	fmt.Fprintln(ctx.App.Writer)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(password) != string(confirm) {
		return "", errPasswordMismatch
	}

	return string(password), nil
}

func (c *commandLine) addUser(ctx *cli.Context) error {
	req := dto.CreateUserRequest{
		Username: ctx.String("username"),
		Email:    ctx.String("email"),
		FullName: ctx.String("full-name"),
		Level:    ctx.String("level"),
	}

	password, err := c.promptPassword(ctx)
	if err != nil {
		return err
	}

	req.Password = password

	if err := validator.ValidateStruct(&req); err != nil {
		return err
	}

	user, err := c.admin().Users.Create(ctx.Context, actor.System(), req)
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "created %s user %s (%s)\n", user.Level, user.Username, user.ID)

	return nil
}

func (c *commandLine) reconcile(ctx *cli.Context) error {
	tracker := c.admin().Tracker

	drifts, err := tracker.Audit(ctx.Context)
	if err != nil {
		return err
	}

	if len(drifts) == 0 {
		fmt.Fprintln(ctx.App.Writer, "occupancy counters are consistent")

		return nil
	}

	for _, room := range drifts {
		fmt.Fprintf(ctx.App.Writer, "room %s: counter %d, assigned %d\n", room.Number, room.Occupied, room.Assigned)
	}

	if !ctx.Bool("fix") {
		fmt.Fprintln(ctx.App.Writer, "run again with --fix to recount")

		return nil
	}

	fixed, err := tracker.Repair(ctx.Context, actor.System())
	if err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "repaired %d rooms\n", fixed)

	return nil
}
