package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/abdelrhmanQ/shc2/core"
	"github.com/abdelrhmanQ/shc2/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	usrSvc   *user.Service
	notifier core.Notifier
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  addadmin -name NAME -email EMAIL  - create an admin account (password prompted)")
	fmt.Println("  promote -email EMAIL              - grant an existing user the admin role")
	fmt.Println("  listusers                         - print all registered users")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addAdminCmd := flag.NewFlagSet("addadmin", flag.ExitOnError)
	addAdminName := addAdminCmd.String("name", "", "The admin's full name.")
	addAdminEmail := addAdminCmd.String("email", "", "The admin's email. The password will be prompted next.")

	promoteCmd := flag.NewFlagSet("promote", flag.ExitOnError)
	promoteEmail := promoteCmd.String("email", "", "The user's email.")

	switch args[1] {
	case "addadmin":
		if err := addAdminCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addAdminName == "" || *addAdminEmail == "" {
			addAdminCmd.Usage()
			return errHelp
		}
		pwd, err := cli.promptPassword()
		if err != nil {
			return err
		}
		return cli.addAdmin(*addAdminName, *addAdminEmail, pwd)
	case "promote":
		if err := promoteCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *promoteEmail == "" {
			promoteCmd.Usage()
			return errHelp
		}
		return cli.promote(*promoteEmail)
	case "listusers":
		return cli.listUsers()
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) promptPassword() (string, error) {
	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(pwd) == 0 {
		return "", errHelp
	}
	return string(pwd), nil
}

// addAdmin registers the account then promotes it.
func (cli *commandLine) addAdmin(name, email, pwd string) error {
	ctx := context.Background()
	usr, err := cli.usrSvc.Register(ctx, user.NewUser{
		Name:            name,
		Email:           email,
		Password:        pwd,
		PasswordConfirm: pwd,
	})
	if err != nil {
		cli.notifier.Notify(core.NotifyError, "failed to create admin account")
		return err
	}
	if _, err := cli.usrSvc.SetRole(ctx, usr.ID, user.RoleAdmin); err != nil {
		cli.notifier.Notify(core.NotifyError, "account created but promotion failed")
		return err
	}
	cli.notifier.Notify(core.NotifySuccess, "admin account created: "+usr.Email)
	return nil
}

func (cli *commandLine) promote(email string) error {
	ctx := context.Background()
	usr, err := cli.usrSvc.GetByEmail(ctx, email)
	if err != nil {
		cli.notifier.Notify(core.NotifyError, "no user with email "+email)
		return err
	}
	if _, err := cli.usrSvc.SetRole(ctx, usr.ID, user.RoleAdmin); err != nil {
		cli.notifier.Notify(core.NotifyError, "promotion failed")
		return err
	}
	cli.notifier.Notify(core.NotifySuccess, usr.Email+" is now an admin")
	return nil
}

func (cli *commandLine) listUsers() error {
	users, err := cli.usrSvc.QueryAll(context.Background())
	if err != nil {
		return err
	}
	for _, usr := range users {
		fmt.Printf("%s\t%s\t%s\t%s\n", usr.ID, usr.Name, usr.Email, usr.Role)
	}
	return nil
}
