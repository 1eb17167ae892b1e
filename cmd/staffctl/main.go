// Command staffctl is a terminal client for the staffhub API. It drives
// the same login flows and staff management endpoints the web dashboard
// uses, keeping its session token in a local file.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"staffhub/client"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "staffctl:", err)
		os.Exit(1)
	}
}

func defaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".staffhub-token"
	}

	return filepath.Join(home, ".config", "staffhub", "token")
}

func run(args []string) error {
	global := pflag.NewFlagSet("staffctl", pflag.ContinueOnError)
	server := global.String("server", "http://localhost:8080", "staffhub API base URL")
	tokenFile := global.String("token-file", defaultTokenPath(), "path of the session token file")
	global.Usage = usage

	if err := global.Parse(args); err != nil {
		return err
	}

	rest := global.Args()
	if len(rest) == 0 {
		usage()

		return fmt.Errorf("missing command")
	}

	api := client.New(*server)
	session := client.NewSession(api, client.NewFileTokenStore(*tokenFile))
	ctx := context.Background()

	command, rest := rest[0], rest[1:]
	switch command {
	case "request-owner-code":
		return requestOwnerCode(ctx, api, rest)
	case "login-owner":
		return loginOwner(ctx, session, rest)
	case "request-employee-code":
		return requestEmployeeCode(ctx, api, rest)
	case "login-employee":
		return loginEmployee(ctx, session, rest)
	case "login-password":
		return loginPassword(ctx, session, rest)
	case "whoami":
		return whoami(ctx, session)
	case "logout":
		return logout(session)
	case "employees":
		return employees(ctx, api, session, rest)
	case "me":
		return me(ctx, api, session)
	default:
		usage()

		return fmt.Errorf("unknown command %q", command)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: staffctl [--server URL] [--token-file PATH] <command>

Commands:
  request-owner-code     --phone NUMBER
  login-owner            --phone NUMBER --code CODE
  request-employee-code  --email ADDRESS
  login-employee         --email ADDRESS --code CODE
  login-password         --email ADDRESS --password PASSWORD
  whoami
  logout
  employees list
  employees create       --name NAME --email ADDRESS --job-title TITLE [--phone NUMBER]
  employees delete       --id UUID
  me
`)
}

func requestOwnerCode(ctx context.Context, api *client.Client, args []string) error {
	flags := pflag.NewFlagSet("request-owner-code", pflag.ContinueOnError)
	phone := flags.String("phone", "", "owner phone number in E.164 form")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := api.GenerateOwnerCode(ctx, *phone); err != nil {
		return err
	}
	fmt.Println("Access code sent. Check your phone.")

	return nil
}

func loginOwner(ctx context.Context, session *client.Session, args []string) error {
	flags := pflag.NewFlagSet("login-owner", pflag.ContinueOnError)
	phone := flags.String("phone", "", "owner phone number in E.164 form")
	code := flags.String("code", "", "6-digit access code")
	if err := flags.Parse(args); err != nil {
		return err
	}

	state, err := session.LoginOwner(ctx, *phone, *code)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s).\n", state.Claims.Role, state.Claims.PhoneNumber)

	return nil
}

func requestEmployeeCode(ctx context.Context, api *client.Client, args []string) error {
	flags := pflag.NewFlagSet("request-employee-code", pflag.ContinueOnError)
	email := flags.String("email", "", "employee email address")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := api.GenerateEmployeeCode(ctx, *email); err != nil {
		return err
	}
	fmt.Println("Access code sent. Check your inbox.")

	return nil
}

func loginEmployee(ctx context.Context, session *client.Session, args []string) error {
	flags := pflag.NewFlagSet("login-employee", pflag.ContinueOnError)
	email := flags.String("email", "", "employee email address")
	code := flags.String("code", "", "6-digit access code")
	if err := flags.Parse(args); err != nil {
		return err
	}

	state, err := session.LoginEmployeeCode(ctx, *email, *code)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s).\n", state.Claims.Role, state.Claims.Email)

	return nil
}

func loginPassword(ctx context.Context, session *client.Session, args []string) error {
	flags := pflag.NewFlagSet("login-password", pflag.ContinueOnError)
	email := flags.String("email", "", "employee email address")
	password := flags.String("password", "", "employee password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	state, err := session.LoginEmployeePassword(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Printf("Logged in as %s (%s).\n", state.Claims.Role, state.Claims.Email)

	return nil
}

func whoami(ctx context.Context, session *client.Session) error {
	state, err := session.Boot(ctx)
	if err != nil {
		return err
	}

	switch state.Kind {
	case client.StateAuthenticated:
		if state.Claims.PhoneNumber != "" {
			fmt.Printf("%s (%s)\n", state.Claims.Role, state.Claims.PhoneNumber)
		} else {
			fmt.Printf("%s (%s)\n", state.Claims.Role, state.Claims.Email)
		}
	default:
		fmt.Println("Not logged in.")
	}

	return nil
}

func logout(session *client.Session) error {
	if err := session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")

	return nil
}

func employees(ctx context.Context, api *client.Client, session *client.Session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("employees: missing subcommand (list, create, delete)")
	}

	token := session.Token()
	if token == "" {
		return fmt.Errorf("not logged in; run login-owner first")
	}

	subcommand, rest := args[0], args[1:]
	switch subcommand {
	case "list":
		list, err := api.ListEmployees(ctx, token)
		if err != nil {
			return err
		}
		for _, employee := range list {
			fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
				employee.UID, employee.Name, employee.Email, employee.JobTitle, employee.Status)
		}

		return nil

	case "create":
		flags := pflag.NewFlagSet("employees create", pflag.ContinueOnError)
		name := flags.String("name", "", "employee name")
		email := flags.String("email", "", "employee email address")
		jobTitle := flags.String("job-title", "", "employee job title")
		phone := flags.String("phone", "", "employee phone number in E.164 form")
		if err := flags.Parse(rest); err != nil {
			return err
		}

		employee, err := api.CreateEmployee(ctx, token, client.CreateEmployeeRequest{
			Name:        *name,
			Email:       *email,
			JobTitle:    *jobTitle,
			PhoneNumber: *phone,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created %s (%s). Welcome mail sent.\n", employee.Name, employee.UID)

		return nil

	case "delete":
		flags := pflag.NewFlagSet("employees delete", pflag.ContinueOnError)
		id := flags.String("id", "", "employee ID")
		if err := flags.Parse(rest); err != nil {
			return err
		}

		if err := api.DeleteEmployee(ctx, token, *id); err != nil {
			return err
		}
		fmt.Println("Deleted.")

		return nil

	default:
		return fmt.Errorf("employees: unknown subcommand %q", subcommand)
	}
}

func me(ctx context.Context, api *client.Client, session *client.Session) error {
	token := session.Token()
	if token == "" {
		return fmt.Errorf("not logged in")
	}

	employee, err := api.Me(ctx, token)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\t%s\t%s\n", employee.Name, employee.Email, employee.JobTitle, employee.Status)

	return nil
}
