package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/core/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/platform/database"
	"github.com/SscSPs/expense_tracker_app/internal/repositories/database/pgsql"
	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// userProvisioner is the slice of the user service this command needs.
type userProvisioner interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
}

type connectFunc func(ctx context.Context, databaseURL string) (userProvisioner, func(), error)

func main() {
	_ = godotenv.Load()
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, connectPostgres); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func connectPostgres(ctx context.Context, databaseURL string) (userProvisioner, func(), error) {
	pool, err := database.NewPgxPool(ctx, databaseURL, true)
	if err != nil {
		return nil, nil, err
	}
	repos := pgsql.NewRepositoryProvider(pool)
	return services.NewUserService(repos.UserRepo, repos.RoleRepo), pool.Close, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, connect connectFunc) error {
	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Email address")
	firstName := fs.String("first", "", "First name")
	lastName := fs.String("last", "", "Last name")
	roleName := fs.String("role", string(domain.RoleUser), "Role (admin or user)")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	dbURL := fs.String("db", os.Getenv("PGSQL_URL"), "PostgreSQL connection URL")

	if err := fs.Parse(args); err != nil {
		return err
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"email", *email},
		{"first", *firstName},
		{"last", *lastName},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintln(stdout, "Usage: adduser -email <email> -first <name> -last <name> [-role admin|user] [-password <password>] [-db <url>]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: %s", strings.Join(missing, ", "))
	}
	if *dbURL == "" {
		return errors.New("no database URL: set -db or PGSQL_URL")
	}

	password := *passwordFlag
	if password == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		password, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password cannot be empty")
	}

	users, closeDB, err := connect(ctx, *dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeDB()

	roleID, err := lookupRole(ctx, users, domain.RoleName(strings.ToLower(*roleName)))
	if err != nil {
		return err
	}

	user, err := users.CreateUser(ctx, dto.CreateUserRequest{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Password:  password,
		RoleID:    roleID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("user %s already exists", *email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %s (role %s)\n", user.Email, user.UserID, user.RoleName)
	return nil
}

func lookupRole(ctx context.Context, users userProvisioner, name domain.RoleName) (string, error) {
	roles, err := users.ListRoles(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list roles: %w", err)
	}
	for _, r := range roles {
		if r.Name == name {
			return r.RoleID, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", name)
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Pipes and tests.
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
