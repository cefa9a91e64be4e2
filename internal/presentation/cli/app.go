// Package cli implements the role-based console portals. It is a thin I/O
// layer over the application services and owns no business rules.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/registrarhq/registrar/internal/application/service"
	"github.com/registrarhq/registrar/pkg/apperror"
)

// App wires the services behind the console menus
type App struct {
	in  *bufio.Reader
	out io.Writer

	auth        *service.AuthService
	students    *service.StudentService
	teachers    *service.TeacherService
	courses     *service.CourseService
	fees        *service.FeeService
	payroll     *service.PayrollService
	parents     *service.ParentService
	evaluations *service.EvaluationService
}

// Services bundles everything the console needs
type Services struct {
	Auth        *service.AuthService
	Students    *service.StudentService
	Teachers    *service.TeacherService
	Courses     *service.CourseService
	Fees        *service.FeeService
	Payroll     *service.PayrollService
	Parents     *service.ParentService
	Evaluations *service.EvaluationService
}

// New creates the console app reading from in and writing to out
func New(in io.Reader, out io.Writer, svcs Services) *App {
	return &App{
		in:  bufio.NewReader(in),
		out: out,

		auth:        svcs.Auth,
		students:    svcs.Students,
		teachers:    svcs.Teachers,
		courses:     svcs.Courses,
		fees:        svcs.Fees,
		payroll:     svcs.Payroll,
		parents:     svcs.Parents,
		evaluations: svcs.Evaluations,
	}
}

// Run shows the entry menu until the operator exits
func (a *App) Run(ctx context.Context) error {
	if err := a.bootstrapAdmin(ctx); err != nil {
		return err
	}

	for {
		a.println("")
		a.println("===== College Records Manager =====")
		a.println("1. Admin Portal")
		a.println("2. User Portal")
		a.println("3. Exit")

		switch a.prompt("Select option: ") {
		case "1":
			a.adminLogin(ctx)
		case "2":
			a.userPortal(ctx)
		case "3":
			a.println("Goodbye.")
			return nil
		default:
			a.println("Invalid option.")
		}
	}
}

// bootstrapAdmin forces creation of the first admin account on a fresh install
func (a *App) bootstrapAdmin(ctx context.Context) error {
	has, err := a.auth.HasAdmins(ctx)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	a.println("No admin account found. Create one to continue.")
	for {
		input := &service.RegisterAdminInput{
			Username:          a.prompt("Username: "),
			Password:          a.prompt("Password: "),
			SecurityQuestions: map[string]string{},
		}
		for i := 1; i <= 3; i++ {
			q := a.prompt(fmt.Sprintf("Security question %d: ", i))
			ans := a.prompt("Answer: ")
			input.SecurityQuestions[q] = ans
		}

		if _, err := a.auth.RegisterAdmin(ctx, input); err != nil {
			a.printErr(err)
			continue
		}
		a.println("Admin account created.")
		return nil
	}
}

func (a *App) adminLogin(ctx context.Context) {
	username := a.prompt("Username: ")
	password := a.prompt("Password: ")

	if _, err := a.auth.LoginAdmin(ctx, username, password); err != nil {
		a.printErr(err)
		if a.prompt("Forgot password? (y/n): ") == "y" {
			a.recoverAdmin(ctx, username)
		}
		return
	}
	a.adminMenu(ctx, username)
}

func (a *App) recoverAdmin(ctx context.Context, username string) {
	questions, err := a.auth.SecurityQuestions(ctx, username)
	if err != nil {
		a.printErr(err)
		return
	}

	answers := map[string]string{}
	for _, q := range questions {
		answers[q] = a.prompt(q + " ")
	}
	newPassword := a.prompt("New password: ")

	if err := a.auth.RecoverAdminPassword(ctx, username, answers, newPassword); err != nil {
		a.printErr(err)
		return
	}
	a.println("Password reset. Log in again.")
}

// prompt reads one trimmed line after printing the label
func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// promptInt re-asks until the operator types a whole number
func (a *App) promptInt(label string) int {
	for {
		raw := a.prompt(label)
		n, err := strconv.Atoi(raw)
		if err == nil {
			return n
		}
		a.println("Enter a whole number.")
	}
}

// promptFloat re-asks until the operator types a number
func (a *App) promptFloat(label string) float64 {
	for {
		raw := a.prompt(label)
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return f
		}
		a.println("Enter a number.")
	}
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printErr(err error) {
	appErr := apperror.GetAppError(err)
	fmt.Fprintln(a.out, "Error: "+appErr.Message)
}
