package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"skillmarket/internal/client/models"
)

// printlnFn is a test seam for user-facing output. Tests replace it with a
// capturing stub.
var printlnFn = fmt.Println

// executor is the minimal command surface the REPL needs. App satisfies
// it; tests provide a lightweight stub.
type executor interface {
	isLoggedIn() bool
	role() models.Role

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Browse(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	SkillFilter(ctx context.Context, args []string) error
	Skills(ctx context.Context) error

	ShowProfile(ctx context.Context) error
	CreateProfile(ctx context.Context) error
	StartEdit(ctx context.Context) error
	SetName(ctx context.Context, args []string) error
	SetLocation(ctx context.Context, args []string) error
	SetFocus(ctx context.Context) error
	AddSkill(ctx context.Context, args []string) error
	RemoveSkill(ctx context.Context, args []string) error
	SaveEdit(ctx context.Context) error
	CancelEdit(ctx context.Context) error
}

// runREPL is the interaction loop and the route guard in one: the set of
// commands it accepts follows the session state and role, so a seeker
// never reaches the profile editor and a logged-out visitor only sees
// login/register. It reads a line, dispatches the first token, and prints
// rather than propagates handler errors, keeping the loop alive. Exits on
// EOF or "exit"/"quit".
func runREPL(ctx context.Context, a executor, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("skm %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		handler, ok := resolve(a, cmd)
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := handler(ctx, args); err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

type handlerFn func(ctx context.Context, args []string) error

func noArgs(fn func(context.Context) error) handlerFn {
	return func(ctx context.Context, _ []string) error { return fn(ctx) }
}

// resolve maps a command to its handler within the current session state.
// A command outside the active state is reported as unknown, the same as a
// typo; the caller gets no hint that it exists elsewhere.
func resolve(a executor, cmd string) (handlerFn, bool) {
	if !a.isLoggedIn() {
		switch cmd {
		case "login":
			return noArgs(a.Login), true
		case "register":
			return noArgs(a.Register), true
		}
		return nil, false
	}

	switch cmd {
	case "logout":
		return noArgs(a.Logout), true
	case "whoami":
		return noArgs(a.Whoami), true
	}

	switch a.role() {
	case models.RoleSeeker:
		switch cmd {
		case "browse", "b":
			return noArgs(a.Browse), true
		case "search":
			return a.Search, true
		case "skill":
			return a.SkillFilter, true
		case "skills":
			return noArgs(a.Skills), true
		}
	case models.RoleProvider:
		switch cmd {
		case "profile", "p":
			return noArgs(a.ShowProfile), true
		case "create":
			return noArgs(a.CreateProfile), true
		case "edit":
			return noArgs(a.StartEdit), true
		case "name":
			return a.SetName, true
		case "location":
			return a.SetLocation, true
		case "focus":
			return noArgs(a.SetFocus), true
		case "addskill":
			return a.AddSkill, true
		case "rmskill":
			return a.RemoveSkill, true
		case "save":
			return noArgs(a.SaveEdit), true
		case "cancel":
			return noArgs(a.CancelEdit), true
		}
	}
	return nil, false
}

func printHelp(a executor) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: login, register, exit")
		return
	}
	switch a.role() {
	case models.RoleSeeker:
		printlnFn("Available commands: (b)rowse, search [term], skill <name|any>, skills, whoami, logout, exit")
	case models.RoleProvider:
		printlnFn("Available commands: (p)rofile, create, edit, name <text>, location <text>, focus, addskill <text>, rmskill <n>, save, cancel, whoami, logout, exit")
	default:
		printlnFn("Available commands: whoami, logout, exit")
	}
}
