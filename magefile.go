//go:build mage

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	CmdDir   = "cmd/server"
	BuildDir = "bin"
)

// run executes name with args, streaming output. extraEnv entries are
// KEY=VALUE pairs appended to the current environment.
func run(extraEnv []string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Env = append(os.Environ(), extraEnv...)
	cmd.Stdout, cmd.Stderr, cmd.Stdin = os.Stdout, os.Stderr, os.Stdin
	return cmd.Run()
}

func sh(name string, args ...string) error { return run(nil, name, args...) }

func capture(name string, args ...string) string {
	var buf bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout, cmd.Stderr = &buf, &buf
	_ = cmd.Run()
	return strings.TrimSpace(buf.String())
}

func requireTools(tools ...string) error {
	for _, t := range tools {
		if _, err := exec.LookPath(t); err != nil {
			return fmt.Errorf("%s not found; run 'mage deps'", t)
		}
	}
	return nil
}

// testArgs builds go test arguments, enabling cgo for the race detector
// unless NO_RACE=1.
func testArgs(extra ...string) ([]string, []string) {
	args := append([]string{"test"}, extra...)
	if os.Getenv("NO_RACE") == "1" {
		return append(args, "./..."), nil
	}
	return append(args, "-race", "./..."), []string{"CGO_ENABLED=1"}
}

// Deps installs the linters used by Lint and Fmt.
func Deps() error {
	for _, tool := range []string{
		"golang.org/x/tools/cmd/goimports@latest",
		"honnef.co/go/tools/cmd/staticcheck@latest",
		"github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
	} {
		if err := sh("go", "install", tool); err != nil {
			return err
		}
	}
	return nil
}

// Build compiles the hostpro binary into ./bin.
func Build() error {
	if err := os.MkdirAll(BuildDir, 0o755); err != nil {
		return err
	}
	name := "hostpro"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return sh("go", "build", "-trimpath", "-ldflags", "-s -w", "-o", filepath.Join(BuildDir, name), "./"+CmdDir)
}

// Run starts the server from source.
func Run() error {
	return sh("go", "run", "./"+CmdDir, "serve")
}

// Migrate applies database migrations to the configured DB_PATH.
func Migrate() error {
	return sh("go", "run", "./"+CmdDir, "migrate")
}

// Catalog prints the seeded catalog summary.
func Catalog() error {
	return sh("go", "run", "./"+CmdDir, "catalog")
}

// Test runs the unit tests, with the race detector unless NO_RACE=1.
func Test() error {
	args, env := testArgs()
	return run(env, "go", args...)
}

// Cover writes coverage.out and coverage.html.
func Cover() error {
	args, env := testArgs("-coverprofile=coverage.out")
	if err := run(env, "go", args...); err != nil {
		return err
	}
	return sh("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Lint runs go vet, staticcheck and golangci-lint.
func Lint() error {
	if err := requireTools("staticcheck", "golangci-lint"); err != nil {
		return err
	}
	for _, c := range [][]string{{"go", "vet", "./..."}, {"staticcheck", "./..."}, {"golangci-lint", "run"}} {
		if err := sh(c[0], c[1:]...); err != nil {
			return err
		}
	}
	return nil
}

// Fmt rewrites sources with gofmt and goimports.
func Fmt() error {
	if err := sh("gofmt", "-w", "."); err != nil {
		return err
	}
	return sh("goimports", "-w", ".")
}

// FmtCheck fails when any file needs gofmt or goimports.
func FmtCheck() error {
	var msgs []string
	for _, tool := range []string{"gofmt", "goimports"} {
		if files := capture(tool, "-l", "."); files != "" {
			msgs = append(msgs, "needs "+tool+":\n"+files)
		}
	}
	if len(msgs) > 0 {
		return errors.New(strings.Join(msgs, "\n\n"))
	}
	return nil
}

// TidyCheck fails when go mod tidy would change go.mod or go.sum.
func TidyCheck() error {
	before := capture("git", "status", "--porcelain", "--", "go.mod", "go.sum")
	if err := sh("go", "mod", "tidy"); err != nil {
		return err
	}
	if after := capture("git", "status", "--porcelain", "--", "go.mod", "go.sum"); after != before {
		return fmt.Errorf("go.mod/go.sum not tidy:\n%s", capture("git", "--no-pager", "diff", "--", "go.mod", "go.sum"))
	}
	return nil
}

// Clean removes build output, coverage files and local data files.
func Clean() error {
	for _, p := range []string{BuildDir, "coverage.out", "coverage.html", "hostpro.db", "hostpro.db-wal", "hostpro.db-shm", "hostpro-prefs"} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return nil
}

// Verify runs the checks CI runs.
func Verify() error {
	for _, step := range []func() error{FmtCheck, TidyCheck, Lint, Build, Test} {
		if err := step(); err != nil {
			return err
		}
	}
	fmt.Println("build and checks passed")
	return nil
}
