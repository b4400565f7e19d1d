package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dgrijalva/jwt-go"

	"github.com/shulehq/shule/core/access"
	"github.com/shulehq/shule/services/directory/dummy"
	"github.com/shulehq/shule/storage/kv/inmem"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testCLI(t *testing.T) (*commandLine, *bytes.Buffer) {
	dir := dummydir.NewService()
	dir.Profiles["7"] = &access.Profile{
		AdminLinks: []access.TenantAdminLink{{TenantID: "1", TenantName: "Acme", Role: "owner"}},
	}
	dir.Profiles["8"] = &access.Profile{
		AdminLinks: []access.TenantAdminLink{
			{TenantID: "2", TenantName: "Beta", Role: "owner"},
			{TenantID: "1", TenantName: "Acme", Role: "manager"},
		},
	}

	out := new(bytes.Buffer)
	cli := &commandLine{
		accessSvc: access.NewService(dir, inmemkv.NewSelectionStore(), nopLogger{}),
		out:       out,
	}
	return cli, out
}

func testToken(t *testing.T, principal string) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.StandardClaims{Subject: principal}).
		SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("testToken() failed: %v", err)
	}
	return token
}

func Test_commandLine_run(t *testing.T) {
	t.Run("no args prints usage", func(t *testing.T) {
		cli, out := testCLI(t)
		if err := cli.run([]string{"admin"}); err != errHelp {
			t.Errorf("run() error = %v, want %v", err, errHelp)
		}
		if !strings.Contains(out.String(), "Usage:") {
			t.Errorf("run() output = %q", out.String())
		}
	})

	t.Run("unknown command prints usage", func(t *testing.T) {
		cli, _ := testCLI(t)
		if err := cli.run([]string{"admin", "wat"}); err != errHelp {
			t.Errorf("run() error = %v, want %v", err, errHelp)
		}
	})

	t.Run("resolve prints roles and destination", func(t *testing.T) {
		cli, out := testCLI(t)
		err := cli.run([]string{"admin", "resolve", "-token", testToken(t, "7")})
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}
		got := out.String()
		for _, want := range []string{"Principal: 7", "Academy 1 (Acme): owner", "Destination: academy/1/admin"} {
			if !strings.Contains(got, want) {
				t.Errorf("run() output missing %q:\n%s", want, got)
			}
		}
	})

	t.Run("resolve lists academies in id order", func(t *testing.T) {
		cli, out := testCLI(t)
		if err := cli.run([]string{"admin", "resolve", "-token", testToken(t, "8")}); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		got := out.String()
		acme := strings.Index(got, "Academy 1 (Acme): manager")
		beta := strings.Index(got, "Academy 2 (Beta): owner")
		if acme == -1 || beta == -1 || beta < acme {
			t.Errorf("run() academies out of order:\n%s", got)
		}
	})

	t.Run("resolve with a bad token fails", func(t *testing.T) {
		cli, _ := testCLI(t)
		if err := cli.run([]string{"admin", "resolve", "-token", "lol"}); err != access.ErrNoSession {
			t.Errorf("run() error = %v, want %v", err, access.ErrNoSession)
		}
	})
}
