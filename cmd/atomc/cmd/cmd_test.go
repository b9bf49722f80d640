package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of f and returns
// everything written to it. The run* functions print straight to
// os.Stdout rather than a cobra.Command writer, matching the teacher's
// own CLI commands, so tests have to intercept it this way.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	f()
	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("reading captured stdout: %v", err)
	}
	return buf.String()
}

func writeFixture(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRootCommandRequiresExactlyOneArg(t *testing.T) {
	if err := rootCmd.Args(rootCmd, nil); err == nil {
		t.Error("expected an error for zero arguments")
	}
	if err := rootCmd.Args(rootCmd, []string{"a", "b"}); err == nil {
		t.Error("expected an error for two arguments")
	}
	if err := rootCmd.Args(rootCmd, []string{"a"}); err != nil {
		t.Errorf("expected one argument to be accepted, got %v", err)
	}
}

func TestRunCheckAcceptsValidProgram(t *testing.T) {
	path := writeFixture(t, "ok.atomc", `
		int add(int a, int b) {
			return a + b;
		}
	`)
	out := captureStdout(t, func() {
		if err := runCheck(rootCmd, []string{path}); err != nil {
			t.Fatalf("runCheck returned an error: %v", err)
		}
	})
	if !strings.Contains(out, "syntactically and semantically correct") {
		t.Errorf("expected the success banner, got %q", out)
	}
}

func TestRunCheckReportsMissingFile(t *testing.T) {
	err := runCheck(rootCmd, []string{filepath.Join(t.TempDir(), "missing.atomc")})
	if err == nil {
		t.Fatal("expected an error for a nonexistent file")
	}
}

func TestRunDumpPrintsDomain(t *testing.T) {
	path := writeFixture(t, "dump.atomc", `
		struct Point {
			int x;
			int y;
		};
		int main() {
			return 0;
		}
	`)
	out := captureStdout(t, func() {
		if err := runDump(dumpCmd, []string{path}); err != nil {
			t.Fatalf("runDump returned an error: %v", err)
		}
	})
	if !strings.Contains(out, "domain: global") {
		t.Errorf("expected a domain header, got %q", out)
	}
	if !strings.Contains(out, "Point") {
		t.Errorf("expected the struct symbol to be listed, got %q", out)
	}
}

func TestRunCheckAcceptsFixtureProgram(t *testing.T) {
	path := filepath.Join("..", "..", "..", "testdata", "valid_program.atomc")
	out := captureStdout(t, func() {
		if err := runCheck(rootCmd, []string{path}); err != nil {
			t.Fatalf("runCheck returned an error for the fixture program: %v", err)
		}
	})
	if !strings.Contains(out, "syntactically and semantically correct") {
		t.Errorf("expected the success banner, got %q", out)
	}
}

func TestRunLexPrintsTokens(t *testing.T) {
	path := writeFixture(t, "lex.atomc", "int x;")
	out := captureStdout(t, func() {
		if err := runLex(lexCmd, []string{path}); err != nil {
			t.Fatalf("runLex returned an error: %v", err)
		}
	})
	if !strings.Contains(out, "TYPE_INT") {
		t.Errorf("expected a TYPE_INT token line, got %q", out)
	}
	if !strings.Contains(out, "ID(x)") {
		t.Errorf("expected an ID(x) token line, got %q", out)
	}
}
