package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/redpwn/simplepow/pow"
)

const (
	exampleInput  = "129df964b701d0b8e72fe7224cc71643cf8e000d122e72f742747708f5e3bb6294c619604e52dcd8f5446da7e9ff7459d1d3cefbcc231dd4c02730a22af9880c"
	exampleOutput = "6681edd1d36af256c615bf6dcfcda03c282c3e0871bd75564458d77c529dcafe\n00003997\n"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, key := range []string{"POW_VERBOSE", "POW_PROGRESS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	var stdout, stderr bytes.Buffer
	err := run(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRunExample(t *testing.T) {
	stdout, stderr, err := runArgs(t, exampleInput)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout != exampleOutput {
		t.Errorf("stdout = %q, want %q", stdout, exampleOutput)
	}
	if stderr != "" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"no argument", nil, errMissingArgument},
		{"not hex", []string{"xyz"}, pow.ErrInvalidEncoding},
		{"63 bytes", []string{exampleInput[:126]}, pow.ErrInvalidLength},
		{"65 bytes", []string{exampleInput + "ff"}, pow.ErrInvalidLength},
		{"two arguments", []string{exampleInput, exampleInput}, errTooManyArguments},
		{"bad check prefix", []string{"-c", "zz", exampleInput}, pow.ErrInvalidEncoding},
		{"short check prefix", []string{"--check", "3997", exampleInput}, pow.ErrInvalidLength},
		{"check mismatch", []string{"-c", "00003996", exampleInput}, pow.ErrPredicateMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runArgs(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Fatalf("run error = %v, want %v", err, tt.want)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want nothing", stdout)
			}
		})
	}
}

func TestRunCheck(t *testing.T) {
	stdout, _, err := runArgs(t, "-c", "00003997", exampleInput)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout != exampleOutput {
		t.Errorf("stdout = %q, want %q", stdout, exampleOutput)
	}
}

func TestRunVerbose(t *testing.T) {
	stdout, stderr, err := runArgs(t, "-v", "--progress", "4k", exampleInput)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout != exampleOutput {
		t.Errorf("stdout = %q, want %q", stdout, exampleOutput)
	}
	for _, want := range []string{
		"sha256 acceleration: ",
		"search: tried 4k candidates, at prefix 00000f9f",
		"search: found prefix 00003997",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
}

func TestRunBadProgress(t *testing.T) {
	if _, _, err := runArgs(t, "--progress", "lots", exampleInput); err == nil {
		t.Fatal("run succeeded with invalid --progress")
	}
}

func TestRunHelp(t *testing.T) {
	stdout, stderr, err := runArgs(t, "-h")
	if err != nil {
		t.Fatalf("run -h: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
	if !strings.Contains(stderr, usage) {
		t.Errorf("stderr missing usage:\n%s", stderr)
	}
}

func TestRunOutputDecodes(t *testing.T) {
	stdout, _, err := runArgs(t, exampleInput)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	digest, err := hex.DecodeString(lines[0])
	if err != nil || len(digest) != pow.DigestSize {
		t.Fatalf("digest line %q: %d bytes, %v", lines[0], len(digest), err)
	}
	prefix, err := pow.ParsePrefix(lines[1])
	if err != nil {
		t.Fatalf("ParsePrefix(%q): %v", lines[1], err)
	}
	in, err := pow.DecodeInput(exampleInput)
	if err != nil {
		t.Fatalf("DecodeInput: %v", err)
	}
	if sum := pow.Sum(in, prefix); !bytes.Equal(sum[:], digest) {
		t.Errorf("digest line = %x, want %x", digest, sum)
	}
	if in.String() != exampleInput {
		t.Errorf("input does not round-trip: %s", in)
	}
}
