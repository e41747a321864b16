package main

import (
	"strings"
	"testing"

	"github.com/guardeat/treekit/hashtree"
)

func runOn(t *testing.T, script string) (string, error) {
	t.Helper()
	tr := hashtree.NewStrings[string]()
	var out strings.Builder
	err := runScript(tr, strings.NewReader(script), &out)
	return out.String(), err
}

// Test_RunScript_BuildAndPrint tests the happy path end to end.
func Test_RunScript_BuildAndPrint(t *testing.T) {
	script := `
# build a two-level tree
insert a 1
insert b 2
insert c 3 a
parent c a 0
stats
`
	out, err := runOn(t, script)
	if err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	if out != "size=3 table=4 load=0.750\n" {
		t.Errorf("stats output = %q", out)
	}
}

// Test_RunScript_PrintOrder tests that print renders attachment order.
func Test_RunScript_PrintOrder(t *testing.T) {
	script := `
insert root r
insert x 1 root
insert y 2 root
print
`
	out, err := runOn(t, script)
	if err != nil {
		t.Fatalf("runScript failed: %v", err)
	}
	want := "root = r\n├── x = 1\n└── y = 2\n"
	if out != want {
		t.Errorf("print output = %q, want %q", out, want)
	}
}

// Test_RunScript_ErrorsCarryLineNumbers tests failure reporting.
func Test_RunScript_ErrorsCarryLineNumbers(t *testing.T) {
	script := "insert a 1\nerase ghost\n"
	_, err := runOn(t, script)
	if err == nil {
		t.Fatal("expected an error for erasing a missing key")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name line 2", err)
	}
	if !strings.Contains(err.Error(), "key not found") {
		t.Errorf("error %q should carry the container error", err)
	}
}

// Test_RunScript_UnknownCommand tests rejection of junk input.
func Test_RunScript_UnknownCommand(t *testing.T) {
	_, err := runOn(t, "frobnicate a\n")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("err = %v, want unknown command", err)
	}
}
