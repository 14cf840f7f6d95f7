package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness runs gitlet invocations against one temporary working directory.
type harness struct {
	t   *testing.T
	dir string
	now time.Time
}

type result struct {
	stdout string
	stderr string
	code   int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		t:   t,
		dir: t.TempDir(),
		now: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (h *harness) run(args ...string) result {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp(&stdout, &stderr)
	a.getwd = func() (string, error) { return h.dir, nil }
	a.clock = func() time.Time {
		h.now = h.now.Add(time.Minute)
		return h.now
	}
	code := a.run(context.Background(), args)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code}
}

// ok runs args and requires a silent success.
func (h *harness) ok(args ...string) string {
	h.t.Helper()
	r := h.run(args...)
	require.Equal(h.t, 0, r.code, "gitlet %v: stdout=%q stderr=%q", args, r.stdout, r.stderr)
	return r.stdout
}

// fails runs args and requires exit status 1 with exactly line on stdout.
func (h *harness) fails(line string, args ...string) {
	h.t.Helper()
	r := h.run(args...)
	assert.Equal(h.t, 1, r.code, "gitlet %v", args)
	assert.Equal(h.t, line+"\n", r.stdout, "gitlet %v", args)
}

func (h *harness) write(name, content string) {
	h.t.Helper()
	require.NoError(h.t, os.WriteFile(filepath.Join(h.dir, name), []byte(content), 0644))
}

func (h *harness) read(name string) (string, bool) {
	h.t.Helper()
	data, err := os.ReadFile(filepath.Join(h.dir, name))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (h *harness) commitIDs(logOutput string) []string {
	var ids []string
	for _, line := range strings.Split(logOutput, "\n") {
		if id, ok := strings.CutPrefix(line, "commit "); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func TestDispatchErrors(t *testing.T) {
	h := newHarness(t)

	h.fails("Please enter a command.")
	h.fails("Not in an initialized Gitlet directory.", "status")
	h.fails("Not in an initialized Gitlet directory.", "add")
	h.fails("Not in an initialized Gitlet directory.", "frobnicate")

	h.fails("Incorrect operands.", "init", "extra")
	h.ok("init")

	h.fails("No command with that name exists.", "frobnicate")
	h.fails("Incorrect operands.", "add")
	h.fails("Incorrect operands.", "commit")
	h.fails("Incorrect operands.", "log", "extra")
	h.fails("Incorrect operands.", "branch", "a", "b")
	h.fails("A Gitlet version-control system already exists in the current directory.", "init")
}

func TestInit_WritesRepository(t *testing.T) {
	h := newHarness(t)
	assert.Empty(t, h.ok("init"))

	for _, p := range []string{".gitlet/HEAD", ".gitlet/refs/heads/master", ".gitlet/config.yaml", ".gitlet/stage"} {
		_, ok := h.read(p)
		assert.True(t, ok, "%s missing", p)
	}

	out := h.ok("log")
	assert.True(t, strings.HasPrefix(out, "===\ncommit "))
	assert.Contains(t, out, "Date: Thu Jan 1 00:00:00 1970 +0000\ninitial commit\n\n")
}

func TestCommitAndLog(t *testing.T) {
	h := newHarness(t)
	h.ok("init")

	h.write("a.txt", "1")
	h.ok("add", "a.txt")
	h.ok("commit", "c1")
	h.write("a.txt", "2")
	h.ok("add", "a.txt")
	h.ok("commit", "c2")

	out := h.ok("log")
	assert.Equal(t, 3, strings.Count(out, "===\n"))
	c2 := strings.Index(out, "\nc2\n")
	c1 := strings.Index(out, "\nc1\n")
	require.True(t, c2 > 0 && c1 > 0)
	assert.Less(t, c2, c1, "most recent commit first")
	assert.Contains(t, out, "Date: Wed Apr 01 08:02:00 2026 +0000\nc2\n")

	limited := h.ok("log", "-n", "2")
	assert.Equal(t, 2, strings.Count(limited, "===\n"))
	assert.NotContains(t, limited, "initial commit")

	h.fails("No changes added to the commit.", "commit", "again")
	h.write("a.txt", "3")
	h.ok("add", "a.txt")
	h.fails("Please enter a commit message.", "commit", "")
	h.fails("File does not exist.", "add", "missing.txt")
}

func TestDashOperands(t *testing.T) {
	h := newHarness(t)
	h.ok("init")

	h.write("a.txt", "1")
	h.ok("add", "a.txt")
	h.ok("commit", "-m")
	h.write("-x.txt", "x")
	h.ok("add", "-x.txt")
	h.ok("commit", "-fix typo")
	h.write("b.txt", "b")
	h.ok("add", "--", "b.txt")
	h.ok("commit", "--", "--verbose")

	out := h.ok("log")
	for _, msg := range []string{"-m", "-fix typo", "--verbose"} {
		assert.Contains(t, out, "\n"+msg+"\n\n")
	}
	assert.Equal(t, 1, strings.Count(h.ok("find", "-fix typo"), "\n"))

	h.ok("rm", "-x.txt")
	_, ok := h.read("-x.txt")
	assert.False(t, ok)

	h.fails("Invalid branch name.", "branch", "-f")
	h.fails("No commit with that id exists.", "reset", "-abc")
	h.fails("Incorrect operands.", "commit", "--")
	h.fails("Incorrect operands.", "commit", "-a", "-b")
}

func TestGlobalLogAndFind(t *testing.T) {
	h := newHarness(t)
	h.ok("init")
	for i, content := range []string{"1", "2", "3"} {
		h.write("a.txt", content)
		h.ok("add", "a.txt")
		msg := "wip"
		if i == 1 {
			msg = "other"
		}
		h.ok("commit", msg)
	}

	all := h.commitIDs(h.ok("global-log"))
	assert.Len(t, all, 4)

	found := strings.Fields(h.ok("find", "wip"))
	assert.Len(t, found, 2)
	for _, id := range found {
		assert.Contains(t, all, id)
	}

	h.fails("Found no commit with that message.", "find", "nothing like this")

	table := h.ok("global-log", "--table", "--color", "never")
	assert.Contains(t, table, "All Commits")
	assert.Contains(t, table, all[0][:8])
}

func TestStatusAndRm(t *testing.T) {
	h := newHarness(t)
	h.ok("init")
	h.write("a.txt", "a")
	h.ok("add", "a.txt")
	h.ok("commit", "add a")

	h.write("b.txt", "b")
	h.ok("add", "b.txt")
	h.ok("rm", "a.txt")
	h.ok("branch", "dev")
	h.fails("No reason to remove the file.", "rm", "zzz.txt")

	_, exists := h.read("a.txt")
	assert.False(t, exists)

	want := "=== Branches ===\ndev\n*master\n\n" +
		"=== Staged Files ===\nb.txt\n\n" +
		"=== Removed Files ===\na.txt\n\n" +
		"=== Modifications Not Staged For Commit ===\n\n" +
		"=== Untracked Files ===\n\n"
	assert.Equal(t, want, h.ok("status"))
}

func TestCheckoutForms(t *testing.T) {
	h := newHarness(t)
	h.ok("init")
	h.write("a.txt", "1")
	h.ok("add", "a.txt")
	h.ok("commit", "one")
	first := h.commitIDs(h.ok("log"))[0]
	h.write("a.txt", "2")
	h.ok("add", "a.txt")
	h.ok("commit", "two")

	h.write("a.txt", "dirty")
	h.ok("checkout", "--", "a.txt")
	content, _ := h.read("a.txt")
	assert.Equal(t, "2", content)

	h.ok("checkout", first[:7], "--", "a.txt")
	content, _ = h.read("a.txt")
	assert.Equal(t, "1", content)

	h.fails("File does not exist in that commit.", "checkout", "--", "nope.txt")
	h.fails("No commit with that id exists.", "checkout", strings.Repeat("f", 40), "--", "a.txt")
	h.fails("No such branch exists.", "checkout", "ghost")
	h.fails("No need to checkout the current branch.", "checkout", "master")

	h.fails("Incorrect operands.", "checkout")
	h.fails("Incorrect operands.", "checkout", "a", "b")
	h.fails("Incorrect operands.", "checkout", "--", "a", "b")
	h.fails("Incorrect operands.", "checkout", "a", "b", "--", "c")
}

func TestBranchSwitching(t *testing.T) {
	h := newHarness(t)
	h.ok("init")
	h.ok("branch", "feature")
	h.ok("checkout", "feature")
	h.write("x.txt", "x")
	h.ok("add", "x.txt")
	h.ok("commit", "on feature")

	h.ok("checkout", "master")
	_, exists := h.read("x.txt")
	assert.False(t, exists)

	h.write("x.txt", "untracked")
	h.fails("There is an untracked file in the way; delete it or add it first.", "checkout", "feature")
	content, _ := h.read("x.txt")
	assert.Equal(t, "untracked", content)

	h.fails("A branch with that name already exists.", "branch", "feature")
	h.fails("Invalid branch name.", "branch", "bad..name")
	h.fails("Cannot remove the current branch.", "rm-branch", "master")
	h.fails("A branch with that name does not exist.", "rm-branch", "ghost")
	h.ok("rm-branch", "feature")
	h.fails("No such branch exists.", "checkout", "feature")
}

func TestReset(t *testing.T) {
	h := newHarness(t)
	h.ok("init")
	h.write("a.txt", "1")
	h.ok("add", "a.txt")
	h.ok("commit", "one")
	h.write("b.txt", "b")
	h.ok("add", "b.txt")
	h.ok("commit", "two")

	ids := h.commitIDs(h.ok("log"))
	require.Len(t, ids, 3)

	h.ok("reset", ids[1][:8])
	_, exists := h.read("b.txt")
	assert.False(t, exists)
	assert.Equal(t, ids[1:], h.commitIDs(h.ok("log")))

	h.fails("No commit with that id exists.", "reset", "0123456789")
	h.ok("reset", ids[0])
	content, _ := h.read("b.txt")
	assert.Equal(t, "b", content)
}

func TestBadConfigIsInternalError(t *testing.T) {
	h := newHarness(t)
	h.ok("init")
	h.write(".gitlet/config.yaml", "ui:\n  color: purple\n")

	r := h.run("status")
	assert.Equal(t, 1, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "Error:")

	r = h.run("status", "--color", "never")
	assert.Equal(t, 0, r.code, "flag overrides the file: %s", r.stderr)
}

func TestCheckoutForm(t *testing.T) {
	cases := []struct {
		dashAt, n int
		want      checkoutKind
	}{
		{-1, 1, checkoutBranch},
		{0, 1, checkoutHeadFile},
		{1, 2, checkoutCommitFile},
		{-1, 0, checkoutInvalid},
		{-1, 2, checkoutInvalid},
		{0, 2, checkoutInvalid},
		{1, 1, checkoutInvalid},
		{2, 3, checkoutInvalid},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, checkoutForm(tc.dashAt, tc.n), "dash=%d n=%d", tc.dashAt, tc.n)
	}
}
