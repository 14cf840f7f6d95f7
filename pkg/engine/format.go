package engine

import (
	"bufio"
	"io"

	"github.com/jenniferntran/gitlet/pkg/objects"
	"github.com/jenniferntran/gitlet/pkg/objects/commit"
)

// Section headers of the status report, in print order.
const (
	HeaderBranches  = "=== Branches ==="
	HeaderStaged    = "=== Staged Files ==="
	HeaderRemoved   = "=== Removed Files ==="
	HeaderModified  = "=== Modifications Not Staged For Commit ==="
	HeaderUntracked = "=== Untracked Files ==="
)

// WriteLog prints one block per commit:
//
//	===
//	commit <id>
//	Date: <timestamp>
//	<message>
//	<blank line>
func WriteLog(w io.Writer, commits []*commit.Commit) error {
	bw := bufio.NewWriter(w)
	for _, c := range commits {
		bw.WriteString("===\n")
		bw.WriteString("commit " + c.ID.String() + "\n")
		bw.WriteString("Date: " + c.Timestamp + "\n")
		bw.WriteString(c.Message + "\n")
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// WriteIDs prints one id per line.
func WriteIDs(w io.Writer, ids []objects.ObjectHash) error {
	bw := bufio.NewWriter(w)
	for _, id := range ids {
		bw.WriteString(id.String() + "\n")
	}
	return bw.Flush()
}

// WriteTo prints the status report. Each section ends with a blank line and
// the current branch is prefixed with "*".
func (s Status) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	cw.line(HeaderBranches)
	for _, b := range s.Branches {
		if b.Current {
			cw.line("*" + b.Name)
		} else {
			cw.line(b.Name)
		}
	}
	cw.line("")

	sections := []struct {
		header string
		paths  []string
	}{
		{HeaderStaged, s.Staged},
		{HeaderRemoved, s.Removed},
		{HeaderModified, s.Modified},
		{HeaderUntracked, s.Untracked},
	}
	for _, section := range sections {
		cw.line(section.header)
		for _, p := range section.paths {
			cw.line(p)
		}
		cw.line("")
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) line(s string) {
	if c.err != nil {
		return
	}
	n, err := c.w.WriteString(s + "\n")
	c.n += int64(n)
	c.err = err
}
