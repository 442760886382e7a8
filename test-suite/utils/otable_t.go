package testUtils

import (
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"strings"
	"testing"
)

// OtableT runs the otable binary found on $PATH inside a scratch
// directory seeded from templates.
type OtableT struct {
	t         *testing.T
	templates fs.FS
	testDir   string
}

func InitOtableT(t *testing.T, templates fs.FS) *OtableT {
	if _, err := exec.LookPath("otable"); err != nil {
		t.Skip("otable is not installed")
	}
	return &OtableT{t: t, templates: templates}
}

func (ot *OtableT) Fail(format string, args ...interface{}) {
	ot.t.Helper()
	ot.t.Fatalf(format, args...)
}

func (ot *OtableT) TestDir() string {
	if ot.testDir == "" {
		ot.testDir = ot.t.TempDir()
	}
	return ot.testDir
}

func (ot *OtableT) AddTestFile(template, as string) {
	f, err := ot.templates.Open(template)
	if err != nil {
		ot.Fail("failed to get template %s: %v", template, err)
	}
	defer f.Close()

	dstPath := path.Join(ot.TestDir(), as)
	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		ot.Fail("failed to open or create test file %s: %v", dstPath, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, f); err != nil {
		ot.Fail("failed to read template %s: %v", template, err)
	}
}

func (ot *OtableT) ReadTestFile(name string) string {
	contents, err := os.ReadFile(path.Join(ot.TestDir(), name))
	if err != nil {
		ot.Fail("failed to read %s: %v", name, err)
	}
	return string(contents)
}

func (ot *OtableT) Exec(command string, args ...string) (struct{ Stdout, Stderr string }, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = ot.TestDir()

	stdout := strings.Builder{}
	cmd.Stdout = &stdout

	stderr := strings.Builder{}
	cmd.Stderr = &stderr

	err := cmd.Run()

	return struct{ Stdout, Stderr string }{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, err
}

// Otable runs otable quietly and returns its stdout, failing the test
// if it exits unsuccessfully.
func (ot *OtableT) Otable(args ...string) string {
	out, err := ot.Exec("otable", append([]string{"--quiet"}, args...)...)
	if err != nil {
		ot.Fail("otable %s failed: %v\n%s", strings.Join(args, " "), err, out.Stderr)
	}
	return out.Stdout
}

// OtableFails runs otable, expects it to fail and returns its stderr.
func (ot *OtableT) OtableFails(args ...string) string {
	out, err := ot.Exec("otable", append([]string{"--quiet"}, args...)...)
	if err == nil {
		ot.Fail("expected otable %s to fail", strings.Join(args, " "))
	}
	return out.Stderr
}
