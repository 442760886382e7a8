package testSuite

import (
	"embed"
	"io/fs"
	"testing"

	testUtils "github.com/replit/otable/test-suite/utils"
)

//go:embed templates
var templatesFS embed.FS

var templates fs.FS

func init() {
	var err error
	templates, err = fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
}

func startOtable(t *testing.T, files ...string) *testUtils.OtableT {
	ot := testUtils.InitOtableT(t, templates)
	for _, file := range files {
		ot.AddTestFile(file, file)
	}
	return ot
}
