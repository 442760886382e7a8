package cli

// outputFormat is an enum representing the argument of the --format
// option.
type outputFormat int

// Values for outputFormat.
const (
	// --format=table
	outputFormatTable outputFormat = iota

	// --format=json
	outputFormatJSON
)

// infoLine represents one line in the table emitted by 'otable
// describe'.
type infoLine struct {
	Field string `otable:"field"`
	Value string `otable:"value"`
}

// formatLine represents one line in the table emitted by 'otable
// list-formats'.
type formatLine struct {
	Format     string `otable:"format"`
	Extensions string `otable:"extensions"`
}

// inputOptions are the flags shared by commands that read a record
// file.
type inputOptions struct {
	formatStr string
	key       string
}
