package commands

// WriteWorkflow exports writeWorkflow for testing.
var WriteWorkflow = writeWorkflow //nolint:gochecknoglobals // test export

// PrintCandidates exports printCandidates for testing.
var PrintCandidates = printCandidates //nolint:gochecknoglobals // test export
