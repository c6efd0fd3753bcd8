package main

import "github.com/davetashner/eventcheck/internal/testable"

// cmdFS is the file system used to read input and write the report.
// Override in tests with a testable.MockFileSystem.
var cmdFS testable.FileSystem = testable.DefaultFS
