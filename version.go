package turing

// Version is the current release of the library and the CLI.
const Version = "0.3.0"
