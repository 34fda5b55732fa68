package cli

// Name is the name of the CLI binary.
const Name = "headline"
