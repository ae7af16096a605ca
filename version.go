package wayfind

// Version is the semantic version of the wayfind module, surfaced by
// the CLI "version" subcommand.
const Version = "0.1.0"
