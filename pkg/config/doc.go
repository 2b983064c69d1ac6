// Package config loads the engine's ambient settings from the environment
// and rule definitions from YAML documents.
//
// Settings are parsed from env-tagged struct fields with sensible defaults,
// so a zero-configuration process still gets a working engine. A .env file
// in the working directory is honored once per process.
//
// Rule definitions are declarative YAML; their values stay loosely typed on
// purpose so that the rule engine's own normalization and validation decide
// what is usable. A rule file with a bad rule still loads — the bad rule
// just never registers.
package config
