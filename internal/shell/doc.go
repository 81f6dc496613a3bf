// Package shell provides integration with a host shell (zsh, bash, fish).
// It renders export statements for session variables loaded by jsh, and hook
// snippets that refresh the prompt branch field before every prompt.
package shell
