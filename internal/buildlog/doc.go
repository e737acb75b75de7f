// Package buildlog provides the logging facility for the publishkit CLI.
//
// The logger is an explicitly constructed value passed down to every
// component that reports progress or advisory conditions. There is no
// package-level logger and no global handler state, so repeated
// construction (e.g., in tests) never duplicates output.
//
// Two output formats are supported:
//
//   - Plain: "<publishkit> [LEVEL] message", intended for humans.
//   - GitHub Actions: when the GITHUB_ACTIONS environment flag is "true",
//     debug, warning, and error lines are preceded by a workflow command
//     annotation ("::warning ::message") so they surface in the Actions
//     UI. Info lines have no annotation equivalent and stay plain.
//
// Advisory conditions (missing strip targets, ambiguous portability,
// heuristic mismatches) are surfaced exclusively through this package,
// never through control flow, so CI runs are not interrupted by them.
package buildlog
