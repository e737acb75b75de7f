// Package symbols rewrites C# source files to undefine a
// conditional-compilation symbol before publishing.
//
// The transform inserts an "#undef <SYMBOL>" directive immediately
// after the file's leading run of preprocessor directives, leaving
// every other byte unchanged. Cross-platform projects use this to
// neutralize a Windows-only symbol when publishing for other targets
// without maintaining a second copy of the source.
//
// Two deliberate simplifications are preserved from the original build
// script and tend to surprise people expecting stricter validation:
//
//   - A listed file that does not exist is a warning and a skip, not a
//     failure. The file list is a fixed default that not every checkout
//     has in full.
//   - Only the directive run at the very top of the file is scanned. A
//     file consisting solely of directives (or an empty file) is left
//     untouched.
package symbols
