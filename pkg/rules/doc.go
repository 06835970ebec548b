// Package rules provides the line rules gccleaner applies to G-code files.
//
// A Rule is the raw configuration entry (a "LineDescription"). It is turned
// into an immutable CompiledRule by Compile, which normalizes the comment and
// validates the comparisons once. Only compiled rules can match lines.
//
// # Matching
//
// All comparisons are case-insensitive and combined with AND semantics. They
// are evaluated in a fixed order:
//
//  1. KeepIfContains: a line containing it is left alone by this rule
//  2. Contains: the line must contain the text
//  3. EndsWith: the line must end with the text
//  4. StartsWith: the line must start with the text
//  5. Matches: the line must equal the text
//
// A line satisfying every configured comparison is a hit. A hit is either
// deleted (RemoveLine) or commented out as ";" + line + comment.
//
// # Configuration
//
//	{
//	  "StartsWith": "M73 P",
//	  "Contains": " R",
//	  "RemoveLine": false,
//	  "Comment": "commented by gccleaner"
//	}
//
// Rule lists are ordered: the first rule with a hit decides the line, see
// package processor.
package rules
