// Package platformicon resolves the styled icon tile shown for a software
// platform during project onboarding.
//
// Platform identifiers such as "python" or "javascript-react" map to an
// optional color pair and, for a closed set of legacy and variant
// identifiers, a glyph codepoint that replaces the icon font's default.
// Everything here is static data; resolution is a pure function of its
// inputs and safe for concurrent use.
package platformicon
