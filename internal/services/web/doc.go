// Package web serves the browser-facing platform picker of project
// onboarding: the page listing platform icon tiles, single tile fragments for
// HTMX swaps, and the generated platformicon stylesheet.
package web
