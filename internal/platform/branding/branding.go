// Package branding holds product naming shared by page titles and CLIs.
package branding

// AppName is the product name shown in page titles.
const AppName = "Onboarding"
