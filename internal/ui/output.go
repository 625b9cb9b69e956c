// Package ui provides colored terminal output for the CLI.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow, color.Bold)
	blue   = color.New(color.FgBlue)
	red    = color.New(color.FgRed)
)

// quiet suppresses everything except Warning and Error output.
var quiet bool

// SetQuiet toggles quiet mode for non-error output
func SetQuiet(q bool) {
	quiet = q
}

// Header prints a formatted header
func Header(text string) {
	if quiet {
		return
	}
	line := strings.Repeat("=", 60)
	green.Printf("\n%s\n", line)
	green.Printf("%-60s\n", center(text, 60))
	green.Printf("%s\n\n", line)
}

// Step prints a step indicator
func Step(stepNum, totalSteps int, text string) {
	if quiet {
		return
	}
	yellow.Printf("[%d/%d] %s\n", stepNum, totalSteps, text)
}

// Success prints a success message
func Success(text string) {
	if quiet {
		return
	}
	green.Printf("  → %s\n", text)
}

// Info prints an info message
func Info(text string) {
	if quiet {
		return
	}
	fmt.Printf("  → %s\n", text)
}

// Warning prints a warning message
func Warning(text string) {
	yellow.Printf("  ⚠ %s\n", text)
}

// Error prints an error message
func Error(text string) {
	red.Printf("Error: %s\n", text)
}

// BlueText prints blue text
func BlueText(text string) {
	if quiet {
		return
	}
	blue.Println(text)
}

// Detail prints an indented key-value line
func Detail(key, value string) {
	if quiet {
		return
	}
	fmt.Printf("    %-14s %s\n", key+":", value)
}

// YellowText prints yellow text
func YellowText(text string) {
	yellow.Println(text)
}

// center centers text within a given width
func center(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
