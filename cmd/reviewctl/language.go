package main

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var extensionLanguages = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".java":  "java",
	".rb":    "ruby",
	".rs":    "rust",
	".c":     "c",
	".h":     "c",
	".cc":    "cpp",
	".cpp":   "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".sh":    "shell",
	".sql":   "sql",
	".html":  "html",
	".css":   "css",
}

// inferLanguage maps a file extension to a language tag, empty when the
// extension is unknown.
func inferLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	return extensionLanguages[ext]
}

var titleCaser = cases.Title(language.English)

// displayLanguage renders a language tag for table output.
func displayLanguage(tag string) string {
	switch strings.ToLower(tag) {
	case "javascript":
		return "JavaScript"
	case "typescript":
		return "TypeScript"
	case "csharp":
		return "C#"
	case "cpp":
		return "C++"
	case "php", "sql", "html", "css":
		return strings.ToUpper(tag)
	default:
		return titleCaser.String(tag)
	}
}
