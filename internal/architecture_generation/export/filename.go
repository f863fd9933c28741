package export

import "regexp"

// whitespace matches the same runs as \s in a JavaScript regexp.
var whitespace = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)

// Stem replaces every whitespace run in the system name with an underscore.
func Stem(systemName string) string {
	return whitespace.ReplaceAllString(systemName, "_")
}

// DocumentFilename is the download name of the Markdown document.
func DocumentFilename(systemName string) string {
	return Stem(systemName) + "_Architecture.md"
}

// DiagramFilename is the download name of the rendered SVG diagram.
func DiagramFilename(systemName string) string {
	return Stem(systemName) + "_Architecture_Diagram.svg"
}

// DefinitionFilename is the name of the raw Mermaid definition.
func DefinitionFilename(systemName string) string {
	return Stem(systemName) + "_Architecture_Diagram.mmd"
}
