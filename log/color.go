package log

// colorReset clears any active ANSI attributes.
const colorReset = "\033[0m"

// levelColors maps severities to the ANSI sequence terminal output is
// wrapped in.
var levelColors = map[LogLevel]string{
	Debug: "\033[34m",
	Info:  "\033[32m",
	Warn:  "\033[33m",
	Error: "\033[31m",
	Fatal: "\033[35m",
}

func Color(l LogLevel) string {
	if color, ok := levelColors[l]; ok {
		return color
	}

	return colorReset
}
