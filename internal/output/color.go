package output

import (
	"io"
	"os"
)

// Color modes accepted by --color and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColorMode determines whether to style output. flagMode comes from
// --color and wins when set; otherwise configMode (config.yaml) applies.
// "never" and "always" force the answer, anything else uses isTTY.
func ResolveColorMode(flagMode, configMode string, isTTY bool) bool {
	mode := flagMode
	if mode == "" {
		mode = configMode
	}

	switch mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
