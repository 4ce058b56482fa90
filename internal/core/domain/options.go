package domain

import "strings"

// InvocationOptions holds the recognised command-line options.
// The options are independent; none conflicts with another.
type InvocationOptions struct {
	About  bool
	Debug  bool
	Pretty bool
	Quiet  bool
	Raw    bool
}

// ConvertOptions is the subset of options passed to a converter.
type ConvertOptions struct {
	// Raw requests literal extraction without semantic normalisation.
	Raw bool

	// Quiet suppresses non-fatal warnings about unexpected input shapes.
	Quiet bool
}

// ConvertOptions returns the converter-facing view of the options.
func (o InvocationOptions) ConvertOptions() ConvertOptions {
	return ConvertOptions{Raw: o.Raw, Quiet: o.Quiet}
}

// ParseOptions scans args for recognised options.
// Both short (-p) and long (--pretty) spellings are accepted, as are clusters
// of short options such as -dp. Anything else is ignored.
func ParseOptions(args []string) InvocationOptions {
	var opts InvocationOptions
	for _, arg := range args {
		switch arg {
		case "--about":
			opts.About = true
		case "--debug":
			opts.Debug = true
		case "--pretty":
			opts.Pretty = true
		case "--quiet":
			opts.Quiet = true
		case "--raw":
			opts.Raw = true
		default:
			opts.applyShort(arg)
		}
	}
	return opts
}

// applyShort applies a short option or cluster. A cluster containing any
// unknown letter is ignored as a whole.
func (o *InvocationOptions) applyShort(arg string) {
	if len(arg) < 2 || arg[0] != '-' || strings.HasPrefix(arg, "--") {
		return
	}
	letters := arg[1:]
	if strings.Trim(letters, "adpqr") != "" {
		return
	}
	for _, l := range letters {
		switch l {
		case 'a':
			o.About = true
		case 'd':
			o.Debug = true
		case 'p':
			o.Pretty = true
		case 'q':
			o.Quiet = true
		case 'r':
			o.Raw = true
		}
	}
}
