package domain

import "runtime"

// OSFamily names an operating-system family a converter is known to work against.
type OSFamily string

// Supported OS families.
const (
	OSLinux   OSFamily = "linux"
	OSDarwin  OSFamily = "darwin"
	OSCygwin  OSFamily = "cygwin"
	OSWin32   OSFamily = "win32"
	OSAIX     OSFamily = "aix"
	OSFreeBSD OSFamily = "freebsd"
)

// ConverterDescriptor is the static identity and metadata of a converter.
// Name is the unique key and stays stable across versions.
type ConverterDescriptor struct {
	Name        string
	Version     string
	Description string
	Author      string
	AuthorEmail string
	Compatible  []OSFamily
	Details     string
}

// Info reduces the descriptor to the plain record used by the about report.
// The compatibility set is copied so the report never aliases the descriptor.
func (d *ConverterDescriptor) Info() ConverterInfo {
	compatible := make([]string, 0, len(d.Compatible))
	for _, family := range d.Compatible {
		compatible = append(compatible, string(family))
	}
	return ConverterInfo{
		Name:        d.Name,
		Version:     d.Version,
		Description: d.Description,
		Author:      d.Author,
		AuthorEmail: d.AuthorEmail,
		Compatible:  compatible,
		Details:     d.Details,
	}
}

// SupportsOS reports whether the converter declares compatibility with family.
func (d *ConverterDescriptor) SupportsOS(family OSFamily) bool {
	for _, c := range d.Compatible {
		if c == family {
			return true
		}
	}
	return false
}

// HostOS returns the family of the running system.
func HostOS() OSFamily {
	return osFamily(runtime.GOOS)
}

func osFamily(goos string) OSFamily {
	if goos == "windows" {
		return OSWin32
	}
	return OSFamily(goos)
}
