package converters

import (
	"github.com/custodia-labs/jc/internal/converters/arp"
	"github.com/custodia-labs/jc/internal/converters/df"
	"github.com/custodia-labs/jc/internal/converters/dig"
	"github.com/custodia-labs/jc/internal/converters/env"
	"github.com/custodia-labs/jc/internal/converters/free"
	"github.com/custodia-labs/jc/internal/converters/fstab"
	"github.com/custodia-labs/jc/internal/converters/history"
	"github.com/custodia-labs/jc/internal/converters/hosts"
	"github.com/custodia-labs/jc/internal/converters/ifconfig"
	"github.com/custodia-labs/jc/internal/converters/iptables"
	"github.com/custodia-labs/jc/internal/converters/jobs"
	"github.com/custodia-labs/jc/internal/converters/ls"
	"github.com/custodia-labs/jc/internal/converters/lsblk"
	"github.com/custodia-labs/jc/internal/converters/lsmod"
	"github.com/custodia-labs/jc/internal/converters/lsof"
	"github.com/custodia-labs/jc/internal/converters/mount"
	"github.com/custodia-labs/jc/internal/converters/netstat"
	"github.com/custodia-labs/jc/internal/converters/ps"
	"github.com/custodia-labs/jc/internal/converters/route"
	"github.com/custodia-labs/jc/internal/converters/ss"
	"github.com/custodia-labs/jc/internal/converters/stat"
	"github.com/custodia-labs/jc/internal/converters/systemctl"
	"github.com/custodia-labs/jc/internal/converters/uname"
	"github.com/custodia-labs/jc/internal/converters/uptime"
	"github.com/custodia-labs/jc/internal/converters/w"
	"github.com/custodia-labs/jc/internal/core/services"
)

// Defaults returns the built-in converter table in help and about order.
// Add a converter by appending its flag here.
func Defaults() []services.Entry {
	return []services.Entry{
		{Flag: "--arp", Converter: arp.New()},
		{Flag: "--df", Converter: df.New()},
		{Flag: "--dig", Converter: dig.New()},
		{Flag: "--env", Converter: env.New()},
		{Flag: "--free", Converter: free.New()},
		{Flag: "--fstab", Converter: fstab.New()},
		{Flag: "--history", Converter: history.New()},
		{Flag: "--hosts", Converter: hosts.New()},
		{Flag: "--ifconfig", Converter: ifconfig.New()},
		{Flag: "--iptables", Converter: iptables.New()},
		{Flag: "--jobs", Converter: jobs.New()},
		{Flag: "--ls", Converter: ls.New()},
		{Flag: "--lsblk", Converter: lsblk.New()},
		{Flag: "--lsmod", Converter: lsmod.New()},
		{Flag: "--lsof", Converter: lsof.New()},
		{Flag: "--mount", Converter: mount.New()},
		{Flag: "--netstat", Converter: netstat.New()},
		{Flag: "--ps", Converter: ps.New()},
		{Flag: "--route", Converter: route.New()},
		{Flag: "--ss", Converter: ss.New()},
		{Flag: "--stat", Converter: stat.New()},
		{Flag: "--systemctl", Converter: systemctl.New()},
		{Flag: "--systemctl-lj", Converter: systemctl.NewJobs()},
		{Flag: "--systemctl-ls", Converter: systemctl.NewSockets()},
		{Flag: "--systemctl-luf", Converter: systemctl.NewUnitFiles()},
		{Flag: "--uname", Converter: uname.New()},
		{Flag: "--uptime", Converter: uptime.New()},
		{Flag: "--w", Converter: w.New()},
	}
}

// NewRegistry builds the registry of built-in converters.
func NewRegistry() (*services.ConverterRegistry, error) {
	return services.NewConverterRegistry(Defaults()...)
}
