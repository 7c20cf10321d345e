// Package cmd implements the radar CLI: a terminal client for the
// Radar portfolio backend.
// A main package registers Commands and executes the user-selected one.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/radarfin/radar"
	"github.com/radarfin/radar/radarapi"
)

// Environment variables understood by every subcommand.
const (
	EnvPhone   = "RADAR_PHONE"
	EnvBaseURL = "RADAR_BASE_URL"
)

// as a CLI application, it has a very short lived lifecycle, so it is
// ok to use global variables.
var (
	phoneFlag   = flag.String("phone", "", "account phone number in any common form; defaults to "+EnvPhone)
	baseURLFlag = flag.String("base-url", "", "Radar backend base URL; defaults to "+EnvBaseURL)
	Verbose     = flag.Bool("v", false, "enable verbose logging")
)

// Commands lists all subcommands for registration by the main package.
var Commands = []subcommands.Command{
	&portfolioCmd{},
	&addCmd{},
	&updateCmd{},
	&deleteCmd{},
	&searchCmd{},
	&securityCmd{},
	&calendarCmd{},
	&assistCmd{},
	&topicCmd{},
}

// phone resolves the account identifier from the flag or environment.
// The raw value is normalized by the client; an empty value is the one
// configuration error every command reports the same way.
func phone() (string, error) {
	p := *phoneFlag
	if p == "" {
		p = os.Getenv(EnvPhone)
	}
	if p == "" {
		return "", fmt.Errorf("no account phone set: use -phone or the %s environment variable", EnvPhone)
	}
	return p, nil
}

// newClient builds the backend client from the global flags.
func newClient() (*radarapi.Client, error) {
	p, err := phone()
	if err != nil {
		return nil, err
	}

	var opts []radarapi.Option
	base := *baseURLFlag
	if base == "" {
		base = os.Getenv(EnvBaseURL)
	}
	if base != "" {
		opts = append(opts, radarapi.WithBaseURL(base))
	}

	c := radarapi.NewClient(p, opts...)
	if *Verbose {
		log.Printf("radar client for %s", radar.MaskPhone(c.Phone()))
	}
	return c, nil
}
