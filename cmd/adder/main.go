// Starts the Adder operator service: it owns addition and delegates
// subtraction, multiplication and division to its peers.
//
// For usage details, run adder with the command line flag -h.
package main

import (
	"flag"
	"fmt"
	"os"

	"google.golang.org/grpc"

	"github.com/Shearerbeard/PESA-equation-services/clog"
	"github.com/Shearerbeard/PESA-equation-services/equationpb"
	"github.com/Shearerbeard/PESA-equation-services/expr"
	"github.com/Shearerbeard/PESA-equation-services/operator"
)

func main() {
	var help bool
	var log bool

	flag.Usage = usage
	flag.BoolVar(&help, "h", false, "Show usage information")
	flag.BoolVar(&log, "l", false, "Show logging output (for debugging)")
	flag.Parse()

	if help {
		usage()
		os.Exit(0)
	}
	if log {
		clog.Enable()
	}

	err := operator.Run(expr.Add, func(s *grpc.Server, svc *operator.Service) {
		equationpb.RegisterAdderServer(s, operator.AdderView{Service: svc})
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Print(`usage: adder [-h] [-l]

Starts the Adder operator service. Its listen address and its three
peers' addresses are read from ADDER_ADDR, SUBTRACTOR_ADDR,
MULTIPLIER_ADDR and DIVIDER_ADDR (or a .env file in the working
directory).

Flags:
`)
	flag.PrintDefaults()
}
