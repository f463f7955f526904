// Command cdisdump decodes a captured compact (C-DIS) PDU from a file
// and prints a summary. It is the ambient CLI surface every repo in
// this ecosystem carries as an outer shell over its library; the core
// codec has no file or network I/O of its own (§6).
package main

import (
	"fmt"
	"os"

	"github.com/rob-gra/cdis-codec/clog"
	"github.com/rob-gra/cdis-codec/pdu"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "cdisdump <file>",
		Short: "Decode a captured compact DIS PDU and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], verbose)
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log decode steps at debug level")
	return root
}

func run(cmd *cobra.Command, path string, verbose bool) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cdisdump: %w", err)
	}

	sess := clog.NewSession()
	sess.LogMode(verbose)

	header, body, err := pdu.DecodePDULogged(buf, sess)
	if err != nil {
		return fmt.Errorf("cdisdump: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "session:        %s\n", sess.ID)
	fmt.Fprintf(out, "protocol version: %d\n", header.Version)
	fmt.Fprintf(out, "exercise id:      %d\n", header.ExerciseID.Value)
	fmt.Fprintf(out, "body type:        %s\n", header.BodyType)
	fmt.Fprintf(out, "total length:     %d bits\n", header.TotalLengthBits)

	switch {
	case body.EntityState != nil:
		es := body.EntityState
		fmt.Fprintf(out, "body:             Entity State\n")
		fmt.Fprintf(out, "  entity id:      (%d, %d, %d)\n", es.EntityID.Site.Value, es.EntityID.Application.Value, es.EntityID.Entity.Value)
		fmt.Fprintf(out, "  full update:    %v\n", es.FullUpdate)
		fmt.Fprintf(out, "  presence bits:  %011b\n", es.Presence)
	case body.IFF != nil:
		fmt.Fprintf(out, "body:             IFF\n")
		fmt.Fprintf(out, "  entity id:      (%d, %d, %d)\n", body.IFF.EntityID.Site.Value, body.IFF.EntityID.Application.Value, body.IFF.EntityID.Entity.Value)
	case body.Datum != nil:
		fmt.Fprintf(out, "body:             Datum (%s)\n", header.BodyType)
		fmt.Fprintf(out, "  originating id: (%d, %d, %d)\n", body.Datum.OriginatingEntityID.Site.Value, body.Datum.OriginatingEntityID.Application.Value, body.Datum.OriginatingEntityID.Entity.Value)
		fmt.Fprintf(out, "  fixed datums:   %d\n", len(body.Datum.Datums.FixedDatums))
		fmt.Fprintf(out, "  variable datums: %d\n", len(body.Datum.Datums.VariableDatums))
	case body.Unsupported != nil:
		fmt.Fprintf(out, "body:             Unsupported (%d payload bits)\n", body.Unsupported.PayloadBits)
	}
	return nil
}
